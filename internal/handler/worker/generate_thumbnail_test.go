package worker

import (
	"context"
	"errors"
	"testing"

	"github.com/chatrelay/media-gateway-go/internal/mock"
	"github.com/chatrelay/media-gateway-go/internal/task"
)

func TestGenerateThumbnailHandler_Success(t *testing.T) {
	svc := &mock.ThumbnailGenerator{}

	err := GenerateThumbnailHandler(context.Background(), task.GenerateThumbnailPayload{MediaID: "wamid.abc"}, svc)
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if !svc.Called || svc.MediaID != "wamid.abc" {
		t.Errorf("unexpected usecase call %+v", svc)
	}
}

func TestGenerateThumbnailHandler_EmptyID(t *testing.T) {
	svc := &mock.ThumbnailGenerator{}

	// An empty ID is a malformed payload; retrying would never succeed.
	if err := GenerateThumbnailHandler(context.Background(), task.GenerateThumbnailPayload{}, svc); err != nil {
		t.Fatalf("expected nil so the task is not retried, got %v", err)
	}
	if svc.Called {
		t.Error("the usecase must not run without a media ID")
	}
}

func TestGenerateThumbnailHandler_Failure(t *testing.T) {
	svc := &mock.ThumbnailGenerator{Err: errors.New("not cached yet")}

	if err := GenerateThumbnailHandler(context.Background(), task.GenerateThumbnailPayload{MediaID: "wamid.abc"}, svc); err == nil {
		t.Fatal("failures must surface so the queue retries")
	}
}
