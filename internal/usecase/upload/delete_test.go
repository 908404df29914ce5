package upload_test

import (
	"context"
	"errors"
	"testing"

	"github.com/chatrelay/media-gateway-go/internal/mock"
	"github.com/chatrelay/media-gateway-go/internal/port"
	media "github.com/chatrelay/media-gateway-go/internal/usecase/media"
	"github.com/chatrelay/media-gateway-go/internal/usecase/upload"
)

func TestRemoveUpload_HappyPath(t *testing.T) {
	strg := &mock.Storage{}
	svc := upload.NewUploadRemover(strg)

	err := svc.RemoveUpload(context.Background(), port.RemoveUploadInput{
		TenantID: "client-1",
		FilePath: "uploads/client-1/image/1700000000000_abcd1234.png",
	})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if strg.RemovedKey != "uploads/client-1/image/1700000000000_abcd1234.png" {
		t.Errorf("removed the wrong key %q", strg.RemovedKey)
	}
}

func TestRemoveUpload_CrossTenant(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"other tenant's upload", "uploads/client-2/image/x.png"},
		{"gateway cache object", "client-1/images/wamid.abc.jpg"},
		{"prefix trickery", "uploads/client-10/image/x.png"},
		{"empty path", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			strg := &mock.Storage{}
			svc := upload.NewUploadRemover(strg)

			err := svc.RemoveUpload(context.Background(), port.RemoveUploadInput{
				TenantID: "client-1",
				FilePath: tc.path,
			})

			if !errors.Is(err, upload.ErrNotOwned) {
				t.Fatalf("expected ErrNotOwned, got %v", err)
			}
			if strg.RemoveCalled {
				t.Error("the store must never be reached for a foreign key")
			}
		})
	}
}

func TestRemoveUpload_Missing(t *testing.T) {
	strg := &mock.Storage{RemoveErr: media.ErrObjectNotFound}
	svc := upload.NewUploadRemover(strg)

	err := svc.RemoveUpload(context.Background(), port.RemoveUploadInput{
		TenantID: "client-1",
		FilePath: "uploads/client-1/image/gone.png",
	})
	if !errors.Is(err, upload.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRemoveUpload_StoreFailure(t *testing.T) {
	strg := &mock.Storage{RemoveErr: errors.New("store down")}
	svc := upload.NewUploadRemover(strg)

	err := svc.RemoveUpload(context.Background(), port.RemoveUploadInput{
		TenantID: "client-1",
		FilePath: "uploads/client-1/image/x.png",
	})
	if err == nil || errors.Is(err, upload.ErrNotFound) || errors.Is(err, upload.ErrNotOwned) {
		t.Fatalf("expected the raw store error, got %v", err)
	}
}
