package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/chatrelay/media-gateway-go/internal/api_context"
	"github.com/chatrelay/media-gateway-go/internal/mock"
	"github.com/chatrelay/media-gateway-go/internal/model"
	"github.com/chatrelay/media-gateway-go/internal/port"
	media "github.com/chatrelay/media-gateway-go/internal/usecase/media"
)

func mediaRequest(id string, kind model.Kind) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/media/"+string(kind)+"/"+id, nil)
	ctx := context.WithValue(req.Context(), api_context.MediaKindKey, kind)
	ctx = context.WithValue(ctx, api_context.MediaIDKey, id)
	return req.WithContext(ctx)
}

func TestServeMediaHandler_Success(t *testing.T) {
	svc := &mock.MediaServer{Out: port.ServeMediaOutput{
		Body:         []byte("jpeg bytes"),
		ContentType:  "image/jpeg",
		CacheControl: "public, max-age=31536000",
	}}
	rr := httptest.NewRecorder()

	ServeMediaHandler(svc)(rr, mediaRequest("wamid.abc", model.KindImage))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if svc.In.ID != "wamid.abc" || svc.In.Kind != model.KindImage {
		t.Errorf("unexpected usecase input %+v", svc.In)
	}
	if rr.Body.String() != "jpeg bytes" {
		t.Errorf("unexpected body %q", rr.Body.String())
	}
	if got := rr.Header().Get("Content-Type"); got != "image/jpeg" {
		t.Errorf("unexpected content type %q", got)
	}
	if got := rr.Header().Get("Content-Length"); got != "10" {
		t.Errorf("unexpected content length %q", got)
	}
	if got := rr.Header().Get("Cache-Control"); got != "public, max-age=31536000" {
		t.Errorf("unexpected cache control %q", got)
	}
	if rr.Header().Get("Content-Disposition") != "" {
		t.Error("inline media must not carry a disposition header")
	}
}

func TestServeMediaHandler_Attachment(t *testing.T) {
	svc := &mock.MediaServer{Out: port.ServeMediaOutput{
		Body:        []byte("%PDF"),
		ContentType: "application/pdf",
		Attachment:  true,
		FileName:    "invoice.pdf",
	}}
	rr := httptest.NewRecorder()

	ServeMediaHandler(svc)(rr, mediaRequest("wamid.doc", model.KindDocument))

	if got := rr.Header().Get("Content-Disposition"); got != `attachment; filename="invoice.pdf"` {
		t.Errorf("unexpected disposition %q", got)
	}
}

func TestServeMediaHandler_Processing(t *testing.T) {
	svc := &mock.MediaServer{Out: port.ServeMediaOutput{Processing: true}}
	rr := httptest.NewRecorder()

	ServeMediaHandler(svc)(rr, mediaRequest("wamid.abc", model.KindImage))

	if rr.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", rr.Code)
	}
	if rr.Body.Len() != 0 {
		t.Errorf("a processing response carries no body, got %q", rr.Body.String())
	}
}

func TestServeMediaHandler_NotFound(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"record missing", media.ErrNotFound},
		{"object missing", media.ErrObjectNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mock.MediaServer{Err: tc.err}
			rr := httptest.NewRecorder()

			ServeMediaHandler(svc)(rr, mediaRequest("ghost", model.KindImage))

			if rr.Code != http.StatusNotFound {
				t.Fatalf("expected 404, got %d", rr.Code)
			}
			if got := rr.Header().Get("Cache-Control"); got != "no-store, max-age=0, must-revalidate" {
				t.Errorf("errors must not be cached, got %q", got)
			}
		})
	}
}

func TestServeMediaHandler_InternalError(t *testing.T) {
	svc := &mock.MediaServer{Err: errors.New("db down")}
	rr := httptest.NewRecorder()

	ServeMediaHandler(svc)(rr, mediaRequest("wamid.abc", model.KindImage))

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Code)
	}
}

func TestServeMediaHandler_MissingContext(t *testing.T) {
	svc := &mock.MediaServer{}
	rr := httptest.NewRecorder()

	ServeMediaHandler(svc)(rr, httptest.NewRequest(http.MethodGet, "/media/image/x", nil))

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	if svc.Called {
		t.Error("the usecase must not run without request context")
	}
}
