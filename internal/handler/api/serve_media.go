package api

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/chatrelay/media-gateway-go/internal/api_context"
	"github.com/chatrelay/media-gateway-go/internal/port"
	media "github.com/chatrelay/media-gateway-go/internal/usecase/media"
)

// ServeMediaHandler answers GET /media/{kind}/{id} with the raw bytes of the
// attachment, a thumbnail fallback, a 202 "processing" marker, or a 404.
func ServeMediaHandler(svc port.MediaServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := api_context.MediaIDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "media ID is required", nil)
			return
		}
		kind, ok := api_context.MediaKindFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "media kind is required", nil)
			return
		}

		out, err := svc.ServeMedia(r.Context(), port.ServeMediaInput{ID: id, Kind: kind})
		if err != nil {
			if errors.Is(err, media.ErrNotFound) || errors.Is(err, media.ErrObjectNotFound) {
				WriteError(w, http.StatusNotFound, "Media not found", nil)
				return
			}
			WriteError(w, http.StatusInternalServerError, "Could not serve media", err)
			return
		}

		if out.Processing {
			w.WriteHeader(http.StatusAccepted)
			log.Printf("⏳  Media #%s (%s) still processing", id, kind)
			return
		}

		w.Header().Set("Content-Type", out.ContentType)
		w.Header().Set("Content-Length", strconv.Itoa(len(out.Body)))
		if out.CacheControl != "" {
			w.Header().Set("Cache-Control", out.CacheControl)
		}
		if out.Attachment {
			w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", out.FileName))
		}
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(out.Body); err != nil {
			log.Printf("❌  Failed to write media body: %v", err)
			return
		}
		log.Printf("✅  Served %d bytes for media #%s (%s)", len(out.Body), id, kind)
	}
}
