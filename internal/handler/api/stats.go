package api

import (
	"log"
	"net/http"
	"strconv"

	"github.com/chatrelay/media-gateway-go/internal/model"
	"github.com/chatrelay/media-gateway-go/internal/port"
	"github.com/chatrelay/media-gateway-go/internal/renderer"
)

// StatsHandler answers GET /media/stats with the sampled cache-hit
// distribution, served through the caching renderer with an ETag.
func StatsHandler(rend renderer.HTTPRenderer, svc port.StatsAggregator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in := port.StatsInput{
			TenantID: r.URL.Query().Get("clientId"),
		}
		if rawKind := r.URL.Query().Get("kind"); rawKind != "" {
			kind, ok := model.ParseKind(rawKind)
			if !ok {
				WriteError(w, http.StatusBadRequest, "unknown media kind "+strconv.Quote(rawKind), nil)
				return
			}
			in.Kind = &kind
		}
		if rawLimit := r.URL.Query().Get("limit"); rawLimit != "" {
			limit, err := strconv.Atoi(rawLimit)
			if err != nil || limit <= 0 {
				WriteError(w, http.StatusBadRequest, "limit must be a positive integer", nil)
				return
			}
			in.Limit = limit
		}

		raw, etag, err := rend.RenderStats(r.Context(), svc, in)
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "Could not compute stats", err)
			return
		}

		w.Header().Set("ETag", etag)
		w.Header().Set("Cache-Control", "public, max-age=60")
		if match := r.Header.Get("If-None-Match"); match == etag {
			w.WriteHeader(http.StatusNotModified)
			return
		}

		RespondRawJSON(w, http.StatusOK, raw)
		log.Printf("✅  Returned sampled media stats")
	}
}
