package middleware

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/chatrelay/media-gateway-go/internal/api_context"
	"github.com/chatrelay/media-gateway-go/internal/handler/api"
	"github.com/chatrelay/media-gateway-go/internal/model"
)

// WithMediaRequest parses the {kind} and {id} path params and stashes them
// in the request context.
func WithMediaRequest() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rawKind := chi.URLParam(r, "kind")
			kind, ok := model.ParseKind(rawKind)
			if !ok {
				api.WriteError(w, http.StatusBadRequest, fmt.Sprintf("unknown media kind %q", rawKind), nil)
				return
			}

			id := chi.URLParam(r, "id")
			if id == "" {
				api.WriteError(w, http.StatusBadRequest, "media ID is required", nil)
				return
			}

			// stash it in context and call the real handler
			ctx := context.WithValue(r.Context(), api_context.MediaKindKey, kind)
			ctx = context.WithValue(ctx, api_context.MediaIDKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
