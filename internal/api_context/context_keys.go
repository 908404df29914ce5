package api_context

import (
	"context"

	"github.com/chatrelay/media-gateway-go/internal/model"
)

type ctxKey string

const (
	MediaIDKey    ctxKey = "mediaID"
	MediaKindKey  ctxKey = "mediaKind"
	AuthUserIDKey ctxKey = "authUserID"
	AuthRolesKey  ctxKey = "authRoles"
)

func MediaIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(MediaIDKey).(string)
	return id, ok
}

func MediaKindFromContext(ctx context.Context) (model.Kind, bool) {
	kind, ok := ctx.Value(MediaKindKey).(model.Kind)
	return kind, ok
}

func AuthUserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(AuthUserIDKey).(string)
	return id, ok
}

func AuthRolesFromContext(ctx context.Context) ([]string, bool) {
	roles, ok := ctx.Value(AuthRolesKey).([]string)
	return roles, ok
}
