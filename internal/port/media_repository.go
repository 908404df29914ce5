package port

import (
	"context"

	"github.com/chatrelay/media-gateway-go/internal/model"
)

// RecordFilter narrows a ListRecent scan.
type RecordFilter struct {
	TenantID string
	Kind     *model.Kind
}

// MediaRepository defines persistence operations for media records.
type MediaRepository interface {
	Create(ctx context.Context, media *model.Media) error
	GetByID(ctx context.Context, id string) (*model.Media, error)
	// MarkCached transitions the record's pointer from Origin to Cached.
	// It is safe to call redundantly from concurrent populators.
	MarkCached(ctx context.Context, id, cacheKey, contentHash string) error
	UpdateThumbnail(ctx context.Context, id string, thumbnail []byte) error
	ListRecent(ctx context.Context, filter RecordFilter, limit int) ([]model.Media, error)
}
