package port

import (
	"context"
	"time"
)

// Cache provides caching capabilities for rendered stats payloads.
type Cache interface {
	GetStats(ctx context.Context, key string) ([]byte, error)
	GetEtagStats(ctx context.Context, key string) (string, error)
	SetStats(ctx context.Context, key string, data []byte, validUntil time.Time)
	SetEtagStats(ctx context.Context, key string, etag string, validUntil time.Time)
}
