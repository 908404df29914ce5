package cache

import (
	"context"
	"time"

	"github.com/chatrelay/media-gateway-go/internal/port"
)

// Noop is the fallback used when Redis is not configured: every read is a
// miss and writes vanish.
type Noop struct{}

var _ port.Cache = (*Noop)(nil)

func NewNoop() *Noop { return &Noop{} }

func (n *Noop) GetStats(ctx context.Context, key string) ([]byte, error) { return nil, nil }

func (n *Noop) GetEtagStats(ctx context.Context, key string) (string, error) { return "", nil }

func (n *Noop) SetStats(ctx context.Context, key string, data []byte, validUntil time.Time) {}

func (n *Noop) SetEtagStats(ctx context.Context, key string, etag string, validUntil time.Time) {}
