package renderer

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/crc32"
	"time"

	"github.com/chatrelay/media-gateway-go/internal/model"
	"github.com/chatrelay/media-gateway-go/internal/port"
)

// Rendered stats stay valid for a minute; they are sampled anyway.
const statsTTL = time.Minute

// HTTPRenderer mediates between HTTP handlers and the stats aggregator.
// It provides caching capabilities and returns both the JSON representation
// of the result as well as an ETag value derived from it.
type HTTPRenderer interface {
	// RenderStats returns the cached JSON result and its ETag if available or
	// executes the underlying use case and caches the output otherwise.
	RenderStats(ctx context.Context, aggregator port.StatsAggregator, in port.StatsInput) ([]byte, string, error)
}

type httpRenderer struct {
	cache port.Cache
}

// compile-time check: *httpRenderer must satisfy HTTPRenderer
var _ HTTPRenderer = (*httpRenderer)(nil)

// NewHTTPRenderer creates a new HTTPRenderer implementation.
func NewHTTPRenderer(cache port.Cache) HTTPRenderer {
	return &httpRenderer{cache: cache}
}

func (r *httpRenderer) RenderStats(ctx context.Context, aggregator port.StatsAggregator, in port.StatsInput) ([]byte, string, error) {
	key := cacheKey(in)

	raw, err := r.cache.GetStats(ctx, key)
	etag, errEtag := r.cache.GetEtagStats(ctx, key)
	if err == nil && errEtag == nil && raw != nil && etag != "" {
		return raw, etag, nil
	}

	out, err := aggregator.ComputeStats(ctx, in)
	if err != nil {
		return nil, "", err
	}

	raw, err = json.Marshal(out)
	if err != nil {
		return nil, "", fmt.Errorf("json marshal: %w", err)
	}

	etag = fmt.Sprintf("\"%08x\"", crc32.ChecksumIEEE(raw))
	validUntil := time.Now().Add(statsTTL)
	r.cache.SetStats(ctx, key, raw, validUntil)
	r.cache.SetEtagStats(ctx, key, etag, validUntil)

	return raw, etag, nil
}

func cacheKey(in port.StatsInput) string {
	kind := model.Kind("all")
	if in.Kind != nil {
		kind = *in.Kind
	}
	tenant := in.TenantID
	if tenant == "" {
		tenant = "all"
	}
	return fmt.Sprintf("%s:%s:%d", tenant, kind, in.Limit)
}
