package mock

import (
	"context"
	"time"

	"github.com/chatrelay/media-gateway-go/internal/port"
)

// OriginFetcher implements the origin client for tests.
type OriginFetcher struct {
	Result port.FetchResult
	Err    error

	Called     bool
	CallCount  int
	FetchedURL string
	Timeout    time.Duration
}

var _ port.OriginFetcher = (*OriginFetcher)(nil)

func (m *OriginFetcher) Fetch(ctx context.Context, url string, timeout time.Duration) (port.FetchResult, error) {
	m.Called = true
	m.CallCount++
	m.FetchedURL = url
	m.Timeout = timeout
	if m.Err != nil {
		return port.FetchResult{}, m.Err
	}
	return m.Result, nil
}
