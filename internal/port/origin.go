package port

import (
	"context"
	"time"
)

// FetchResult is a fully buffered response from the provider origin.
type FetchResult struct {
	Body        []byte
	ContentType string
}

// OriginFetcher retrieves bytes from the external provider within a hard
// deadline. Implementations must abort the in-flight request at the timeout
// and return a typed failure, never a partial body.
type OriginFetcher interface {
	Fetch(ctx context.Context, url string, timeout time.Duration) (FetchResult, error)
}
