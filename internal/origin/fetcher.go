package origin

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/chatrelay/media-gateway-go/internal/port"
)

// The provider's CDN rejects anonymous-looking clients, so requests carry
// browser-like headers.
const (
	userAgent    = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"
	acceptHeader = "*/*"
)

var (
	ErrOriginStatus  = errors.New("origin: unexpected status")
	ErrOriginTimeout = errors.New("origin: request timed out")
	ErrOriginNetwork = errors.New("origin: network error")
)

type Fetcher struct {
	client *http.Client
}

// compile-time check: *Fetcher must satisfy port.OriginFetcher
var _ port.OriginFetcher = (*Fetcher)(nil)

// NewFetcher builds the origin HTTP client. Per-request deadlines come from
// Fetch; the client itself carries no timeout so a kind-specific one can be
// applied each call.
func NewFetcher() *Fetcher {
	return &Fetcher{client: &http.Client{}}
}

// NewFetcherWithClient is used by tests to inject a transport.
func NewFetcherWithClient(client *http.Client) *Fetcher {
	return &Fetcher{client: client}
}

// Fetch GETs url within the given hard timeout. The deadline aborts the
// in-flight request, not just the wait: a slow body read fails too. The
// returned error is always one of the Err* sentinels, wrapped with detail.
func (f *Fetcher) Fetch(ctx context.Context, url string, timeout time.Duration) (port.FetchResult, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return port.FetchResult{}, fmt.Errorf("%w: building request: %v", ErrOriginNetwork, err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", acceptHeader)

	resp, err := f.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return port.FetchResult{}, fmt.Errorf("%w after %s: %v", ErrOriginTimeout, timeout, err)
		}
		return port.FetchResult{}, fmt.Errorf("%w: %v", ErrOriginNetwork, err)
	}
	defer func(body io.ReadCloser) {
		_ = body.Close()
	}(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return port.FetchResult{}, fmt.Errorf("%w: %d from %q", ErrOriginStatus, resp.StatusCode, url)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return port.FetchResult{}, fmt.Errorf("%w after %s: body read aborted", ErrOriginTimeout, timeout)
		}
		return port.FetchResult{}, fmt.Errorf("%w: reading body: %v", ErrOriginNetwork, err)
	}

	return port.FetchResult{
		Body:        data,
		ContentType: resp.Header.Get("Content-Type"),
	}, nil
}
