package mock

import (
	"context"
	"time"

	"github.com/chatrelay/media-gateway-go/internal/port"
)

// Cache implements the stats payload cache for tests.
type Cache struct {
	StatsOut []byte
	EtagOut  string
	GetErr   error

	GetCalled     bool
	SetCalled     bool
	SetKey        string
	SetData       []byte
	SetEtag       string
	SetValidUntil time.Time
}

var _ port.Cache = (*Cache)(nil)

func (m *Cache) GetStats(ctx context.Context, key string) ([]byte, error) {
	m.GetCalled = true
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	return m.StatsOut, nil
}

func (m *Cache) GetEtagStats(ctx context.Context, key string) (string, error) {
	if m.GetErr != nil {
		return "", m.GetErr
	}
	return m.EtagOut, nil
}

func (m *Cache) SetStats(ctx context.Context, key string, data []byte, validUntil time.Time) {
	m.SetCalled = true
	m.SetKey = key
	m.SetData = data
	m.SetValidUntil = validUntil
}

func (m *Cache) SetEtagStats(ctx context.Context, key string, etag string, validUntil time.Time) {
	m.SetEtag = etag
}
