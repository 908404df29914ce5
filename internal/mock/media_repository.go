package mock

import (
	"context"

	"github.com/chatrelay/media-gateway-go/internal/model"
	"github.com/chatrelay/media-gateway-go/internal/port"
)

// MediaRepo implements repository operations for tests.
type MediaRepo struct {
	MediaRecord *model.Media
	ListOut     []model.Media

	GetErr        error
	CreateErr     error
	MarkCachedErr error
	ThumbErr      error
	ListErr       error

	GetCalled        bool
	Created          *model.Media
	MarkCachedCalled bool
	MarkCachedID     string
	MarkCachedKey    string
	MarkCachedHash   string
	ThumbCalled      bool
	ThumbID          string
	ThumbData        []byte
	ListCalled       bool
	ListFilter       port.RecordFilter
	ListLimit        int
}

var _ port.MediaRepository = (*MediaRepo)(nil)

func (m *MediaRepo) Create(ctx context.Context, media *model.Media) error {
	m.Created = media
	return m.CreateErr
}

func (m *MediaRepo) GetByID(ctx context.Context, id string) (*model.Media, error) {
	m.GetCalled = true
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	return m.MediaRecord, nil
}

func (m *MediaRepo) MarkCached(ctx context.Context, id, cacheKey, contentHash string) error {
	m.MarkCachedCalled = true
	m.MarkCachedID = id
	m.MarkCachedKey = cacheKey
	m.MarkCachedHash = contentHash
	return m.MarkCachedErr
}

func (m *MediaRepo) UpdateThumbnail(ctx context.Context, id string, thumbnail []byte) error {
	m.ThumbCalled = true
	m.ThumbID = id
	m.ThumbData = thumbnail
	return m.ThumbErr
}

func (m *MediaRepo) ListRecent(ctx context.Context, filter port.RecordFilter, limit int) ([]model.Media, error) {
	m.ListCalled = true
	m.ListFilter = filter
	m.ListLimit = limit
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.ListOut, nil
}
