package mock

import (
	"context"

	"github.com/chatrelay/media-gateway-go/internal/port"
)

// MediaServer implements the gateway usecase for handler tests.
type MediaServer struct {
	Out port.ServeMediaOutput
	Err error

	In     port.ServeMediaInput
	Called bool
}

var _ port.MediaServer = (*MediaServer)(nil)

func (m *MediaServer) ServeMedia(ctx context.Context, in port.ServeMediaInput) (port.ServeMediaOutput, error) {
	m.Called = true
	m.In = in
	return m.Out, m.Err
}

// UploadIngestor implements the ingest usecase for handler tests.
type UploadIngestor struct {
	Out port.IngestUploadOutput
	Err error

	In     port.IngestUploadInput
	Called bool
}

var _ port.UploadIngestor = (*UploadIngestor)(nil)

func (m *UploadIngestor) IngestUpload(ctx context.Context, in port.IngestUploadInput) (port.IngestUploadOutput, error) {
	m.Called = true
	m.In = in
	return m.Out, m.Err
}

// UploadRemover implements the delete usecase for handler tests.
type UploadRemover struct {
	Err error

	In     port.RemoveUploadInput
	Called bool
}

var _ port.UploadRemover = (*UploadRemover)(nil)

func (m *UploadRemover) RemoveUpload(ctx context.Context, in port.RemoveUploadInput) error {
	m.Called = true
	m.In = in
	return m.Err
}

// UploadLister implements the query usecase for handler tests.
type UploadLister struct {
	ListOut []port.UploadInfo
	StatOut port.UploadInfo
	ListErr error
	StatErr error

	ListCalled bool
	StatCalled bool
	StatIn     port.RemoveUploadInput
	TenantID   string
}

var _ port.UploadLister = (*UploadLister)(nil)

func (m *UploadLister) ListUploads(ctx context.Context, tenantID string) ([]port.UploadInfo, error) {
	m.ListCalled = true
	m.TenantID = tenantID
	return m.ListOut, m.ListErr
}

func (m *UploadLister) StatUpload(ctx context.Context, in port.RemoveUploadInput) (port.UploadInfo, error) {
	m.StatCalled = true
	m.StatIn = in
	return m.StatOut, m.StatErr
}

// StatsAggregator implements the stats usecase for handler tests.
type StatsAggregator struct {
	Out port.StatsOutput
	Err error

	In     port.StatsInput
	Called bool
}

var _ port.StatsAggregator = (*StatsAggregator)(nil)

func (m *StatsAggregator) ComputeStats(ctx context.Context, in port.StatsInput) (port.StatsOutput, error) {
	m.Called = true
	m.In = in
	return m.Out, m.Err
}

// ThumbnailGenerator implements the thumbnail usecase for worker tests.
type ThumbnailGenerator struct {
	Err error

	MediaID string
	Called  bool
}

var _ port.ThumbnailGenerator = (*ThumbnailGenerator)(nil)

func (m *ThumbnailGenerator) GenerateThumbnail(ctx context.Context, mediaID string) error {
	m.Called = true
	m.MediaID = mediaID
	return m.Err
}
