package port

import (
	"context"
	"time"

	"github.com/chatrelay/media-gateway-go/internal/model"
)

// MediaServer serves media bytes, populating the cache from the provider
// origin on first access.
type MediaServer interface {
	ServeMedia(ctx context.Context, in ServeMediaInput) (ServeMediaOutput, error)
}
type ServeMediaInput struct {
	ID   string
	Kind model.Kind
}
type ServeMediaOutput struct {
	// Processing is set instead of Body when an image is valid but not yet
	// cached and has no thumbnail fallback. Callers should answer 202.
	Processing bool

	Body         []byte
	ContentType  string
	CacheControl string
	// Attachment asks the client to download rather than render inline.
	Attachment bool
	FileName   string
}

// UploadIngestor validates and stores a direct upload.
type UploadIngestor interface {
	IngestUpload(ctx context.Context, in IngestUploadInput) (IngestUploadOutput, error)
}
type IngestUploadInput struct {
	TenantID string `json:"client_id" validate:"required"`
	Category string `json:"message_type" validate:"required"`
	FileName string `json:"file_name" validate:"required"`
	MimeType string `json:"file_type" validate:"required"`
	Body     []byte `json:"-"`
}
type IngestUploadOutput struct {
	FilePath  string `json:"filePath"`
	PublicURL string `json:"publicUrl"`
	FileName  string `json:"fileName"`
	FileSize  int64  `json:"fileSize"`
	FileType  string `json:"fileType"`
	PageCount int    `json:"pageCount,omitempty"`
}

// UploadRemover deletes a direct upload, enforcing tenant ownership.
type UploadRemover interface {
	RemoveUpload(ctx context.Context, in RemoveUploadInput) error
}
type RemoveUploadInput struct {
	TenantID string
	FilePath string
}

// UploadLister answers list and existence queries over a tenant's uploads.
type UploadLister interface {
	ListUploads(ctx context.Context, tenantID string) ([]UploadInfo, error)
	StatUpload(ctx context.Context, in RemoveUploadInput) (UploadInfo, error)
}
type UploadInfo struct {
	FilePath     string    `json:"filePath"`
	PublicURL    string    `json:"publicUrl"`
	SizeBytes    int64     `json:"fileSize"`
	ContentType  string    `json:"fileType,omitempty"`
	LastModified time.Time `json:"lastModified"`
}

// StatsAggregator reports a sampled cache-hit distribution. The numbers
// cover at most the sampled records, never the whole table.
type StatsAggregator interface {
	ComputeStats(ctx context.Context, in StatsInput) (StatsOutput, error)
}
type StatsInput struct {
	TenantID string
	Kind     *model.Kind
	Limit    int
}
type StatsOutput struct {
	SampledAt     time.Time          `json:"sampled_at"`
	Total         int                `json:"total"`
	ByKind        map[string]int     `json:"by_kind"`
	ByStorage     map[string]int     `json:"by_storage"`
	Percentages   map[string]float64 `json:"percentages"`
	SampleLimited bool               `json:"sample_limited"`
}

// ThumbnailGenerator backfills the inline thumbnail of a cached image.
type ThumbnailGenerator interface {
	GenerateThumbnail(ctx context.Context, mediaID string) error
}
