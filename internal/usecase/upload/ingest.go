package upload

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/chatrelay/media-gateway-go/internal/logger"
	"github.com/chatrelay/media-gateway-go/internal/port"
	media "github.com/chatrelay/media-gateway-go/internal/usecase/media"
	"github.com/chatrelay/media-gateway-go/internal/validation"
	"github.com/ledongthuc/pdf"
)

type ingestorSrv struct {
	strg port.Storage
	now  func() time.Time
}

// compile-time check: *ingestorSrv must satisfy port.UploadIngestor
var _ port.UploadIngestor = (*ingestorSrv)(nil)

// NewUploadIngestor constructs the direct-upload service. Uploads bypass the
// origin fetcher entirely and land under the uploads/ namespace of the same
// bucket the gateway serves from.
func NewUploadIngestor(strg port.Storage, now func() time.Time) port.UploadIngestor {
	if now == nil {
		now = time.Now
	}
	return &ingestorSrv{strg: strg, now: now}
}

func (s *ingestorSrv) IngestUpload(ctx context.Context, in port.IngestUploadInput) (port.IngestUploadOutput, error) {
	// all validation happens before any store call
	if err := validation.ValidateStruct(in); err != nil {
		return port.IngestUploadOutput{}, &ValidationError{Reason: err.Error()}
	}
	if len(in.Body) == 0 {
		return port.IngestUploadOutput{}, &ValidationError{Reason: "file is empty"}
	}
	if len(in.Body) > MaxFileSize {
		return port.IngestUploadOutput{}, &ValidationError{
			Reason: fmt.Sprintf("file too large: %d bytes (max size: %d bytes)", len(in.Body), MaxFileSize),
		}
	}
	if !IsMimeTypeAllowed(in.MimeType) {
		return port.IngestUploadOutput{}, &ValidationError{
			Reason: fmt.Sprintf("unsupported mime-type %q", in.MimeType),
		}
	}

	ext := media.ResolveExtension(&in.MimeType, &in.FileName, kindForMime(in.MimeType))
	key := media.UploadObjectKey(in.TenantID, in.Category, s.now().UTC(), ext)

	size := int64(len(in.Body))
	opts := map[string]string{"Content-Type": in.MimeType}
	if err := s.strg.SaveFile(ctx, key, bytes.NewReader(in.Body), size, opts); err != nil {
		return port.IngestUploadOutput{}, fmt.Errorf("storing upload at %q: %w", key, err)
	}

	out := port.IngestUploadOutput{
		FilePath:  key,
		PublicURL: s.strg.PublicURL(key),
		FileName:  in.FileName,
		FileSize:  size,
		FileType:  in.MimeType,
	}

	if IsPdf(in.MimeType) {
		if pages, err := pdfPageCount(in.Body); err != nil {
			logger.Warnf(ctx, "could not read page count of upload %q: %v", key, err)
		} else {
			out.PageCount = pages
		}
	}

	logger.Infof(ctx, "ingested %d-byte upload at %q for tenant %q", size, key, in.TenantID)
	return out, nil
}

func pdfPageCount(data []byte) (int, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return 0, fmt.Errorf("error opening pdf reader: %w", err)
	}
	return reader.NumPage(), nil
}
