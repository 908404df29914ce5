package upload

import (
	"context"
	"errors"
	"strings"

	"github.com/chatrelay/media-gateway-go/internal/port"
	media "github.com/chatrelay/media-gateway-go/internal/usecase/media"
)

type listerSrv struct {
	strg port.Storage
}

// compile-time check: *listerSrv must satisfy port.UploadLister
var _ port.UploadLister = (*listerSrv)(nil)

// NewUploadLister constructs the read-only upload query service.
func NewUploadLister(strg port.Storage) port.UploadLister {
	return &listerSrv{strg: strg}
}

func (s *listerSrv) ListUploads(ctx context.Context, tenantID string) ([]port.UploadInfo, error) {
	files, err := s.strg.ListFiles(ctx, media.UploadPrefix(tenantID))
	if err != nil {
		return nil, err
	}

	out := make([]port.UploadInfo, 0, len(files))
	for _, f := range files {
		out = append(out, port.UploadInfo{
			FilePath:     f.Key,
			PublicURL:    s.strg.PublicURL(f.Key),
			SizeBytes:    f.SizeBytes,
			ContentType:  f.ContentType,
			LastModified: f.LastModified,
		})
	}
	return out, nil
}

func (s *listerSrv) StatUpload(ctx context.Context, in port.RemoveUploadInput) (port.UploadInfo, error) {
	if !strings.HasPrefix(in.FilePath, media.UploadPrefix(in.TenantID)) {
		return port.UploadInfo{}, ErrNotOwned
	}

	info, err := s.strg.StatFile(ctx, in.FilePath)
	if err != nil {
		if errors.Is(err, media.ErrObjectNotFound) {
			return port.UploadInfo{}, ErrNotFound
		}
		return port.UploadInfo{}, err
	}

	return port.UploadInfo{
		FilePath:     in.FilePath,
		PublicURL:    s.strg.PublicURL(in.FilePath),
		SizeBytes:    info.SizeBytes,
		ContentType:  info.ContentType,
		LastModified: info.LastModified,
	}, nil
}
