package upload

import (
	"context"
	"errors"
	"strings"

	"github.com/chatrelay/media-gateway-go/internal/logger"
	"github.com/chatrelay/media-gateway-go/internal/port"
	media "github.com/chatrelay/media-gateway-go/internal/usecase/media"
)

type removerSrv struct {
	strg port.Storage
}

// compile-time check: *removerSrv must satisfy port.UploadRemover
var _ port.UploadRemover = (*removerSrv)(nil)

// NewUploadRemover constructs the upload deletion service.
func NewUploadRemover(strg port.Storage) port.UploadRemover {
	return &removerSrv{strg: strg}
}

// RemoveUpload deletes one upload. The tenant-prefix check runs before any
// store call: a key outside uploads/{tenant}/ is rejected outright.
func (s *removerSrv) RemoveUpload(ctx context.Context, in port.RemoveUploadInput) error {
	if !strings.HasPrefix(in.FilePath, media.UploadPrefix(in.TenantID)) {
		logger.Warnf(ctx, "tenant %q tried deleting %q outside its namespace", in.TenantID, in.FilePath)
		return ErrNotOwned
	}

	if err := s.strg.RemoveFile(ctx, in.FilePath); err != nil {
		if errors.Is(err, media.ErrObjectNotFound) {
			return ErrNotFound
		}
		return err
	}

	logger.Infof(ctx, "deleted upload %q for tenant %q", in.FilePath, in.TenantID)
	return nil
}
