package media

import (
	"fmt"
	"time"

	"github.com/chatrelay/media-gateway-go/internal/model"
	"github.com/google/uuid"
)

// ObjectKey builds the canonical, tenant-scoped storage key. It is a pure
// function: the same inputs always produce the same key, which is what makes
// concurrent lock-free population safe.
func ObjectKey(tenantID string, kind model.Kind, mediaID, ext string) string {
	return fmt.Sprintf("%s/%s/%s%s", tenantID, StrategyFor(kind).Folder, mediaID, ext)
}

// LegacyObjectKey builds the old global-namespace key. Only reads of records
// written before tenant scoping should ever use it; all new records use
// ObjectKey.
func LegacyObjectKey(kind model.Kind, mediaID, ext string) string {
	return fmt.Sprintf("%s/%s%s", StrategyFor(kind).Folder, mediaID, ext)
}

// UploadObjectKey builds a collision-unlikely key for a direct upload.
// Uniqueness is probabilistic (timestamp plus random suffix), not guaranteed.
func UploadObjectKey(tenantID, category string, at time.Time, ext string) string {
	suffix := uuid.NewString()[:8]
	return fmt.Sprintf("uploads/%s/%s/%d_%s%s", tenantID, category, at.UnixMilli(), suffix, ext)
}

// UploadPrefix is the namespace every upload of a tenant lives under. It is
// the ownership boundary checked on delete.
func UploadPrefix(tenantID string) string {
	return fmt.Sprintf("uploads/%s/", tenantID)
}
