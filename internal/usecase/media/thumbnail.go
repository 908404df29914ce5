package media

import (
	"bytes"
	"database/sql"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
	"golang.org/x/net/context"

	"github.com/chatrelay/media-gateway-go/internal/logger"
	"github.com/chatrelay/media-gateway-go/internal/model"
	"github.com/chatrelay/media-gateway-go/internal/port"
)

const thumbnailMaxSize = 256

type thumbnailSrv struct {
	repo port.MediaRepository
	strg port.Storage
}

// compile-time check: *thumbnailSrv must satisfy port.ThumbnailGenerator
var _ port.ThumbnailGenerator = (*thumbnailSrv)(nil)

// NewThumbnailGenerator constructs the worker-side service that backfills
// the inline thumbnail of an already cached image.
func NewThumbnailGenerator(repo port.MediaRepository, strg port.Storage) port.ThumbnailGenerator {
	return &thumbnailSrv{repo: repo, strg: strg}
}

func (s *thumbnailSrv) GenerateThumbnail(ctx context.Context, mediaID string) error {
	rec, err := s.repo.GetByID(ctx, mediaID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}

	if !StrategyFor(rec.Kind).ThumbnailFallback {
		logger.Infof(ctx, "media #%s is %q, nothing to thumbnail", rec.ID, rec.Kind)
		return nil
	}
	if len(rec.Thumbnail) > 0 {
		return nil
	}
	if !rec.Resolved() {
		// Retried by the task queue once the gateway has populated the cache.
		return fmt.Errorf("media %q is not cached yet", rec.ID)
	}

	reader, err := s.strg.GetFile(ctx, *rec.CacheKey)
	if err != nil {
		return err
	}
	defer func(reader io.ReadSeekCloser) {
		_ = reader.Close()
	}(reader)

	img, _, err := image.Decode(reader)
	if err != nil {
		return fmt.Errorf("decoding cached image for media %q: %w", rec.ID, err)
	}

	thumb := imaging.Thumbnail(img, thumbnailMaxSize, thumbnailMaxSize, imaging.Lanczos)

	buf := &bytes.Buffer{}
	if rec.Kind == model.KindSticker {
		if err := webp.Encode(buf, thumb, &webp.Options{Quality: 80}); err != nil {
			return fmt.Errorf("encoding webp thumbnail for media %q: %w", rec.ID, err)
		}
	} else {
		if err := imaging.Encode(buf, thumb, imaging.JPEG, imaging.JPEGQuality(80)); err != nil {
			return fmt.Errorf("encoding jpeg thumbnail for media %q: %w", rec.ID, err)
		}
	}

	if err := s.repo.UpdateThumbnail(ctx, rec.ID, buf.Bytes()); err != nil {
		return fmt.Errorf("saving thumbnail for media %q: %w", rec.ID, err)
	}

	logger.Infof(ctx, "generated %d-byte thumbnail for media #%s", buf.Len(), rec.ID)
	return nil
}
