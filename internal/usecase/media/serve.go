package media

import (
	"bytes"
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"github.com/chatrelay/media-gateway-go/internal/logger"
	"github.com/chatrelay/media-gateway-go/internal/model"
	"github.com/chatrelay/media-gateway-go/internal/port"
)

const (
	// Cached objects are content-addressed, so a hit is immutable.
	immutableCacheControl = "public, max-age=31536000"
	// Thumbnails are a stand-in until the real bytes arrive; keep them short-lived.
	thumbnailCacheControl = "public, max-age=3600"

	thumbnailContentType = "image/jpeg"
)

type mediaServerSrv struct {
	repo       port.MediaRepository
	strg       port.Storage
	origin     port.OriginFetcher
	dispatcher port.TaskDispatcher
}

// compile-time check: *mediaServerSrv must satisfy port.MediaServer
var _ port.MediaServer = (*mediaServerSrv)(nil)

// NewMediaServer constructs the gateway orchestrator. It serves from the
// object store when possible, lazily populates it from the provider origin
// otherwise, and falls back to a degraded response when neither can answer.
func NewMediaServer(repo port.MediaRepository, strg port.Storage, origin port.OriginFetcher, dispatcher port.TaskDispatcher) port.MediaServer {
	return &mediaServerSrv{repo: repo, strg: strg, origin: origin, dispatcher: dispatcher}
}

func (s *mediaServerSrv) ServeMedia(ctx context.Context, in port.ServeMediaInput) (port.ServeMediaOutput, error) {
	rec, err := s.repo.GetByID(ctx, in.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return port.ServeMediaOutput{}, ErrNotFound
		}
		return port.ServeMediaOutput{}, fmt.Errorf("loading record for media %q: %w", in.ID, err)
	}
	if rec.Kind != in.Kind {
		logger.Warnf(ctx, "media #%s is %q, requested as %q", rec.ID, rec.Kind, in.Kind)
		return port.ServeMediaOutput{}, ErrNotFound
	}

	strategy := StrategyFor(rec.Kind)
	ext := ResolveExtension(rec.MimeType, rec.FileName, rec.Kind)
	key := ObjectKey(rec.TenantID, rec.Kind, rec.ID, ext)

	body, contentType, hit, err := s.tryCache(ctx, rec, key)
	if err != nil {
		return port.ServeMediaOutput{}, err
	}
	if hit {
		return s.respond(rec, strategy, ext, body, contentType, immutableCacheControl), nil
	}

	originURL, ok := rec.Origin()
	if !ok {
		// Resolved record whose object is gone, or a record that never had
		// an origin. Nothing left to fetch.
		logger.Warnf(ctx, "cache miss for media #%s (%s) with no usable origin", rec.ID, rec.Kind)
		return s.degraded(ctx, rec, strategy)
	}

	res, err := s.origin.Fetch(ctx, originURL, strategy.OriginTimeout)
	if err != nil {
		logger.Warnf(ctx, "origin fetch failed for media #%s (%s): %v", rec.ID, rec.Kind, err)
		return s.degraded(ctx, rec, strategy)
	}

	contentType = res.ContentType
	if contentType == "" {
		if rec.MimeType != nil && *rec.MimeType != "" {
			contentType = *rec.MimeType
		} else {
			contentType = strategy.DefaultContentType
		}
	}

	if err := s.populate(ctx, rec, key, res.Body, contentType); err != nil {
		return port.ServeMediaOutput{}, err
	}

	return s.respond(rec, strategy, ext, res.Body, contentType, immutableCacheControl), nil
}

// tryCache reads the object at key if present. A hit on a record whose
// pointer is still Origin heals the pointer, best-effort.
func (s *mediaServerSrv) tryCache(ctx context.Context, rec *model.Media, key string) ([]byte, string, bool, error) {
	info, err := s.strg.StatFile(ctx, key)
	if errors.Is(err, ErrObjectNotFound) {
		return nil, "", false, nil
	}
	if err != nil {
		return nil, "", false, fmt.Errorf("checking cache for media %q: %w", rec.ID, err)
	}

	reader, err := s.strg.GetFile(ctx, key)
	if errors.Is(err, ErrObjectNotFound) {
		// Deleted between stat and read; treat it as a plain miss.
		return nil, "", false, nil
	}
	if err != nil {
		return nil, "", false, fmt.Errorf("reading cache for media %q: %w", rec.ID, err)
	}
	defer func(reader io.ReadSeekCloser) {
		_ = reader.Close()
	}(reader)

	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, "", false, fmt.Errorf("%w: reading object %q: %v", ErrInternal, key, err)
	}

	if !rec.Resolved() {
		// A crash between upload and record update leaves the object cached
		// with the pointer still Origin. Heal it now.
		if err := s.repo.MarkCached(ctx, rec.ID, key, hashBytes(body)); err != nil {
			logger.Warnf(ctx, "failed healing pointer for media #%s: %v", rec.ID, err)
		} else {
			logger.Infof(ctx, "healed pointer for media #%s to key %q", rec.ID, key)
		}
	}

	return body, info.ContentType, true, nil
}

// populate writes the fetched bytes into the store and transitions the
// record pointer. Concurrent populators converge on the same key, so the
// overwrite is idempotent; a content-hash mismatch with a previous populate
// is only logged, never blocked on.
func (s *mediaServerSrv) populate(ctx context.Context, rec *model.Media, key string, body []byte, contentType string) error {
	hash := hashBytes(body)
	if rec.ContentHash != nil && *rec.ContentHash != "" && *rec.ContentHash != hash {
		logger.Warnf(ctx, "origin bytes for media #%s changed across fetches (had %s, got %s)", rec.ID, *rec.ContentHash, hash)
	}

	opts := map[string]string{"Content-Type": contentType}
	if err := s.strg.SaveFile(ctx, key, bytes.NewReader(body), int64(len(body)), opts); err != nil {
		return fmt.Errorf("storing media %q at %q: %w", rec.ID, key, err)
	}

	if err := s.repo.MarkCached(ctx, rec.ID, key, hash); err != nil {
		// The object is cached either way; the next read heals the pointer.
		logger.Warnf(ctx, "failed marking media #%s cached: %v", rec.ID, err)
	}

	if s.dispatcher != nil && StrategyFor(rec.Kind).ThumbnailFallback && len(rec.Thumbnail) == 0 {
		if err := s.dispatcher.EnqueueGenerateThumbnail(ctx, rec.ID); err != nil {
			logger.Warnf(ctx, "failed enqueueing thumbnail task for media #%s: %v", rec.ID, err)
		}
	}

	logger.Infof(ctx, "populated cache for media #%s (%s) at %q", rec.ID, rec.Kind, key)
	return nil
}

// degraded applies the kind-specific fallback: thumbnail, "processing", or
// not-found. Origin failures never surface as 5xx.
func (s *mediaServerSrv) degraded(ctx context.Context, rec *model.Media, strategy Strategy) (port.ServeMediaOutput, error) {
	if strategy.ThumbnailFallback {
		if len(rec.Thumbnail) > 0 {
			contentType := thumbnailContentType
			if rec.Kind == model.KindSticker {
				contentType = "image/webp"
			}
			return port.ServeMediaOutput{
				Body:         rec.Thumbnail,
				ContentType:  contentType,
				CacheControl: thumbnailCacheControl,
			}, nil
		}
		if !rec.Resolved() {
			return port.ServeMediaOutput{Processing: true}, nil
		}
	}
	return port.ServeMediaOutput{}, ErrNotFound
}

func (s *mediaServerSrv) respond(rec *model.Media, strategy Strategy, ext string, body []byte, contentType, cacheControl string) port.ServeMediaOutput {
	if contentType == "" {
		contentType = strategy.DefaultContentType
	}

	out := port.ServeMediaOutput{
		Body:         body,
		ContentType:  contentType,
		CacheControl: cacheControl,
	}
	if rec.Kind == model.KindDocument {
		out.Attachment = true
		if rec.FileName != nil && *rec.FileName != "" {
			out.FileName = *rec.FileName
		} else {
			out.FileName = rec.ID + ext
		}
	}
	return out
}

func hashBytes(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}
