package mariadb

import (
	"context"
	"database/sql"
	"log"

	"github.com/chatrelay/media-gateway-go/internal/model"
	"github.com/chatrelay/media-gateway-go/internal/port"
)

type MediaRepository struct {
	db *sql.DB
}

// compile-time check: *MediaRepository must satisfy port.MediaRepository
var _ port.MediaRepository = (*MediaRepository)(nil)

func NewMediaRepository(db *sql.DB) *MediaRepository {
	return &MediaRepository{db: db}
}

func (r *MediaRepository) Create(ctx context.Context, media *model.Media) error {
	log.Printf("creating database record for media #%s (%s)...", media.ID, media.Kind)

	const query = `
      INSERT INTO media_records
        (id, tenant_id, kind, mime_type, file_name, size_bytes, origin_url, cache_key, content_hash, thumbnail)
      VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `
	_, err := r.db.ExecContext(ctx, query,
		media.ID, media.TenantID, media.Kind,
		media.MimeType, media.FileName, media.SizeBytes,
		media.OriginURL, media.CacheKey, media.ContentHash,
		media.Thumbnail,
	)
	if err != nil {
		return err
	}

	return nil
}

func (r *MediaRepository) GetByID(ctx context.Context, id string) (*model.Media, error) {
	log.Printf("fetching media #%s from the database...", id)

	const query = `
      SELECT id, tenant_id, kind, mime_type, file_name, size_bytes, origin_url, cache_key, content_hash, thumbnail, created_at, updated_at
      FROM media_records
      WHERE id = ?
    `
	row := r.db.QueryRowContext(ctx, query, id)
	var media model.Media
	if err := row.Scan(
		&media.ID, &media.TenantID, &media.Kind,
		&media.MimeType, &media.FileName, &media.SizeBytes,
		&media.OriginURL, &media.CacheKey, &media.ContentHash,
		&media.Thumbnail, &media.CreatedAt, &media.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &media, nil
}

// MarkCached flips the pointer from Origin to Cached. The transition is
// one-way: origin_url is cleared in the same statement, and redundant calls
// from concurrent populators all write the identical key.
func (r *MediaRepository) MarkCached(ctx context.Context, id, cacheKey, contentHash string) error {
	log.Printf("marking media #%s cached at %q...", id, cacheKey)

	const query = `
      UPDATE media_records
      SET
        cache_key    = ?,
        content_hash = ?,
        origin_url   = NULL
      WHERE id = ?
    `
	_, err := r.db.ExecContext(ctx, query, cacheKey, contentHash, id)
	if err != nil {
		return err
	}

	return nil
}

func (r *MediaRepository) UpdateThumbnail(ctx context.Context, id string, thumbnail []byte) error {
	log.Printf("saving %d-byte thumbnail for media #%s...", len(thumbnail), id)

	const query = `
      UPDATE media_records
      SET thumbnail = ?
      WHERE id = ?
    `
	_, err := r.db.ExecContext(ctx, query, thumbnail, id)
	if err != nil {
		return err
	}

	return nil
}

func (r *MediaRepository) ListRecent(ctx context.Context, filter port.RecordFilter, limit int) ([]model.Media, error) {
	log.Printf("sampling up to %d recent media records...", limit)

	query := `
      SELECT id, tenant_id, kind, mime_type, file_name, size_bytes, origin_url, cache_key, content_hash, thumbnail, created_at, updated_at
      FROM media_records
    `
	var args []any
	var conds []string
	if filter.TenantID != "" {
		conds = append(conds, "tenant_id = ?")
		args = append(args, filter.TenantID)
	}
	if filter.Kind != nil {
		conds = append(conds, "kind = ?")
		args = append(args, *filter.Kind)
	}
	for i, c := range conds {
		if i == 0 {
			query += " WHERE " + c
		} else {
			query += " AND " + c
		}
	}
	query += " ORDER BY created_at DESC LIMIT ?"
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []model.Media
	for rows.Next() {
		var media model.Media
		if err := rows.Scan(
			&media.ID, &media.TenantID, &media.Kind,
			&media.MimeType, &media.FileName, &media.SizeBytes,
			&media.OriginURL, &media.CacheKey, &media.ContentHash,
			&media.Thumbnail, &media.CreatedAt, &media.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, media)
	}
	return out, rows.Err()
}
