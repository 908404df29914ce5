package model

import "time"

// Kind is the media kind assigned by the messaging provider.
type Kind string

const (
	KindImage    Kind = "image"
	KindVideo    Kind = "video"
	KindAudio    Kind = "audio"
	KindDocument Kind = "document"
	KindSticker  Kind = "sticker"
)

// ParseKind maps a URL segment onto a Kind.
func ParseKind(s string) (Kind, bool) {
	switch Kind(s) {
	case KindImage, KindVideo, KindAudio, KindDocument, KindSticker:
		return Kind(s), true
	}
	return "", false
}

// Media is one attachment belonging to a provider message.
//
// Exactly one of OriginURL and CacheKey is set: OriginURL while the bytes
// still live only at the provider, CacheKey once they have been resolved
// into the object store. The transition is one-way, Origin → Cached.
type Media struct {
	ID          string    `json:"id"`
	TenantID    string    `json:"tenant_id"`
	Kind        Kind      `json:"kind"`
	MimeType    *string   `json:"mime_type,omitempty"`
	FileName    *string   `json:"file_name,omitempty"`
	SizeBytes   *int64    `json:"size_bytes,omitempty"`
	OriginURL   *string   `json:"origin_url,omitempty"`
	CacheKey    *string   `json:"cache_key,omitempty"`
	ContentHash *string   `json:"content_hash,omitempty"`
	Thumbnail   []byte    `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Resolved reports whether the media has already been populated into the cache.
func (m *Media) Resolved() bool {
	return m.CacheKey != nil && *m.CacheKey != ""
}

// Origin returns the origin URL while the media is still unresolved.
func (m *Media) Origin() (string, bool) {
	if m.OriginURL == nil || *m.OriginURL == "" {
		return "", false
	}
	return *m.OriginURL, true
}
