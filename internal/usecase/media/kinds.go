package media

import (
	"time"

	"github.com/chatrelay/media-gateway-go/internal/model"
)

// Strategy drives the gateway for one media kind: how extensions resolve,
// where objects live, how long an origin fetch may take, and whether the
// degraded path may answer with a thumbnail or a 202.
type Strategy struct {
	Folder             string
	Extensions         map[string]string
	DefaultExt         string
	DefaultContentType string
	OriginTimeout      time.Duration
	// ThumbnailFallback marks kinds whose degraded response may be an
	// inline thumbnail or a "processing" marker instead of a plain 404.
	ThumbnailFallback bool
}

var strategies = map[model.Kind]Strategy{
	model.KindImage: {
		Folder: "images",
		Extensions: map[string]string{
			"image/jpeg": ".jpg",
			"image/jpg":  ".jpg",
			"image/png":  ".png",
			"image/webp": ".webp",
			"image/gif":  ".gif",
		},
		DefaultExt:         ".jpg",
		DefaultContentType: "image/jpeg",
		OriginTimeout:      30 * time.Second,
		ThumbnailFallback:  true,
	},
	model.KindVideo: {
		Folder: "videos",
		Extensions: map[string]string{
			"video/mp4":        ".mp4",
			"video/3gpp":       ".3gp",
			"video/quicktime":  ".mov",
			"video/webm":       ".webm",
			"video/x-matroska": ".mkv",
		},
		DefaultExt:         ".mp4",
		DefaultContentType: "video/mp4",
		OriginTimeout:      60 * time.Second,
	},
	model.KindAudio: {
		Folder: "audios",
		Extensions: map[string]string{
			"audio/ogg":              ".ogg",
			"audio/opus":             ".opus",
			"audio/mpeg":             ".mp3",
			"audio/mp4":              ".m4a",
			"audio/aac":              ".aac",
			"audio/amr":              ".amr",
			"audio/wav":              ".wav",
			"audio/x-wav":            ".wav",
			"audio/ogg; codecs=opus": ".ogg",
		},
		DefaultExt:         ".ogg",
		DefaultContentType: "audio/ogg",
		OriginTimeout:      30 * time.Second,
	},
	model.KindDocument: {
		Folder: "documents",
		Extensions: map[string]string{
			"application/pdf":    ".pdf",
			"application/msword": ".doc",
			"application/vnd.openxmlformats-officedocument.wordprocessingml.document": ".docx",
			"application/vnd.ms-excel": ".xls",
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":       ".xlsx",
			"application/vnd.ms-powerpoint":                                           ".ppt",
			"application/vnd.openxmlformats-officedocument.presentationml.presentation": ".pptx",
			"text/plain":      ".txt",
			"text/csv":        ".csv",
			"application/zip": ".zip",
		},
		DefaultExt:         ".pdf",
		DefaultContentType: "application/pdf",
		OriginTimeout:      60 * time.Second,
	},
	model.KindSticker: {
		Folder: "stickers",
		Extensions: map[string]string{
			"image/webp": ".webp",
			"image/png":  ".png",
		},
		DefaultExt:         ".webp",
		DefaultContentType: "image/webp",
		OriginTimeout:      30 * time.Second,
		ThumbnailFallback:  true,
	},
}

// StrategyFor returns the strategy for a kind. Unknown kinds fall back to
// the document strategy so callers always get a usable value.
func StrategyFor(kind model.Kind) Strategy {
	if s, ok := strategies[kind]; ok {
		return s
	}
	return strategies[model.KindDocument]
}
