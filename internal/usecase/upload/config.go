package upload

import "github.com/chatrelay/media-gateway-go/internal/model"

const MaxFileSize = 16 * 1024 * 1024 // 16 MiB

var AllowedMimeTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/jpg":  true,
	"image/webp": true,
	"image/gif":  true,

	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"application/vnd.ms-excel": true,
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": true,
	"text/plain": true,
	"text/csv":   true,
}

func IsMimeTypeAllowed(mimeType string) bool {
	return AllowedMimeTypes[mimeType]
}

func IsImage(mimeType string) bool {
	switch mimeType {
	case "image/png", "image/jpeg", "image/jpg", "image/webp", "image/gif":
		return true
	}
	return false
}

func IsPdf(mimeType string) bool {
	return mimeType == "application/pdf"
}

// kindForMime picks the media kind whose extension table should resolve an
// upload's suffix. Only images and documents are accepted for direct upload.
func kindForMime(mimeType string) model.Kind {
	if IsImage(mimeType) {
		return model.KindImage
	}
	return model.KindDocument
}
