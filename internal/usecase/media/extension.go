package media

import (
	"path"
	"strings"

	"github.com/chatrelay/media-gateway-go/internal/model"
)

// ResolveExtension picks the canonical file extension for a media item.
// The original file name wins when it carries one, then the MIME table of
// the kind, then the kind's default. It always returns a viewer-friendly
// value, never a generic binary suffix.
func ResolveExtension(mimeType, fileName *string, kind model.Kind) string {
	if fileName != nil {
		if ext := path.Ext(*fileName); ext != "" && ext != "." {
			return strings.ToLower(ext)
		}
	}

	strategy := StrategyFor(kind)
	if mimeType != nil {
		mt := strings.ToLower(strings.TrimSpace(*mimeType))
		if ext, ok := strategy.Extensions[mt]; ok {
			return ext
		}
		// strip any ";codecs=..." style parameters and retry
		if i := strings.Index(mt, ";"); i > 0 {
			if ext, ok := strategy.Extensions[strings.TrimSpace(mt[:i])]; ok {
				return ext
			}
		}
	}

	return strategy.DefaultExt
}
