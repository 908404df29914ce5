package worker

import (
	"context"
	"log"

	"github.com/chatrelay/media-gateway-go/internal/port"
	"github.com/chatrelay/media-gateway-go/internal/task"
)

// GenerateThumbnailHandler handles a generate-thumbnail task.
// It converts the incoming task payload to the input expected by
// the thumbnail service and delegates the call.
func GenerateThumbnailHandler(ctx context.Context, p task.GenerateThumbnailPayload, svc port.ThumbnailGenerator) error {
	if p.MediaID == "" {
		log.Printf("❌  Missing media ID in thumbnail task payload")
		return nil
	}

	if err := svc.GenerateThumbnail(ctx, p.MediaID); err != nil {
		log.Printf("❌  Failed to generate thumbnail for media #%s: %v", p.MediaID, err)
		return err
	}

	log.Printf("✅  Successfully generated thumbnail for media #%s", p.MediaID)
	return nil
}
