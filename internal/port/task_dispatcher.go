package port

import "context"

// TaskDispatcher enqueues background work.
type TaskDispatcher interface {
	EnqueueGenerateThumbnail(ctx context.Context, mediaID string) error
}
