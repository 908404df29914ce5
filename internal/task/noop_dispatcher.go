package task

import (
	"context"

	"github.com/chatrelay/media-gateway-go/internal/port"
)

type NoopDispatcher struct{}

var _ port.TaskDispatcher = (*NoopDispatcher)(nil)

func NewNoopDispatcher() *NoopDispatcher { return &NoopDispatcher{} }

func (d *NoopDispatcher) EnqueueGenerateThumbnail(ctx context.Context, mediaID string) error {
	return nil
}
