package mock

import (
	"context"

	"github.com/chatrelay/media-gateway-go/internal/port"
)

// Dispatcher implements the task dispatcher for tests.
type Dispatcher struct {
	Err error

	Called   bool
	MediaIDs []string
}

var _ port.TaskDispatcher = (*Dispatcher)(nil)

func (m *Dispatcher) EnqueueGenerateThumbnail(ctx context.Context, mediaID string) error {
	m.Called = true
	m.MediaIDs = append(m.MediaIDs, mediaID)
	return m.Err
}
