package queue

import (
	"context"
	"errors"

	"github.com/yoockh/jobboard/internal/models"
)

var ErrClosed = errors.New("queue closed")

// Handler processes one notification. Queues acknowledge the message after
// the handler returns, whatever the outcome; there are no redeliveries.
type Handler func(ctx context.Context, n models.Notification)

type Queue interface {
	Publish(ctx context.Context, n models.Notification) error
	// Consume blocks, feeding messages to h until ctx is done or the queue
	// is closed. Several consumers may run at once with distinct names.
	Consume(ctx context.Context, consumer string, h Handler) error
	Close() error
}
