package queue

import (
	"context"
	"sync"

	"github.com/yoockh/jobboard/internal/models"
)

// Memory is an in-process queue backed by a buffered channel. Messages are
// lost on restart. Close stops intake; consumers then finish what is
// buffered before returning ErrClosed.
type Memory struct {
	ch   chan models.Notification
	done chan struct{}

	mu     sync.RWMutex
	closed bool
}

func NewMemory(size int) *Memory {
	if size <= 0 {
		size = 256
	}
	return &Memory{
		ch:   make(chan models.Notification, size),
		done: make(chan struct{}),
	}
}

// Publish blocks while the buffer is full, bounded by ctx.
func (q *Memory) Publish(ctx context.Context, n models.Notification) error {
	q.mu.RLock()
	defer q.mu.RUnlock()
	if q.closed {
		return ErrClosed
	}

	select {
	case q.ch <- n:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (q *Memory) Consume(ctx context.Context, _ string, h Handler) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case n := <-q.ch:
			h(ctx, n)
		case <-q.done:
			return q.drain(ctx, h)
		}
	}
}

func (q *Memory) drain(ctx context.Context, h Handler) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		select {
		case n := <-q.ch:
			h(ctx, n)
		default:
			return ErrClosed
		}
	}
}

func (q *Memory) Close() error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if !q.closed {
		q.closed = true
		close(q.done)
	}
	return nil
}
