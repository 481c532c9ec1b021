package queue

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yoockh/jobboard/internal/models"
)

func TestMemoryDeliversInOrder(t *testing.T) {
	q := NewMemory(4)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, q.Publish(ctx, models.Notification{ID: "1", To: "a@example.com"}))
	require.NoError(t, q.Publish(ctx, models.Notification{ID: "2", To: "b@example.com"}))

	got := make(chan string, 2)
	go func() {
		_ = q.Consume(ctx, "c-1", func(_ context.Context, n models.Notification) {
			got <- n.ID
		})
	}()

	for _, want := range []string{"1", "2"} {
		select {
		case id := <-got:
			assert.Equal(t, want, id)
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for notification")
		}
	}
}

func TestMemoryPublishRespectsContextWhenFull(t *testing.T) {
	q := NewMemory(1)
	require.NoError(t, q.Publish(context.Background(), models.Notification{ID: "1"}))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, q.Publish(ctx, models.Notification{ID: "2"}), context.DeadlineExceeded)
}

func TestMemoryClose(t *testing.T) {
	q := NewMemory(1)
	require.NoError(t, q.Close())
	require.NoError(t, q.Close())

	assert.ErrorIs(t, q.Publish(context.Background(), models.Notification{}), ErrClosed)
	assert.ErrorIs(t, q.Consume(context.Background(), "c", func(context.Context, models.Notification) {}), ErrClosed)
}

func TestMemoryCloseDrainsBuffered(t *testing.T) {
	q := NewMemory(4)
	ctx := context.Background()
	for _, id := range []string{"1", "2", "3"} {
		require.NoError(t, q.Publish(ctx, models.Notification{ID: id}))
	}
	require.NoError(t, q.Close())

	var got []string
	err := q.Consume(ctx, "c-1", func(_ context.Context, n models.Notification) {
		got = append(got, n.ID)
	})
	assert.ErrorIs(t, err, ErrClosed)
	assert.Equal(t, []string{"1", "2", "3"}, got)
}
