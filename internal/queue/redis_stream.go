package queue

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/yoockh/jobboard/internal/models"
)

const (
	DefaultStream = "notify:stream"
	DefaultGroup  = "notify-workers"
)

// RedisStream uses a Redis stream with one consumer group. Messages are
// acked after handling.
type RedisStream struct {
	rdb    *redis.Client
	stream string
	group  string
	log    *logrus.Logger
	block  time.Duration

	done      chan struct{}
	closeOnce sync.Once
}

func NewRedisStream(ctx context.Context, rdb *redis.Client, stream, group string, log *logrus.Logger) (*RedisStream, error) {
	if rdb == nil {
		return nil, errors.New("redis client is nil")
	}
	if stream == "" {
		stream = DefaultStream
	}
	if group == "" {
		group = DefaultGroup
	}
	if log == nil {
		log = logrus.New()
	}

	q := &RedisStream{
		rdb:    rdb,
		stream: stream,
		group:  group,
		log:    log,
		block:  5 * time.Second,
		done:   make(chan struct{}),
	}
	_ = rdb.XGroupCreateMkStream(ctx, stream, group, "0").Err() // ignore BUSYGROUP
	return q, nil
}

func (q *RedisStream) Publish(ctx context.Context, n models.Notification) error {
	select {
	case <-q.done:
		return ErrClosed
	default:
	}
	return q.rdb.XAdd(ctx, &redis.XAddArgs{
		Stream: q.stream,
		Values: encodeValues(n),
	}).Err()
}

func (q *RedisStream) Consume(ctx context.Context, consumer string, h Handler) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-q.done:
			return ErrClosed
		default:
		}

		res, err := q.rdb.XReadGroup(ctx, &redis.XReadGroupArgs{
			Group:    q.group,
			Consumer: consumer,
			Streams:  []string{q.stream, ">"},
			Count:    10,
			Block:    q.block,
		}).Result()

		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			if errors.Is(err, redis.ErrClosed) {
				return ErrClosed
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			q.log.WithError(err).WithField("consumer", consumer).Warn("xreadgroup failed")
			time.Sleep(500 * time.Millisecond)
			continue
		}

		for _, stream := range res {
			for _, msg := range stream.Messages {
				if n, ok := decodeValues(msg.Values); ok {
					h(ctx, n)
				} else {
					q.log.WithField("redis_id", msg.ID).Warn("dropping malformed notification")
				}
				_ = q.rdb.XAck(ctx, q.stream, q.group, msg.ID).Err()
			}
		}
	}
}

// Close stops consumers after their current read. The client stays open;
// its owner closes it.
func (q *RedisStream) Close() error {
	q.closeOnce.Do(func() { close(q.done) })
	return nil
}

func encodeValues(n models.Notification) map[string]any {
	return map[string]any{
		"id":             n.ID,
		"kind":           string(n.Kind),
		"to":             n.To,
		"subject":        n.Subject,
		"body":           n.Body,
		"application_id": strconv.FormatUint(uint64(n.ApplicationID), 10),
		"created_at":     n.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func decodeValues(v map[string]any) (models.Notification, bool) {
	getStr := func(k string) string {
		x, ok := v[k]
		if !ok || x == nil {
			return ""
		}
		s, _ := x.(string)
		return s
	}

	n := models.Notification{
		ID:      getStr("id"),
		Kind:    models.NotificationKind(getStr("kind")),
		To:      getStr("to"),
		Subject: getStr("subject"),
		Body:    getStr("body"),
	}
	if n.To == "" {
		return models.Notification{}, false
	}
	if id, err := strconv.ParseUint(getStr("application_id"), 10, 64); err == nil {
		n.ApplicationID = uint(id)
	}
	if ts, err := time.Parse(time.RFC3339Nano, getStr("created_at")); err == nil {
		n.CreatedAt = ts
	}
	return n, true
}
