package queue

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
	"github.com/yoockh/jobboard/internal/models"
)

const DefaultRabbitQueue = "notification_queue"

// RabbitMQ publishes JSON notifications to a durable queue. Each consumer
// gets its own channel.
type RabbitMQ struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
	log     *logrus.Logger

	done      chan struct{}
	closeOnce sync.Once
}

func NewRabbitMQ(conn *amqp.Connection, queueName string, log *logrus.Logger) (*RabbitMQ, error) {
	if conn == nil {
		return nil, errors.New("amqp connection is nil")
	}
	if queueName == "" {
		queueName = DefaultRabbitQueue
	}
	if log == nil {
		log = logrus.New()
	}

	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		queueName,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		_ = ch.Close()
		return nil, err
	}

	return &RabbitMQ{
		conn:    conn,
		channel: ch,
		queue:   queueName,
		log:     log,
		done:    make(chan struct{}),
	}, nil
}

func (q *RabbitMQ) Publish(ctx context.Context, n models.Notification) error {
	body, err := json.Marshal(n)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return q.channel.PublishWithContext(
		ctx,
		"",      // exchange
		q.queue, // routing key
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
}

func (q *RabbitMQ) Consume(ctx context.Context, consumer string, h Handler) error {
	ch, err := q.conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	if err := ch.Qos(1, 0, false); err != nil {
		return err
	}

	msgs, err := ch.Consume(
		q.queue,
		consumer,
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-q.done:
			return ErrClosed
		case d, ok := <-msgs:
			if !ok {
				return ErrClosed
			}
			var n models.Notification
			if err := json.Unmarshal(d.Body, &n); err != nil {
				q.log.WithError(err).Warn("dropping malformed notification")
			} else {
				h(ctx, n)
			}
			_ = d.Ack(false)
		}
	}
}

// Close closes the publishing channel and stops consumers. Unacked
// deliveries go back to the broker. The connection belongs to the caller.
func (q *RabbitMQ) Close() error {
	var err error
	q.closeOnce.Do(func() {
		close(q.done)
		err = q.channel.Close()
	})
	return err
}
