package workers

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yoockh/jobboard/internal/models"
	"github.com/yoockh/jobboard/internal/notify"
	"github.com/yoockh/jobboard/internal/queue"
	mongorepo "github.com/yoockh/jobboard/internal/repositories/mongo"
)

// NotificationWorkerPool drains the notification queue and sends mail.
// A failed send is logged (and recorded when Deliveries is set) and dropped.
type NotificationWorkerPool struct {
	Queue      queue.Queue
	Sender     notify.Sender
	Deliveries mongorepo.NotificationLogRepository // optional
	NumWorkers int
	Logger     *logrus.Logger

	ConsumerPrefix string
	SendTimeout    time.Duration

	wg sync.WaitGroup
}

func (p *NotificationWorkerPool) Start(ctx context.Context) error {
	if p.Queue == nil || p.Sender == nil {
		return errors.New("NotificationWorkerPool missing dependency: Queue/Sender must be set")
	}
	if p.ConsumerPrefix == "" {
		p.ConsumerPrefix = "notify"
	}
	if p.NumWorkers <= 0 {
		p.NumWorkers = 2
	}
	if p.SendTimeout <= 0 {
		p.SendTimeout = 30 * time.Second
	}
	if p.Logger == nil {
		p.Logger = logrus.New()
	}

	for i := 0; i < p.NumWorkers; i++ {
		consumer := p.ConsumerPrefix + "-" + strconv.Itoa(i+1)
		p.wg.Add(1)
		go p.runConsumer(ctx, consumer)
	}
	return nil
}

// Wait blocks until every consumer has returned.
func (p *NotificationWorkerPool) Wait() { p.wg.Wait() }

// WaitContext is Wait bounded by ctx. Used at shutdown after the queue is
// closed, so consumers can finish buffered notifications.
func (p *NotificationWorkerPool) WaitContext(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *NotificationWorkerPool) runConsumer(ctx context.Context, consumer string) {
	defer p.wg.Done()

	handle := func(ctx context.Context, n models.Notification) {
		p.deliver(ctx, consumer, n)
	}

	for {
		err := p.Queue.Consume(ctx, consumer, handle)
		if ctx.Err() != nil || errors.Is(err, queue.ErrClosed) {
			return
		}
		p.Logger.WithError(err).WithField("consumer", consumer).Warn("consumer stopped, restarting")
		select {
		case <-ctx.Done():
			return
		case <-time.After(time.Second):
		}
	}
}

func (p *NotificationWorkerPool) deliver(ctx context.Context, consumer string, n models.Notification) {
	log := p.Logger.WithFields(logrus.Fields{
		"consumer":        consumer,
		"notification_id": n.ID,
		"kind":            n.Kind,
		"to":              n.To,
		"application_id":  n.ApplicationID,
	})

	sendCtx, cancel := context.WithTimeout(ctx, p.SendTimeout)
	err := p.Sender.Send(sendCtx, n)
	cancel()

	entry := &models.NotificationLog{
		NotificationID: n.ID,
		Kind:           n.Kind,
		To:             n.To,
		Subject:        n.Subject,
		ApplicationID:  n.ApplicationID,
		Status:         "sent",
		Worker:         consumer,
		CreatedAt:      time.Now().UTC(),
	}
	if err != nil {
		log.WithError(err).Error("error sending email")
		entry.Status = "failed"
		entry.Error = err.Error()
	} else {
		log.Info("notification sent")
	}

	if p.Deliveries != nil {
		if err := p.Deliveries.Insert(ctx, entry); err != nil {
			log.WithError(err).Warn("failed to record delivery")
		}
	}
}
