package notify

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/wneessen/go-mail"
	"github.com/yoockh/jobboard/internal/models"
)

// Sender delivers a single notification.
type Sender interface {
	Send(ctx context.Context, n models.Notification) error
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	Timeout  time.Duration
}

type SMTPSender struct {
	cfg SMTPConfig
}

func NewSMTPSender(cfg SMTPConfig) (*SMTPSender, error) {
	if cfg.Host == "" {
		return nil, errors.New("smtp host is empty")
	}
	if cfg.Port <= 0 {
		cfg.Port = 587
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	return &SMTPSender{cfg: cfg}, nil
}

func (s *SMTPSender) Send(ctx context.Context, n models.Notification) error {
	m := mail.NewMsg()
	if err := m.From(s.cfg.From); err != nil {
		return err
	}
	if err := m.To(n.To); err != nil {
		return err
	}
	m.Subject(n.Subject)
	m.SetBodyString(mail.TypeTextPlain, n.Body)

	opts := []mail.Option{
		mail.WithPort(s.cfg.Port),
		mail.WithTimeout(s.cfg.Timeout),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if s.cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.cfg.Username),
			mail.WithPassword(s.cfg.Password),
		)
	}

	c, err := mail.NewClient(s.cfg.Host, opts...)
	if err != nil {
		return err
	}
	return c.DialAndSendWithContext(ctx, m)
}

// LogSender only writes the notification to the log. Used when no SMTP
// relay is configured.
type LogSender struct {
	Logger *logrus.Logger
}

func (s LogSender) Send(_ context.Context, n models.Notification) error {
	s.Logger.WithFields(logrus.Fields{
		"notification_id": n.ID,
		"kind":            n.Kind,
		"to":              n.To,
		"subject":         n.Subject,
	}).Info("notification (smtp disabled)")
	return nil
}
