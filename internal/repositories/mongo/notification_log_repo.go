package mongo

import (
	"context"
	"time"

	"github.com/yoockh/jobboard/internal/models"
	"go.mongodb.org/mongo-driver/mongo"
)

type NotificationLogRepository interface {
	Insert(ctx context.Context, l *models.NotificationLog) error
}

type notificationLogRepo struct {
	col *mongo.Collection
	ttl time.Duration
}

func NewNotificationLogRepo(db *mongo.Database, collection string, ttl time.Duration) NotificationLogRepository {
	if ttl <= 0 {
		ttl = 30 * 24 * time.Hour
	}
	return &notificationLogRepo{col: db.Collection(collection), ttl: ttl}
}

func (r *notificationLogRepo) Insert(ctx context.Context, l *models.NotificationLog) error {
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now().UTC()
	}
	if l.ExpiresAt.IsZero() {
		l.ExpiresAt = l.CreatedAt.Add(r.ttl)
	}
	_, err := r.col.InsertOne(ctx, l)
	return err
}
