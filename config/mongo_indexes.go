package config

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const NotificationLogCollection = "notification_log"

func EnsureMongoIndexes(ctx context.Context, db *mongo.Database) error {
	if db == nil {
		return errors.New("mongo database is nil; call NewMongo first")
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	logs := db.Collection(NotificationLogCollection)
	_, err := logs.Indexes().CreateMany(ctx, []mongo.IndexModel{
		// TTL: expire at expires_at (must be Date)
		{
			Keys: bson.D{{Key: "expires_at", Value: 1}},
			Options: options.Index().
				SetName("ttl_expires_at").
				SetExpireAfterSeconds(0),
		},
		{
			Keys:    bson.D{{Key: "to", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("by_recipient_created"),
		},
		{
			Keys:    bson.D{{Key: "application_id", Value: 1}},
			Options: options.Index().SetName("by_application"),
		},
	})
	return err
}
