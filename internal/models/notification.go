package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type NotificationKind string

const (
	KindApplicationReceived  NotificationKind = "application_received"  // to the recruiter
	KindApplicationSubmitted NotificationKind = "application_submitted" // to the candidate
)

// Notification is one queued email.
type Notification struct {
	ID            string           `json:"id"`
	Kind          NotificationKind `json:"kind"`
	To            string           `json:"to"`
	Subject       string           `json:"subject"`
	Body          string           `json:"body"`
	ApplicationID uint             `json:"application_id"`
	CreatedAt     time.Time        `json:"created_at"`
}

// NotificationLog is one delivery attempt, kept in mongo.
type NotificationLog struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	NotificationID string             `bson:"notification_id" json:"notification_id"`
	Kind           NotificationKind   `bson:"kind" json:"kind"`
	To             string             `bson:"to" json:"to"`
	Subject        string             `bson:"subject" json:"subject"`
	ApplicationID  uint               `bson:"application_id" json:"application_id"`
	Status         string             `bson:"status" json:"status"` // sent|failed
	Error          string             `bson:"error,omitempty" json:"error,omitempty"`
	Worker         string             `bson:"worker" json:"worker"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
	ExpiresAt      time.Time          `bson:"expires_at" json:"expires_at"` // for TTL index
}
