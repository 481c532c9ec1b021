package queue

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/yoockh/jobboard/internal/models"
)

func TestStreamValuesRoundTrip(t *testing.T) {
	in := models.Notification{
		ID:            "n-1",
		Kind:          models.KindApplicationReceived,
		To:            "r@example.com",
		Subject:       "Job Application Received",
		Body:          "c@example.com applied for your job 'Backend Engineer'",
		ApplicationID: 42,
		CreatedAt:     time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	out, ok := decodeValues(encodeValues(in))
	assert.True(t, ok)
	assert.Equal(t, in, out)
}

func TestStreamValuesRejectMissingRecipient(t *testing.T) {
	_, ok := decodeValues(map[string]any{"id": "n-1", "subject": "x"})
	assert.False(t, ok)
}
