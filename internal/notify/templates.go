package notify

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/yoockh/jobboard/internal/models"
)

const (
	SubjectApplicationReceived  = "Job Application Received"
	SubjectApplicationSubmitted = "Application Submitted"
)

// ApplicationNotifications builds the recruiter email and the candidate
// email for one application, in that order.
func ApplicationNotifications(app *models.Application, job *models.Job, recruiterEmail, candidateEmail string) []models.Notification {
	now := time.Now().UTC()
	return []models.Notification{
		{
			ID:            uuid.NewString(),
			Kind:          models.KindApplicationReceived,
			To:            recruiterEmail,
			Subject:       SubjectApplicationReceived,
			Body:          fmt.Sprintf("%s applied for your job '%s'", candidateEmail, job.Title),
			ApplicationID: app.ID,
			CreatedAt:     now,
		},
		{
			ID:            uuid.NewString(),
			Kind:          models.KindApplicationSubmitted,
			To:            candidateEmail,
			Subject:       SubjectApplicationSubmitted,
			Body:          fmt.Sprintf("You applied for the job '%s'", job.Title),
			ApplicationID: app.ID,
			CreatedAt:     now,
		},
	}
}
