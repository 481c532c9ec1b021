package services

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yoockh/jobboard/internal/models"
	"github.com/yoockh/jobboard/internal/notify"
	pgrepo "github.com/yoockh/jobboard/internal/repositories/relational"
	"github.com/yoockh/jobboard/internal/utils"
)

// NotificationPublisher hands a notification to the delivery workers.
type NotificationPublisher interface {
	Publish(ctx context.Context, n models.Notification) error
}

type ApplicationService interface {
	Apply(ctx context.Context, identity string, jobID uint) (*models.Application, error)
	ListApplications(ctx context.Context, identity string) ([]models.Job, error)
	ListApplicants(ctx context.Context, identity string, jobID uint) ([]string, error)
}

type applicationService struct {
	users  pgrepo.UserRepository
	jobs   pgrepo.JobRepository
	apps   pgrepo.ApplicationRepository
	notify NotificationPublisher
	log    *logrus.Logger
}

func NewApplicationService(users pgrepo.UserRepository, jobs pgrepo.JobRepository, apps pgrepo.ApplicationRepository, pub NotificationPublisher, log *logrus.Logger) ApplicationService {
	if log == nil {
		log = logrus.New()
	}
	return &applicationService{users: users, jobs: jobs, apps: apps, notify: pub, log: log}
}

func (s *applicationService) Apply(ctx context.Context, identity string, jobID uint) (*models.Application, error) {
	const op = "ApplicationService.Apply"

	candidate, err := requireRole(ctx, s.users, op, identity, models.RoleCandidate)
	if err != nil {
		return nil, err
	}

	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "Job not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get job", err)
	}

	app := &models.Application{CandidateID: candidate.ID, JobID: job.ID}
	if err := s.apps.Create(ctx, app); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create application", err)
	}

	s.enqueueNotifications(ctx, app, job, candidate)
	return app, nil
}

// enqueueNotifications never fails the request: the application is already
// committed, so every error here is only logged.
func (s *applicationService) enqueueNotifications(ctx context.Context, app *models.Application, job *models.Job, candidate *models.User) {
	log := s.log.WithFields(logrus.Fields{
		"application_id": app.ID,
		"job_id":         job.ID,
	})

	if s.notify == nil {
		return
	}

	recruiter, err := s.users.GetByID(ctx, job.RecruiterID)
	if err != nil {
		log.WithError(err).Error("failed to load recruiter for notification")
		return
	}

	// outlive the request; the workers send after the response is written
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()

	for _, n := range notify.ApplicationNotifications(app, job, recruiter.Email, candidate.Email) {
		if err := s.notify.Publish(pubCtx, n); err != nil {
			log.WithError(err).WithField("to", n.To).Error("failed to enqueue notification")
		}
	}
}

func (s *applicationService) ListApplications(ctx context.Context, identity string) ([]models.Job, error) {
	const op = "ApplicationService.ListApplications"

	candidate, err := requireRole(ctx, s.users, op, identity, models.RoleCandidate)
	if err != nil {
		return nil, err
	}

	rows, err := s.apps.JobsByCandidate(ctx, candidate.ID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list applications", err)
	}
	return rows, nil
}

func (s *applicationService) ListApplicants(ctx context.Context, identity string, jobID uint) ([]string, error) {
	const op = "ApplicationService.ListApplicants"

	recruiter, err := requireRole(ctx, s.users, op, identity, models.RoleRecruiter)
	if err != nil {
		return nil, err
	}

	if _, err := s.jobs.GetOwned(ctx, jobID, recruiter.ID); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "Job not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get job", err)
	}

	emails, err := s.apps.ApplicantEmails(ctx, jobID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list applicants", err)
	}
	return emails, nil
}
