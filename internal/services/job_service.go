package services

import (
	"context"

	"github.com/yoockh/jobboard/internal/models"
	pgrepo "github.com/yoockh/jobboard/internal/repositories/relational"
	"github.com/yoockh/jobboard/internal/utils"
)

type JobService interface {
	List(ctx context.Context) ([]models.Job, error)
	Post(ctx context.Context, identity, title, description string) (*models.Job, error)
}

type jobService struct {
	users pgrepo.UserRepository
	jobs  pgrepo.JobRepository
}

func NewJobService(users pgrepo.UserRepository, jobs pgrepo.JobRepository) JobService {
	return &jobService{users: users, jobs: jobs}
}

func (s *jobService) List(ctx context.Context) ([]models.Job, error) {
	const op = "JobService.List"

	rows, err := s.jobs.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list jobs", err)
	}
	return rows, nil
}

func (s *jobService) Post(ctx context.Context, identity, title, description string) (*models.Job, error) {
	const op = "JobService.Post"

	recruiter, err := requireRole(ctx, s.users, op, identity, models.RoleRecruiter)
	if err != nil {
		return nil, err
	}

	j := &models.Job{Title: title, Description: description, RecruiterID: recruiter.ID}
	if err := s.jobs.Create(ctx, j); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create job", err)
	}
	return j, nil
}
