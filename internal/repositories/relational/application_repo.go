package relational

import (
	"context"

	"github.com/yoockh/jobboard/internal/models"
	"gorm.io/gorm"
)

type ApplicationRepository interface {
	Create(ctx context.Context, a *models.Application) error
	JobsByCandidate(ctx context.Context, candidateID uint) ([]models.Job, error)
	ApplicantEmails(ctx context.Context, jobID uint) ([]string, error)
}

type applicationRepo struct {
	db *gorm.DB
}

func NewApplicationRepo(db *gorm.DB) ApplicationRepository {
	return &applicationRepo{db: db}
}

func (r *applicationRepo) Create(ctx context.Context, a *models.Application) error {
	return r.db.WithContext(ctx).Create(a).Error
}

// JobsByCandidate returns one job per application, in application order.
// Repeat applications yield repeat jobs.
func (r *applicationRepo) JobsByCandidate(ctx context.Context, candidateID uint) ([]models.Job, error) {
	rows := []models.Job{}
	err := r.db.WithContext(ctx).
		Table("applications").
		Select("jobs.id, jobs.title, jobs.description, jobs.recruiter_id").
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Where("applications.candidate_id = ?", candidateID).
		Order("applications.id ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *applicationRepo) ApplicantEmails(ctx context.Context, jobID uint) ([]string, error) {
	emails := []string{}
	err := r.db.WithContext(ctx).
		Table("applications").
		Joins("JOIN users ON users.id = applications.candidate_id").
		Where("applications.job_id = ?", jobID).
		Order("applications.id ASC").
		Pluck("users.email", &emails).Error
	return emails, err
}
