package relational

import (
	"context"
	"errors"

	"github.com/yoockh/jobboard/internal/models"
	"github.com/yoockh/jobboard/internal/utils"
	"gorm.io/gorm"
)

type JobRepository interface {
	Create(ctx context.Context, j *models.Job) error
	List(ctx context.Context) ([]models.Job, error)
	GetByID(ctx context.Context, id uint) (*models.Job, error)
	GetOwned(ctx context.Context, id, recruiterID uint) (*models.Job, error)
}

type jobRepo struct {
	db *gorm.DB
}

func NewJobRepo(db *gorm.DB) JobRepository {
	return &jobRepo{db: db}
}

func (r *jobRepo) Create(ctx context.Context, j *models.Job) error {
	return r.db.WithContext(ctx).Create(j).Error
}

func (r *jobRepo) List(ctx context.Context) ([]models.Job, error) {
	rows := []models.Job{}
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&rows).Error
	return rows, err
}

func (r *jobRepo) GetByID(ctx context.Context, id uint) (*models.Job, error) {
	var j models.Job
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&j).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &j, nil
}

// GetOwned finds a job only if recruiterID posted it; other recruiters'
// jobs are reported as not found.
func (r *jobRepo) GetOwned(ctx context.Context, id, recruiterID uint) (*models.Job, error) {
	var j models.Job
	err := r.db.WithContext(ctx).
		Where("id = ? AND recruiter_id = ?", id, recruiterID).
		Take(&j).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &j, nil
}
