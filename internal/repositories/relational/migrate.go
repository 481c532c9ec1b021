package relational

import (
	"github.com/yoockh/jobboard/internal/models"
	"gorm.io/gorm"
)

// Migrate creates users, jobs and applications (in FK order) if missing.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{}, &models.Job{}, &models.Application{})
}
