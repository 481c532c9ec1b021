package models

// Application links one candidate to one job. The same pair may appear many
// times.
type Application struct {
	ID          uint `gorm:"column:id;primaryKey" json:"id"`
	CandidateID uint `gorm:"column:candidate_id;not null;index" json:"candidate_id"`
	JobID       uint `gorm:"column:job_id;not null;index" json:"job_id"`

	Candidate *User `gorm:"foreignKey:CandidateID" json:"-"`
	Job       *Job  `gorm:"foreignKey:JobID" json:"-"`
}

func (Application) TableName() string { return "applications" }
