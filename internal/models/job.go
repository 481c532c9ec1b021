package models

type Job struct {
	ID          uint   `gorm:"column:id;primaryKey" json:"id"`
	Title       string `gorm:"column:title;size:255;not null" json:"title"`
	Description string `gorm:"column:description;type:text;not null" json:"description"`
	RecruiterID uint   `gorm:"column:recruiter_id;not null;index" json:"recruiter_id"`

	// belongs-to, only declared so migrations emit the FK
	Recruiter *User `gorm:"foreignKey:RecruiterID" json:"-"`
}

func (Job) TableName() string { return "jobs" }
