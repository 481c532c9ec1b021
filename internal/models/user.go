package models

type UserRole string

const (
	RoleRecruiter UserRole = "recruiter"
	RoleCandidate UserRole = "candidate"
)

// ParseRole accepts only the two roles the board knows about, matched
// exactly.
func ParseRole(s string) (UserRole, bool) {
	switch r := UserRole(s); r {
	case RoleRecruiter, RoleCandidate:
		return r, true
	default:
		return "", false
	}
}

type User struct {
	ID       uint     `gorm:"column:id;primaryKey" json:"id"`
	Email    string   `gorm:"column:email;size:255;uniqueIndex;not null" json:"email"`
	Password string   `gorm:"column:password;size:255;not null" json:"-"`
	Role     UserRole `gorm:"column:role;size:50;not null" json:"role"`
}

func (User) TableName() string { return "users" }
