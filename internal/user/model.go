package user

import (
	"time"
)

type Role string

const (
	RoleAdmin     Role = "admin"
	RoleEditor    Role = "editor"
	RoleMember    Role = "member"
	RoleModerator Role = "moderator"
)

// ValidRole reports whether r is one of the known roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleEditor, RoleMember, RoleModerator:
		return true
	}
	return false
}

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PasswordHash string    `gorm:"size:128;not null" json:"-"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	Role         Role      `gorm:"type:varchar(16);not null;default:'member'" json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Summary is the minimal creator projection attached to content rows.
type Summary struct {
	ID    uint   `gorm:"primaryKey" json:"-"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (Summary) TableName() string { return "users" }
