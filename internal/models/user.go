package models

import (
	"time"
)

// Role values for User.Role. The first account ever registered becomes
// RoleAdmin; everyone after that is a RoleMember.
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:250;not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;size:250;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"` // bcrypt hash
	Role      string    `gorm:"size:20;default:'member';not null" json:"role"`
	Avatar    string    `gorm:"default:✒️" json:"avatar"` // emoji avatar
	CreatedAt time.Time `json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
