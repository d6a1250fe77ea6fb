package models

import (
	"time"

	"gorm.io/gorm"
)

// Roles recognized by the authorization middleware.
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// User corresponds to the users table.
type User struct {
	ID           int64          `json:"id" gorm:"primaryKey;autoIncrement"`
	Username     string         `json:"username" gorm:"column:username;unique;not null;size:255"`
	PasswordHash string         `json:"-" gorm:"column:password_hash;not null;size:255"` // never exposed through JSON
	Role         string         `json:"role" gorm:"column:role;not null;default:'member';size:50"`
	CreatedAt    time.Time      `json:"createdAt" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt    time.Time      `json:"updatedAt" gorm:"column:updated_at;not null;autoUpdateTime"`
	DeletedAt    gorm.DeletedAt `json:"deletedAt,omitempty" gorm:"index" swaggertype:"string" format:"date-time"`
}

// TableName specifies the database table for User.
func (User) TableName() string {
	return "users"
}
