package models

import (
	"time"

	"gorm.io/gorm"
)

// Role names used throughout the API
const (
	RoleAdmin   = "Admin"
	RoleSupport = "Support"
	RoleUser    = "User"
)

// Role represents system roles
type Role struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"unique;not null" json:"name" example:"Admin"`
	Description string         `json:"description" example:"Administrator role"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
