package models

import (
	"time"

	"gorm.io/gorm"
)

// State represents a condition label attached to an assignment (e.g. "New Product")
type State struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Status    string         `gorm:"not null" json:"status" example:"New Product"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
