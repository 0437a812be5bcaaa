package models

import (
	"time"

	"gorm.io/gorm"
)

// TypeArticle represents a product category (e.g. "Laptop")
type TypeArticle struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"not null" json:"name" example:"Laptop"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
