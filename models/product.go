package models

import (
	"time"

	"gorm.io/gorm"
)

// Product represents a tracked device in the catalog
type Product struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"not null" json:"name" example:"ThinkPad X1 Carbon"`
	SerialNumber string `gorm:"not null" json:"serialNumber" example:"PF-3XK2M9"`
	TypeID       uint   `gorm:"not null" json:"typeId"`
	SupplierID   uint   `gorm:"not null" json:"supplierId"`
	// Denormalized pointer to the current assignee; the assignments table is authoritative
	AssignedUserID *uint          `json:"assignedUserId"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationship
	TypeArticle  TypeArticle `gorm:"foreignKey:TypeID" json:"typeArticle"`
	Supplier     Supplier    `gorm:"foreignKey:SupplierID" json:"supplier"`
	AssignedUser *User       `gorm:"foreignKey:AssignedUserID" json:"assignedUser,omitempty"`
}

// ProductResponse represents product data for API responses
type ProductResponse struct {
	ID             uint          `json:"id"`
	Name           string        `json:"name"`
	SerialNumber   string        `json:"serialNumber"`
	TypeID         uint          `json:"typeId"`
	SupplierID     uint          `json:"supplierId"`
	AssignedUserID *uint         `json:"assignedUserId"`
	TypeArticle    TypeArticle   `json:"typeArticle"`
	Supplier       Supplier      `json:"supplier"`
	AssignedUser   *UserResponse `json:"assignedUser,omitempty"`
}

// ToProductResponse converts Product model to ProductResponse
func (p *Product) ToProductResponse() ProductResponse {
	resp := ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		SerialNumber:   p.SerialNumber,
		TypeID:         p.TypeID,
		SupplierID:     p.SupplierID,
		AssignedUserID: p.AssignedUserID,
		TypeArticle:    p.TypeArticle,
		Supplier:       p.Supplier,
	}
	if p.AssignedUser != nil {
		user := p.AssignedUser.ToUserResponse()
		resp.AssignedUser = &user
	}
	return resp
}
