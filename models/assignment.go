package models

import (
	"time"
)

// Assignment links one product to one user with a state and an optional signature.
// Rows are hard-deleted on unassign/reassign so the unique index on ProductID
// always reflects the single active assignment per product.
type Assignment struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	UserID    uint `gorm:"not null;index" json:"userId"`
	ProductID uint `gorm:"not null;uniqueIndex" json:"productId"`
	StateID   uint `gorm:"not null" json:"stateId"`
	// Signature stays empty until the owning user signs; it can be set exactly once
	Signature      string    `json:"signature"`
	AssignmentDate time.Time `json:"assignmentDate"`
	SignatureDate  time.Time `json:"signatureDate"`

	// Relationship
	User    User    `gorm:"foreignKey:UserID" json:"user"`
	Product Product `gorm:"foreignKey:ProductID" json:"product"`
	State   State   `gorm:"foreignKey:StateID" json:"state"`
}

// Signed reports whether the assignment has already been signed
func (a *Assignment) Signed() bool {
	return a.Signature != ""
}

// AssignmentResponse represents assignment data for API responses
type AssignmentResponse struct {
	ID             uint            `json:"id"`
	UserID         uint            `json:"userId"`
	ProductID      uint            `json:"productId"`
	StateID        uint            `json:"stateId"`
	Signature      string          `json:"signature"`
	AssignmentDate time.Time       `json:"assignmentDate"`
	SignatureDate  time.Time       `json:"signatureDate"`
	User           UserResponse    `json:"user"`
	Product        ProductResponse `json:"product"`
	State          State           `json:"state"`
}

// ToAssignmentResponse converts Assignment model to AssignmentResponse
func (a *Assignment) ToAssignmentResponse() AssignmentResponse {
	return AssignmentResponse{
		ID:             a.ID,
		UserID:         a.UserID,
		ProductID:      a.ProductID,
		StateID:        a.StateID,
		Signature:      a.Signature,
		AssignmentDate: a.AssignmentDate,
		SignatureDate:  a.SignatureDate,
		User:           a.User.ToUserResponse(),
		Product:        a.Product.ToProductResponse(),
		State:          a.State,
	}
}
