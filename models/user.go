package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents an identity principal in the system
type User struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	UserName     string         `gorm:"unique;not null" json:"userName" example:"admin@verwee.be"`
	Email        string         `gorm:"unique;not null" json:"email" example:"admin@verwee.be"`
	PasswordHash string         `gorm:"not null" json:"-"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationship
	UserRoles []UserRole `gorm:"foreignKey:UserID" json:"-"`
}

// UserResponse represents user data for API responses
type UserResponse struct {
	ID       uint     `json:"id"`
	UserName string   `json:"userName"`
	Email    string   `json:"email"`
	Roles    []string `json:"roles"`
}

// ToUserResponse converts User model to UserResponse
func (u *User) ToUserResponse() UserResponse {
	return UserResponse{
		ID:       u.ID,
		UserName: u.UserName,
		Email:    u.Email,
		Roles:    u.RoleNames(),
	}
}

// RoleNames returns the names of all roles held by the user
func (u *User) RoleNames() []string {
	roles := make([]string, len(u.UserRoles))
	for i, ur := range u.UserRoles {
		roles[i] = ur.Role.Name
	}
	return roles
}

// HasRole checks if user has a specific role
func (u *User) HasRole(roleName string) bool {
	for _, userRole := range u.UserRoles {
		if userRole.Role.Name == roleName {
			return true
		}
	}
	return false
}
