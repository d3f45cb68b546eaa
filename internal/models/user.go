package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Roles are fixed at registration. There is no update path for User.Role.
const (
	RoleOwner  = "OWNER"
	RoleSitter = "SITTER"
	RoleAdmin  = "ADMIN"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email    string    `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Password string    `gorm:"not null" json:"-"`
	Name     string    `gorm:"size:120" json:"name"`
	Role     string    `gorm:"size:20;not null;index" json:"role"`
	Region   string    `gorm:"size:120;index" json:"region"`

	ResetTokenHash      *string    `gorm:"size:64;index" json:"-"`
	ResetTokenExpiresAt *time.Time `json:"-"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
