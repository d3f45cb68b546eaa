package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type OwnerProfile struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	PetName   string    `gorm:"size:120" json:"pet_name"`
	PetBio    string    `gorm:"type:text" json:"pet_bio"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SitterProfile struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	Bio        string    `gorm:"type:text" json:"bio"`
	HourlyRate float64   `gorm:"default:0" json:"hourly_rate"`
	// JSON array of accepted pet types, e.g. ["dog","cat"].
	PetTypes datatypes.JSON `json:"pet_types"`
	// Cached mean of all review ratings for this sitter. Not authoritative:
	// it can be rebuilt from review rows at any time.
	AverageRating float64   `gorm:"default:0" json:"average_rating"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type ProfileImage struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	URL       string    `gorm:"type:text;not null" json:"url"`
	Position  int       `gorm:"default:0" json:"position"`
	CreatedAt time.Time `json:"created_at"`
}
