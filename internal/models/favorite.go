package models

import (
	"time"

	"github.com/google/uuid"
)

// Favorite is a pure bookmark with no lifecycle beyond create/delete.
type Favorite struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_owner_sitter" json:"owner_id"`
	SitterID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_owner_sitter" json:"sitter_id"`
	CreatedAt time.Time `json:"created_at"`
}
