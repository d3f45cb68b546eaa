package models

import (
	"time"

	"github.com/google/uuid"
)

// Review is immutable once written. The unique index on BookingID enforces
// at most one review per booking even under concurrent create attempts.
type Review struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	BookingID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"booking_id"`
	Rating    int       `gorm:"not null" json:"rating"`
	Text      string    `gorm:"type:text" json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
