package models

import (
	"time"

	"github.com/google/uuid"
)

// Booking statuses. Transitions are one-directional:
// PENDING -> ACCEPTED -> COMPLETED, or PENDING -> DECLINED.
const (
	BookingPending   = "PENDING"
	BookingAccepted  = "ACCEPTED"
	BookingDeclined  = "DECLINED"
	BookingCompleted = "COMPLETED"
)

type Booking struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index" json:"owner_id"`
	SitterID    uuid.UUID `gorm:"type:uuid;not null;index" json:"sitter_id"`
	Status      string    `gorm:"size:20;not null;index" json:"status"`
	Details     string    `gorm:"type:text" json:"details"`
	RequestedAt time.Time `gorm:"not null;index" json:"requested_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
