package models

import (
	"time"

	"github.com/google/uuid"
)

// Certification request statuses. APPROVED and REJECTED are terminal.
const (
	CertificationPending  = "PENDING"
	CertificationApproved = "APPROVED"
	CertificationRejected = "REJECTED"
)

// CertificationRequest records one verification attempt by a sitter.
// A sitter is "certified" iff any request of theirs is APPROVED; approving a
// new request never revokes older APPROVED rows.
type CertificationRequest struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	SitterID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"sitter_id"`
	Status      string     `gorm:"size:20;not null;index" json:"status"`
	SubmittedAt time.Time  `gorm:"not null;index" json:"submitted_at"`
	AdminID     *uuid.UUID `gorm:"type:uuid" json:"admin_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
