package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pawpal-app/pawpal-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrCertificationNotFound = errors.New("certification request not found")
	ErrPendingCertification  = errors.New("a pending certification request already exists")
	ErrCertificationResolved = errors.New("certification request has already been resolved")
)

// CertificationStatus is the derived certified state of a sitter.
type CertificationStatus struct {
	Certified    bool
	ApprovedDate *time.Time
}

type CertificationService struct {
	db *gorm.DB
}

func NewCertificationService(db *gorm.DB) *CertificationService {
	return &CertificationService{db: db}
}

// Submit opens a new PENDING request. At most one PENDING request per sitter
// may exist at a time.
func (s *CertificationService) Submit(sitterID uuid.UUID) (*models.CertificationRequest, error) {
	var pending models.CertificationRequest
	err := s.db.Scopes(models.ForSitter(sitterID)).
		Where("status = ?", models.CertificationPending).
		First(&pending).Error
	if err == nil {
		return nil, ErrPendingCertification
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check pending requests: %w", err)
	}

	request := models.CertificationRequest{
		ID:          uuid.New(),
		SitterID:    sitterID,
		Status:      models.CertificationPending,
		SubmittedAt: time.Now(),
	}

	if err := s.db.Create(&request).Error; err != nil {
		return nil, fmt.Errorf("failed to create certification request: %w", err)
	}

	return &request, nil
}

func (s *CertificationService) Approve(requestID, adminID uuid.UUID) (*models.CertificationRequest, error) {
	return s.adjudicate(requestID, adminID, models.CertificationApproved)
}

func (s *CertificationService) Reject(requestID, adminID uuid.UUID) (*models.CertificationRequest, error) {
	return s.adjudicate(requestID, adminID, models.CertificationRejected)
}

// adjudicate resolves a PENDING request. The UPDATE is conditional on the
// PENDING status so a request cannot be resolved twice. Approving a new
// request never revokes an older APPROVED one.
func (s *CertificationService) adjudicate(requestID, adminID uuid.UUID, status string) (*models.CertificationRequest, error) {
	result := s.db.Model(&models.CertificationRequest{}).
		Where("id = ? AND status = ?", requestID, models.CertificationPending).
		Updates(map[string]interface{}{
			"status":   status,
			"admin_id": adminID,
		})
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update certification request: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		var existing models.CertificationRequest
		if err := s.db.First(&existing, "id = ?", requestID).Error; err != nil {
			return nil, ErrCertificationNotFound
		}
		return nil, ErrCertificationResolved
	}

	var request models.CertificationRequest
	if err := s.db.First(&request, "id = ?", requestID).Error; err != nil {
		return nil, fmt.Errorf("failed to reload certification request: %w", err)
	}
	return &request, nil
}

// Status reports whether any request for the sitter is APPROVED. The
// approval date comes from the most recently adjudicated APPROVED row.
func (s *CertificationService) Status(sitterID uuid.UUID) (*CertificationStatus, error) {
	var approved models.CertificationRequest
	err := s.db.Scopes(models.ForSitter(sitterID)).
		Where("status = ?", models.CertificationApproved).
		Order("updated_at DESC").
		First(&approved).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &CertificationStatus{Certified: false}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load certification status: %w", err)
	}

	date := approved.UpdatedAt
	return &CertificationStatus{Certified: true, ApprovedDate: &date}, nil
}

// PendingQueue returns all PENDING requests oldest-first so admins review
// them in submission order.
func (s *CertificationService) PendingQueue() ([]models.CertificationRequest, error) {
	var requests []models.CertificationRequest
	err := s.db.Where("status = ?", models.CertificationPending).
		Order("submitted_at ASC").
		Find(&requests).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list pending requests: %w", err)
	}
	return requests, nil
}

// CertifiedSet returns the subset of the given sitter IDs that hold an
// APPROVED request. Used when building denormalized sitter summaries.
func (s *CertificationService) CertifiedSet(sitterIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	if len(sitterIDs) == 0 {
		return map[uuid.UUID]bool{}, nil
	}

	var approved []models.CertificationRequest
	err := s.db.Where("sitter_id IN ? AND status = ?", sitterIDs, models.CertificationApproved).
		Find(&approved).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load certifications: %w", err)
	}

	set := make(map[uuid.UUID]bool, len(approved))
	for _, r := range approved {
		set[r.SitterID] = true
	}
	return set, nil
}
