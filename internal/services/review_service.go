package services

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pawpal-app/pawpal-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrBookingNotCompleted = errors.New("booking must be completed before it can be reviewed")
	ErrReviewExists        = errors.New("review already exists for this booking")
)

type ReviewService struct {
	db *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db}
}

// Create writes the single review a completed booking may carry, then
// refreshes the sitter's cached average rating.
func (s *ReviewService) Create(userID, bookingID uuid.UUID, rating int, text string) (*models.Review, error) {
	var booking models.Booking
	if err := s.db.First(&booking, "id = ?", bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to load booking: %w", err)
	}

	if booking.OwnerID != userID {
		return nil, ErrNotBookingOwner
	}
	if booking.Status != models.BookingCompleted {
		return nil, ErrBookingNotCompleted
	}

	var existing models.Review
	if err := s.db.Where("booking_id = ?", bookingID).First(&existing).Error; err == nil {
		return nil, ErrReviewExists
	}

	review := models.Review{
		ID:        uuid.New(),
		BookingID: bookingID,
		Rating:    rating,
		Text:      text,
	}

	if err := s.db.Create(&review).Error; err != nil {
		// A concurrent create can slip past the lookup; the unique index on
		// booking_id is the arbiter.
		var count int64
		s.db.Model(&models.Review{}).Where("booking_id = ?", bookingID).Count(&count)
		if count > 0 {
			return nil, ErrReviewExists
		}
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	if err := s.RecomputeSitterRating(booking.SitterID); err != nil {
		slog.Error("failed to recompute sitter rating", "sitter_id", booking.SitterID, "error", err)
	}

	return &review, nil
}

// RecomputeSitterRating rebuilds the cached average from review rows. It is
// idempotent and doubles as the repair operation if the cache drifts.
func (s *ReviewService) RecomputeSitterRating(sitterID uuid.UUID) error {
	var avg sql.NullFloat64
	err := s.db.Model(&models.Review{}).
		Joins("JOIN bookings ON bookings.id = reviews.booking_id").
		Where("bookings.sitter_id = ?", sitterID).
		Select("AVG(reviews.rating)").
		Scan(&avg).Error
	if err != nil {
		return fmt.Errorf("failed to aggregate ratings: %w", err)
	}

	// No reviews: leave the cached value untouched.
	if !avg.Valid {
		return nil
	}

	return s.db.Model(&models.SitterProfile{}).
		Where("user_id = ?", sitterID).
		Update("average_rating", avg.Float64).Error
}
