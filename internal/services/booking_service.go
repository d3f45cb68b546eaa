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
	ErrBookingNotFound   = errors.New("booking not found")
	ErrSitterNotFound    = errors.New("sitter not found")
	ErrNotBookingSitter  = errors.New("only the booked sitter can respond to this request")
	ErrNotBookingOwner   = errors.New("only the booking owner can perform this action")
	ErrInvalidTransition = errors.New("booking status does not allow this action")
)

type bookingAction string

const (
	actionAccept   bookingAction = "accept"
	actionDecline  bookingAction = "decline"
	actionComplete bookingAction = "complete"
)

type bookingTransition struct {
	from      string
	action    bookingAction
	actorRole string
}

// bookingTransitions is the complete set of legal status transitions.
// Anything not in the table is rejected; ACCEPTED, DECLINED and COMPLETED
// never transition backwards.
var bookingTransitions = map[bookingTransition]string{
	{models.BookingPending, actionAccept, models.RoleSitter}:   models.BookingAccepted,
	{models.BookingPending, actionDecline, models.RoleSitter}:  models.BookingDeclined,
	{models.BookingAccepted, actionComplete, models.RoleOwner}: models.BookingCompleted,
}

// BookingListItem pairs a booking with the display data the list view needs.
type BookingListItem struct {
	Booking    models.Booking
	OwnerName  string
	SitterName string
	Review     *models.Review
}

type BookingService struct {
	db *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{db: db}
}

// Create opens a new PENDING booking request. Duplicate requests against the
// same sitter are allowed; only transitions are guarded.
func (s *BookingService) Create(ownerID, sitterID uuid.UUID, details string) (*models.Booking, error) {
	var sitter models.User
	if err := s.db.Where("id = ? AND role = ?", sitterID, models.RoleSitter).First(&sitter).Error; err != nil {
		return nil, ErrSitterNotFound
	}

	booking := models.Booking{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		SitterID:    sitterID,
		Status:      models.BookingPending,
		Details:     details,
		RequestedAt: time.Now(),
	}

	if err := s.db.Create(&booking).Error; err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	return &booking, nil
}

// Respond accepts or declines a PENDING booking. Only the addressed sitter
// may respond.
func (s *BookingService) Respond(sitterID, bookingID uuid.UUID, accept bool) (*models.Booking, error) {
	action := actionDecline
	if accept {
		action = actionAccept
	}
	return s.transition(bookingID, action, models.RoleSitter, sitterID)
}

// Complete marks an ACCEPTED booking as COMPLETED. Only the owning owner
// may complete.
func (s *BookingService) Complete(ownerID, bookingID uuid.UUID) (*models.Booking, error) {
	return s.transition(bookingID, actionComplete, models.RoleOwner, ownerID)
}

// transition applies one step of the status machine. The UPDATE is
// conditional on the observed status so two racing callers cannot both win;
// the loser sees zero rows affected and gets ErrInvalidTransition.
func (s *BookingService) transition(bookingID uuid.UUID, action bookingAction, actorRole string, actorID uuid.UUID) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.First(&booking, "id = ?", bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to load booking: %w", err)
	}

	switch actorRole {
	case models.RoleSitter:
		if booking.SitterID != actorID {
			return nil, ErrNotBookingSitter
		}
	case models.RoleOwner:
		if booking.OwnerID != actorID {
			return nil, ErrNotBookingOwner
		}
	}

	next, ok := bookingTransitions[bookingTransition{booking.Status, action, actorRole}]
	if !ok {
		return nil, ErrInvalidTransition
	}

	result := s.db.Model(&models.Booking{}).
		Where("id = ? AND status = ?", bookingID, booking.Status).
		Update("status", next)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update booking status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrInvalidTransition
	}

	booking.Status = next
	return &booking, nil
}

// ListForUser returns the caller's bookings newest-first. Owners see their
// own requests, sitters see requests addressed to them, admins see all.
func (s *BookingService) ListForUser(userID uuid.UUID, role string) ([]BookingListItem, error) {
	query := s.db.Model(&models.Booking{})
	switch role {
	case models.RoleOwner:
		query = query.Scopes(models.ForOwner(userID))
	case models.RoleSitter:
		query = query.Scopes(models.ForSitter(userID))
	case models.RoleAdmin:
		// no filter
	default:
		return nil, fmt.Errorf("unknown role %q", role)
	}

	var bookings []models.Booking
	if err := query.Order("requested_at DESC").Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	if len(bookings) == 0 {
		return []BookingListItem{}, nil
	}

	userIDs := make([]uuid.UUID, 0, len(bookings)*2)
	bookingIDs := make([]uuid.UUID, 0, len(bookings))
	for _, b := range bookings {
		userIDs = append(userIDs, b.OwnerID, b.SitterID)
		bookingIDs = append(bookingIDs, b.ID)
	}

	var users []models.User
	if err := s.db.Where("id IN ?", userIDs).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to load booking users: %w", err)
	}
	names := make(map[uuid.UUID]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Name
	}

	var reviews []models.Review
	if err := s.db.Where("booking_id IN ?", bookingIDs).Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("failed to load booking reviews: %w", err)
	}
	reviewsByBooking := make(map[uuid.UUID]models.Review, len(reviews))
	for _, r := range reviews {
		reviewsByBooking[r.BookingID] = r
	}

	items := make([]BookingListItem, len(bookings))
	for i, b := range bookings {
		item := BookingListItem{
			Booking:    b,
			OwnerName:  names[b.OwnerID],
			SitterName: names[b.SitterID],
		}
		if r, ok := reviewsByBooking[b.ID]; ok {
			review := r
			item.Review = &review
		}
		items[i] = item
	}

	return items, nil
}
