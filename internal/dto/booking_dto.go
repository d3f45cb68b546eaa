package dto

import "time"

type CreateBookingRequest struct {
	SitterID string `json:"sitter_id"`
	Details  string `json:"details"`
}

type RespondBookingRequest struct {
	BookingID string `json:"booking_id"`
	Accept    bool   `json:"accept"`
}

type CompleteBookingRequest struct {
	BookingID string `json:"booking_id"`
}

type BookingResponse struct {
	ID          string          `json:"id"`
	OwnerID     string          `json:"owner_id"`
	SitterID    string          `json:"sitter_id"`
	OwnerName   string          `json:"owner_name,omitempty"`
	SitterName  string          `json:"sitter_name,omitempty"`
	Status      string          `json:"status"`
	Details     string          `json:"details"`
	RequestedAt time.Time       `json:"requested_at"`
	Review      *ReviewResponse `json:"review,omitempty"`
}

type BookingsListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}
