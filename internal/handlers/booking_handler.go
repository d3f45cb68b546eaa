package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/pawpal-app/pawpal-backend/internal/dto"
	"github.com/pawpal-app/pawpal-backend/internal/models"
	"github.com/pawpal-app/pawpal-backend/internal/principal"
	"github.com/pawpal-app/pawpal-backend/internal/services"
)

type BookingHandler struct {
	bookingService *services.BookingService
}

func NewBookingHandler(bookingService *services.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// Create handles POST /bookings - an owner requests a sitter.
func (h *BookingHandler) Create(c *fiber.Ctx) error {
	p, err := principal.FromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}
	if p.Role != models.RoleOwner {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: "Only owners can request bookings",
		})
	}

	var req dto.CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	sitterID, err := uuid.Parse(req.SitterID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid sitter ID",
		})
	}

	booking, err := h.bookingService.Create(p.UserID, sitterID, req.Details)
	if err != nil {
		if errors.Is(err, services.ErrSitterNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Sitter not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create booking",
		})
	}

	return c.JSON(bookingResponse(booking))
}

// Respond handles POST /bookings/respond - the booked sitter accepts or
// declines a pending request.
func (h *BookingHandler) Respond(c *fiber.Ctx) error {
	p, err := principal.FromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.RespondBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	bookingID, err := uuid.Parse(req.BookingID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid booking ID",
		})
	}

	booking, err := h.bookingService.Respond(p.UserID, bookingID, req.Accept)
	if err != nil {
		return bookingError(c, err)
	}

	return c.JSON(bookingResponse(booking))
}

// Complete handles POST /bookings/complete - the owning owner marks an
// accepted booking as completed.
func (h *BookingHandler) Complete(c *fiber.Ctx) error {
	p, err := principal.FromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CompleteBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	bookingID, err := uuid.Parse(req.BookingID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid booking ID",
		})
	}

	booking, err := h.bookingService.Complete(p.UserID, bookingID)
	if err != nil {
		return bookingError(c, err)
	}

	return c.JSON(bookingResponse(booking))
}

// My handles GET /bookings/my - the caller's bookings, newest first.
func (h *BookingHandler) My(c *fiber.Ctx) error {
	p, err := principal.FromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	items, err := h.bookingService.ListForUser(p.UserID, p.Role)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch bookings",
		})
	}

	bookings := make([]dto.BookingResponse, len(items))
	for i, item := range items {
		resp := bookingResponse(&item.Booking)
		resp.OwnerName = item.OwnerName
		resp.SitterName = item.SitterName
		if item.Review != nil {
			resp.Review = &dto.ReviewResponse{
				ID:        item.Review.ID.String(),
				BookingID: item.Review.BookingID.String(),
				Rating:    item.Review.Rating,
				Text:      item.Review.Text,
				CreatedAt: item.Review.CreatedAt,
			}
		}
		bookings[i] = resp
	}

	return c.JSON(dto.BookingsListResponse{Bookings: bookings, Total: len(bookings)})
}

func bookingResponse(b *models.Booking) dto.BookingResponse {
	return dto.BookingResponse{
		ID:          b.ID.String(),
		OwnerID:     b.OwnerID.String(),
		SitterID:    b.SitterID.String(),
		Status:      b.Status,
		Details:     b.Details,
		RequestedAt: b.RequestedAt,
	}
}

func bookingError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrBookingNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Booking not found",
		})
	case errors.Is(err, services.ErrNotBookingSitter),
		errors.Is(err, services.ErrNotBookingOwner):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.Is(err, services.ErrInvalidTransition):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update booking",
		})
	}
}
