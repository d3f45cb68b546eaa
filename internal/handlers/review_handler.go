package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/pawpal-app/pawpal-backend/internal/dto"
	"github.com/pawpal-app/pawpal-backend/internal/principal"
	"github.com/pawpal-app/pawpal-backend/internal/services"
)

type ReviewHandler struct {
	reviewService *services.ReviewService
}

func NewReviewHandler(reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// Create handles POST /reviews - the booking owner reviews a completed
// booking, once.
func (h *ReviewHandler) Create(c *fiber.Ctx) error {
	p, err := principal.FromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CreateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if req.Rating < 1 || req.Rating > 5 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Rating must be between 1 and 5",
		})
	}

	bookingID, err := uuid.Parse(req.BookingID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid booking ID",
		})
	}

	review, err := h.reviewService.Create(p.UserID, bookingID, req.Rating, req.Text)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrBookingNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Booking not found",
			})
		case errors.Is(err, services.ErrNotBookingOwner):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Not authorized to review this booking",
			})
		case errors.Is(err, services.ErrBookingNotCompleted):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Booking must be completed",
			})
		case errors.Is(err, services.ErrReviewExists):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: "Review already exists",
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Failed to create review",
			})
		}
	}

	return c.JSON(dto.ReviewResponse{
		ID:        review.ID.String(),
		BookingID: review.BookingID.String(),
		Rating:    review.Rating,
		Text:      review.Text,
		CreatedAt: review.CreatedAt,
	})
}
