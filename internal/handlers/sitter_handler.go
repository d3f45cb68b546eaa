package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/pawpal-app/pawpal-backend/internal/dto"
	"github.com/pawpal-app/pawpal-backend/internal/services"
)

type SitterHandler struct {
	sitterService *services.SitterService
}

func NewSitterHandler(sitterService *services.SitterService) *SitterHandler {
	return &SitterHandler{sitterService: sitterService}
}

// Search handles GET /sitters - the public sitter directory with optional
// region, pet_type, certified and min_rating filters.
func (h *SitterHandler) Search(c *fiber.Ctx) error {
	filters := services.SitterSearchFilters{
		Region:  c.Query("region"),
		PetType: c.Query("pet_type"),
	}

	if v := c.Query("certified"); v != "" {
		certified := v == "true"
		filters.Certified = &certified
	}
	if v := c.Query("min_rating"); v != "" {
		if rating, err := strconv.ParseFloat(v, 64); err == nil {
			filters.MinRating = rating
		}
	}

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	sitters, total, err := h.sitterService.Search(filters, page, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to search sitters",
		})
	}

	return c.JSON(dto.SitterSearchResponse{
		Sitters: sitters,
		Total:   total,
		Page:    page,
		Limit:   limit,
	})
}

// Get handles GET /sitters/:id - public detail for one sitter.
func (h *SitterHandler) Get(c *fiber.Ctx) error {
	sitterID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid sitter ID",
		})
	}

	sitter, err := h.sitterService.Get(sitterID)
	if err != nil {
		if errors.Is(err, services.ErrSitterNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Sitter not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch sitter",
		})
	}

	return c.JSON(sitter)
}
