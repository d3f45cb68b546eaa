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

type FavoriteHandler struct {
	favoriteService *services.FavoriteService
}

func NewFavoriteHandler(favoriteService *services.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

// Add handles POST /favorites - idempotent bookmark of a sitter.
func (h *FavoriteHandler) Add(c *fiber.Ctx) error {
	p, err := principal.FromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}
	if p.Role != models.RoleOwner {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: "Only owners can favorite sitters",
		})
	}

	var req dto.AddFavoriteRequest
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

	if err := h.favoriteService.Add(p.UserID, sitterID); err != nil {
		if errors.Is(err, services.ErrSitterNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Sitter not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to add favorite",
		})
	}

	return c.JSON(fiber.Map{"message": "Favorite added"})
}

// Remove handles DELETE /favorites/:sitterId - a no-op when absent.
func (h *FavoriteHandler) Remove(c *fiber.Ctx) error {
	p, err := principal.FromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	sitterID, err := uuid.Parse(c.Params("sitterId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid sitter ID",
		})
	}

	if err := h.favoriteService.Remove(p.UserID, sitterID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to remove favorite",
		})
	}

	return c.JSON(fiber.Map{"message": "Favorite removed"})
}

// List handles GET /favorites - the owner's bookmarked sitters.
func (h *FavoriteHandler) List(c *fiber.Ctx) error {
	p, err := principal.FromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	sitters, err := h.favoriteService.List(p.UserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch favorites",
		})
	}

	return c.JSON(dto.FavoritesResponse{Sitters: sitters, Total: len(sitters)})
}
