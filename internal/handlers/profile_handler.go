package handlers

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/pawpal-app/pawpal-backend/internal/config"
	"github.com/pawpal-app/pawpal-backend/internal/dto"
	"github.com/pawpal-app/pawpal-backend/internal/principal"
	"github.com/pawpal-app/pawpal-backend/internal/services"
)

type ProfileHandler struct {
	profileService *services.ProfileService
	cfg            *config.Config
}

func NewProfileHandler(profileService *services.ProfileService, cfg *config.Config) *ProfileHandler {
	return &ProfileHandler{profileService: profileService, cfg: cfg}
}

// Get handles GET /profile.
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	p, err := principal.FromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	profile, err := h.profileService.Get(p.UserID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "User not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch profile",
		})
	}

	return c.JSON(profile)
}

// Update handles PUT /profile. Role and email are not editable.
func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	p, err := principal.FromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	profile, err := h.profileService.Update(p.UserID, &req)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "User not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update profile",
		})
	}

	return c.JSON(profile)
}

// UploadImage handles POST /profile/images - multipart/form-data upload
// stored on local disk.
func (h *ProfileHandler) UploadImage(c *fiber.Ctx) error {
	p, err := principal.FromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	file, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Image file is required",
		})
	}

	if file.Size > 10*1024*1024 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Image size must be less than 10MB",
		})
	}

	contentType := file.Header.Get("Content-Type")
	validTypes := map[string]bool{
		"image/jpeg": true,
		"image/jpg":  true,
		"image/png":  true,
		"image/heic": true,
	}
	if !validTypes[contentType] {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid image format. Only JPEG, PNG, and HEIC are allowed",
		})
	}

	fileExt := filepath.Ext(file.Filename)
	if fileExt == "" {
		fileExt = ".jpg"
	}
	filename := fmt.Sprintf("%s_%s%s", p.UserID.String()[:8], uuid.New().String()[:8], fileExt)

	savePath := filepath.Join(h.cfg.UploadDir, "profiles", filename)
	if err := c.SaveFile(file, savePath); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to save image",
		})
	}

	imageURL := fmt.Sprintf("/uploads/profiles/%s", filename)

	image, err := h.profileService.AddImage(p.UserID, imageURL)
	if err != nil {
		os.Remove(savePath)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to save image",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.ProfileImageResponse{
		ID:       image.ID.String(),
		URL:      image.URL,
		Position: image.Position,
	})
}

// DeleteImage handles DELETE /profile/images/:id.
func (h *ProfileHandler) DeleteImage(c *fiber.Ctx) error {
	p, err := principal.FromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	imageID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid image ID",
		})
	}

	if err := h.profileService.DeleteImage(p.UserID, imageID); err != nil {
		if errors.Is(err, services.ErrImageNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Image not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete image",
		})
	}

	return c.JSON(fiber.Map{"message": "Image deleted"})
}
