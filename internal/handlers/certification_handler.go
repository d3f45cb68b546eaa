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

type CertificationHandler struct {
	certService *services.CertificationService
}

func NewCertificationHandler(certService *services.CertificationService) *CertificationHandler {
	return &CertificationHandler{certService: certService}
}

// Submit handles POST /certifications/submit - a sitter requests
// verification.
func (h *CertificationHandler) Submit(c *fiber.Ctx) error {
	p, err := principal.FromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}
	if p.Role != models.RoleSitter {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: "Only sitters can request certification",
		})
	}

	request, err := h.certService.Submit(p.UserID)
	if err != nil {
		if errors.Is(err, services.ErrPendingCertification) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to submit certification request",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(certificationResponse(request))
}

// Approve handles POST /admin/certifications/:id/approve.
func (h *CertificationHandler) Approve(c *fiber.Ctx) error {
	return h.adjudicate(c, true)
}

// Reject handles POST /admin/certifications/:id/reject.
func (h *CertificationHandler) Reject(c *fiber.Ctx) error {
	return h.adjudicate(c, false)
}

func (h *CertificationHandler) adjudicate(c *fiber.Ctx, approve bool) error {
	p, err := principal.FromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	requestID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request ID",
		})
	}

	var request *models.CertificationRequest
	if approve {
		request, err = h.certService.Approve(requestID, p.UserID)
	} else {
		request, err = h.certService.Reject(requestID, p.UserID)
	}
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCertificationNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Certification request not found",
			})
		case errors.Is(err, services.ErrCertificationResolved):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Failed to update certification request",
			})
		}
	}

	return c.JSON(certificationResponse(request))
}

// Status handles GET /certifications/status/:sitterId - public certified
// flag for a sitter.
func (h *CertificationHandler) Status(c *fiber.Ctx) error {
	sitterID, err := uuid.Parse(c.Params("sitterId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid sitter ID",
		})
	}

	status, err := h.certService.Status(sitterID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch certification status",
		})
	}

	return c.JSON(dto.CertificationStatusResponse{
		Certified:    status.Certified,
		ApprovedDate: status.ApprovedDate,
	})
}

// PendingQueue handles GET /admin/certifications/pending - oldest first.
func (h *CertificationHandler) PendingQueue(c *fiber.Ctx) error {
	requests, err := h.certService.PendingQueue()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch pending requests",
		})
	}

	responses := make([]dto.CertificationResponse, len(requests))
	for i := range requests {
		responses[i] = certificationResponse(&requests[i])
	}

	return c.JSON(dto.CertificationQueueResponse{
		Requests: responses,
		Total:    len(responses),
	})
}

func certificationResponse(r *models.CertificationRequest) dto.CertificationResponse {
	resp := dto.CertificationResponse{
		ID:          r.ID.String(),
		SitterID:    r.SitterID.String(),
		Status:      r.Status,
		SubmittedAt: r.SubmittedAt,
	}
	if r.AdminID != nil {
		admin := r.AdminID.String()
		resp.AdminID = &admin
	}
	return resp
}
