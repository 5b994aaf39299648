package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/camilovegag/procesos-de-negocio/internal/api/dto"
	"github.com/camilovegag/procesos-de-negocio/internal/observability"
	"github.com/camilovegag/procesos-de-negocio/internal/service"
	apperrors "github.com/camilovegag/procesos-de-negocio/pkg/util/errorutil"
)

// IntakeHandler serves the ticket intake form surface.
type IntakeHandler struct {
	service *service.IntakeService
}

// NewIntakeHandler constructs handler.
func NewIntakeHandler(intakeService *service.IntakeService) *IntakeHandler {
	return &IntakeHandler{service: intakeService}
}

// Options GET /intake/options.
func (h *IntakeHandler) Options(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.service.Options()})
}

// Validate POST /intake/validate.
func (h *IntakeHandler) Validate(c *fiber.Ctx) error {
	req, err := parseDraft(c)
	if err != nil {
		return err
	}
	res := h.service.Validate(c.UserContext(), req.Draft)
	return c.JSON(fiber.Map{"data": dto.NewValidationResponse(req, res)})
}

// Submit POST /intake/submit.
func (h *IntakeHandler) Submit(c *fiber.Ctx) error {
	req, err := parseDraft(c)
	if err != nil {
		return err
	}
	ctx := service.WithRequestID(c.UserContext(), observability.RequestIDFromContext(c))
	ticket, err := h.service.Submit(ctx, req.Draft)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewTicketResponse(ticket)})
}

func parseDraft(c *fiber.Ctx) (dto.DraftRequest, error) {
	req, err := dto.ParseDraftRequest(c.Body())
	if err != nil {
		return req, apperrors.NewBadRequest(err.Error())
	}
	return req, nil
}
