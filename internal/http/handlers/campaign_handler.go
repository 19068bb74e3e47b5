package handlers

import (
	"errors"
	"strconv"

	"github.com/campaign-desk/backend/internal/http/dto"
	"github.com/campaign-desk/backend/internal/middleware"
	"github.com/campaign-desk/backend/internal/repositories"
	"github.com/campaign-desk/backend/internal/services"
	"github.com/campaign-desk/backend/internal/validation"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type CampaignHandler struct {
	campaignService *services.CampaignService
	log             *zap.Logger
}

func NewCampaignHandler(campaignService *services.CampaignService, log *zap.Logger) *CampaignHandler {
	return &CampaignHandler{campaignService: campaignService, log: log}
}

func (h *CampaignHandler) CreateCampaign(c *fiber.Ctx) error {
	var req dto.CampaignDraftRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request"})
	}

	userID := middleware.GetUserID(c)
	stored, valErrs := h.campaignService.Create(c.Context(), userID, req.Draft())
	if len(valErrs) > 0 {
		return writeValidationErrors(c, valErrs)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{OK: true, Data: stored})
}

// ValidateCampaign is the preflight surface: it runs the advisory stages for
// real-time form feedback and persists nothing. Create and Update never
// trust its verdict.
func (h *CampaignHandler) ValidateCampaign(c *fiber.Ctx) error {
	var req dto.CampaignDraftRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request"})
	}

	result := h.campaignService.Preflight(req.Draft())
	return c.JSON(dto.PreflightResponse{OK: result.OK, Errors: result.Errors})
}

func (h *CampaignHandler) GetCampaign(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	campaign, err := h.campaignService.GetByID(c.Context(), c.Params("id"), userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "campaign not found"})
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: campaign})
}

func (h *CampaignHandler) ListCampaigns(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	filter := repositories.CampaignFilter{
		Limit:  20,
		Offset: 0,
	}

	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filter.Limit = n
		}
	}
	if v := c.Query("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filter.Offset = n
		}
	}
	if v := c.Query("status"); v != "" {
		filter.Status = &v
	}

	campaigns, err := h.campaignService.List(c.Context(), userID, filter)
	if err != nil {
		h.log.Error("list campaigns failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: campaigns})
}

func (h *CampaignHandler) UpdateCampaign(c *fiber.Ctx) error {
	var req dto.CampaignDraftRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request"})
	}

	userID := middleware.GetUserID(c)
	updated, valErrs, err := h.campaignService.Update(c.Context(), c.Params("id"), userID, req.Draft())
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "campaign not found"})
	}
	if len(valErrs) > 0 {
		return writeValidationErrors(c, valErrs)
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: updated})
}

func (h *CampaignHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request"})
	}

	userID := middleware.GetUserID(c)
	updated, err := h.campaignService.UpdateStatus(c.Context(), c.Params("id"), userID, req.Status)
	if errors.Is(err, services.ErrInvalidTransition) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "campaign not found"})
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: updated})
}

func (h *CampaignHandler) DeleteCampaign(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	if err := h.campaignService.Delete(c.Context(), c.Params("id"), userID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "campaign not found"})
	}

	return c.JSON(dto.SuccessResponse{OK: true})
}

// writeValidationErrors maps pipeline errors onto a status: input-shaped
// rejections are 422, a system error (field "general") is 500.
func writeValidationErrors(c *fiber.Ctx, errs []validation.Error) error {
	status := fiber.StatusUnprocessableEntity
	for _, e := range errs {
		if e.Kind == validation.KindSystem {
			status = fiber.StatusInternalServerError
			break
		}
	}
	return c.Status(status).JSON(dto.ValidationFailedResponse{OK: false, Errors: errs})
}
