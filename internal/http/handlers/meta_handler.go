package handlers

import (
	"github.com/campaign-desk/backend/internal/http/dto"
	"github.com/campaign-desk/backend/internal/models"
	"github.com/campaign-desk/backend/internal/validation"
	"github.com/gofiber/fiber/v2"
)

type MetaHandler struct{}

func NewMetaHandler() *MetaHandler {
	return &MetaHandler{}
}

// ValidationMeta describes the field rules a form client may mirror for
// instant feedback. The prohibited-word list is deliberately absent: policy
// checks stay server-side.
type ValidationMeta struct {
	NameMinLength   int      `json:"name_min_length"`
	NameMaxLength   int      `json:"name_max_length"`
	BudgetMin       float64  `json:"budget_min"`
	BudgetMax       float64  `json:"budget_max"`
	MaxDurationDays int      `json:"max_duration_days"`
	DateFormat      string   `json:"date_format"`
	Statuses        []string `json:"statuses"`
}

func (h *MetaHandler) GetValidationMeta(c *fiber.Ctx) error {
	return c.JSON(dto.SuccessResponse{OK: true, Data: ValidationMeta{
		NameMinLength:   validation.NameMinLen,
		NameMaxLength:   validation.NameMaxLen,
		BudgetMin:       validation.BudgetMin,
		BudgetMax:       validation.BudgetMax,
		MaxDurationDays: validation.MaxDurationDays,
		DateFormat:      "YYYY-MM-DD",
		Statuses: []string{
			models.CampaignStatusDraft,
			models.CampaignStatusActive,
			models.CampaignStatusPaused,
			models.CampaignStatusCompleted,
		},
	}})
}
