package validation

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/campaign-desk/backend/internal/models"
)

func parseDate(raw string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, raw, time.UTC)
}

// Transform maps a draft that passed the field rules into a typed Campaign.
// The name is trimmed, the budget parsed as a float and dates land at UTC
// midnight. Pure: the same draft always yields the same record or the same
// errors. The parse checks repeat here so a caller skipping ValidateDraft
// still cannot smuggle an untyped value through.
func Transform(d models.CampaignDraft) (models.Campaign, []Error) {
	var errs []Error

	budget, err := strconv.ParseFloat(strings.TrimSpace(d.Budget), 64)
	if err != nil || math.IsNaN(budget) {
		errs = append(errs, typeConversion(FieldBudget, CodeNotANumber, "Budget must be a number"))
	}

	start, err := parseDate(strings.TrimSpace(d.StartDate))
	if err != nil {
		errs = append(errs, typeConversion(FieldStartDate, CodeInvalidDate, "Start date is not a valid date"))
	}

	end, err := parseDate(strings.TrimSpace(d.EndDate))
	if err != nil {
		errs = append(errs, typeConversion(FieldEndDate, CodeInvalidDate, "End date is not a valid date"))
	}

	if len(errs) > 0 {
		return models.Campaign{}, errs
	}

	return models.Campaign{
		Name:      strings.TrimSpace(d.Name),
		Budget:    budget,
		StartDate: start,
		EndDate:   end,
	}, nil
}
