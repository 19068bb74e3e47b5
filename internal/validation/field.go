package validation

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/campaign-desk/backend/internal/models"
)

// Field limits. Exposed so form clients can mirror the instant checks
// (see the meta endpoint); the server never trusts them to have done so.
const (
	NameMinLen      = 3
	NameMaxLen      = 15
	BudgetMin       = 10.0
	BudgetMax       = 1000.0
	MaxDurationDays = 30

	// DateLayout is the browser date-input format.
	DateLayout = "2006-01-02"
)

var namePattern = regexp.MustCompile(`^[A-Za-z0-9 ]*$`)

// ValidateName checks the raw name in isolation. All failing checks are
// reported together, so a name can be both too short and contain invalid
// characters in one pass.
func ValidateName(raw string) []Error {
	trimmed := strings.TrimSpace(raw)

	var errs []Error
	if n := utf8.RuneCountInString(trimmed); n < NameMinLen {
		errs = append(errs, fieldFormat(FieldName, CodeTooShort, "Name must be at least 3 characters"))
	} else if n > NameMaxLen {
		errs = append(errs, fieldFormat(FieldName, CodeTooLong, "Name cannot exceed 15 characters"))
	}
	if !namePattern.MatchString(trimmed) {
		errs = append(errs, fieldFormat(FieldName, CodeInvalidCharacters, "Name may only contain letters, numbers and spaces"))
	}
	return errs
}

// ValidateBudget parses the raw string internally but never mutates caller
// state; the typed value is produced later by Transform.
func ValidateBudget(raw string) []Error {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return []Error{fieldFormat(FieldBudget, CodeRequired, "Budget is required")}
	}

	// ParseFloat accepts "NaN", which would slip past both range checks.
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(value) {
		return []Error{fieldFormat(FieldBudget, CodeNotANumber, "Budget must be a number")}
	}

	var errs []Error
	if value < BudgetMin {
		errs = append(errs, fieldFormat(FieldBudget, CodeBelowMinimum, "Budget must be at least $10"))
	}
	if value > BudgetMax {
		errs = append(errs, fieldFormat(FieldBudget, CodeAboveMaximum, "Budget cannot exceed $1000"))
	}
	return errs
}

// ValidateDate checks a single raw date field (start_date or end_date).
func ValidateDate(field, raw string) []Error {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return []Error{fieldFormat(field, CodeRequired, dateLabel(field)+" is required")}
	}
	if _, err := parseDate(trimmed); err != nil {
		return []Error{fieldFormat(field, CodeInvalidDate, dateLabel(field)+" is not a valid date")}
	}
	return nil
}

// ValidateDraft runs every field rule and collects all failures across all
// fields; it never fails fast between fields.
func ValidateDraft(d models.CampaignDraft) []Error {
	var errs []Error
	errs = append(errs, ValidateName(d.Name)...)
	errs = append(errs, ValidateBudget(d.Budget)...)
	errs = append(errs, ValidateDate(FieldStartDate, d.StartDate)...)
	errs = append(errs, ValidateDate(FieldEndDate, d.EndDate)...)
	return errs
}

func dateLabel(field string) string {
	if field == FieldEndDate {
		return "End date"
	}
	return "Start date"
}
