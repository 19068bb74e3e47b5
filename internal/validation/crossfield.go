package validation

import (
	"math"
	"time"

	"github.com/campaign-desk/backend/internal/models"
)

// ValidateCrossField checks relationships between the typed dates. Both
// rules are evaluated independently and both failures are reported on
// end_date, ordering first; one never overwrites the other.
func ValidateCrossField(c models.Campaign) []Error {
	var errs []Error

	if !c.EndDate.After(c.StartDate) {
		errs = append(errs, relationship(FieldEndDate, CodeDateOrdering, "End date must be after start date"))
	}
	if durationDays(c.StartDate, c.EndDate) > MaxDurationDays {
		errs = append(errs, relationship(FieldEndDate, CodeDurationExceeded, "Campaign duration cannot exceed 30 days"))
	}
	return errs
}

// durationDays is the absolute distance between two instants in whole days,
// rounded up.
func durationDays(a, b time.Time) int {
	d := b.Sub(a)
	if d < 0 {
		d = -d
	}
	return int(math.Ceil(d.Hours() / 24))
}
