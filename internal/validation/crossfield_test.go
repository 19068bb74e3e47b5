package validation

import (
	"testing"
	"time"

	"github.com/campaign-desk/backend/internal/models"
)

func campaignWithDates(start, end time.Time) models.Campaign {
	return models.Campaign{Name: "Valid Name", Budget: 100, StartDate: start, EndDate: end}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestValidateCrossField(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  []string
	}{
		{"valid range", day(2024, 6, 1), day(2024, 6, 10), nil},
		{"exactly 30 days", day(2024, 6, 1), day(2024, 7, 1), nil},
		{"one day", day(2024, 6, 1), day(2024, 6, 2), nil},
		{"end before start", day(2024, 6, 10), day(2024, 6, 1), []string{CodeDateOrdering}},
		{"equal dates", day(2024, 6, 1), day(2024, 6, 1), []string{CodeDateOrdering}},
		{"31 days", day(2024, 6, 1), day(2024, 7, 2), []string{CodeDurationExceeded}},
		{"two months", day(2024, 1, 1), day(2024, 3, 1), []string{CodeDurationExceeded}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateCrossField(campaignWithDates(tt.start, tt.end))
			got := codes(errs)
			if len(got) != len(tt.want) {
				t.Fatalf("codes = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("codes = %v, want %v", got, tt.want)
				}
			}
			for _, e := range errs {
				if e.Field != FieldEndDate {
					t.Errorf("error attributed to %q, want %q", e.Field, FieldEndDate)
				}
			}
		})
	}
}

func TestBothRulesReportedTogether(t *testing.T) {
	// A reversed range more than 30 days apart violates ordering and
	// duration at once; neither may shadow the other.
	errs := ValidateCrossField(campaignWithDates(day(2024, 6, 1), day(2024, 1, 1)))
	if len(errs) != 2 {
		t.Fatalf("got %d errors, want 2: %v", len(errs), errs)
	}
	if errs[0].Code != CodeDateOrdering || errs[1].Code != CodeDurationExceeded {
		t.Errorf("got codes %v, want ordering then duration", codes(errs))
	}
}

func TestDurationDaysRoundsUp(t *testing.T) {
	tests := []struct {
		name string
		a    time.Time
		b    time.Time
		want int
	}{
		{"whole days", day(2024, 6, 1), day(2024, 6, 11), 10},
		{"partial day rounds up", day(2024, 6, 1), day(2024, 6, 11).Add(time.Hour), 11},
		{"reversed is absolute", day(2024, 6, 11), day(2024, 6, 1), 10},
		{"same instant", day(2024, 6, 1), day(2024, 6, 1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := durationDays(tt.a, tt.b); got != tt.want {
				t.Errorf("durationDays = %d, want %d", got, tt.want)
			}
		})
	}
}
