package validation

import "github.com/campaign-desk/backend/internal/models"

// Pipeline stages, in evaluation order. A validation attempt walks them
// linearly: a failing stage terminates the attempt, the next attempt starts
// over from the beginning.
const (
	StageFieldValidating    = "field_validating"
	StageTransforming       = "transforming"
	StageCrossValidating    = "cross_validating"
	StageBusinessValidating = "business_validating"
	StageAccepted           = "accepted"
)

// Result is the sole contract between the pipeline and its callers: either
// an accepted typed record or the collected field errors. There is no
// partial-success state. Stage records where the attempt ended, either
// StageAccepted or the stage that rejected it.
type Result struct {
	OK     bool            `json:"ok"`
	Record models.Campaign `json:"record,omitempty"`
	Stage  string          `json:"stage"`
	Errors []Error         `json:"errors,omitempty"`
}

// Pipeline sequences the validation stages over a raw draft.
type Pipeline struct {
	policy *PolicyChecker
}

func NewPipeline(policy *PolicyChecker) *Pipeline {
	return &Pipeline{policy: policy}
}

// Run evaluates every stage including the server-only policy gate. This is
// the authoritative pass used before any store write.
func (p *Pipeline) Run(d models.CampaignDraft) Result {
	return p.run(d, true)
}

// Preflight evaluates the advisory stages only (field, transform,
// cross-field). It exists for real-time form feedback; its verdict is never
// trusted — Run re-checks everything.
func (p *Pipeline) Preflight(d models.CampaignDraft) Result {
	return p.run(d, false)
}

func (p *Pipeline) run(d models.CampaignDraft, withPolicy bool) Result {
	// Each stage collects every applicable error across all fields before
	// the verdict; a failing stage stops the later stages from running.
	if errs := ValidateDraft(d); len(errs) > 0 {
		return rejected(StageFieldValidating, errs)
	}

	record, errs := Transform(d)
	if len(errs) > 0 {
		return rejected(StageTransforming, errs)
	}

	if errs := ValidateCrossField(record); len(errs) > 0 {
		return rejected(StageCrossValidating, errs)
	}

	if withPolicy {
		if errs := p.policy.Validate(record); len(errs) > 0 {
			return rejected(StageBusinessValidating, errs)
		}
	}

	return Result{OK: true, Record: record, Stage: StageAccepted}
}

func rejected(stage string, errs []Error) Result {
	return Result{Stage: stage, Errors: errs}
}
