package services

import (
	"context"
	"errors"
	"testing"

	"github.com/campaign-desk/backend/internal/events"
	"github.com/campaign-desk/backend/internal/models"
	"github.com/campaign-desk/backend/internal/repositories"
	"github.com/campaign-desk/backend/internal/validation"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type capturedEvents struct {
	published []events.Event
}

func (c *capturedEvents) Publish(_ context.Context, _ string, event events.Event) error {
	c.published = append(c.published, event)
	return nil
}

func newTestService() (*CampaignService, *repositories.MemoryCampaignRepo, *capturedEvents) {
	repo := repositories.NewMemoryCampaignRepo()
	captured := &capturedEvents{}
	svc := NewCampaignService(
		repo,
		validation.NewPipeline(validation.NewPolicyChecker(nil)),
		captured,
		zap.NewNop(),
	)
	return svc, repo, captured
}

func validDraft() models.CampaignDraft {
	return models.CampaignDraft{
		Name:      "Summer Sale",
		Budget:    "100",
		StartDate: "2024-06-01",
		EndDate:   "2024-06-10",
	}
}

func TestCreateAcceptsAndStores(t *testing.T) {
	svc, _, captured := newTestService()
	ctx := context.Background()
	owner := uuid.New()

	stored, errs := svc.Create(ctx, owner, validDraft())
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if stored.ID == "" {
		t.Error("id not assigned")
	}
	if stored.Status != models.CampaignStatusDraft {
		t.Errorf("status = %q, want draft", stored.Status)
	}
	if stored.Budget != 100 {
		t.Errorf("budget = %v, want typed 100", stored.Budget)
	}

	got, err := svc.GetByID(ctx, stored.ID, owner)
	if err != nil {
		t.Fatalf("get after create: %v", err)
	}
	if got.Name != "Summer Sale" {
		t.Errorf("name = %q", got.Name)
	}

	if len(captured.published) != 1 || captured.published[0].Type != events.EventCampaignCreated {
		t.Errorf("events = %v, want one campaign_created", captured.published)
	}
}

func TestCreateRejectionLeavesNoTrace(t *testing.T) {
	svc, _, captured := newTestService()
	ctx := context.Background()
	owner := uuid.New()

	tests := []struct {
		name  string
		d     models.CampaignDraft
		field string
	}{
		{"short name", models.CampaignDraft{Name: "ab", Budget: "100", StartDate: "2024-06-01", EndDate: "2024-06-10"}, "name"},
		{"budget too high", models.CampaignDraft{Name: "Valid Name", Budget: "5000", StartDate: "2024-06-01", EndDate: "2024-06-10"}, "budget"},
		{"reversed dates", models.CampaignDraft{Name: "Valid Name", Budget: "100", StartDate: "2024-06-10", EndDate: "2024-06-01"}, "end_date"},
		{"duration too long", models.CampaignDraft{Name: "Valid Name", Budget: "100", StartDate: "2024-01-01", EndDate: "2024-03-01"}, "end_date"},
		{"prohibited name", models.CampaignDraft{Name: "Lottery Winner", Budget: "100", StartDate: "2024-06-01", EndDate: "2024-06-10"}, "name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stored, errs := svc.Create(ctx, owner, tt.d)
			if stored != nil {
				t.Fatal("rejected draft must not be stored")
			}
			if len(errs) == 0 {
				t.Fatal("expected errors")
			}
			if errs[0].Field != tt.field {
				t.Errorf("error on %q, want %q", errs[0].Field, tt.field)
			}
		})
	}

	list, err := svc.List(ctx, owner, repositories.CampaignFilter{})
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 0 {
		t.Errorf("store has %d records after rejections, want 0", len(list))
	}
	if len(captured.published) != 0 {
		t.Errorf("events published for rejected drafts: %v", captured.published)
	}
}

func TestPreflightIsAdvisoryOnly(t *testing.T) {
	svc, _, _ := newTestService()

	// Passes preflight (policy stage unreachable there) but nothing is
	// persisted, and the authoritative create still rejects it.
	d := models.CampaignDraft{Name: "Lottery Winner", Budget: "100", StartDate: "2024-06-01", EndDate: "2024-06-10"}
	if result := svc.Preflight(d); !result.OK {
		t.Fatalf("preflight rejected: %v", result.Errors)
	}

	stored, errs := svc.Create(context.Background(), uuid.New(), d)
	if stored != nil || len(errs) == 0 {
		t.Fatal("create must re-run every stage and reject")
	}
}

func TestUpdateReplacesRecord(t *testing.T) {
	svc, _, captured := newTestService()
	ctx := context.Background()
	owner := uuid.New()

	stored, errs := svc.Create(ctx, owner, validDraft())
	if len(errs) != 0 {
		t.Fatal(errs)
	}

	d := validDraft()
	d.Name = "Winter Sale"
	d.Budget = "250.5"
	updated, valErrs, err := svc.Update(ctx, stored.ID, owner, d)
	if err != nil || len(valErrs) != 0 {
		t.Fatalf("update: err=%v valErrs=%v", err, valErrs)
	}
	if updated.ID != stored.ID {
		t.Errorf("id changed on update: %q -> %q", stored.ID, updated.ID)
	}
	if updated.Name != "Winter Sale" || updated.Budget != 250.5 {
		t.Errorf("record not replaced: %+v", updated.Campaign)
	}
	if !updated.CreatedAt.Equal(stored.CreatedAt) {
		t.Error("created_at changed on update")
	}

	if captured.published[len(captured.published)-1].Type != events.EventCampaignUpdated {
		t.Error("missing campaign_updated event")
	}
}

func TestUpdateRejectionKeepsOldRecord(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()
	owner := uuid.New()

	stored, _ := svc.Create(ctx, owner, validDraft())

	d := validDraft()
	d.Budget = "5"
	_, valErrs, err := svc.Update(ctx, stored.ID, owner, d)
	if err != nil {
		t.Fatal(err)
	}
	if len(valErrs) == 0 {
		t.Fatal("expected validation errors")
	}

	got, err := svc.GetByID(ctx, stored.ID, owner)
	if err != nil {
		t.Fatal(err)
	}
	if got.Budget != 100 {
		t.Errorf("budget = %v, rejection must not touch the stored record", got.Budget)
	}
}

func TestOwnershipIsEnforced(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()
	owner := uuid.New()
	stranger := uuid.New()

	stored, _ := svc.Create(ctx, owner, validDraft())

	if _, err := svc.GetByID(ctx, stored.ID, stranger); !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("get as stranger = %v, want not found", err)
	}
	if _, _, err := svc.Update(ctx, stored.ID, stranger, validDraft()); !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("update as stranger = %v, want not found", err)
	}
	if err := svc.Delete(ctx, stored.ID, stranger); !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("delete as stranger = %v, want not found", err)
	}
}

func TestStatusLifecycle(t *testing.T) {
	svc, _, captured := newTestService()
	ctx := context.Background()
	owner := uuid.New()

	stored, _ := svc.Create(ctx, owner, validDraft())

	updated, err := svc.UpdateStatus(ctx, stored.ID, owner, models.CampaignStatusActive)
	if err != nil {
		t.Fatalf("draft->active: %v", err)
	}
	if updated.Status != models.CampaignStatusActive {
		t.Errorf("status = %q", updated.Status)
	}

	if _, err := svc.UpdateStatus(ctx, stored.ID, owner, models.CampaignStatusDraft); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("active->draft = %v, want ErrInvalidTransition", err)
	}

	last := captured.published[len(captured.published)-1]
	if last.Type != events.EventCampaignStatusChanged {
		t.Errorf("last event = %q, want campaign_status_changed", last.Type)
	}
}

func TestDeleteRemovesRecord(t *testing.T) {
	svc, _, captured := newTestService()
	ctx := context.Background()
	owner := uuid.New()

	stored, _ := svc.Create(ctx, owner, validDraft())
	if err := svc.Delete(ctx, stored.ID, owner); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.GetByID(ctx, stored.ID, owner); !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("get after delete = %v, want not found", err)
	}
	if captured.published[len(captured.published)-1].Type != events.EventCampaignDeleted {
		t.Error("missing campaign_deleted event")
	}
}

type failingRepo struct {
	repositories.CampaignRepo
}

func (f *failingRepo) Create(_ context.Context, _ *models.StoredCampaign) error {
	return errors.New("connection refused")
}

func TestStorageFailureBecomesGeneralError(t *testing.T) {
	svc := NewCampaignService(
		&failingRepo{CampaignRepo: repositories.NewMemoryCampaignRepo()},
		validation.NewPipeline(validation.NewPolicyChecker(nil)),
		nil,
		zap.NewNop(),
	)

	stored, errs := svc.Create(context.Background(), uuid.New(), validDraft())
	if stored != nil {
		t.Fatal("nothing may be returned on storage failure")
	}
	if len(errs) != 1 || errs[0].Field != validation.FieldGeneral {
		t.Fatalf("errs = %v, want one general error", errs)
	}
	if errs[0].Message == "connection refused" {
		t.Error("storage cause leaked to the caller")
	}
}
