package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/campaign-desk/backend/internal/events"
	"github.com/campaign-desk/backend/internal/models"
	"github.com/campaign-desk/backend/internal/repositories"
	"github.com/campaign-desk/backend/internal/validation"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrInvalidTransition = errors.New("invalid status transition")

// CampaignService runs the validation pipeline over incoming drafts and is
// the only writer of the campaign store. A store write happens exclusively
// when the pipeline accepts; a rejected attempt leaves no trace.
type CampaignService struct {
	repo      repositories.CampaignRepo
	pipeline  *validation.Pipeline
	publisher events.Publisher
	log       *zap.Logger
}

func NewCampaignService(
	repo repositories.CampaignRepo,
	pipeline *validation.Pipeline,
	publisher events.Publisher,
	log *zap.Logger,
) *CampaignService {
	return &CampaignService{
		repo:      repo,
		pipeline:  pipeline,
		publisher: publisher,
		log:       log,
	}
}

// Preflight runs the advisory stages only. Nothing is persisted and the
// verdict is never trusted by Create or Update.
func (s *CampaignService) Preflight(d models.CampaignDraft) validation.Result {
	return s.pipeline.Preflight(d)
}

// Create validates a draft through every stage and stores the record on
// accept. Validation failures come back as field errors; a storage failure
// is logged and surfaced as a single general error, never as its cause.
func (s *CampaignService) Create(ctx context.Context, userID uuid.UUID, d models.CampaignDraft) (*models.StoredCampaign, []validation.Error) {
	result := s.pipeline.Run(d)
	if !result.OK {
		return nil, result.Errors
	}

	stored := &models.StoredCampaign{
		OwnerUserID: userID,
		Campaign:    result.Record,
		Status:      models.CampaignStatusDraft,
	}
	if err := s.repo.Create(ctx, stored); err != nil {
		s.log.Error("campaign store write failed", zap.Error(err))
		return nil, []validation.Error{validation.SystemError()}
	}

	s.publish(ctx, events.EventCampaignCreated, stored)
	return stored, nil
}

func (s *CampaignService) GetByID(ctx context.Context, id string, userID uuid.UUID) (*models.StoredCampaign, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.OwnerUserID != userID {
		return nil, repositories.ErrNotFound
	}
	return c, nil
}

func (s *CampaignService) List(ctx context.Context, userID uuid.UUID, f repositories.CampaignFilter) ([]models.StoredCampaign, error) {
	f.OwnerUserID = &userID
	return s.repo.List(ctx, f)
}

// Update re-runs the full pipeline against the existing id and replaces the
// record on accept, keeping id, owner, status and creation time. The error
// return covers lookup failures; validation failures come back separately.
func (s *CampaignService) Update(ctx context.Context, id string, userID uuid.UUID, d models.CampaignDraft) (*models.StoredCampaign, []validation.Error, error) {
	existing, err := s.GetByID(ctx, id, userID)
	if err != nil {
		return nil, nil, err
	}

	result := s.pipeline.Run(d)
	if !result.OK {
		return nil, result.Errors, nil
	}

	stored := &models.StoredCampaign{
		ID:          existing.ID,
		OwnerUserID: existing.OwnerUserID,
		Campaign:    result.Record,
	}
	if err := s.repo.Replace(ctx, stored); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, nil, err
		}
		s.log.Error("campaign store replace failed", zap.Error(err), zap.String("id", id))
		return nil, []validation.Error{validation.SystemError()}, nil
	}

	s.publish(ctx, events.EventCampaignUpdated, stored)
	return stored, nil, nil
}

// UpdateStatus moves a campaign along its lifecycle. Typed data is not
// touched, so the pipeline does not re-run.
func (s *CampaignService) UpdateStatus(ctx context.Context, id string, userID uuid.UUID, status string) (*models.StoredCampaign, error) {
	existing, err := s.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if !models.IsValidStatusTransition(existing.Status, status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, existing.Status, status)
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	updated, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, events.EventCampaignStatusChanged, updated)
	return updated, nil
}

func (s *CampaignService) Delete(ctx context.Context, id string, userID uuid.UUID) error {
	existing, err := s.GetByID(ctx, id, userID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, events.EventCampaignDeleted, existing)
	return nil
}

func (s *CampaignService) publish(ctx context.Context, eventType string, c *models.StoredCampaign) {
	if s.publisher == nil {
		return
	}
	err := s.publisher.Publish(ctx, events.StreamCampaign, events.Event{
		Type: eventType,
		Payload: map[string]any{
			"campaign_id":   c.ID,
			"owner_user_id": c.OwnerUserID.String(),
			"status":        c.Status,
		},
	})
	if err != nil {
		s.log.Warn("event publish failed", zap.String("type", eventType), zap.Error(err))
	}
}
