package repositories

import (
	"context"
	"errors"

	"github.com/campaign-desk/backend/internal/models"
	"github.com/google/uuid"
)

var ErrNotFound = errors.New("campaign not found")

type CampaignFilter struct {
	OwnerUserID *uuid.UUID
	Status      *string
	Limit       int
	Offset      int
}

// CampaignRepo is the storage collaborator the pipeline writes into. The
// pipeline only ever appends accepted records or replaces them wholesale;
// it never mutates a stored campaign field by field.
type CampaignRepo interface {
	// Create stores an accepted record and fills ID, CreatedAt and UpdatedAt.
	Create(ctx context.Context, c *models.StoredCampaign) error
	GetByID(ctx context.Context, id string) (*models.StoredCampaign, error)
	List(ctx context.Context, f CampaignFilter) ([]models.StoredCampaign, error)
	// Replace swaps the campaign payload of an existing record, keeping its
	// id, owner, status and creation time.
	Replace(ctx context.Context, c *models.StoredCampaign) error
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}
