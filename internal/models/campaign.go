package models

import (
	"time"

	"github.com/google/uuid"
)

// Campaign statuses
const (
	CampaignStatusDraft     = "draft"
	CampaignStatusActive    = "active"
	CampaignStatusPaused    = "paused"
	CampaignStatusCompleted = "completed"
)

// Valid state transitions: from -> []to
var ValidCampaignTransitions = map[string][]string{
	CampaignStatusDraft:     {CampaignStatusActive},
	CampaignStatusActive:    {CampaignStatusPaused, CampaignStatusCompleted},
	CampaignStatusPaused:    {CampaignStatusActive, CampaignStatusCompleted},
	CampaignStatusCompleted: {},
}

func IsValidStatusTransition(from, to string) bool {
	allowed, ok := ValidCampaignTransitions[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// CampaignDraft is raw form input: every field is a string exactly as the
// caller typed it. A draft may be partially filled and carries no invariants.
type CampaignDraft struct {
	Name      string `json:"name"`
	Budget    string `json:"budget"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// Campaign is the canonical typed record. It is constructed only by the
// validation transformer from a draft that passed the field rules and is
// never mutated afterwards.
type Campaign struct {
	Name      string    `json:"name"`
	Budget    float64   `json:"budget"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// StoredCampaign is a Campaign the store accepted: it gains an id, an owner,
// a lifecycle status and timestamps. Updates never mutate a stored record in
// place; the full pipeline re-runs and the record is replaced.
type StoredCampaign struct {
	ID          string    `json:"id"`
	OwnerUserID uuid.UUID `json:"owner_user_id"`
	Campaign
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
