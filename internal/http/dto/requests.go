package dto

import "github.com/campaign-desk/backend/internal/models"

type AuthTokenRequest struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
}

// CampaignDraftRequest carries the raw form input: every field is a string,
// exactly as typed. Typing happens inside the validation pipeline, never in
// the transport layer.
type CampaignDraftRequest struct {
	Name      string `json:"name"`
	Budget    string `json:"budget"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (r CampaignDraftRequest) Draft() models.CampaignDraft {
	return models.CampaignDraft{
		Name:      r.Name,
		Budget:    r.Budget,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}
