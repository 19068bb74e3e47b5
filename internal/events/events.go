package events

import "context"

// Event types
const (
	EventCampaignCreated       = "campaign_created"
	EventCampaignUpdated       = "campaign_updated"
	EventCampaignStatusChanged = "campaign_status_changed"
	EventCampaignDeleted       = "campaign_deleted"
)

// StreamCampaign is the pub/sub channel carrying campaign lifecycle events.
const StreamCampaign = "events:campaign"

type Event struct {
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload"`
}

type Publisher interface {
	Publish(ctx context.Context, stream string, event Event) error
}

type Subscriber interface {
	Subscribe(ctx context.Context, stream string, handler func(Event)) error
}
