package lettr

import (
	"context"

	"github.com/lettr-com/lettr-go/internal/api"
)

// WebhooksService provides the /webhooks operations.
type WebhooksService struct {
	api *api.Client
}

// Webhook is a webhook configured for the account.
type Webhook struct {
	// ID is the unique webhook identifier.
	ID string
	// Name is the webhook name.
	Name string
	// URL is the destination the webhook delivers to.
	URL string
	// Enabled reports whether the webhook is active.
	Enabled bool
	// EventTypes are the event types the webhook subscribes to; nil means
	// all events.
	EventTypes []string
	// AuthType is the authentication type (e.g. "basic", "none").
	AuthType string
	// HasAuthCredentials reports whether credentials are configured.
	HasAuthCredentials bool
	// LastSuccessfulAt is the timestamp of the last successful delivery.
	LastSuccessfulAt string
	// LastFailureAt is the timestamp of the last failed delivery.
	LastFailureAt string
	// LastStatus is the last delivery status (e.g. "success", "failure").
	LastStatus string
}

// List retrieves all webhooks configured for the account.
func (s *WebhooksService) List(ctx context.Context) ([]Webhook, error) {
	dtos, err := s.api.ListWebhooks(ctx)
	if err != nil {
		return nil, wrapError(err)
	}

	webhooks := make([]Webhook, len(dtos))
	for i := range dtos {
		webhooks[i] = webhookFromDTO(&dtos[i])
	}
	return webhooks, nil
}

// Get retrieves details of a single webhook.
func (s *WebhooksService) Get(ctx context.Context, webhookID string) (*Webhook, error) {
	dto, err := s.api.GetWebhook(ctx, webhookID)
	if err != nil {
		return nil, wrapError(err)
	}

	w := webhookFromDTO(dto)
	return &w, nil
}

// webhookFromDTO converts an API DTO to the public Webhook type.
func webhookFromDTO(dto *api.Webhook) Webhook {
	return Webhook{
		ID:                 dto.ID,
		Name:               dto.Name,
		URL:                dto.URL,
		Enabled:            dto.Enabled,
		EventTypes:         dto.EventTypes,
		AuthType:           dto.AuthType,
		HasAuthCredentials: dto.HasAuthCredentials,
		LastSuccessfulAt:   dto.LastSuccessfulAt,
		LastFailureAt:      dto.LastFailureAt,
		LastStatus:         dto.LastStatus,
	}
}
