package lettr

import (
	"context"
	"os"

	"github.com/lettr-com/lettr-go/internal/api"
)

// EnvAPIKey is the environment variable read by NewFromEnv.
const EnvAPIKey = "LETTR_API_KEY"

// Client is the Lettr API client. Create one with New or NewFromEnv, then
// access the API through the resource services exposed as fields.
//
// A Client is immutable after construction and safe for concurrent use.
type Client struct {
	// Emails provides email sending, listing, and retrieval.
	Emails *EmailsService
	// Domains provides sending-domain management.
	Domains *DomainsService
	// Webhooks provides webhook listing and retrieval.
	Webhooks *WebhooksService
	// Templates provides template listing and creation.
	Templates *TemplatesService

	api *api.Client
}

// New creates a new Lettr client with the given API key.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	cfg := &clientConfig{
		baseURL:   defaultBaseURL,
		userAgent: "lettr-go/" + Version,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	apiClient, err := api.NewClient(api.Config{
		BaseURL:    cfg.baseURL,
		APIKey:     apiKey,
		UserAgent:  cfg.userAgent,
		HTTPClient: cfg.httpClient,
		Timeout:    cfg.timeout,
	})
	if err != nil {
		return nil, err
	}

	return &Client{
		Emails:    &EmailsService{api: apiClient},
		Domains:   &DomainsService{api: apiClient},
		Webhooks:  &WebhooksService{api: apiClient},
		Templates: &TemplatesService{api: apiClient},
		api:       apiClient,
	}, nil
}

// NewFromEnv creates a new Lettr client from the LETTR_API_KEY
// environment variable. The variable is read once, here; absence is a
// configuration error, not a per-call failure.
func NewFromEnv(opts ...Option) (*Client, error) {
	apiKey := os.Getenv(EnvAPIKey)
	if apiKey == "" {
		return nil, ErrAPIKeyNotSet
	}
	return New(apiKey, opts...)
}

// HealthResponse is the result of a health check.
type HealthResponse struct {
	// Status is the health status reported by the server (e.g. "ok").
	Status string
	// Timestamp is when the server performed the check.
	Timestamp string
}

// Health checks the health of the Lettr API.
//
// The endpoint does not require a valid API key on the server side; the
// request is still sent with the client's credential attached.
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	data, err := c.api.Health(ctx)
	if err != nil {
		return nil, wrapError(err)
	}
	return &HealthResponse{
		Status:    data.Status,
		Timestamp: data.Timestamp,
	}, nil
}

// AuthCheckResponse is the result of validating the API key.
type AuthCheckResponse struct {
	// TeamID is the team associated with the API key.
	TeamID int64
	// Timestamp is when the server performed the check.
	Timestamp string
}

// AuthCheck validates the API key and returns the associated team.
func (c *Client) AuthCheck(ctx context.Context) (*AuthCheckResponse, error) {
	data, err := c.api.AuthCheck(ctx)
	if err != nil {
		return nil, wrapError(err)
	}
	return &AuthCheckResponse{
		TeamID:    data.TeamID,
		Timestamp: data.Timestamp,
	}, nil
}
