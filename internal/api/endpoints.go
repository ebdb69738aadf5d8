package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// Health checks the health of the API.
func (c *Client) Health(ctx context.Context) (*HealthData, error) {
	var resp struct {
		Message string     `json:"message"`
		Data    HealthData `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/health", nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// AuthCheck validates the API key and returns the associated team.
func (c *Client) AuthCheck(ctx context.Context) (*AuthCheckData, error) {
	var resp struct {
		Message string        `json:"message"`
		Data    AuthCheckData `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/auth/check", nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// SendEmail sends a transactional email.
func (c *Client) SendEmail(ctx context.Context, req *SendEmailRequest) (*SendEmailData, error) {
	var resp struct {
		Message string        `json:"message"`
		Data    SendEmailData `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, "/emails", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// ListEmails lists sent emails with optional filtering and pagination.
func (c *Client) ListEmails(ctx context.Context, params ListEmailsParams) (*ListEmailsData, error) {
	query := url.Values{}
	if params.PerPage > 0 {
		query.Set("per_page", strconv.Itoa(params.PerPage))
	}
	if params.Cursor != "" {
		query.Set("cursor", params.Cursor)
	}
	if params.Recipients != "" {
		query.Set("recipients", params.Recipients)
	}
	if params.From != "" {
		query.Set("from", params.From)
	}
	if params.To != "" {
		query.Set("to", params.To)
	}

	var resp struct {
		Message string         `json:"message"`
		Data    ListEmailsData `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/emails", query, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// GetEmail retrieves all events for an email by its request ID.
func (c *Client) GetEmail(ctx context.Context, requestID string) (*GetEmailData, error) {
	path := fmt.Sprintf("/emails/%s", url.PathEscape(requestID))
	var resp struct {
		Message string       `json:"message"`
		Data    GetEmailData `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// ListDomains lists the sending domains registered with the account.
func (c *Client) ListDomains(ctx context.Context) ([]Domain, error) {
	var resp struct {
		Message string `json:"message"`
		Data    struct {
			Domains []Domain `json:"domains"`
		} `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/domains", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data.Domains, nil
}

// CreateDomain registers a new sending domain.
func (c *Client) CreateDomain(ctx context.Context, domain string) (*CreateDomainData, error) {
	body := struct {
		Domain string `json:"domain"`
	}{Domain: domain}

	var resp struct {
		Message string           `json:"message"`
		Data    CreateDomainData `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, "/domains", nil, body, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// GetDomain retrieves details of a single sending domain.
func (c *Client) GetDomain(ctx context.Context, domain string) (*DomainDetail, error) {
	path := fmt.Sprintf("/domains/%s", url.PathEscape(domain))
	var resp struct {
		Message string       `json:"message"`
		Data    DomainDetail `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// DeleteDomain deletes a sending domain.
func (c *Client) DeleteDomain(ctx context.Context, domain string) error {
	path := fmt.Sprintf("/domains/%s", url.PathEscape(domain))
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// ListWebhooks lists the webhooks configured for the account.
func (c *Client) ListWebhooks(ctx context.Context) ([]Webhook, error) {
	var resp struct {
		Message string `json:"message"`
		Data    struct {
			Webhooks []Webhook `json:"webhooks"`
		} `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/webhooks", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data.Webhooks, nil
}

// GetWebhook retrieves details of a single webhook.
func (c *Client) GetWebhook(ctx context.Context, webhookID string) (*Webhook, error) {
	path := fmt.Sprintf("/webhooks/%s", url.PathEscape(webhookID))
	var resp struct {
		Message string  `json:"message"`
		Data    Webhook `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// ListTemplates lists email templates with optional pagination.
func (c *Client) ListTemplates(ctx context.Context, params ListTemplatesParams) (*ListTemplatesData, error) {
	query := url.Values{}
	if params.ProjectID > 0 {
		query.Set("project_id", strconv.FormatInt(params.ProjectID, 10))
	}
	if params.PerPage > 0 {
		query.Set("per_page", strconv.Itoa(params.PerPage))
	}
	if params.Page > 0 {
		query.Set("page", strconv.Itoa(params.Page))
	}

	var resp struct {
		Message string            `json:"message"`
		Data    ListTemplatesData `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/templates", query, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// CreateTemplate creates a new email template.
func (c *Client) CreateTemplate(ctx context.Context, req *CreateTemplateRequest) (*CreateTemplateData, error) {
	var resp struct {
		Message string             `json:"message"`
		Data    CreateTemplateData `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, "/templates", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}
