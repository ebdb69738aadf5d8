package lettr

import (
	"context"

	"github.com/lettr-com/lettr-go/internal/api"
)

// EmailsService provides the /emails operations.
type EmailsService struct {
	api *api.Client
}

// SendEmailResponse is the result of sending an email.
type SendEmailResponse struct {
	// RequestID is the unique ID for the transmission; use it with Get to
	// retrieve delivery events.
	RequestID string
	// Accepted is the number of accepted recipients.
	Accepted int
	// Rejected is the number of rejected recipients.
	Rejected int
}

// Send sends a transactional email.
//
// Local validation runs first; defects are reported as a ValidationError
// with field-keyed messages and no request is sent. A nil email is a
// validation failure, not a panic.
func (s *EmailsService) Send(ctx context.Context, email *CreateEmailOptions) (*SendEmailResponse, error) {
	if email == nil {
		return nil, &ValidationError{
			Message: "email validation failed",
			Errors:  map[string][]string{"email": {"email options are required"}},
		}
	}
	if err := email.validate(); err != nil {
		return nil, err
	}

	data, err := s.api.SendEmail(ctx, email.request())
	if err != nil {
		return nil, wrapError(err)
	}

	return &SendEmailResponse{
		RequestID: data.RequestID,
		Accepted:  data.Accepted,
		Rejected:  data.Rejected,
	}, nil
}

// listEmailsConfig holds configuration for listing emails.
type listEmailsConfig struct {
	perPage    int
	cursor     string
	recipients string
	sentAfter  string
	sentBefore string
}

// ListEmailsOption configures an email list request.
type ListEmailsOption func(*listEmailsConfig)

// WithPerPage sets the number of results per page (1-100).
func WithPerPage(perPage int) ListEmailsOption {
	return func(c *listEmailsConfig) {
		c.perPage = perPage
	}
}

// WithCursor sets the pagination cursor from a previous response.
func WithCursor(cursor string) ListEmailsOption {
	return func(c *listEmailsConfig) {
		c.cursor = cursor
	}
}

// WithRecipients filters by recipient email address.
func WithRecipients(recipients string) ListEmailsOption {
	return func(c *listEmailsConfig) {
		c.recipients = recipients
	}
}

// WithSentAfter filters emails sent on or after this date (ISO 8601).
func WithSentAfter(date string) ListEmailsOption {
	return func(c *listEmailsConfig) {
		c.sentAfter = date
	}
}

// WithSentBefore filters emails sent on or before this date (ISO 8601).
func WithSentBefore(date string) ListEmailsOption {
	return func(c *listEmailsConfig) {
		c.sentBefore = date
	}
}

// Pagination is the cursor-based pagination metadata on email lists.
type Pagination struct {
	// NextCursor is the cursor for the next page; empty when there are no
	// more results.
	NextCursor string
	// PerPage is the number of results per page.
	PerPage int
}

// ListEmailsResponse is the result of listing sent emails.
type ListEmailsResponse struct {
	// Results are the matching email events.
	Results []EmailEvent
	// TotalCount is the total number of matching emails.
	TotalCount int64
	// Pagination carries the cursor for the next page.
	Pagination Pagination
}

// EmailEvent is a sent-email record returned from the list endpoint.
type EmailEvent struct {
	EventID               string
	Timestamp             string
	RequestID             string
	MessageID             string
	Subject               string
	FriendlyFrom          string
	SendingDomain         string
	RcptTo                string
	RawRcptTo             string
	RecipientDomain       string
	MailboxProvider       string
	MailboxProviderRegion string
	SendingIP             string
	ClickTracking         bool
	OpenTracking          bool
	Transactional         bool
	MsgSize               int64
	InjectionTime         string
	RcptMeta              interface{}
}

// List retrieves sent emails with optional filtering and pagination.
// Unset filters never appear in the outgoing query string.
func (s *EmailsService) List(ctx context.Context, opts ...ListEmailsOption) (*ListEmailsResponse, error) {
	cfg := &listEmailsConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	data, err := s.api.ListEmails(ctx, api.ListEmailsParams{
		PerPage:    cfg.perPage,
		Cursor:     cfg.cursor,
		Recipients: cfg.recipients,
		From:       cfg.sentAfter,
		To:         cfg.sentBefore,
	})
	if err != nil {
		return nil, wrapError(err)
	}

	resp := &ListEmailsResponse{
		Results:    make([]EmailEvent, len(data.Results)),
		TotalCount: data.TotalCount,
		Pagination: Pagination{
			NextCursor: data.Pagination.NextCursor,
			PerPage:    data.Pagination.PerPage,
		},
	}
	for i := range data.Results {
		resp.Results[i] = emailEventFromDTO(&data.Results[i])
	}
	return resp, nil
}

// GetEmailResponse is the result of retrieving a single email's events.
type GetEmailResponse struct {
	// Results are the lifecycle events recorded for the transmission.
	Results []EmailEventDetail
	// TotalCount is the total number of events.
	TotalCount int64
}

// EmailEventDetail is one lifecycle event (e.g. "injection", "delivery",
// "bounce") for a single transmission.
type EmailEventDetail struct {
	EventID               string
	EventType             string
	Timestamp             string
	RequestID             string
	MessageID             string
	Subject               string
	FriendlyFrom          string
	SendingDomain         string
	RcptTo                string
	RawRcptTo             string
	RecipientDomain       string
	MailboxProvider       string
	MailboxProviderRegion string
	SendingIP             string
	ClickTracking         bool
	OpenTracking          bool
	Transactional         bool
	MsgSize               int64
	InjectionTime         string
	Reason                string
	RawReason             string
	ErrorCode             string
	RcptMeta              interface{}
}

// Get retrieves all events for an email by its request ID.
func (s *EmailsService) Get(ctx context.Context, requestID string) (*GetEmailResponse, error) {
	data, err := s.api.GetEmail(ctx, requestID)
	if err != nil {
		return nil, wrapError(err)
	}

	resp := &GetEmailResponse{
		Results:    make([]EmailEventDetail, len(data.Results)),
		TotalCount: data.TotalCount,
	}
	for i := range data.Results {
		resp.Results[i] = emailEventDetailFromDTO(&data.Results[i])
	}
	return resp, nil
}

// emailEventFromDTO converts an API DTO to the public EmailEvent type.
func emailEventFromDTO(dto *api.EmailEvent) EmailEvent {
	return EmailEvent{
		EventID:               dto.EventID,
		Timestamp:             dto.Timestamp,
		RequestID:             dto.RequestID,
		MessageID:             dto.MessageID,
		Subject:               dto.Subject,
		FriendlyFrom:          dto.FriendlyFrom,
		SendingDomain:         dto.SendingDomain,
		RcptTo:                dto.RcptTo,
		RawRcptTo:             dto.RawRcptTo,
		RecipientDomain:       dto.RecipientDomain,
		MailboxProvider:       dto.MailboxProvider,
		MailboxProviderRegion: dto.MailboxProviderRegion,
		SendingIP:             dto.SendingIP,
		ClickTracking:         dto.ClickTracking,
		OpenTracking:          dto.OpenTracking,
		Transactional:         dto.Transactional,
		MsgSize:               dto.MsgSize,
		InjectionTime:         dto.InjectionTime,
		RcptMeta:              dto.RcptMeta,
	}
}

// emailEventDetailFromDTO converts an API DTO to the public
// EmailEventDetail type.
func emailEventDetailFromDTO(dto *api.EmailEventDetail) EmailEventDetail {
	return EmailEventDetail{
		EventID:               dto.EventID,
		EventType:             dto.EventType,
		Timestamp:             dto.Timestamp,
		RequestID:             dto.RequestID,
		MessageID:             dto.MessageID,
		Subject:               dto.Subject,
		FriendlyFrom:          dto.FriendlyFrom,
		SendingDomain:         dto.SendingDomain,
		RcptTo:                dto.RcptTo,
		RawRcptTo:             dto.RawRcptTo,
		RecipientDomain:       dto.RecipientDomain,
		MailboxProvider:       dto.MailboxProvider,
		MailboxProviderRegion: dto.MailboxProviderRegion,
		SendingIP:             dto.SendingIP,
		ClickTracking:         dto.ClickTracking,
		OpenTracking:          dto.OpenTracking,
		Transactional:         dto.Transactional,
		MsgSize:               dto.MsgSize,
		InjectionTime:         dto.InjectionTime,
		Reason:                dto.Reason,
		RawReason:             dto.RawReason,
		ErrorCode:             dto.ErrorCode,
		RcptMeta:              dto.RcptMeta,
	}
}
