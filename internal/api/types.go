package api

// Wire types for the Lettr API. Successful responses arrive wrapped in a
// {message, data} envelope; the endpoint methods unwrap it.

// SendEmailRequest is the body for POST /emails. Optional fields are
// omitted from the JSON when unset.
type SendEmailRequest struct {
	From             string                 `json:"from"`
	FromName         string                 `json:"from_name,omitempty"`
	To               []string               `json:"to"`
	Subject          string                 `json:"subject"`
	HTML             string                 `json:"html,omitempty"`
	Text             string                 `json:"text,omitempty"`
	ReplyTo          []string               `json:"reply_to,omitempty"`
	TemplateSlug     string                 `json:"template_slug,omitempty"`
	TemplateVersion  *int                   `json:"template_version,omitempty"`
	ProjectID        *int64                 `json:"project_id,omitempty"`
	SubstitutionData map[string]interface{} `json:"substitution_data,omitempty"`
	Metadata         map[string]interface{} `json:"metadata,omitempty"`
	Attachments      []Attachment           `json:"attachments,omitempty"`
	Options          *EmailOptions          `json:"options,omitempty"`
}

// Attachment is a file attachment; Data is base64-encoded content.
type Attachment struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Data string `json:"data"`
}

// EmailOptions holds tracking and delivery flags.
type EmailOptions struct {
	ClickTracking *bool `json:"click_tracking,omitempty"`
	OpenTracking  *bool `json:"open_tracking,omitempty"`
	Transactional *bool `json:"transactional,omitempty"`
}

// SendEmailData is the payload returned from sending an email.
type SendEmailData struct {
	RequestID string `json:"request_id"`
	Accepted  int    `json:"accepted"`
	Rejected  int    `json:"rejected"`
}

// ListEmailsParams holds the query parameters for GET /emails. Zero
// values are omitted from the query string.
type ListEmailsParams struct {
	PerPage    int
	Cursor     string
	Recipients string
	From       string
	To         string
}

// ListEmailsData is the payload returned from listing sent emails.
type ListEmailsData struct {
	Results    []EmailEvent `json:"results"`
	TotalCount int64        `json:"total_count"`
	Pagination Pagination   `json:"pagination"`
}

// Pagination is the cursor-based pagination metadata on email lists.
type Pagination struct {
	NextCursor string `json:"next_cursor"`
	PerPage    int    `json:"per_page"`
}

// EmailEvent is a sent-email record from the list endpoint.
type EmailEvent struct {
	EventID               string      `json:"event_id"`
	Timestamp             string      `json:"timestamp"`
	RequestID             string      `json:"request_id"`
	MessageID             string      `json:"message_id"`
	Subject               string      `json:"subject"`
	FriendlyFrom          string      `json:"friendly_from"`
	SendingDomain         string      `json:"sending_domain"`
	RcptTo                string      `json:"rcpt_to"`
	RawRcptTo             string      `json:"raw_rcpt_to"`
	RecipientDomain       string      `json:"recipient_domain"`
	MailboxProvider       string      `json:"mailbox_provider"`
	MailboxProviderRegion string      `json:"mailbox_provider_region"`
	SendingIP             string      `json:"sending_ip"`
	ClickTracking         bool        `json:"click_tracking"`
	OpenTracking          bool        `json:"open_tracking"`
	Transactional         bool        `json:"transactional"`
	MsgSize               int64       `json:"msg_size"`
	InjectionTime         string      `json:"injection_time"`
	RcptMeta              interface{} `json:"rcpt_meta"`
}

// GetEmailData is the payload returned from the email detail endpoint.
type GetEmailData struct {
	Results    []EmailEventDetail `json:"results"`
	TotalCount int64              `json:"total_count"`
}

// EmailEventDetail is one lifecycle event (injection, delivery, bounce)
// for a single transmission.
type EmailEventDetail struct {
	EventID               string      `json:"event_id"`
	EventType             string      `json:"type"`
	Timestamp             string      `json:"timestamp"`
	RequestID             string      `json:"request_id"`
	MessageID             string      `json:"message_id"`
	Subject               string      `json:"subject"`
	FriendlyFrom          string      `json:"friendly_from"`
	SendingDomain         string      `json:"sending_domain"`
	RcptTo                string      `json:"rcpt_to"`
	RawRcptTo             string      `json:"raw_rcpt_to"`
	RecipientDomain       string      `json:"recipient_domain"`
	MailboxProvider       string      `json:"mailbox_provider"`
	MailboxProviderRegion string      `json:"mailbox_provider_region"`
	SendingIP             string      `json:"sending_ip"`
	ClickTracking         bool        `json:"click_tracking"`
	OpenTracking          bool        `json:"open_tracking"`
	Transactional         bool        `json:"transactional"`
	MsgSize               int64       `json:"msg_size"`
	InjectionTime         string      `json:"injection_time"`
	Reason                string      `json:"reason"`
	RawReason             string      `json:"raw_reason"`
	ErrorCode             string      `json:"error_code"`
	RcptMeta              interface{} `json:"rcpt_meta"`
}

// Domain is a sending domain as returned from the list endpoint.
type Domain struct {
	Domain      string `json:"domain"`
	Status      string `json:"status"`
	StatusLabel string `json:"status_label"`
	CanSend     bool   `json:"can_send"`
	CnameStatus string `json:"cname_status"`
	DkimStatus  string `json:"dkim_status"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// CreateDomainData is the payload returned from registering a domain.
type CreateDomainData struct {
	Domain      string    `json:"domain"`
	Status      string    `json:"status"`
	StatusLabel string    `json:"status_label"`
	Dkim        *DkimInfo `json:"dkim"`
}

// DkimInfo is the DKIM signing configuration for a new domain.
type DkimInfo struct {
	Public   string `json:"public"`
	Selector string `json:"selector"`
	Headers  string `json:"headers"`
}

// DomainDetail is the payload returned from the domain detail endpoint.
type DomainDetail struct {
	Domain         string      `json:"domain"`
	Status         string      `json:"status"`
	StatusLabel    string      `json:"status_label"`
	CanSend        bool        `json:"can_send"`
	CnameStatus    string      `json:"cname_status"`
	DkimStatus     string      `json:"dkim_status"`
	TrackingDomain string      `json:"tracking_domain"`
	DNS            *DNSRecords `json:"dns"`
	CreatedAt      string      `json:"created_at"`
	UpdatedAt      string      `json:"updated_at"`
}

// DNSRecords holds the DNS records needed for domain verification.
type DNSRecords struct {
	Dkim *DkimDNSRecord `json:"dkim"`
}

// DkimDNSRecord is the DKIM record to publish in DNS.
type DkimDNSRecord struct {
	Selector string `json:"selector"`
	Public   string `json:"public"`
}

// Webhook is a configured webhook.
type Webhook struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	URL                string   `json:"url"`
	Enabled            bool     `json:"enabled"`
	EventTypes         []string `json:"event_types"`
	AuthType           string   `json:"auth_type"`
	HasAuthCredentials bool     `json:"has_auth_credentials"`
	LastSuccessfulAt   string   `json:"last_successful_at"`
	LastFailureAt      string   `json:"last_failure_at"`
	LastStatus         string   `json:"last_status"`
}

// ListTemplatesParams holds the query parameters for GET /templates.
type ListTemplatesParams struct {
	ProjectID int64
	PerPage   int
	Page      int
}

// ListTemplatesData is the payload returned from listing templates.
type ListTemplatesData struct {
	Templates  []Template         `json:"templates"`
	Pagination TemplatePagination `json:"pagination"`
}

// Template is an email template.
type Template struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	ProjectID int64  `json:"project_id"`
	FolderID  int64  `json:"folder_id"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// TemplatePagination is the page-based pagination metadata on template
// lists.
type TemplatePagination struct {
	Total       int64 `json:"total"`
	PerPage     int   `json:"per_page"`
	CurrentPage int   `json:"current_page"`
	LastPage    int   `json:"last_page"`
}

// CreateTemplateRequest is the body for POST /templates.
type CreateTemplateRequest struct {
	Name      string `json:"name"`
	HTML      string `json:"html,omitempty"`
	JSON      string `json:"json,omitempty"`
	ProjectID *int64 `json:"project_id,omitempty"`
	FolderID  *int64 `json:"folder_id,omitempty"`
}

// CreateTemplateData is the payload returned from creating a template.
type CreateTemplateData struct {
	ID            int64      `json:"id"`
	Name          string     `json:"name"`
	Slug          string     `json:"slug"`
	ProjectID     int64      `json:"project_id"`
	FolderID      int64      `json:"folder_id"`
	ActiveVersion int        `json:"active_version"`
	MergeTags     []MergeTag `json:"merge_tags"`
	CreatedAt     string     `json:"created_at"`
}

// MergeTag is a personalization tag extracted from template content.
type MergeTag struct {
	Key      string `json:"key"`
	Required bool   `json:"required"`
}

// HealthData is the payload returned from the health endpoint.
type HealthData struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// AuthCheckData is the payload returned from the auth check endpoint.
type AuthCheckData struct {
	TeamID    int64  `json:"team_id"`
	Timestamp string `json:"timestamp"`
}
