package lettr

import (
	"fmt"

	"github.com/lettr-com/lettr-go/internal/api"
)

// CreateEmailOptions is the frozen input to EmailsService.Send. Build one
// with NewEmail; required fields are constructor arguments and optional
// fields are EmailOption values applied once at construction.
//
// The builder performs no network I/O and no cross-field checks; those
// happen in Send, before dispatch.
type CreateEmailOptions struct {
	from             string
	fromName         string
	to               []string
	subject          string
	html             string
	text             string
	replyTo          []string
	templateSlug     string
	templateVersion  *int
	projectID        *int64
	substitutionData map[string]interface{}
	metadata         map[string]interface{}
	attachments      []Attachment
	clickTracking    *bool
	openTracking     *bool
	transactional    *bool
}

// Attachment is a file attachment for an email. Data carries the
// base64-encoded file content; the server is authoritative for size and
// content validation.
type Attachment struct {
	// Name is the filename of the attachment.
	Name string
	// ContentType is the MIME type, e.g. "application/pdf".
	ContentType string
	// Data is the base64-encoded file content.
	Data string
}

// NewAttachment creates a new Attachment.
func NewAttachment(name, contentType, data string) Attachment {
	return Attachment{
		Name:        name,
		ContentType: contentType,
		Data:        data,
	}
}

// EmailOption configures an email at construction time.
type EmailOption func(*CreateEmailOptions)

// NewEmail creates a new CreateEmailOptions with the required sender,
// recipients and subject, applying any options. The returned value is
// frozen; scalar options are last-write-wins, map-valued options merge by
// key, and attachments keep their insertion order.
func NewEmail(from string, to []string, subject string, opts ...EmailOption) *CreateEmailOptions {
	e := &CreateEmailOptions{
		from:    from,
		to:      append([]string(nil), to...),
		subject: subject,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// WithFromName sets the sender display name.
func WithFromName(name string) EmailOption {
	return func(e *CreateEmailOptions) {
		e.fromName = name
	}
}

// WithHTML sets the HTML body of the email.
func WithHTML(html string) EmailOption {
	return func(e *CreateEmailOptions) {
		e.html = html
	}
}

// WithText sets the plain text body of the email.
func WithText(text string) EmailOption {
	return func(e *CreateEmailOptions) {
		e.text = text
	}
}

// WithReplyTo adds a reply-to address.
func WithReplyTo(address string) EmailOption {
	return func(e *CreateEmailOptions) {
		e.replyTo = append(e.replyTo, address)
	}
}

// WithTemplate sets the slug of a pre-defined template to send with.
func WithTemplate(slug string) EmailOption {
	return func(e *CreateEmailOptions) {
		e.templateSlug = slug
	}
}

// WithTemplateVersion sets the template version number.
func WithTemplateVersion(version int) EmailOption {
	return func(e *CreateEmailOptions) {
		e.templateVersion = &version
	}
}

// WithProjectID sets the project ID used for template lookup.
func WithProjectID(projectID int64) EmailOption {
	return func(e *CreateEmailOptions) {
		e.projectID = &projectID
	}
}

// WithSubstitution adds one substitution entry for template
// personalization. Setting the same key twice keeps the last value.
func WithSubstitution(key string, value interface{}) EmailOption {
	return func(e *CreateEmailOptions) {
		if e.substitutionData == nil {
			e.substitutionData = make(map[string]interface{})
		}
		e.substitutionData[key] = value
	}
}

// WithSubstitutionData merges a set of substitution entries by key.
func WithSubstitutionData(data map[string]interface{}) EmailOption {
	return func(e *CreateEmailOptions) {
		if e.substitutionData == nil {
			e.substitutionData = make(map[string]interface{}, len(data))
		}
		for k, v := range data {
			e.substitutionData[k] = v
		}
	}
}

// WithMetadataEntry adds one metadata entry. Setting the same key twice
// keeps the last value.
func WithMetadataEntry(key string, value interface{}) EmailOption {
	return func(e *CreateEmailOptions) {
		if e.metadata == nil {
			e.metadata = make(map[string]interface{})
		}
		e.metadata[key] = value
	}
}

// WithMetadata merges a set of metadata entries by key.
func WithMetadata(metadata map[string]interface{}) EmailOption {
	return func(e *CreateEmailOptions) {
		if e.metadata == nil {
			e.metadata = make(map[string]interface{}, len(metadata))
		}
		for k, v := range metadata {
			e.metadata[k] = v
		}
	}
}

// WithAttachment adds a file attachment. Attachments are sent in the
// order they were added.
func WithAttachment(attachment Attachment) EmailOption {
	return func(e *CreateEmailOptions) {
		e.attachments = append(e.attachments, attachment)
	}
}

// WithClickTracking enables or disables click tracking.
func WithClickTracking(enabled bool) EmailOption {
	return func(e *CreateEmailOptions) {
		e.clickTracking = &enabled
	}
}

// WithOpenTracking enables or disables open tracking.
func WithOpenTracking(enabled bool) EmailOption {
	return func(e *CreateEmailOptions) {
		e.openTracking = &enabled
	}
}

// WithTransactional marks the email as transactional.
func WithTransactional(transactional bool) EmailOption {
	return func(e *CreateEmailOptions) {
		e.transactional = &transactional
	}
}

// validate reports local defects before any network call is attempted.
func (e *CreateEmailOptions) validate() error {
	fields := make(map[string][]string)

	if e.from == "" {
		fields["from"] = append(fields["from"], "sender address is required")
	}
	if len(e.to) == 0 {
		fields["to"] = append(fields["to"], "at least one recipient is required")
	}
	for i, addr := range e.to {
		if addr == "" {
			fields["to"] = append(fields["to"], fmt.Sprintf("recipient %d is empty", i))
		}
	}
	if e.subject == "" {
		fields["subject"] = append(fields["subject"], "subject is required")
	}
	if e.html == "" && e.text == "" && e.templateSlug == "" {
		fields["html"] = append(fields["html"], "one of html, text, or a template slug must be provided")
	}
	for i, a := range e.attachments {
		if a.Name == "" {
			fields["attachments"] = append(fields["attachments"], fmt.Sprintf("attachment %d: name is required", i))
		}
		if a.ContentType == "" {
			fields["attachments"] = append(fields["attachments"], fmt.Sprintf("attachment %d: content type is required", i))
		}
		if a.Data == "" {
			fields["attachments"] = append(fields["attachments"], fmt.Sprintf("attachment %d: data is required", i))
		}
	}

	if len(fields) > 0 {
		return &ValidationError{
			Message: "email validation failed",
			Errors:  fields,
		}
	}
	return nil
}

// request builds the wire request from the frozen options.
func (e *CreateEmailOptions) request() *api.SendEmailRequest {
	req := &api.SendEmailRequest{
		From:             e.from,
		FromName:         e.fromName,
		To:               e.to,
		Subject:          e.subject,
		HTML:             e.html,
		Text:             e.text,
		ReplyTo:          e.replyTo,
		TemplateSlug:     e.templateSlug,
		TemplateVersion:  e.templateVersion,
		ProjectID:        e.projectID,
		SubstitutionData: e.substitutionData,
		Metadata:         e.metadata,
	}

	if len(e.attachments) > 0 {
		req.Attachments = make([]api.Attachment, len(e.attachments))
		for i, a := range e.attachments {
			req.Attachments[i] = api.Attachment{
				Name: a.Name,
				Type: a.ContentType,
				Data: a.Data,
			}
		}
	}

	if e.clickTracking != nil || e.openTracking != nil || e.transactional != nil {
		req.Options = &api.EmailOptions{
			ClickTracking: e.clickTracking,
			OpenTracking:  e.openTracking,
			Transactional: e.transactional,
		}
	}

	return req
}
