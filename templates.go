package lettr

import (
	"context"

	"github.com/lettr-com/lettr-go/internal/api"
)

// TemplatesService provides the /templates operations.
type TemplatesService struct {
	api *api.Client
}

// Template is an email template.
type Template struct {
	// ID is the template identifier.
	ID int64
	// Name is the template name.
	Name string
	// Slug is the URL-friendly identifier used when sending.
	Slug string
	// ProjectID is the project the template belongs to.
	ProjectID int64
	// FolderID is the folder within the project; zero for the root folder.
	FolderID int64
	// CreatedAt is the creation timestamp.
	CreatedAt string
	// UpdatedAt is the last update timestamp.
	UpdatedAt string
}

// TemplatePagination is the page-based pagination metadata on template
// lists.
type TemplatePagination struct {
	Total       int64
	PerPage     int
	CurrentPage int
	LastPage    int
}

// ListTemplatesResponse is the result of listing templates.
type ListTemplatesResponse struct {
	Templates  []Template
	Pagination TemplatePagination
}

// listTemplatesConfig holds configuration for listing templates.
type listTemplatesConfig struct {
	projectID int64
	perPage   int
	page      int
}

// ListTemplatesOption configures a template list request.
type ListTemplatesOption func(*listTemplatesConfig)

// WithTemplatesProject filters by project ID. When unset, the team's
// default project is used.
func WithTemplatesProject(projectID int64) ListTemplatesOption {
	return func(c *listTemplatesConfig) {
		c.projectID = projectID
	}
}

// WithTemplatesPerPage sets the number of results per page (1-100).
func WithTemplatesPerPage(perPage int) ListTemplatesOption {
	return func(c *listTemplatesConfig) {
		c.perPage = perPage
	}
}

// WithTemplatesPage sets the page number.
func WithTemplatesPage(page int) ListTemplatesOption {
	return func(c *listTemplatesConfig) {
		c.page = page
	}
}

// List retrieves email templates with optional pagination. Unset options
// never appear in the outgoing query string.
func (s *TemplatesService) List(ctx context.Context, opts ...ListTemplatesOption) (*ListTemplatesResponse, error) {
	cfg := &listTemplatesConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	data, err := s.api.ListTemplates(ctx, api.ListTemplatesParams{
		ProjectID: cfg.projectID,
		PerPage:   cfg.perPage,
		Page:      cfg.page,
	})
	if err != nil {
		return nil, wrapError(err)
	}

	resp := &ListTemplatesResponse{
		Templates: make([]Template, len(data.Templates)),
		Pagination: TemplatePagination{
			Total:       data.Pagination.Total,
			PerPage:     data.Pagination.PerPage,
			CurrentPage: data.Pagination.CurrentPage,
			LastPage:    data.Pagination.LastPage,
		},
	}
	for i, t := range data.Templates {
		resp.Templates[i] = Template{
			ID:        t.ID,
			Name:      t.Name,
			Slug:      t.Slug,
			ProjectID: t.ProjectID,
			FolderID:  t.FolderID,
			CreatedAt: t.CreatedAt,
			UpdatedAt: t.UpdatedAt,
		}
	}
	return resp, nil
}

// CreateTemplateOptions is the frozen input to TemplatesService.Create.
// Build one with NewTemplate; provide either HTML or editor JSON content,
// not both.
type CreateTemplateOptions struct {
	name      string
	html      string
	json      string
	projectID *int64
	folderID  *int64
}

// TemplateOption configures a template at construction time.
type TemplateOption func(*CreateTemplateOptions)

// NewTemplate creates a new CreateTemplateOptions with the required name,
// applying any options. The returned value is frozen.
func NewTemplate(name string, opts ...TemplateOption) *CreateTemplateOptions {
	t := &CreateTemplateOptions{name: name}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// WithTemplateHTML sets the HTML content of the template.
func WithTemplateHTML(html string) TemplateOption {
	return func(t *CreateTemplateOptions) {
		t.html = html
	}
}

// WithTemplateJSON sets the editor JSON content of the template.
func WithTemplateJSON(json string) TemplateOption {
	return func(t *CreateTemplateOptions) {
		t.json = json
	}
}

// WithTemplateProject sets the project the template is created in. When
// unset, the team's default project is used.
func WithTemplateProject(projectID int64) TemplateOption {
	return func(t *CreateTemplateOptions) {
		t.projectID = &projectID
	}
}

// WithTemplateFolder sets the folder within the project.
func WithTemplateFolder(folderID int64) TemplateOption {
	return func(t *CreateTemplateOptions) {
		t.folderID = &folderID
	}
}

// validate reports local defects before any network call is attempted.
func (t *CreateTemplateOptions) validate() error {
	fields := make(map[string][]string)

	if t.name == "" {
		fields["name"] = append(fields["name"], "template name is required")
	}
	if t.html == "" && t.json == "" {
		fields["html"] = append(fields["html"], "either html or json content must be provided")
	}
	if t.html != "" && t.json != "" {
		fields["html"] = append(fields["html"], "html and json content are mutually exclusive")
	}

	if len(fields) > 0 {
		return &ValidationError{
			Message: "template validation failed",
			Errors:  fields,
		}
	}
	return nil
}

// MergeTag is a personalization tag extracted from template content.
type MergeTag struct {
	// Key is the merge tag key.
	Key string
	// Required reports whether the tag must be supplied when sending.
	Required bool
}

// CreateTemplateResponse is the result of creating a template.
type CreateTemplateResponse struct {
	ID            int64
	Name          string
	Slug          string
	ProjectID     int64
	FolderID      int64
	ActiveVersion int
	MergeTags     []MergeTag
	CreatedAt     string
}

// Create creates a new email template.
//
// Local validation runs first; defects are reported as a ValidationError
// and no request is sent.
func (s *TemplatesService) Create(ctx context.Context, template *CreateTemplateOptions) (*CreateTemplateResponse, error) {
	if template == nil {
		return nil, &ValidationError{
			Message: "template validation failed",
			Errors:  map[string][]string{"template": {"template options are required"}},
		}
	}
	if err := template.validate(); err != nil {
		return nil, err
	}

	data, err := s.api.CreateTemplate(ctx, &api.CreateTemplateRequest{
		Name:      template.name,
		HTML:      template.html,
		JSON:      template.json,
		ProjectID: template.projectID,
		FolderID:  template.folderID,
	})
	if err != nil {
		return nil, wrapError(err)
	}

	resp := &CreateTemplateResponse{
		ID:            data.ID,
		Name:          data.Name,
		Slug:          data.Slug,
		ProjectID:     data.ProjectID,
		FolderID:      data.FolderID,
		ActiveVersion: data.ActiveVersion,
		CreatedAt:     data.CreatedAt,
	}
	if len(data.MergeTags) > 0 {
		resp.MergeTags = make([]MergeTag, len(data.MergeTags))
		for i, m := range data.MergeTags {
			resp.MergeTags[i] = MergeTag{Key: m.Key, Required: m.Required}
		}
	}
	return resp, nil
}
