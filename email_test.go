package lettr

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestNewEmail_RequiredFields(t *testing.T) {
	email := NewEmail("sender@example.com", []string{"a@example.com", "b@example.com"}, "Hello")

	req := email.request()
	if req.From != "sender@example.com" {
		t.Errorf("From = %q, want sender@example.com", req.From)
	}
	if len(req.To) != 2 || req.To[0] != "a@example.com" || req.To[1] != "b@example.com" {
		t.Errorf("To = %v, want [a@example.com b@example.com]", req.To)
	}
	if req.Subject != "Hello" {
		t.Errorf("Subject = %q, want Hello", req.Subject)
	}
}

func TestNewEmail_CopiesRecipients(t *testing.T) {
	to := []string{"a@example.com"}
	email := NewEmail("sender@example.com", to, "Hello")

	to[0] = "mutated@example.com"
	if got := email.request().To[0]; got != "a@example.com" {
		t.Errorf("To[0] = %q, want a@example.com (builder must freeze its input)", got)
	}
}

func TestWithSubstitution_LastWriteWins(t *testing.T) {
	email := NewEmail("s@example.com", []string{"r@example.com"}, "Hi",
		WithSubstitution("name", "first"),
		WithSubstitution("name", "second"),
	)

	req := email.request()
	if len(req.SubstitutionData) != 1 {
		t.Fatalf("len(SubstitutionData) = %d, want 1", len(req.SubstitutionData))
	}
	if got := req.SubstitutionData["name"]; got != "second" {
		t.Errorf("SubstitutionData[name] = %v, want second", got)
	}
}

func TestWithSubstitution_DistinctKeys(t *testing.T) {
	email := NewEmail("s@example.com", []string{"r@example.com"}, "Hi",
		WithSubstitution("c", 3),
		WithSubstitution("a", 1),
		WithSubstitution("b", 2),
	)

	req := email.request()
	if len(req.SubstitutionData) != 3 {
		t.Fatalf("len(SubstitutionData) = %d, want 3", len(req.SubstitutionData))
	}
	for key, want := range map[string]int{"a": 1, "b": 2, "c": 3} {
		if got := req.SubstitutionData[key]; got != want {
			t.Errorf("SubstitutionData[%s] = %v, want %d", key, got, want)
		}
	}
}

func TestWithSubstitutionData_MergesByKey(t *testing.T) {
	email := NewEmail("s@example.com", []string{"r@example.com"}, "Hi",
		WithSubstitution("name", "Ada"),
		WithSubstitutionData(map[string]interface{}{"name": "Grace", "city": "London"}),
	)

	req := email.request()
	if got := req.SubstitutionData["name"]; got != "Grace" {
		t.Errorf("SubstitutionData[name] = %v, want Grace", got)
	}
	if got := req.SubstitutionData["city"]; got != "London" {
		t.Errorf("SubstitutionData[city] = %v, want London", got)
	}
}

func TestWithMetadataEntry_LastWriteWins(t *testing.T) {
	email := NewEmail("s@example.com", []string{"r@example.com"}, "Hi",
		WithMetadataEntry("campaign", "spring"),
		WithMetadataEntry("campaign", "summer"),
		WithMetadataEntry("source", "signup"),
	)

	req := email.request()
	if len(req.Metadata) != 2 {
		t.Fatalf("len(Metadata) = %d, want 2", len(req.Metadata))
	}
	if got := req.Metadata["campaign"]; got != "summer" {
		t.Errorf("Metadata[campaign] = %v, want summer", got)
	}
}

func TestWithMetadata_MergesByKey(t *testing.T) {
	email := NewEmail("s@example.com", []string{"r@example.com"}, "Hi",
		WithMetadata(map[string]interface{}{"a": 1, "b": 2}),
		WithMetadata(map[string]interface{}{"b": 3}),
	)

	req := email.request()
	if got := req.Metadata["a"]; got != 1 {
		t.Errorf("Metadata[a] = %v, want 1", got)
	}
	if got := req.Metadata["b"]; got != 3 {
		t.Errorf("Metadata[b] = %v, want 3", got)
	}
}

func TestWithAttachment_PreservesOrder(t *testing.T) {
	email := NewEmail("s@example.com", []string{"r@example.com"}, "Hi",
		WithAttachment(NewAttachment("one.pdf", "application/pdf", "AAAA")),
		WithAttachment(NewAttachment("two.txt", "text/plain", "BBBB")),
	)

	req := email.request()
	if len(req.Attachments) != 2 {
		t.Fatalf("len(Attachments) = %d, want 2", len(req.Attachments))
	}
	if req.Attachments[0].Name != "one.pdf" || req.Attachments[1].Name != "two.txt" {
		t.Errorf("attachment order = [%s %s], want [one.pdf two.txt]",
			req.Attachments[0].Name, req.Attachments[1].Name)
	}
	if req.Attachments[0].Type != "application/pdf" {
		t.Errorf("attachment type = %s, want application/pdf", req.Attachments[0].Type)
	}
}

func TestWithReplyTo_Appends(t *testing.T) {
	email := NewEmail("s@example.com", []string{"r@example.com"}, "Hi",
		WithReplyTo("first@example.com"),
		WithReplyTo("second@example.com"),
	)

	req := email.request()
	if len(req.ReplyTo) != 2 || req.ReplyTo[1] != "second@example.com" {
		t.Errorf("ReplyTo = %v, want two entries ending with second@example.com", req.ReplyTo)
	}
}

func TestRequest_OmitsUnsetFields(t *testing.T) {
	email := NewEmail("s@example.com", []string{"r@example.com"}, "Hi",
		WithText("plain body"),
	)

	data, err := json.Marshal(email.request())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(data, &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	for _, key := range []string{
		"from_name", "html", "reply_to", "template_slug", "template_version",
		"project_id", "substitution_data", "metadata", "attachments", "options",
	} {
		if _, present := body[key]; present {
			t.Errorf("unset field %q was serialized", key)
		}
	}
	for _, key := range []string{"from", "to", "subject", "text"} {
		if _, present := body[key]; !present {
			t.Errorf("set field %q was not serialized", key)
		}
	}
}

func TestRequest_TrackingFlagsNested(t *testing.T) {
	email := NewEmail("s@example.com", []string{"r@example.com"}, "Hi",
		WithHTML("<p>hi</p>"),
		WithClickTracking(true),
		WithOpenTracking(false),
	)

	data, err := json.Marshal(email.request())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var body struct {
		Options map[string]interface{} `json:"options"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if got := body.Options["click_tracking"]; got != true {
		t.Errorf("options.click_tracking = %v, want true", got)
	}
	if got := body.Options["open_tracking"]; got != false {
		t.Errorf("options.open_tracking = %v, want false", got)
	}
	if _, present := body.Options["transactional"]; present {
		t.Error("options.transactional was serialized although unset")
	}
}

func TestValidate_MissingRecipient(t *testing.T) {
	email := NewEmail("s@example.com", nil, "Hi", WithText("body"))

	err := email.validate()
	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("validate() error = %T, want *ValidationError", err)
	}
	if len(valErr.Errors["to"]) == 0 {
		t.Errorf("Errors[to] = %v, want at least one message", valErr.Errors["to"])
	}
}

func TestValidate_MissingBody(t *testing.T) {
	email := NewEmail("s@example.com", []string{"r@example.com"}, "Hi")

	err := email.validate()
	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("validate() error = %T, want *ValidationError", err)
	}
	if len(valErr.Errors["html"]) == 0 {
		t.Errorf("Errors[html] = %v, want at least one message", valErr.Errors["html"])
	}
}

func TestValidate_TemplateCountsAsBody(t *testing.T) {
	email := NewEmail("s@example.com", []string{"r@example.com"}, "Hi",
		WithTemplate("welcome-email"),
	)

	if err := email.validate(); err != nil {
		t.Errorf("validate() error = %v, want nil", err)
	}
}

func TestValidate_EmptyAttachmentFields(t *testing.T) {
	email := NewEmail("s@example.com", []string{"r@example.com"}, "Hi",
		WithText("body"),
		WithAttachment(Attachment{Name: "", ContentType: "application/pdf", Data: "AAAA"}),
	)

	err := email.validate()
	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("validate() error = %T, want *ValidationError", err)
	}
	if len(valErr.Errors["attachments"]) != 1 {
		t.Errorf("Errors[attachments] = %v, want exactly one message", valErr.Errors["attachments"])
	}
}
