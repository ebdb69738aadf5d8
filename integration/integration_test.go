// Package integration contains integration tests that run against the
// live Lettr API. They are skipped unless LETTR_API_KEY is set.
package integration

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/joho/godotenv"
	lettr "github.com/lettr-com/lettr-go"
)

var (
	apiKey  string
	baseURL string
)

func TestMain(m *testing.M) {
	// Load .env file if it exists (won't error if missing)
	if err := godotenv.Load("../.env"); err != nil {
		os.Stderr.WriteString("Note: .env file not found at project root\n")
	}

	apiKey = os.Getenv("LETTR_API_KEY")
	baseURL = os.Getenv("LETTR_URL")

	if apiKey == "" {
		os.Stderr.WriteString("Skipping integration tests: LETTR_API_KEY not set\n")
		os.Exit(0)
	}

	os.Exit(m.Run())
}

func newClient(t *testing.T) *lettr.Client {
	t.Helper()

	opts := []lettr.Option{
		lettr.WithTimeout(30 * time.Second),
	}
	if baseURL != "" {
		opts = append(opts, lettr.WithBaseURL(baseURL))
	}

	client, err := lettr.New(apiKey, opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return client
}

func TestIntegration_Health(t *testing.T) {
	client := newClient(t)

	health, err := client.Health(context.Background())
	if err != nil {
		t.Fatalf("Health() error = %v", err)
	}

	t.Logf("Health: status=%s timestamp=%s", health.Status, health.Timestamp)

	if health.Status == "" {
		t.Error("Status is empty")
	}
}

func TestIntegration_AuthCheck(t *testing.T) {
	client := newClient(t)

	auth, err := client.AuthCheck(context.Background())
	if err != nil {
		t.Fatalf("AuthCheck() error = %v", err)
	}

	t.Logf("Authenticated as team %d", auth.TeamID)

	if auth.TeamID == 0 {
		t.Error("TeamID is zero")
	}
}

func TestIntegration_AuthCheckBadKey(t *testing.T) {
	client, err := lettr.New("invalid-key")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	_, err = client.AuthCheck(context.Background())
	var apiErr *lettr.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("AuthCheck() error = %T (%v), want *APIError", err, err)
	}
}

func TestIntegration_ListDomains(t *testing.T) {
	client := newClient(t)

	domains, err := client.Domains.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	t.Logf("Account has %d domains", len(domains))

	for _, d := range domains {
		if d.Domain == "" {
			t.Error("domain with empty name")
		}
	}
}

func TestIntegration_ListEmails(t *testing.T) {
	client := newClient(t)

	resp, err := client.Emails.List(context.Background(), lettr.WithPerPage(5))
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	t.Logf("Total sent emails: %d", resp.TotalCount)

	if len(resp.Results) > 5 {
		t.Errorf("got %d results, want at most 5", len(resp.Results))
	}
}

func TestIntegration_ListWebhooks(t *testing.T) {
	client := newClient(t)

	webhooks, err := client.Webhooks.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	t.Logf("Account has %d webhooks", len(webhooks))
}

func TestIntegration_ListTemplates(t *testing.T) {
	client := newClient(t)

	resp, err := client.Templates.List(context.Background(), lettr.WithTemplatesPerPage(5))
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	t.Logf("Templates on page: %d of %d total", len(resp.Templates), resp.Pagination.Total)
}
