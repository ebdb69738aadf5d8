package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func runHelper(t *testing.T, handler http.Handler, args []string, stdin string) (string, error) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	t.Setenv("LETTR_API_KEY", "test-key")
	t.Setenv("LETTR_URL", srv.URL)

	var out bytes.Buffer
	err := run(args, strings.NewReader(stdin), &out)
	return out.String(), err
}

func TestRun_NoArgs(t *testing.T) {
	var out bytes.Buffer
	if err := run(nil, strings.NewReader(""), &out); err == nil {
		t.Error("run() error = nil, want usage error")
	}
}

func TestRun_UnknownCommand(t *testing.T) {
	_, err := runHelper(t, http.NotFoundHandler(), []string{"bogus"}, "")
	if err == nil || !strings.Contains(err.Error(), "unknown command") {
		t.Errorf("run() error = %v, want unknown command", err)
	}
}

func TestRun_Health(t *testing.T) {
	out, err := runHelper(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			t.Errorf("path = %s, want /health", r.URL.Path)
		}
		w.Write([]byte(`{"message":"ok","data":{"status":"ok","timestamp":"2025-06-01T12:00:00Z"}}`))
	}), []string{"health"}, "")
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}

	var resp struct {
		Status string `json:"Status"`
	}
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if resp.Status != "ok" {
		t.Errorf("Status = %q, want ok", resp.Status)
	}
}

func TestRun_Send(t *testing.T) {
	out, err := runHelper(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/emails" {
			t.Errorf("got %s %s, want POST /emails", r.Method, r.URL.Path)
		}
		var body map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body["from"] != "a@example.com" || body["subject"] != "Hi" {
			t.Errorf("body = %v", body)
		}
		w.Write([]byte(`{"message":"queued","data":{"request_id":"req_1","accepted":1,"rejected":0}}`))
	}), []string{"send"}, `{"from":"a@example.com","to":["b@example.com"],"subject":"Hi","text":"hello"}`)
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}

	var resp struct {
		RequestID string `json:"request_id"`
		Accepted  int    `json:"accepted"`
	}
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if resp.RequestID != "req_1" || resp.Accepted != 1 {
		t.Errorf("output = %+v", resp)
	}
}

func TestRun_SendInvalidInput(t *testing.T) {
	_, err := runHelper(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("unexpected request")
	}), []string{"send"}, `not json`)
	if err == nil || !strings.Contains(err.Error(), "parse input") {
		t.Errorf("run() error = %v, want parse input error", err)
	}
}

func TestRun_GetEmail(t *testing.T) {
	out, err := runHelper(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/emails/req_1" {
			t.Errorf("path = %s, want /emails/req_1", r.URL.Path)
		}
		w.Write([]byte(`{"message":"ok","data":{"results":[{"type":"delivery","timestamp":"2025-06-01T12:00:00Z","rcpt_to":"b@example.com"}],"total_count":1}}`))
	}), []string{"get-email", "req_1"}, "")
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}

	var resp struct {
		Events []struct {
			Type string `json:"type"`
		} `json:"events"`
	}
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if len(resp.Events) != 1 || resp.Events[0].Type != "delivery" {
		t.Errorf("output = %+v", resp)
	}
}

func TestRun_GetEmailMissingArg(t *testing.T) {
	_, err := runHelper(t, http.NotFoundHandler(), []string{"get-email"}, "")
	if err == nil || !strings.Contains(err.Error(), "usage") {
		t.Errorf("run() error = %v, want usage error", err)
	}
}

func TestRun_ListDomains(t *testing.T) {
	out, err := runHelper(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":"ok","data":{"domains":[{"domain":"example.com","status":"approved","can_send":true}]}}`))
	}), []string{"list-domains"}, "")
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}

	var resp struct {
		Domains []struct {
			Domain  string `json:"domain"`
			CanSend bool   `json:"can_send"`
		} `json:"domains"`
	}
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if len(resp.Domains) != 1 || !resp.Domains[0].CanSend {
		t.Errorf("output = %+v", resp)
	}
}
