// Command testhelper is a thin JSON-in/JSON-out wrapper around the SDK,
// used by cross-language conformance tests. Each command reads its input
// from stdin or arguments and writes a single JSON document to stdout.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	lettr "github.com/lettr-com/lettr-go"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fatal("%v", err)
	}
}

func run(args []string, in io.Reader, out io.Writer) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: testhelper <command> [args]")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	opts := []lettr.Option{}
	if baseURL := os.Getenv("LETTR_URL"); baseURL != "" {
		opts = append(opts, lettr.WithBaseURL(baseURL))
	}

	client, err := lettr.New(os.Getenv("LETTR_API_KEY"), opts...)
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}

	switch args[0] {
	case "health":
		return health(ctx, client, out)
	case "auth-check":
		return authCheck(ctx, client, out)
	case "send":
		return send(ctx, client, in, out)
	case "get-email":
		if len(args) < 2 {
			return fmt.Errorf("usage: testhelper get-email <request_id>")
		}
		return getEmail(ctx, client, args[1], out)
	case "list-domains":
		return listDomains(ctx, client, out)
	default:
		return fmt.Errorf("unknown command: %s", args[0])
	}
}

func health(ctx context.Context, client *lettr.Client, out io.Writer) error {
	resp, err := client.Health(ctx)
	if err != nil {
		return fmt.Errorf("health: %w", err)
	}
	return json.NewEncoder(out).Encode(resp)
}

func authCheck(ctx context.Context, client *lettr.Client, out io.Writer) error {
	resp, err := client.AuthCheck(ctx)
	if err != nil {
		return fmt.Errorf("auth check: %w", err)
	}
	return json.NewEncoder(out).Encode(resp)
}

// SendInput is the JSON document the send command reads from stdin.
type SendInput struct {
	From     string   `json:"from"`
	FromName string   `json:"from_name,omitempty"`
	To       []string `json:"to"`
	Subject  string   `json:"subject"`
	HTML     string   `json:"html,omitempty"`
	Text     string   `json:"text,omitempty"`
}

func send(ctx context.Context, client *lettr.Client, in io.Reader, out io.Writer) error {
	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}

	var input SendInput
	if err := json.Unmarshal(data, &input); err != nil {
		return fmt.Errorf("parse input: %w", err)
	}

	opts := []lettr.EmailOption{}
	if input.FromName != "" {
		opts = append(opts, lettr.WithFromName(input.FromName))
	}
	if input.HTML != "" {
		opts = append(opts, lettr.WithHTML(input.HTML))
	}
	if input.Text != "" {
		opts = append(opts, lettr.WithText(input.Text))
	}

	resp, err := client.Emails.Send(ctx, lettr.NewEmail(input.From, input.To, input.Subject, opts...))
	if err != nil {
		return fmt.Errorf("send: %w", err)
	}

	return json.NewEncoder(out).Encode(map[string]interface{}{
		"request_id": resp.RequestID,
		"accepted":   resp.Accepted,
		"rejected":   resp.Rejected,
	})
}

func getEmail(ctx context.Context, client *lettr.Client, requestID string, out io.Writer) error {
	resp, err := client.Emails.Get(ctx, requestID)
	if err != nil {
		return fmt.Errorf("get email: %w", err)
	}

	type eventOutput struct {
		Type      string `json:"type"`
		Timestamp string `json:"timestamp"`
		RcptTo    string `json:"rcpt_to"`
		Reason    string `json:"reason,omitempty"`
	}

	output := struct {
		Events []eventOutput `json:"events"`
	}{
		Events: make([]eventOutput, 0, len(resp.Results)),
	}
	for _, ev := range resp.Results {
		output.Events = append(output.Events, eventOutput{
			Type:      ev.EventType,
			Timestamp: ev.Timestamp,
			RcptTo:    ev.RcptTo,
			Reason:    ev.Reason,
		})
	}

	return json.NewEncoder(out).Encode(output)
}

func listDomains(ctx context.Context, client *lettr.Client, out io.Writer) error {
	domains, err := client.Domains.List(ctx)
	if err != nil {
		return fmt.Errorf("list domains: %w", err)
	}

	type domainOutput struct {
		Domain  string `json:"domain"`
		Status  string `json:"status"`
		CanSend bool   `json:"can_send"`
	}

	output := struct {
		Domains []domainOutput `json:"domains"`
	}{
		Domains: make([]domainOutput, 0, len(domains)),
	}
	for _, d := range domains {
		output.Domains = append(output.Domains, domainOutput{
			Domain:  d.Domain,
			Status:  d.Status,
			CanSend: d.CanSend,
		})
	}

	return json.NewEncoder(out).Encode(output)
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
