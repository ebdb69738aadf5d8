// Package apierrors provides shared error types for the Lettr client.
//
// The types here are mirrored by the public error types in the root
// package; internal packages use these so they never have to import the
// root package.
package apierrors

import (
	"fmt"
	"sort"
	"strings"
)

// APIError represents an error response from the Lettr API.
type APIError struct {
	// Message is the human-readable error message from the server.
	Message string
	// ErrorCode is the machine-readable error code, if the server sent one.
	ErrorCode string
}

func (e *APIError) Error() string {
	if e.ErrorCode != "" {
		return fmt.Sprintf("[%s] %s", e.ErrorCode, e.Message)
	}
	return e.Message
}

// ValidationError represents a validation error response from the Lettr
// API, carrying per-field messages.
type ValidationError struct {
	Message   string
	ErrorCode string
	// Errors maps a field name to its list of violation messages.
	Errors map[string][]string
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)

	fields := make([]string, 0, len(e.Errors))
	for field := range e.Errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	for _, field := range fields {
		for _, msg := range e.Errors[field] {
			fmt.Fprintf(&b, "\n  %s: %s", field, msg)
		}
	}
	return b.String()
}

// NetworkError represents a network-level failure.
type NetworkError struct {
	Err error
	URL string
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// DecodeError indicates a response body that matched neither the expected
// success shape nor a known error shape. The raw status code and body are
// preserved for diagnostics.
type DecodeError struct {
	StatusCode int
	Body       []byte
}

func (e *DecodeError) Error() string {
	body := string(e.Body)
	if len(body) > 256 {
		body = body[:256] + "..."
	}
	return fmt.Sprintf("unexpected response (HTTP %d): %s", e.StatusCode, body)
}
