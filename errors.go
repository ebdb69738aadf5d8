package lettr

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/lettr-com/lettr-go/internal/apierrors"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingAPIKey is returned when no API key is provided.
	ErrMissingAPIKey = errors.New("API key is required")

	// ErrAPIKeyNotSet is returned by NewFromEnv when the LETTR_API_KEY
	// environment variable is not set.
	ErrAPIKeyNotSet = errors.New("LETTR_API_KEY environment variable not set")
)

// LettrError is implemented by all SDK errors.
type LettrError interface {
	error
	LettrError() // marker method
}

// APIError represents an error response from the Lettr API: the server
// rejected an otherwise well-formed request.
type APIError struct {
	// Message is the human-readable error message.
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

// LettrError implements the LettrError interface.
func (e *APIError) LettrError() {}

// ValidationError represents field-level validation failures, either
// detected locally before dispatch or reported by the API.
type ValidationError struct {
	// Message is the human-readable summary.
	Message string
	// ErrorCode is the machine-readable error code, if any.
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

// LettrError implements the LettrError interface.
func (e *ValidationError) LettrError() {}

// NetworkError represents a transport-level failure: connection refused,
// timeout, TLS failure, or context cancellation. It is never retried.
type NetworkError struct {
	Err error
	URL string
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying transport error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// LettrError implements the LettrError interface.
func (e *NetworkError) LettrError() {}

// DecodeError indicates a response that matched neither the expected
// success shape nor a known error shape. StatusCode and Body preserve the
// raw response for diagnostics.
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

// LettrError implements the LettrError interface.
func (e *DecodeError) LettrError() {}

// wrapError converts internal API errors to public errors so callers only
// ever see the types defined in this package.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *apierrors.APIError
	if errors.As(err, &apiErr) {
		return &APIError{
			Message:   apiErr.Message,
			ErrorCode: apiErr.ErrorCode,
		}
	}

	var valErr *apierrors.ValidationError
	if errors.As(err, &valErr) {
		return &ValidationError{
			Message:   valErr.Message,
			ErrorCode: valErr.ErrorCode,
			Errors:    valErr.Errors,
		}
	}

	var netErr *apierrors.NetworkError
	if errors.As(err, &netErr) {
		return &NetworkError{
			Err: netErr.Err,
			URL: netErr.URL,
		}
	}

	var decErr *apierrors.DecodeError
	if errors.As(err, &decErr) {
		return &DecodeError{
			StatusCode: decErr.StatusCode,
			Body:       decErr.Body,
		}
	}

	return err
}
