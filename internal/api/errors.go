package api

import (
	"encoding/json"

	"github.com/lettr-com/lettr-go/internal/apierrors"
)

// rawErrorResponse is the intermediate shape used to detect which kind of
// error body the server sent.
type rawErrorResponse struct {
	Message   string              `json:"message"`
	ErrorCode string              `json:"error_code"`
	Errors    map[string][]string `json:"errors"`
}

// parseErrorResponse maps a non-2xx body to the matching error type.
//
// A body with field errors becomes a ValidationError, a body with just a
// message becomes an APIError, and anything that does not decode as a
// known error shape becomes a DecodeError carrying the raw status and
// body.
func parseErrorResponse(statusCode int, body []byte) error {
	var raw rawErrorResponse
	if err := json.Unmarshal(body, &raw); err != nil || raw.Message == "" {
		return &apierrors.DecodeError{StatusCode: statusCode, Body: body}
	}

	if raw.Errors != nil {
		return &apierrors.ValidationError{
			Message:   raw.Message,
			ErrorCode: raw.ErrorCode,
			Errors:    raw.Errors,
		}
	}

	return &apierrors.APIError{
		Message:   raw.Message,
		ErrorCode: raw.ErrorCode,
	}
}
