package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorCode is the machine-readable category attached to every APIError.
type ErrorCode string

const (
	ErrCodeNetwork        ErrorCode = "network_error"
	ErrCodeInternal       ErrorCode = "internal_error"
	ErrCodeInvalidRequest ErrorCode = "invalid_request"
	ErrCodeAuthentication ErrorCode = "authentication_error"
	ErrCodeForbidden      ErrorCode = "forbidden"
	ErrCodeNotFound       ErrorCode = "resource_not_found"
	ErrCodeValidation     ErrorCode = "validation_error"
	ErrCodeRateLimited    ErrorCode = "rate_limit_exceeded"
	ErrCodeServerError    ErrorCode = "server_error"
	ErrCodeRequestFailed  ErrorCode = "request_failed"
)

// FieldError is one structured validation complaint tied to a request field,
// as sent by the API in the detail array of a 422 response.
type FieldError struct {
	Loc  []any  `json:"loc"`
	Msg  string `json:"msg"`
	Type string `json:"type"`
}

// Field renders the location path as a display name. The first segment is a
// body/query discriminator and is dropped; the rest are joined with ".".
func (f FieldError) Field() string {
	loc := f.Loc
	if len(loc) > 1 {
		loc = loc[1:]
	}

	parts := make([]string, 0, len(loc))
	for _, segment := range loc {
		switch v := segment.(type) {
		case string:
			parts = append(parts, v)
		case float64:
			// JSON numbers decode as float64; loc indexes are integers
			parts = append(parts, fmt.Sprintf("%d", int(v)))
		default:
			parts = append(parts, fmt.Sprintf("%v", v))
		}
	}
	return strings.Join(parts, ".")
}

// APIError is the only error shape that leaves the client layer. It is
// constructed once at the network boundary and never mutated afterwards.
// Status 0 means no HTTP response was received (network or internal error).
type APIError struct {
	Code             ErrorCode    `json:"error_code"`
	Status           int          `json:"status,omitempty"`
	StatusText       string       `json:"status_text,omitempty"`
	Message          string       `json:"message"`
	ValidationErrors []FieldError `json:"validation_errors,omitempty"`

	cause error
}

// Error returns the log-oriented description. The user-facing text is in
// Message.
func (e *APIError) Error() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s", e.Code)
	if e.Status > 0 {
		fmt.Fprintf(&b, ": dialdesk status %d", e.Status)
	}
	if e.cause != nil {
		fmt.Fprintf(&b, ": %v", e.cause)
	} else if e.Message != "" {
		fmt.Fprintf(&b, " - %s", e.Message)
	}

	return b.String()
}

func (e *APIError) Unwrap() error {
	return e.cause
}

// AsAPIError extracts an *APIError from an error chain.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// newConnectionError creates an APIError for requests that never reached the
// server (DNS, connection refusal, transport-level timeout).
func newConnectionError(err error) *APIError {
	return &APIError{
		Code:    ErrCodeNetwork,
		Message: "Unable to reach the dialdesk service. Please check your connection and try again.",
		cause:   err,
	}
}

// newInternalError wraps an unexpected local failure, keeping the original
// cause for diagnostics. Supply what was being done when the error occurred.
func newInternalError(err error, while string) *APIError {
	return &APIError{
		Code:    ErrCodeInternal,
		Message: "An unexpected error occurred. Please try again.",
		cause:   fmt.Errorf("%s: %w", while, err),
	}
}

// newSessionExpiredError is the fixed 401 error. The response body is never
// consulted: whatever the server said, the session is over.
func newSessionExpiredError() *APIError {
	return &APIError{
		Code:       ErrCodeAuthentication,
		Status:     http.StatusUnauthorized,
		StatusText: http.StatusText(http.StatusUnauthorized),
		Message:    "Your session has expired. Please log in again.",
	}
}

// errorDetail is the two-shape union the API uses for error bodies:
// {"detail": "..."} or {"detail": [{"loc": [...], "msg": "...", "type": "..."}]}.
// Unknown shapes fall through to the per-status fallback table.
type errorDetail struct {
	Detail json.RawMessage `json:"detail"`
}

// newStatusError builds the APIError for a non-2xx, non-401 response.
// body may be empty or unparsable; that degrades to the fallback table.
func newStatusError(status int, statusText string, body []byte) *APIError {
	apiErr := &APIError{
		Code:       codeForStatus(status),
		Status:     status,
		StatusText: statusText,
	}

	message, fieldErrors := parseErrorBody(body)

	switch {
	case status == http.StatusForbidden:
		// canned on purpose: the server-side reason is not for end users
		apiErr.Message = fallbackMessage(status)
	case len(fieldErrors) > 0:
		apiErr.ValidationErrors = fieldErrors
		apiErr.Message = JoinFieldErrors(fieldErrors)
		if status == http.StatusUnprocessableEntity {
			apiErr.Code = ErrCodeValidation
		}
	case message != "":
		apiErr.Message = message
	default:
		apiErr.Message = fallbackMessage(status)
	}

	return apiErr
}

// parseErrorBody decodes the detail union defensively. It never fails: a
// body that doesn't match either shape yields ("", nil).
func parseErrorBody(body []byte) (string, []FieldError) {
	if len(body) == 0 {
		return "", nil
	}

	var wrapper errorDetail
	if err := json.Unmarshal(body, &wrapper); err != nil || len(wrapper.Detail) == 0 {
		return "", nil
	}

	var fieldErrors []FieldError
	if err := json.Unmarshal(wrapper.Detail, &fieldErrors); err == nil && len(fieldErrors) > 0 {
		return "", fieldErrors
	}

	var message string
	if err := json.Unmarshal(wrapper.Detail, &message); err == nil {
		return message, nil
	}

	return "", nil
}

// JoinFieldErrors renders the short one-line summary used in alerts:
// "<field>: <msg>" entries joined with "; ".
func JoinFieldErrors(fieldErrors []FieldError) string {
	parts := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field(), fe.Msg))
	}
	return strings.Join(parts, "; ")
}

func codeForStatus(status int) ErrorCode {
	switch {
	case status == http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case status == http.StatusUnauthorized:
		return ErrCodeAuthentication
	case status == http.StatusForbidden:
		return ErrCodeForbidden
	case status == http.StatusNotFound:
		return ErrCodeNotFound
	case status == http.StatusUnprocessableEntity:
		return ErrCodeInvalidRequest
	case status == http.StatusTooManyRequests:
		return ErrCodeRateLimited
	case status >= 500:
		return ErrCodeServerError
	default:
		return ErrCodeRequestFailed
	}
}

// fallbackMessage is the per-status message table used when the server did
// not supply a usable detail string.
func fallbackMessage(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "Invalid request. Please check your input and try again."
	case http.StatusForbidden:
		return "You don't have permission to access this resource."
	case http.StatusNotFound:
		return "The requested resource was not found."
	case http.StatusUnprocessableEntity:
		return "The submitted data failed validation. Please review your input."
	case http.StatusTooManyRequests:
		return "Too many requests. Please try again in a few moments."
	case http.StatusInternalServerError:
		return "Internal server error. Please try again later."
	case http.StatusBadGateway, http.StatusServiceUnavailable:
		return "The service is temporarily unavailable. Please try again later."
	case http.StatusGatewayTimeout:
		return "The server took too long to respond. Please try again."
	default:
		return fmt.Sprintf("Request failed with status %d", status)
	}
}
