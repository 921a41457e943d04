package client

import (
	"fmt"
	"net/http"
	"strings"
)

// Severity buckets an APIError for display purposes: which colour the alert
// gets and whether the operator should worry.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityError    Severity = "error"
	SeverityCritical Severity = "critical"
)

// ErrorSeverity classifies an error from the client layer.
// Validation and permission/auth problems are operator-correctable
// (warning), missing resources are informational, server-side failures are
// critical, and network errors or anything unclassified is a plain error.
func ErrorSeverity(err error) Severity {
	apiErr, ok := AsAPIError(err)
	if !ok {
		return SeverityError
	}

	switch {
	case IsValidationError(apiErr), IsAuthError(apiErr), IsPermissionError(apiErr):
		return SeverityWarning
	case IsNotFoundError(apiErr):
		return SeverityInfo
	case IsServerError(apiErr):
		return SeverityCritical
	default:
		return SeverityError
	}
}

// IsNetworkError reports whether the request never completed at the
// transport level.
func IsNetworkError(err error) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.Code == ErrCodeNetwork
}

// IsAuthError reports whether the API rejected the session (401).
func IsAuthError(err error) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.Status == http.StatusUnauthorized
}

// IsValidationError reports whether the API returned 422 with structured
// field errors.
func IsValidationError(err error) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.Status == http.StatusUnprocessableEntity && len(apiErr.ValidationErrors) > 0
}

// IsPermissionError reports whether the API denied access (403).
func IsPermissionError(err error) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.Status == http.StatusForbidden
}

// IsNotFoundError reports whether the requested resource does not exist (404).
func IsNotFoundError(err error) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.Status == http.StatusNotFound
}

// IsServerError reports whether the API itself failed (5xx).
func IsServerError(err error) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.Status >= 500
}

// SuggestedAction returns a short instruction telling the operator what to
// do about the error, keyed by category.
func SuggestedAction(err error) string {
	apiErr, ok := AsAPIError(err)
	if !ok {
		return "Try again. Contact support if the problem persists."
	}

	switch {
	case IsNetworkError(apiErr):
		return "Check your connection and retry."
	case IsAuthError(apiErr):
		return "Log in again."
	case IsValidationError(apiErr):
		return "Review the highlighted fields and resubmit."
	case IsPermissionError(apiErr):
		return "Contact an administrator if you need access."
	case IsNotFoundError(apiErr):
		return "The item may have been removed - refresh the list."
	case apiErr.Status == http.StatusTooManyRequests:
		return "Wait a few moments before trying again."
	case IsServerError(apiErr):
		return "Wait a moment and retry. Contact support if the problem persists."
	default:
		return "Try again. Contact support if the problem persists."
	}
}

// Diagnostic renders the multi-line description used for logs: error code,
// status line, and one line per field error. Deterministic for a given
// error value. This is never shown to end users.
func Diagnostic(err error) string {
	apiErr, ok := AsAPIError(err)
	if !ok {
		return fmt.Sprintf("unclassified error: %v", err)
	}

	var b strings.Builder

	fmt.Fprintf(&b, "api error: %s", apiErr.Code)
	if apiErr.Status > 0 {
		fmt.Fprintf(&b, "\nstatus: %d %s", apiErr.Status, apiErr.StatusText)
	}
	if apiErr.cause != nil {
		fmt.Fprintf(&b, "\ncause: %v", apiErr.cause)
	}
	if len(apiErr.ValidationErrors) > 0 {
		b.WriteString("\nfield errors:")
		for _, fe := range apiErr.ValidationErrors {
			fmt.Fprintf(&b, "\n  %s: %s (%s)", fe.Field(), fe.Msg, fe.Type)
		}
	}

	return b.String()
}
