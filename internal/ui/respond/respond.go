// Package respond writes the console's JSON responses. It is the single
// exit point for errors: every *client.APIError crossing the HTTP boundary
// goes through APIError so that logging and the response shape stay in one
// place.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dialdesk/callconsole/internal/client"
	"github.com/dialdesk/callconsole/internal/logger"
)

type ErrorResponse struct {
	ErrorCode        client.ErrorCode    `json:"error_code" example:"validation_error"`
	Message          string              `json:"message" example:"message describing the error"`
	Severity         client.Severity     `json:"severity" example:"warning"`
	Action           string              `json:"action,omitempty" example:"Log in again."`
	ValidationErrors []client.FieldError `json:"validation_errors,omitempty"`
}

// WithError writes a JSON error response and logs it through the
// request-scoped logger.
func WithError(w http.ResponseWriter, r *http.Request, statusCode int, errorCode client.ErrorCode, message string) {
	requestLogger := logger.ContextRequestLogger(r.Context())

	logError(requestLogger, statusCode, string(errorCode), message)

	writeError(w, r, statusCode, ErrorResponse{
		ErrorCode: errorCode,
		Message:   message,
		Severity:  severityForStatus(statusCode),
	})
}

// WithAPIError maps a failed client call onto the HTTP boundary: status from
// the error (network failures become 502, local faults 500), the short
// user message plus the action suggestion in the body, the full diagnostic
// in the log.
func WithAPIError(w http.ResponseWriter, r *http.Request, err error) {
	requestLogger := logger.ContextRequestLogger(r.Context())

	apiErr, ok := client.AsAPIError(err)
	if !ok {
		requestLogger.Error("unclassified error reached the response boundary",
			slog.String("error", err.Error()),
		)
		writeError(w, r, http.StatusInternalServerError, ErrorResponse{
			ErrorCode: client.ErrCodeInternal,
			Message:   "An unexpected error occurred. Please try again.",
			Severity:  client.SeverityError,
		})
		return
	}

	statusCode := apiErr.Status
	if statusCode == 0 {
		if client.IsNetworkError(apiErr) {
			statusCode = http.StatusBadGateway
		} else {
			statusCode = http.StatusInternalServerError
		}
	}

	logError(requestLogger, statusCode, string(apiErr.Code), client.Diagnostic(apiErr))

	writeError(w, r, statusCode, ErrorResponse{
		ErrorCode:        apiErr.Code,
		Message:          apiErr.Message,
		Severity:         client.ErrorSeverity(apiErr),
		Action:           client.SuggestedAction(apiErr),
		ValidationErrors: apiErr.ValidationErrors,
	})
}

func WithJSON(w http.ResponseWriter, status int, payload any) {
	if status == http.StatusNoContent {
		w.WriteHeader(status)
		return
	}

	data, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error_code":"internal_error","message":"Internal Server Error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

func writeError(w http.ResponseWriter, r *http.Request, statusCode int, body ErrorResponse) {
	data, err := json.Marshal(body)
	if err != nil {
		logger.ContextRequestLogger(r.Context()).Error("error marshaling error response",
			slog.String("error", err.Error()),
		)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error_code":"internal_error","message":"Internal Server Error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(data)
}

func logError(requestLogger *slog.Logger, statusCode int, errorCode, detail string) {
	attrs := []any{
		slog.Int("status", statusCode),
		slog.String("error_code", errorCode),
		slog.String("error_detail", detail),
	}

	switch {
	case statusCode >= 500:
		requestLogger.Error("request failed", attrs...)
	default:
		requestLogger.Warn("request failed", attrs...)
	}
}

func severityForStatus(statusCode int) client.Severity {
	switch {
	case statusCode >= 500:
		return client.SeverityCritical
	case statusCode == http.StatusNotFound:
		return client.SeverityInfo
	default:
		return client.SeverityWarning
	}
}
