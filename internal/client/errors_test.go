package client

import (
	"net/http"
	"strings"
	"testing"
)

func TestNewStatusErrorFallbackTable(t *testing.T) {
	statuses := []int{400, 403, 404, 422, 429, 500, 502, 503, 504, 418}

	for _, status := range statuses {
		apiErr := newStatusError(status, http.StatusText(status), nil)

		if apiErr.Status != status {
			t.Errorf("status %d: APIError.Status = %d", status, apiErr.Status)
		}
		if apiErr.Message == "" {
			t.Errorf("status %d: empty message", status)
		}
	}

	if got := newStatusError(500, "Internal Server Error", nil).Message; got != "Internal server error. Please try again later." {
		t.Errorf("500 fallback message = %q", got)
	}

	if got := newStatusError(418, "I'm a teapot", nil).Message; got != "Request failed with status 418" {
		t.Errorf("unlisted status message = %q", got)
	}
}

func TestNewStatusErrorStringDetail(t *testing.T) {
	body := []byte(`{"detail":"campaign is already archived"}`)

	apiErr := newStatusError(400, "Bad Request", body)

	if apiErr.Message != "campaign is already archived" {
		t.Errorf("Message = %q, want server-provided detail", apiErr.Message)
	}
	if len(apiErr.ValidationErrors) != 0 {
		t.Errorf("ValidationErrors = %v, want none", apiErr.ValidationErrors)
	}
}

func TestNewStatusErrorForbiddenIsAlwaysCanned(t *testing.T) {
	body := []byte(`{"detail":"user 42 lacks scope campaigns:write on tenant 7"}`)

	apiErr := newStatusError(403, "Forbidden", body)

	if strings.Contains(apiErr.Message, "tenant") {
		t.Errorf("403 message leaked server detail: %q", apiErr.Message)
	}
	if apiErr.Message != "You don't have permission to access this resource." {
		t.Errorf("403 message = %q", apiErr.Message)
	}
}

func TestNewStatusErrorStructuredDetail(t *testing.T) {
	body := []byte(`{"detail":[{"loc":["body","phone"],"msg":"required","type":"missing"}]}`)

	apiErr := newStatusError(422, "Unprocessable Entity", body)

	if len(apiErr.ValidationErrors) != 1 {
		t.Fatalf("ValidationErrors length = %d, want 1", len(apiErr.ValidationErrors))
	}

	fe := apiErr.ValidationErrors[0]
	if fe.Field() != "phone" {
		t.Errorf("Field() = %q, want %q", fe.Field(), "phone")
	}
	if fe.Msg != "required" || fe.Type != "missing" {
		t.Errorf("FieldError = %+v", fe)
	}
	if apiErr.Message != "phone: required" {
		t.Errorf("Message = %q, want %q", apiErr.Message, "phone: required")
	}
	if apiErr.Code != ErrCodeValidation {
		t.Errorf("Code = %q, want %q", apiErr.Code, ErrCodeValidation)
	}
}

func TestNewStatusErrorUnparsableBody(t *testing.T) {
	tests := []struct {
		name string
		body []byte
	}{
		{name: "html body", body: []byte("<html>502 Bad Gateway</html>")},
		{name: "truncated json", body: []byte(`{"detail":`)},
		{name: "unexpected shape", body: []byte(`{"detail":{"weird":true}}`)},
		{name: "empty body", body: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := newStatusError(500, "Internal Server Error", tt.body)

			if apiErr.Status != 500 {
				t.Errorf("Status = %d", apiErr.Status)
			}
			if apiErr.Message != "Internal server error. Please try again later." {
				t.Errorf("Message = %q", apiErr.Message)
			}
		})
	}
}

func TestFieldErrorFieldRendering(t *testing.T) {
	tests := []struct {
		name string
		loc  []any
		want string
	}{
		{name: "body discriminator dropped", loc: []any{"body", "phone"}, want: "phone"},
		{name: "nested path joined", loc: []any{"body", "contacts", float64(3), "phone"}, want: "contacts.3.phone"},
		{name: "query discriminator dropped", loc: []any{"query", "page"}, want: "page"},
		{name: "single segment kept", loc: []any{"phone"}, want: "phone"},
		{name: "empty loc", loc: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fe := FieldError{Loc: tt.loc}
			if got := fe.Field(); got != tt.want {
				t.Errorf("Field() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSeverityClassification(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Severity
	}{
		{
			name: "validation error is warning",
			err: newStatusError(422, "Unprocessable Entity",
				[]byte(`{"detail":[{"loc":["body","phone"],"msg":"required","type":"missing"}]}`)),
			want: SeverityWarning,
		},
		{
			name: "auth error is warning",
			err:  newSessionExpiredError(),
			want: SeverityWarning,
		},
		{
			name: "permission error is warning",
			err:  newStatusError(403, "Forbidden", nil),
			want: SeverityWarning,
		},
		{
			name: "not found is info",
			err:  newStatusError(404, "Not Found", nil),
			want: SeverityInfo,
		},
		{
			name: "server error is critical",
			err:  newStatusError(500, "Internal Server Error", nil),
			want: SeverityCritical,
		},
		{
			name: "network error is error",
			err:  newConnectionError(http.ErrServerClosed),
			want: SeverityError,
		},
		{
			name: "rate limited is error",
			err:  newStatusError(429, "Too Many Requests", nil),
			want: SeverityError,
		},
		{
			name: "unclassified is error",
			err:  http.ErrServerClosed,
			want: SeverityError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ErrorSeverity(tt.err); got != tt.want {
				t.Errorf("ErrorSeverity() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPredicatesDistinguishNetworkFromServerError(t *testing.T) {
	networkErr := newConnectionError(http.ErrServerClosed)
	serverErr := newStatusError(500, "Internal Server Error", nil)

	if !IsNetworkError(networkErr) || IsNetworkError(serverErr) {
		t.Error("IsNetworkError misclassified")
	}
	if !IsServerError(serverErr) || IsServerError(networkErr) {
		t.Error("IsServerError misclassified")
	}
	if ErrorSeverity(networkErr) == ErrorSeverity(serverErr) {
		t.Error("network and server errors share a severity, want distinct")
	}
}

func TestSuggestedActionCoversTaxonomy(t *testing.T) {
	errs := []error{
		newConnectionError(http.ErrServerClosed),
		newSessionExpiredError(),
		newStatusError(403, "Forbidden", nil),
		newStatusError(404, "Not Found", nil),
		newStatusError(422, "Unprocessable Entity",
			[]byte(`{"detail":[{"loc":["body","phone"],"msg":"required","type":"missing"}]}`)),
		newStatusError(429, "Too Many Requests", nil),
		newStatusError(500, "Internal Server Error", nil),
		http.ErrServerClosed,
	}

	seen := map[string]bool{}
	for _, err := range errs {
		action := SuggestedAction(err)
		if action == "" {
			t.Errorf("SuggestedAction(%v) is empty", err)
		}
		seen[action] = true
	}

	// auth, network, validation, permission and not-found must all read
	// differently - they ask the operator to do different things
	if len(seen) < 6 {
		t.Errorf("only %d distinct action messages across the taxonomy", len(seen))
	}
}

func TestFormattingIsIdempotent(t *testing.T) {
	body := []byte(`{"detail":[
		{"loc":["body","phone"],"msg":"required","type":"missing"},
		{"loc":["body","name"],"msg":"too short","type":"value_error"}
	]}`)

	apiErr := newStatusError(422, "Unprocessable Entity", body)

	summary := JoinFieldErrors(apiErr.ValidationErrors)
	if summary != "phone: required; name: too short" {
		t.Errorf("JoinFieldErrors() = %q", summary)
	}

	diagnostic := Diagnostic(apiErr)
	if !strings.Contains(diagnostic, "phone: required (missing)") {
		t.Errorf("Diagnostic() missing field line: %q", diagnostic)
	}

	for range 3 {
		if JoinFieldErrors(apiErr.ValidationErrors) != summary {
			t.Fatal("JoinFieldErrors() not deterministic")
		}
		if Diagnostic(apiErr) != diagnostic {
			t.Fatal("Diagnostic() not deterministic")
		}
	}
}

func TestDiagnosticLayout(t *testing.T) {
	apiErr := newStatusError(422, "Unprocessable Entity",
		[]byte(`{"detail":[{"loc":["body","phone"],"msg":"required","type":"missing"}]}`))

	lines := strings.Split(Diagnostic(apiErr), "\n")

	want := []string{
		"api error: validation_error",
		"status: 422 Unprocessable Entity",
		"field errors:",
		"  phone: required (missing)",
	}

	if len(lines) != len(want) {
		t.Fatalf("Diagnostic() has %d lines, want %d:\n%s", len(lines), len(want), Diagnostic(apiErr))
	}
	for i, line := range want {
		if lines[i] != line {
			t.Errorf("line %d = %q, want %q", i, lines[i], line)
		}
	}
}
