// Package handlers implements the console's JSON endpoints. Each handler is
// a thin proxy: parse the request, call the API gateway client, hand the
// typed payload or the typed error to the respond package. No handler
// touches raw HTTP responses from the dialdesk API.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/dialdesk/callconsole/internal/client"
	"github.com/dialdesk/callconsole/internal/ui/respond"
	"github.com/dialdesk/callconsole/internal/version"
)

// HandlerService carries the dependencies shared by all console handlers
type HandlerService struct {
	ApiClient   *client.Client
	Environment string
}

// HealthLive is the liveness probe.
func (h *HandlerService) HealthLive(w http.ResponseWriter, r *http.Request) {
	respond.WithJSON(w, http.StatusOK, map[string]string{
		"status":      "ok",
		"environment": h.Environment,
		"version":     version.Get().Version,
	})
}

// intQueryParam parses an optional positive integer query parameter,
// returning 0 when absent or malformed (the API applies its defaults).
func intQueryParam(r *http.Request, key string) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0
	}
	return value
}
