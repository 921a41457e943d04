package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dialdesk/callconsole/internal/client"
	"github.com/dialdesk/callconsole/internal/logger"
	"github.com/dialdesk/callconsole/internal/ui/respond"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates the console against the dialdesk API
func (h *HandlerService) Login(w http.ResponseWriter, r *http.Request) {
	reqLogger := logger.ContextRequestLogger(r.Context())

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WithError(w, r, http.StatusBadRequest,
			client.ErrCodeInvalidRequest, "Invalid request. Please check your input and try again.")
		return
	}

	if req.Email == "" || req.Password == "" {
		respond.WithError(w, r, http.StatusBadRequest,
			client.ErrCodeInvalidRequest, "Email and password are required.")
		return
	}

	grant, err := h.ApiClient.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respond.WithAPIError(w, r, err)
		return
	}

	reqLogger.Info("login succeeded")
	logger.ContextWithLogAttrs(r.Context(), slog.String("account_email", req.Email))

	respond.WithJSON(w, http.StatusOK, map[string]any{
		"token_type": grant.TokenType,
		"expires_in": grant.ExpiresIn,
	})
}

// Logout revokes the session remotely and clears the local token
func (h *HandlerService) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.ApiClient.Logout(r.Context()); err != nil {
		// local token is already cleared; surface the revoke failure
		respond.WithAPIError(w, r, err)
		return
	}

	respond.WithJSON(w, http.StatusNoContent, nil)
}

// Profile returns the account behind the current session
func (h *HandlerService) Profile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.ApiClient.Profile(r.Context())
	if err != nil {
		respond.WithAPIError(w, r, err)
		return
	}

	respond.WithJSON(w, http.StatusOK, profile)
}
