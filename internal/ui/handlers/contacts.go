package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dialdesk/callconsole/internal/client"
	"github.com/dialdesk/callconsole/internal/logger"
	"github.com/dialdesk/callconsole/internal/ui/respond"
)

const uploadPartKey = "file"

// ListContacts returns the contacts loaded into a campaign
func (h *HandlerService) ListContacts(w http.ResponseWriter, r *http.Request) {
	filter := client.ContactFilter{
		Status:  r.URL.Query().Get("status"),
		Search:  r.URL.Query().Get("search"),
		Page:    intQueryParam(r, "page"),
		PerPage: intQueryParam(r, "per_page"),
	}

	list, err := h.ApiClient.ListContacts(r.Context(), chi.URLParam(r, "campaignID"), filter)
	if err != nil {
		respond.WithAPIError(w, r, err)
		return
	}

	respond.WithJSON(w, http.StatusOK, list)
}

// UploadContacts accepts a contact file from the browser and passes it
// through to the API as a multipart submission. Row-level validation errors
// come back as a 422 with per-row field errors for the form to display.
func (h *HandlerService) UploadContacts(w http.ResponseWriter, r *http.Request) {
	reqLogger := logger.ContextRequestLogger(r.Context())

	file, header, err := r.FormFile(uploadPartKey)
	if err != nil {
		respond.WithError(w, r, http.StatusBadRequest,
			client.ErrCodeInvalidRequest, "A contact file is required (multipart field 'file').")
		return
	}
	defer file.Close()

	campaignID := chi.URLParam(r, "campaignID")

	result, err := h.ApiClient.UploadContacts(r.Context(), campaignID, header.Filename, file)
	if err != nil {
		respond.WithAPIError(w, r, err)
		return
	}

	reqLogger.Info("contact upload accepted",
		slog.String("campaign_id", campaignID),
		slog.String("filename", header.Filename),
		slog.Int("accepted", result.Accepted),
		slog.Int("rejected", result.Rejected),
	)

	respond.WithJSON(w, http.StatusOK, result)
}

func (h *HandlerService) DeleteContact(w http.ResponseWriter, r *http.Request) {
	if err := h.ApiClient.DeleteContact(r.Context(), chi.URLParam(r, "contactID")); err != nil {
		respond.WithAPIError(w, r, err)
		return
	}

	respond.WithJSON(w, http.StatusNoContent, nil)
}
