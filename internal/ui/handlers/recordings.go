package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dialdesk/callconsole/internal/client"
	"github.com/dialdesk/callconsole/internal/ui/respond"
	"github.com/dialdesk/callconsole/internal/util"
)

// ListRecordings feeds the recordings browser
func (h *HandlerService) ListRecordings(w http.ResponseWriter, r *http.Request) {
	filter := client.RecordingFilter{
		CampaignID: r.URL.Query().Get("campaign_id"),
		AgentID:    r.URL.Query().Get("agent_id"),
		Page:       intQueryParam(r, "page"),
		PerPage:    intQueryParam(r, "per_page"),
	}

	if from := r.URL.Query().Get("from"); from != "" {
		parsed, err := time.Parse(time.RFC3339, from)
		if err != nil {
			respond.WithError(w, r, http.StatusBadRequest,
				client.ErrCodeInvalidRequest, "from must be an RFC3339 timestamp")
			return
		}
		filter.From = parsed
	}
	if to := r.URL.Query().Get("to"); to != "" {
		parsed, err := time.Parse(time.RFC3339, to)
		if err != nil {
			respond.WithError(w, r, http.StatusBadRequest,
				client.ErrCodeInvalidRequest, "to must be an RFC3339 timestamp")
			return
		}
		filter.To = parsed
	}

	list, err := h.ApiClient.ListRecordings(r.Context(), filter)
	if err != nil {
		respond.WithAPIError(w, r, err)
		return
	}

	respond.WithJSON(w, http.StatusOK, list)
}

// GetTranscript returns the transcript pane for a recording
func (h *HandlerService) GetTranscript(w http.ResponseWriter, r *http.Request) {
	transcript, err := h.ApiClient.GetTranscript(r.Context(), chi.URLParam(r, "recordingID"))
	if err != nil {
		respond.WithAPIError(w, r, err)
		return
	}

	respond.WithJSON(w, http.StatusOK, transcript)
}

// DownloadRecording streams the call audio to the browser with a safe
// attachment filename.
func (h *HandlerService) DownloadRecording(w http.ResponseWriter, r *http.Request) {
	recordingID := chi.URLParam(r, "recordingID")

	download, err := h.ApiClient.DownloadRecording(r.Context(), recordingID)
	if err != nil {
		respond.WithAPIError(w, r, err)
		return
	}

	filename := download.Filename
	if filename == "" {
		if slug, err := util.Slugify("recording " + recordingID); err == nil {
			filename = slug + ".mp3"
		} else {
			filename = "recording.mp3"
		}
	}

	contentType := download.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(download.Data)
}
