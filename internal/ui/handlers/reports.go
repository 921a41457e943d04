package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/dialdesk/callconsole/internal/client"
	"github.com/dialdesk/callconsole/internal/ui/respond"
	"github.com/dialdesk/callconsole/internal/util"
)

// reportPeriod parses the optional from/to query bounds shared by the
// reporting endpoints.
func reportPeriod(r *http.Request) (client.ReportPeriod, error) {
	var period client.ReportPeriod

	if from := r.URL.Query().Get("from"); from != "" {
		parsed, err := time.Parse(time.RFC3339, from)
		if err != nil {
			return period, fmt.Errorf("from must be an RFC3339 timestamp")
		}
		period.From = parsed
	}
	if to := r.URL.Query().Get("to"); to != "" {
		parsed, err := time.Parse(time.RFC3339, to)
		if err != nil {
			return period, fmt.Errorf("to must be an RFC3339 timestamp")
		}
		period.To = parsed
	}

	return period, nil
}

// CollectionsSummary returns the collections dashboard figures
func (h *HandlerService) CollectionsSummary(w http.ResponseWriter, r *http.Request) {
	period, err := reportPeriod(r)
	if err != nil {
		respond.WithError(w, r, http.StatusBadRequest, client.ErrCodeInvalidRequest, err.Error())
		return
	}

	summary, err := h.ApiClient.CollectionsSummary(r.Context(), period)
	if err != nil {
		respond.WithAPIError(w, r, err)
		return
	}

	respond.WithJSON(w, http.StatusOK, summary)
}

// AgentPerformance returns the per-agent report table
func (h *HandlerService) AgentPerformance(w http.ResponseWriter, r *http.Request) {
	period, err := reportPeriod(r)
	if err != nil {
		respond.WithError(w, r, http.StatusBadRequest, client.ErrCodeInvalidRequest, err.Error())
		return
	}

	report, err := h.ApiClient.AgentPerformance(r.Context(), period)
	if err != nil {
		respond.WithAPIError(w, r, err)
		return
	}

	respond.WithJSON(w, http.StatusOK, report)
}

// ExportReport streams a CSV export to the browser
func (h *HandlerService) ExportReport(w http.ResponseWriter, r *http.Request) {
	kind := r.URL.Query().Get("kind")
	if kind == "" {
		respond.WithError(w, r, http.StatusBadRequest,
			client.ErrCodeInvalidRequest, "kind is required (collections or agents)")
		return
	}

	period, err := reportPeriod(r)
	if err != nil {
		respond.WithError(w, r, http.StatusBadRequest, client.ErrCodeInvalidRequest, err.Error())
		return
	}

	download, err := h.ApiClient.ExportReport(r.Context(), kind, period)
	if err != nil {
		respond.WithAPIError(w, r, err)
		return
	}

	filename := download.Filename
	if filename == "" {
		if slug, err := util.Slugify(kind + " report"); err == nil {
			filename = slug + ".csv"
		} else {
			filename = "report.csv"
		}
	}

	contentType := download.ContentType
	if contentType == "" {
		contentType = "text/csv"
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(download.Data)
}
