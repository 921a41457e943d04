package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dialdesk/callconsole/internal/client"
	"github.com/dialdesk/callconsole/internal/ui/respond"
)

// ListCampaigns returns the campaign table for the dashboard
func (h *HandlerService) ListCampaigns(w http.ResponseWriter, r *http.Request) {
	filter := client.CampaignFilter{
		Status:  r.URL.Query().Get("status"),
		Search:  r.URL.Query().Get("search"),
		Page:    intQueryParam(r, "page"),
		PerPage: intQueryParam(r, "per_page"),
	}

	list, err := h.ApiClient.ListCampaigns(r.Context(), filter)
	if err != nil {
		respond.WithAPIError(w, r, err)
		return
	}

	respond.WithJSON(w, http.StatusOK, list)
}

func (h *HandlerService) GetCampaign(w http.ResponseWriter, r *http.Request) {
	campaign, err := h.ApiClient.GetCampaign(r.Context(), chi.URLParam(r, "campaignID"))
	if err != nil {
		respond.WithAPIError(w, r, err)
		return
	}

	respond.WithJSON(w, http.StatusOK, campaign)
}

func (h *HandlerService) CreateCampaign(w http.ResponseWriter, r *http.Request) {
	var input client.CampaignInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respond.WithError(w, r, http.StatusBadRequest,
			client.ErrCodeInvalidRequest, "Invalid request. Please check your input and try again.")
		return
	}

	campaign, err := h.ApiClient.CreateCampaign(r.Context(), input)
	if err != nil {
		respond.WithAPIError(w, r, err)
		return
	}

	respond.WithJSON(w, http.StatusCreated, campaign)
}

func (h *HandlerService) UpdateCampaign(w http.ResponseWriter, r *http.Request) {
	var input client.CampaignInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respond.WithError(w, r, http.StatusBadRequest,
			client.ErrCodeInvalidRequest, "Invalid request. Please check your input and try again.")
		return
	}

	campaign, err := h.ApiClient.UpdateCampaign(r.Context(), chi.URLParam(r, "campaignID"), input)
	if err != nil {
		respond.WithAPIError(w, r, err)
		return
	}

	respond.WithJSON(w, http.StatusOK, campaign)
}

func (h *HandlerService) DeleteCampaign(w http.ResponseWriter, r *http.Request) {
	if err := h.ApiClient.DeleteCampaign(r.Context(), chi.URLParam(r, "campaignID")); err != nil {
		respond.WithAPIError(w, r, err)
		return
	}

	respond.WithJSON(w, http.StatusNoContent, nil)
}

// CampaignStats returns the live dial figures for one campaign card
func (h *HandlerService) CampaignStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.ApiClient.CampaignStats(r.Context(), chi.URLParam(r, "campaignID"))
	if err != nil {
		respond.WithAPIError(w, r, err)
		return
	}

	respond.WithJSON(w, http.StatusOK, stats)
}
