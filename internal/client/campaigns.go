package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// CampaignFilter narrows the campaign listing.
type CampaignFilter struct {
	Status  string
	Search  string
	Page    int
	PerPage int
}

func (f CampaignFilter) query() url.Values {
	q := url.Values{}
	if f.Status != "" {
		q.Set("status", f.Status)
	}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if f.Page > 0 {
		q.Set("page", strconv.Itoa(f.Page))
	}
	if f.PerPage > 0 {
		q.Set("per_page", strconv.Itoa(f.PerPage))
	}
	return q
}

// ListCampaigns returns the campaigns visible to the current session.
func (c *Client) ListCampaigns(ctx context.Context, filter CampaignFilter) (*CampaignList, error) {
	var list CampaignList
	if err := c.do(ctx, http.MethodGet, "/api/campaigns", nil, &list, requestOpts{query: filter.query()}); err != nil {
		return nil, err
	}

	return &list, nil
}

func (c *Client) GetCampaign(ctx context.Context, campaignID string) (*Campaign, error) {
	var campaign Campaign
	path := fmt.Sprintf("/api/campaigns/%s", url.PathEscape(campaignID))
	if err := c.do(ctx, http.MethodGet, path, nil, &campaign, requestOpts{}); err != nil {
		return nil, err
	}

	return &campaign, nil
}

func (c *Client) CreateCampaign(ctx context.Context, input CampaignInput) (*Campaign, error) {
	var campaign Campaign
	if err := c.do(ctx, http.MethodPost, "/api/campaigns", input, &campaign, requestOpts{}); err != nil {
		return nil, err
	}

	return &campaign, nil
}

func (c *Client) UpdateCampaign(ctx context.Context, campaignID string, input CampaignInput) (*Campaign, error) {
	var campaign Campaign
	path := fmt.Sprintf("/api/campaigns/%s", url.PathEscape(campaignID))
	if err := c.do(ctx, http.MethodPut, path, input, &campaign, requestOpts{}); err != nil {
		return nil, err
	}

	return &campaign, nil
}

func (c *Client) DeleteCampaign(ctx context.Context, campaignID string) error {
	path := fmt.Sprintf("/api/campaigns/%s", url.PathEscape(campaignID))
	return c.do(ctx, http.MethodDelete, path, nil, nil, requestOpts{})
}

// CampaignStats returns the live dial statistics for one campaign.
func (c *Client) CampaignStats(ctx context.Context, campaignID string) (*CampaignStats, error) {
	var stats CampaignStats
	path := fmt.Sprintf("/api/campaigns/%s/stats", url.PathEscape(campaignID))
	if err := c.do(ctx, http.MethodGet, path, nil, &stats, requestOpts{}); err != nil {
		return nil, err
	}

	return &stats, nil
}
