package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// RecordingFilter narrows the recordings browser listing.
type RecordingFilter struct {
	CampaignID string
	AgentID    string
	From       time.Time
	To         time.Time
	Page       int
	PerPage    int
}

func (f RecordingFilter) query() url.Values {
	q := url.Values{}
	if f.CampaignID != "" {
		q.Set("campaign_id", f.CampaignID)
	}
	if f.AgentID != "" {
		q.Set("agent_id", f.AgentID)
	}
	if !f.From.IsZero() {
		q.Set("from", f.From.Format(time.RFC3339))
	}
	if !f.To.IsZero() {
		q.Set("to", f.To.Format(time.RFC3339))
	}
	if f.Page > 0 {
		q.Set("page", strconv.Itoa(f.Page))
	}
	if f.PerPage > 0 {
		q.Set("per_page", strconv.Itoa(f.PerPage))
	}
	return q
}

// ListRecordings returns call recordings matching the filter.
func (c *Client) ListRecordings(ctx context.Context, filter RecordingFilter) (*RecordingList, error) {
	var list RecordingList
	if err := c.do(ctx, http.MethodGet, "/api/recordings", nil, &list, requestOpts{query: filter.query()}); err != nil {
		return nil, err
	}

	return &list, nil
}

// GetTranscript returns the speech-to-text transcript for a recording.
func (c *Client) GetTranscript(ctx context.Context, recordingID string) (*Transcript, error) {
	var transcript Transcript
	path := fmt.Sprintf("/api/recordings/%s/transcript", url.PathEscape(recordingID))
	if err := c.do(ctx, http.MethodGet, path, nil, &transcript, requestOpts{}); err != nil {
		return nil, err
	}

	return &transcript, nil
}

// DownloadRecording fetches the call audio. The caller decides what to do
// with the bytes (the dashboard streams them to the browser).
func (c *Client) DownloadRecording(ctx context.Context, recordingID string) (*Download, error) {
	path := fmt.Sprintf("/api/recordings/%s/audio", url.PathEscape(recordingID))
	return c.download(ctx, path, requestOpts{})
}
