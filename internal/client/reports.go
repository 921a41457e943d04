package client

import (
	"context"
	"net/http"
	"net/url"
	"time"
)

// ReportPeriod bounds a reporting query.
type ReportPeriod struct {
	From time.Time
	To   time.Time
}

func (p ReportPeriod) query() url.Values {
	q := url.Values{}
	if !p.From.IsZero() {
		q.Set("from", p.From.Format(time.RFC3339))
	}
	if !p.To.IsZero() {
		q.Set("to", p.To.Format(time.RFC3339))
	}
	return q
}

// CollectionsSummary returns the collections dashboard figures for a period.
func (c *Client) CollectionsSummary(ctx context.Context, period ReportPeriod) (*CollectionsSummary, error) {
	var summary CollectionsSummary
	if err := c.do(ctx, http.MethodGet, "/api/reports/collections", nil, &summary, requestOpts{query: period.query()}); err != nil {
		return nil, err
	}

	return &summary, nil
}

// AgentPerformance returns per-agent figures for a period.
func (c *Client) AgentPerformance(ctx context.Context, period ReportPeriod) (*AgentPerformanceReport, error) {
	var report AgentPerformanceReport
	if err := c.do(ctx, http.MethodGet, "/api/reports/agents", nil, &report, requestOpts{query: period.query()}); err != nil {
		return nil, err
	}

	return &report, nil
}

// ExportReport fetches a report as a file (the API renders CSV).
// kind is one of the export types the API offers, e.g. "collections" or
// "agents".
func (c *Client) ExportReport(ctx context.Context, kind string, period ReportPeriod) (*Download, error) {
	q := period.query()
	q.Set("kind", kind)
	return c.download(ctx, "/api/reports/export", requestOpts{query: q})
}
