package client

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"
)

func TestListCampaignsQueryEncoding(t *testing.T) {
	var gotQuery url.Values

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"items":[],"total":0,"page":2,"per_page":25}`)
	}))
	defer server.Close()

	c := NewClient(server.URL, WithSessionStore(loggedInStore(t)))

	_, err := c.ListCampaigns(context.Background(), CampaignFilter{
		Status:  "active",
		Search:  "collections",
		Page:    2,
		PerPage: 25,
	})
	if err != nil {
		t.Fatalf("ListCampaigns() error = %v", err)
	}

	want := map[string]string{
		"status":   "active",
		"search":   "collections",
		"page":     "2",
		"per_page": "25",
	}
	for key, value := range want {
		if gotQuery.Get(key) != value {
			t.Errorf("query %s = %q, want %q", key, gotQuery.Get(key), value)
		}
	}
}

func TestListRecordingsQueryEncoding(t *testing.T) {
	var gotQuery url.Values

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"items":[],"total":0,"page":1,"per_page":50}`)
	}))
	defer server.Close()

	c := NewClient(server.URL, WithSessionStore(loggedInStore(t)))

	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	_, err := c.ListRecordings(context.Background(), RecordingFilter{
		CampaignID: "cmp-1",
		AgentID:    "agt-9",
		From:       from,
	})
	if err != nil {
		t.Fatalf("ListRecordings() error = %v", err)
	}

	if gotQuery.Get("campaign_id") != "cmp-1" || gotQuery.Get("agent_id") != "agt-9" {
		t.Errorf("query = %v", gotQuery)
	}
	if gotQuery.Get("from") != from.Format(time.RFC3339) {
		t.Errorf("from = %q", gotQuery.Get("from"))
	}
	if gotQuery.Has("to") {
		t.Error("zero To must not be sent")
	}
}

func TestCampaignPathEscaping(t *testing.T) {
	var gotPath string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":"cmp/1","name":"odd id"}`)
	}))
	defer server.Close()

	c := NewClient(server.URL, WithSessionStore(loggedInStore(t)))

	if _, err := c.GetCampaign(context.Background(), "cmp/1"); err != nil {
		t.Fatalf("GetCampaign() error = %v", err)
	}

	if gotPath != "/api/campaigns/cmp%2F1" {
		t.Errorf("path = %q", gotPath)
	}
}

func TestExportReportBuildsQuery(t *testing.T) {
	var gotQuery url.Values

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="collections.csv"`)
		fmt.Fprint(w, "period,collected\n2026-08,1200.50\n")
	}))
	defer server.Close()

	c := NewClient(server.URL, WithSessionStore(loggedInStore(t)))

	download, err := c.ExportReport(context.Background(), "collections", ReportPeriod{
		From: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("ExportReport() error = %v", err)
	}

	if gotQuery.Get("kind") != "collections" {
		t.Errorf("kind = %q", gotQuery.Get("kind"))
	}
	if gotQuery.Get("from") == "" || gotQuery.Get("to") == "" {
		t.Errorf("period missing from query: %v", gotQuery)
	}
	if download.Filename != "collections.csv" {
		t.Errorf("Filename = %q", download.Filename)
	}
	if len(download.Data) == 0 {
		t.Error("empty export body")
	}
}
