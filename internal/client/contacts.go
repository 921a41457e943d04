package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

// ContactFilter narrows the contact listing within a campaign.
type ContactFilter struct {
	Status  string
	Search  string
	Page    int
	PerPage int
}

func (f ContactFilter) query() url.Values {
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

// ListContacts returns the contacts loaded into a campaign.
func (c *Client) ListContacts(ctx context.Context, campaignID string, filter ContactFilter) (*ContactList, error) {
	var list ContactList
	path := fmt.Sprintf("/api/campaigns/%s/contacts", url.PathEscape(campaignID))
	if err := c.do(ctx, http.MethodGet, path, nil, &list, requestOpts{query: filter.query()}); err != nil {
		return nil, err
	}

	return &list, nil
}

// UploadContacts submits a contact file (CSV or XLSX) as a multipart form.
// The API validates rows server-side; structured row errors come back as a
// 422 with field errors keyed by row index.
func (c *Client) UploadContacts(ctx context.Context, campaignID, filename string, file io.Reader) (*ContactUploadResult, error) {
	var result ContactUploadResult
	path := fmt.Sprintf("/api/campaigns/%s/contacts/upload", url.PathEscape(campaignID))
	if err := c.upload(ctx, path, "file", filename, file, nil, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *Client) DeleteContact(ctx context.Context, contactID string) error {
	path := fmt.Sprintf("/api/contacts/%s", url.PathEscape(contactID))
	return c.do(ctx, http.MethodDelete, path, nil, nil, requestOpts{})
}
