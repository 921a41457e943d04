package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// maxErrorBody caps how much of an error response is read when building an
// APIError. Error bodies are small; anything bigger is not worth keeping.
const maxErrorBody = 1 << 20

// requestOpts tunes a single call through the transport wrapper.
type requestOpts struct {
	// noAuth marks endpoints that must not carry a bearer token (login)
	noAuth bool
	query  url.Values
}

// do performs one JSON request against the API and normalizes every outcome.
//
// On 2xx with a JSON body the payload is decoded into out; a 2xx without a
// JSON content type leaves out at its zero value (some endpoints return no
// body and callers must tolerate that). Every failure path returns a
// *APIError. Nothing is retried: retry is a caller decision.
func (c *Client) do(ctx context.Context, method, path string, body any, out any, opts requestOpts) error {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return newInternalError(err, fmt.Sprintf("marshaling %s %s request", method, path))
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := c.newRequest(ctx, method, path, reqBody, opts)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, out)
}

// upload performs a multipart form submission. The multipart writer sets
// its own content type; no JSON header is attached.
func (c *Client) upload(ctx context.Context, path, fieldName, filename string, file io.Reader, fields map[string]string, out any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile(fieldName, filename)
	if err != nil {
		return newInternalError(err, "creating multipart file part")
	}
	if _, err := io.Copy(part, file); err != nil {
		return newInternalError(err, "copying upload body")
	}

	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return newInternalError(err, "writing multipart field")
		}
	}

	if err := writer.Close(); err != nil {
		return newInternalError(err, "finalizing multipart body")
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, &buf, requestOpts{})
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", writer.FormDataContentType())

	return c.send(req, out)
}

// Download is a binary payload returned by the API, with the metadata the
// caller needs to hand it on (stream it to a browser, write it to disk).
type Download struct {
	Data        []byte
	Filename    string
	ContentType string
}

// download fetches a binary response. The suggested filename comes from the
// Content-Disposition header when the API sends one.
func (c *Client) download(ctx context.Context, path string, opts requestOpts) (*Download, error) {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil, opts)
	if err != nil {
		return nil, err
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, newConnectionError(err)
	}
	defer res.Body.Close()

	if err := c.checkStatus(res); err != nil {
		return nil, err
	}

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, newInternalError(err, "reading download body")
	}

	download := &Download{
		Data:        data,
		ContentType: res.Header.Get("Content-Type"),
	}

	if cd := res.Header.Get("Content-Disposition"); cd != "" {
		if _, params, err := mime.ParseMediaType(cd); err == nil {
			download.Filename = params["filename"]
		}
	}

	return download, nil
}

// newRequest builds the outbound request: base URL joined with path, query
// parameters, request ID, and the bearer token for authenticated calls.
//
// An authenticated call with no valid session fails locally through the same
// path a server-side 401 takes - the token (if any) is cleared and the
// caller gets the session-expired error without a network round trip.
func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader, opts requestOpts) (*http.Request, error) {
	if !opts.noAuth && !c.sessions.IsValid() {
		return nil, c.expireSession()
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, newInternalError(err, fmt.Sprintf("creating %s %s request", method, path))
	}

	if len(opts.query) > 0 {
		req.URL.RawQuery = opts.query.Encode()
	}

	req.Header.Set("X-Request-ID", uuid.NewString())

	if !opts.noAuth {
		token, _ := c.sessions.Get()
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token.AccessToken))
	}

	return req, nil
}

// send executes the request and decodes a JSON success payload into out
// (which may be nil for calls whose response body is ignored).
func (c *Client) send(req *http.Request, out any) error {
	res, err := c.httpClient.Do(req)
	if err != nil {
		return newConnectionError(err)
	}
	defer res.Body.Close()

	if err := c.checkStatus(res); err != nil {
		return err
	}

	if out == nil {
		return nil
	}

	if !strings.Contains(res.Header.Get("Content-Type"), "application/json") {
		// empty/default payload - some endpoints return no body
		return nil
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return newInternalError(err, fmt.Sprintf("decoding %s %s response", req.Method, req.URL.Path))
	}

	return nil
}

// checkStatus turns a non-2xx response into the appropriate APIError.
func (c *Client) checkStatus(res *http.Response) error {
	if res.StatusCode >= 200 && res.StatusCode < 300 {
		return nil
	}

	if res.StatusCode == http.StatusUnauthorized {
		// drain so the connection can be reused; the body is never consulted
		_, _ = io.Copy(io.Discard, io.LimitReader(res.Body, maxErrorBody))
		return c.expireSession()
	}

	body, err := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))
	if err != nil {
		c.logger.Debug("failed to read error response body",
			slog.Int("status", res.StatusCode),
			slog.String("error", err.Error()),
		)
		body = nil
	}

	apiErr := newStatusError(res.StatusCode, http.StatusText(res.StatusCode), body)

	if len(body) > 0 && apiErr.Message == fallbackMessage(res.StatusCode) && len(apiErr.ValidationErrors) == 0 {
		// body present but unusable - note it for diagnostics, keep the
		// fallback message for the caller
		c.logger.Debug("unparsable error response body",
			slog.Int("status", res.StatusCode),
		)
	}

	return apiErr
}

// expireSession performs the guaranteed 401 side effects: clear the token,
// then fire the expiry callback without blocking the error path.
func (c *Client) expireSession() *APIError {
	if err := c.sessions.Clear(); err != nil {
		c.logger.Error("failed to clear session after 401",
			slog.String("error", err.Error()),
		)
	}

	if c.onSessionExpired != nil {
		go c.onSessionExpired()
	}

	return newSessionExpiredError()
}
