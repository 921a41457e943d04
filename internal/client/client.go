// Package client is the boundary between the console and the dialdesk API.
//
// It owns outbound HTTP calls, bearer token attachment, response
// interpretation and session-invalidation side effects. Raw transport
// failures and raw HTTP error bodies never leave this package: every failed
// call surfaces as a *APIError (see errors.go), and a 401 clears the session
// store before the error is returned so that even a caller that ignores the
// error ends up logged out.
package client

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dialdesk/callconsole/internal/session"
)

const defaultTimeout = 10 * time.Second

// Client handles communication with the dialdesk API
type Client struct {
	baseURL    string
	httpClient *http.Client
	sessions   session.Store
	logger     *slog.Logger

	// invoked (fire-and-forget) after a 401 clears the session
	onSessionExpired func()
}

type Option func(*Client)

// WithHTTPClient replaces the default transport. The client enforces no
// timeout of its own beyond what the supplied http.Client carries.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

// WithSessionStore injects the store that holds the bearer token.
func WithSessionStore(store session.Store) Option {
	return func(c *Client) { c.sessions = store }
}

// WithOnSessionExpired registers a callback fired after a 401 has cleared
// the session. The callback runs in its own goroutine and must not be
// relied on to complete before the error is returned.
func WithOnSessionExpired(fn func()) Option {
	return func(c *Client) { c.onSessionExpired = fn }
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		sessions: session.NewMemoryStore(),
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Sessions exposes the injected session store (the auth handlers need to
// inspect validity without making a network call).
func (c *Client) Sessions() session.Store {
	return c.sessions
}
