package client

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/dialdesk/callconsole/internal/session"
)

// defaultSessionTTL is used when the token grant carries neither an
// expires_in hint nor a parsable exp claim.
const defaultSessionTTL = 15 * time.Minute

// Login authenticates against the dialdesk API and stores the resulting
// bearer token in the session store.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	loginReq := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{
		Email:    email,
		Password: password,
	}

	var grant LoginResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", loginReq, &grant, requestOpts{noAuth: true}); err != nil {
		return nil, err
	}

	expiresAt := c.tokenExpiry(grant)

	if err := c.sessions.Set(session.Token{
		AccessToken: grant.AccessToken,
		ExpiresAt:   expiresAt,
	}); err != nil {
		return nil, newInternalError(err, "storing session token")
	}

	return &grant, nil
}

// tokenExpiry resolves the absolute expiry of a token grant: the explicit
// expires_in wins, then the JWT exp claim, then a conservative default.
func (c *Client) tokenExpiry(grant LoginResponse) time.Time {
	if grant.ExpiresIn > 0 {
		return time.Now().Add(time.Duration(grant.ExpiresIn) * time.Second)
	}

	if expiresAt, err := session.ExpiryFromJWT(grant.AccessToken); err == nil {
		return expiresAt
	}

	c.logger.Warn("token grant carried no usable expiry, applying default TTL",
		slog.Duration("ttl", defaultSessionTTL),
	)
	return time.Now().Add(defaultSessionTTL)
}

// Logout revokes the session with the API and clears the local token.
// The local clear happens regardless of whether the remote revoke worked:
// a dead backend must not keep the console logged in.
func (c *Client) Logout(ctx context.Context) error {
	revokeErr := c.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil, requestOpts{})

	if err := c.sessions.Clear(); err != nil {
		return newInternalError(err, "clearing session on logout")
	}

	if revokeErr != nil && !IsAuthError(revokeErr) {
		return revokeErr
	}

	return nil
}

// Profile returns the account behind the current session.
func (c *Client) Profile(ctx context.Context) (*Profile, error) {
	var profile Profile
	if err := c.do(ctx, http.MethodGet, "/api/auth/profile", nil, &profile, requestOpts{}); err != nil {
		return nil, err
	}

	return &profile, nil
}
