// Package session owns the bearer credential used to call the dialdesk API.
//
// The token is the only piece of mutable shared state in the client layer:
// it is written on a successful login, cleared on logout or whenever the API
// answers 401, and read by the transport before every authenticated call.
// A 401 on one in-flight call can race a fresh login on another, so every
// store implementation must make Get/Set/Clear atomic.
package session

import "time"

// Token is an opaque bearer credential plus its absolute expiry.
type Token struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// Store holds the session token for the lifetime of the "logged in" state.
//
// A token that is present but has an empty value or a zero/past expiry is
// treated as invalid - the next protected call forces re-authentication.
type Store interface {
	// Get returns the stored token and whether one is present.
	Get() (Token, bool)

	// Set replaces the stored token.
	Set(token Token) error

	// Clear removes the stored token. Clearing an empty store is a no-op.
	Clear() error

	// IsValid reports whether a non-empty, non-expired token is stored.
	IsValid() bool
}
