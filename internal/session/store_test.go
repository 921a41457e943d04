package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestMemoryStoreValidity(t *testing.T) {
	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		token *Token
		want  bool
	}{
		{
			name: "token with future expiry is valid",
			token: &Token{
				AccessToken: "abc",
				ExpiresAt:   now.Add(time.Hour),
			},
			want: true,
		},
		{
			name: "token with past expiry is invalid",
			token: &Token{
				AccessToken: "abc",
				ExpiresAt:   now.Add(-time.Minute),
			},
			want: false,
		},
		{
			name: "token with zero expiry is invalid",
			token: &Token{
				AccessToken: "abc",
			},
			want: false,
		},
		{
			name: "empty token value is invalid",
			token: &Token{
				ExpiresAt: now.Add(time.Hour),
			},
			want: false,
		},
		{
			name:  "empty store is invalid",
			token: nil,
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewMemoryStore()
			store.now = func() time.Time { return now }

			if tt.token != nil {
				if err := store.Set(*tt.token); err != nil {
					t.Fatalf("Set() error = %v", err)
				}
			}

			if got := store.IsValid(); got != tt.want {
				t.Errorf("IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMemoryStoreExpiryWithoutClear(t *testing.T) {
	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)

	store := NewMemoryStore()
	store.now = func() time.Time { return now }

	if err := store.Set(Token{AccessToken: "abc", ExpiresAt: now.Add(time.Hour)}); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	if !store.IsValid() {
		t.Fatal("IsValid() = false before expiry, want true")
	}

	// advance the clock past expiry - no explicit Clear
	store.now = func() time.Time { return now.Add(2 * time.Hour) }

	if store.IsValid() {
		t.Error("IsValid() = true after expiry, want false")
	}

	// the token itself is still present, just no longer usable
	if _, ok := store.Get(); !ok {
		t.Error("Get() reported no token after expiry - expiry should not clear the store")
	}
}

func TestMemoryStoreClearIsIdempotent(t *testing.T) {
	store := NewMemoryStore()

	if err := store.Set(Token{AccessToken: "abc", ExpiresAt: time.Now().Add(time.Hour)}); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("first Clear() error = %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("second Clear() error = %v", err)
	}

	if _, ok := store.Get(); ok {
		t.Error("Get() reported a token after Clear()")
	}
}

func TestExpiryFromJWT(t *testing.T) {
	expiry := time.Date(2026, 8, 25, 18, 0, 0, 0, time.UTC)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "agent@example.com",
		ExpiresAt: jwt.NewNumericDate(expiry),
	})
	raw, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}

	got, err := ExpiryFromJWT(raw)
	if err != nil {
		t.Fatalf("ExpiryFromJWT() error = %v", err)
	}

	if !got.Equal(expiry) {
		t.Errorf("ExpiryFromJWT() = %v, want %v", got, expiry)
	}
}

func TestExpiryFromJWTErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "not a JWT", raw: "opaque-token"},
		{name: "empty string", raw: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ExpiryFromJWT(tt.raw); err == nil {
				t.Error("ExpiryFromJWT() expected error, got nil")
			}
		})
	}
}

func TestExpiryFromJWTWithoutExpClaim(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject: "agent@example.com",
	})
	raw, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}

	if _, err := ExpiryFromJWT(raw); err == nil {
		t.Error("ExpiryFromJWT() expected error for token without exp claim, got nil")
	}
}
