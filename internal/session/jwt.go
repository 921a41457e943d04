package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ExpiryFromJWT extracts the expiry timestamp from a bearer JWT without
// verifying the signature. The client is not the audience that validates the
// token - the API is - it only needs the exp claim to know when the session
// ends.
func ExpiryFromJWT(raw string) (time.Time, error) {
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	claims := &jwt.RegisteredClaims{}

	_, _, err := parser.ParseUnverified(raw, claims)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse access token: %w", err)
	}

	if claims.ExpiresAt == nil {
		return time.Time{}, fmt.Errorf("access token has no exp claim")
	}

	return claims.ExpiresAt.Time, nil
}
