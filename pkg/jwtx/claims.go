package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultSessionTTL is the default lifetime for session tokens. Sessions are
// long-lived because the token is the only credential the browser holds;
// there is no server-side session table to refresh against.
const DefaultSessionTTL = 30 * 24 * time.Hour

// Claims are the session-token claims. The subject is the user id; email and
// name ride along so handlers can render identity without a user lookup.
// Keep changes additive to preserve compatibility with tokens in the wild.
type Claims struct {
	jwt.RegisteredClaims

	// Email is the sign-in address of the authenticated user.
	Email string `json:"email,omitempty"`

	// Name is the display name of the authenticated user.
	Name string `json:"name,omitempty"`
}

// NewSessionClaims builds minimally-correct session claims.
func NewSessionClaims(
	subject, email, name string,
	ttl time.Duration,
	issuer string,
	now time.Time,
) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        NewJTI(),
		},
		Email: email,
		Name:  name,
	}
}

// NewJTI returns a URL-safe random identifier for the "jti" claim.
func NewJTI() string {
	var b [20]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}

// ValidateIssuer checks if the issuer matches expected value.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil // nothing to enforce
	}

	if c.Issuer != expected {
		return ErrIssuer
	}

	return nil
}

// ValidateExpiry ensures the token hasn't expired (exp) and isn't before nbf.
func (c *Claims) ValidateExpiry() error {
	now := time.Now().UTC()

	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Time) {
		return ErrExpired
	}

	if c.NotBefore != nil && now.Before(c.NotBefore.Time) {
		return ErrNotYetValid
	}

	return nil
}
