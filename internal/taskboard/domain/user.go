package domain

import "time"

type User struct {
	ID               string
	Name             string
	Email            string
	PasswordHash     string // argon2id encoded, never exposed outward
	LastActivityDate time.Time
	CreatedAt        time.Time
}

// Session is the signed credential handed back after sign-in. The server
// keeps no copy; the token itself carries the claims.
type Session struct {
	Token     string
	ExpiresAt time.Time
	UserID    string
	Email     string
	Name      string
}
