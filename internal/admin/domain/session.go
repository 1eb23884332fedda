// Package domain defines the admin session model.
//
// The admin area is protected by a single configured password. A successful
// login creates a server-side session; the client only ever holds the plain
// token, and the database only ever holds its SHA-256 hash.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Session is an authenticated admin session.
type Session struct {
	ID        uuid.UUID
	TokenHash string // hex SHA-256 of the plain token
	ExpiresAt time.Time
	RevokedAt *time.Time
	CreatedAt time.Time
}

// IsActive reports whether the session can authenticate requests at now.
func (s *Session) IsActive(now time.Time) bool {
	return s.RevokedAt == nil && now.Before(s.ExpiresAt)
}

// LoginOutput carries the plain session token, shown once, and its expiry.
type LoginOutput struct {
	PlainToken string
	ExpiresAt  time.Time
}
