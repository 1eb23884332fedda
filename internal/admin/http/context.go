// Package http provides HTTP handlers and middleware for the admin area.
package http

import (
	"context"

	adminDomain "github.com/allisson/enrollment/internal/admin/domain"
)

// sessionKey is a context key type for storing authenticated admin sessions.
type sessionKey struct{}

// WithSession stores an authenticated admin session in the context.
func WithSession(ctx context.Context, session *adminDomain.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, session)
}

// GetSession retrieves the authenticated admin session from the context.
// Returns (session, true) if present, or (nil, false) otherwise.
func GetSession(ctx context.Context) (*adminDomain.Session, bool) {
	session, ok := ctx.Value(sessionKey{}).(*adminDomain.Session)
	return session, ok
}
