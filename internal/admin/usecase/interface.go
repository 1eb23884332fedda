// Package usecase defines business logic for admin sessions.
package usecase

import (
	"context"
	"time"

	adminDomain "github.com/allisson/enrollment/internal/admin/domain"
)

// SessionRepository defines persistence operations for admin sessions.
// Implementations must support transaction-aware operations via context propagation.
type SessionRepository interface {
	Create(ctx context.Context, session *adminDomain.Session) error

	// GetByTokenHash returns ErrSessionNotFound if no session matches.
	GetByTokenHash(ctx context.Context, tokenHash string) (*adminDomain.Session, error)

	// Revoke marks the session as revoked at revokedAt. Unknown hashes are a no-op.
	Revoke(ctx context.Context, tokenHash string, revokedAt time.Time) error

	// DeleteExpired removes sessions that expired or were revoked before the cutoff
	// and returns how many were removed.
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)

	// CountExpired counts the sessions DeleteExpired would remove.
	CountExpired(ctx context.Context, before time.Time) (int64, error)
}

// SessionUseCase defines admin login and session management.
type SessionUseCase interface {
	// Login verifies the admin password and opens a new session. The plain token in
	// the output is only returned here. Wrong passwords return ErrInvalidCredentials
	// and a missing password hash returns ErrAdminDisabled.
	Login(ctx context.Context, password string) (*adminDomain.LoginOutput, error)

	// Authenticate resolves a token hash to an active session. Unknown, expired and
	// revoked sessions all return ErrInvalidCredentials.
	Authenticate(ctx context.Context, tokenHash string) (*adminDomain.Session, error)

	// Logout revokes the session. Unknown sessions are not an error.
	Logout(ctx context.Context, tokenHash string) error

	// PurgeExpired deletes sessions that expired or were revoked before the cutoff.
	// With dryRun it only counts them.
	PurgeExpired(ctx context.Context, before time.Time, dryRun bool) (int64, error)
}
