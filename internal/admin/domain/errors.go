package domain

import (
	"github.com/allisson/enrollment/internal/errors"
)

// Admin access errors.
var (
	// ErrInvalidCredentials covers wrong passwords and unknown, expired or revoked sessions.
	ErrInvalidCredentials = errors.Wrap(errors.ErrUnauthorized, "invalid credentials")

	// ErrSessionNotFound indicates no session matches the token hash.
	ErrSessionNotFound = errors.Wrap(errors.ErrNotFound, "session not found")

	// ErrAdminDisabled indicates no admin password hash is configured.
	ErrAdminDisabled = errors.Wrap(errors.ErrForbidden, "admin access is disabled")
)
