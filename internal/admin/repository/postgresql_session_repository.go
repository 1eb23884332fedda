// Package repository implements admin session persistence for PostgreSQL and MySQL.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	adminDomain "github.com/allisson/enrollment/internal/admin/domain"
	"github.com/allisson/enrollment/internal/database"
	apperrors "github.com/allisson/enrollment/internal/errors"
)

const sessionColumns = `id, token_hash, expires_at, revoked_at, created_at`

// PostgreSQLSessionRepository implements Session persistence for PostgreSQL.
type PostgreSQLSessionRepository struct {
	db *sql.DB
}

// Create inserts a new Session.
func (p *PostgreSQLSessionRepository) Create(ctx context.Context, session *adminDomain.Session) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO admin_sessions (` + sessionColumns + `) VALUES ($1, $2, $3, $4, $5)`

	_, err := querier.ExecContext(
		ctx,
		query,
		session.ID,
		session.TokenHash,
		session.ExpiresAt,
		session.RevokedAt,
		session.CreatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create admin session")
	}
	return nil
}

// GetByTokenHash retrieves a Session by token hash. Returns ErrSessionNotFound if
// no row matches.
func (p *PostgreSQLSessionRepository) GetByTokenHash(
	ctx context.Context,
	tokenHash string,
) (*adminDomain.Session, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + sessionColumns + ` FROM admin_sessions WHERE token_hash = $1`

	var session adminDomain.Session
	var revokedAt sql.NullTime

	err := querier.QueryRowContext(ctx, query, tokenHash).Scan(
		&session.ID,
		&session.TokenHash,
		&session.ExpiresAt,
		&revokedAt,
		&session.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, adminDomain.ErrSessionNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get admin session")
	}

	if revokedAt.Valid {
		session.RevokedAt = &revokedAt.Time
	}
	return &session, nil
}

// Revoke sets revoked_at on an active session. Already revoked or unknown
// sessions are left untouched.
func (p *PostgreSQLSessionRepository) Revoke(ctx context.Context, tokenHash string, revokedAt time.Time) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE admin_sessions SET revoked_at = $1 WHERE token_hash = $2 AND revoked_at IS NULL`

	if _, err := querier.ExecContext(ctx, query, revokedAt, tokenHash); err != nil {
		return apperrors.Wrap(err, "failed to revoke admin session")
	}
	return nil
}

// DeleteExpired removes sessions that expired or were revoked before the cutoff.
func (p *PostgreSQLSessionRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	querier := database.GetTx(ctx, p.db)

	query := `DELETE FROM admin_sessions WHERE expires_at < $1 OR revoked_at < $1`

	result, err := querier.ExecContext(ctx, query, before)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to delete expired admin sessions")
	}

	count, err := result.RowsAffected()
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to get affected rows")
	}
	return count, nil
}

// CountExpired counts sessions that expired or were revoked before the cutoff.
func (p *PostgreSQLSessionRepository) CountExpired(ctx context.Context, before time.Time) (int64, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT COUNT(*) FROM admin_sessions WHERE expires_at < $1 OR revoked_at < $1`

	var count int64
	if err := querier.QueryRowContext(ctx, query, before).Scan(&count); err != nil {
		return 0, apperrors.Wrap(err, "failed to count expired admin sessions")
	}
	return count, nil
}

// NewPostgreSQLSessionRepository creates a new PostgreSQL Session repository.
func NewPostgreSQLSessionRepository(db *sql.DB) *PostgreSQLSessionRepository {
	return &PostgreSQLSessionRepository{db: db}
}
