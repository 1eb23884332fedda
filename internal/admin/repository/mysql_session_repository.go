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

// MySQLSessionRepository implements Session persistence for MySQL.
// Uses BINARY(16) for UUID storage.
type MySQLSessionRepository struct {
	db *sql.DB
}

// Create inserts a new Session using BINARY(16) for the ID.
func (m *MySQLSessionRepository) Create(ctx context.Context, session *adminDomain.Session) error {
	querier := database.GetTx(ctx, m.db)

	id, err := session.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal session id")
	}

	query := `INSERT INTO admin_sessions (` + sessionColumns + `) VALUES (?, ?, ?, ?, ?)`

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
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
func (m *MySQLSessionRepository) GetByTokenHash(
	ctx context.Context,
	tokenHash string,
) (*adminDomain.Session, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT ` + sessionColumns + ` FROM admin_sessions WHERE token_hash = ?`

	var session adminDomain.Session
	var idBytes []byte
	var revokedAt sql.NullTime

	err := querier.QueryRowContext(ctx, query, tokenHash).Scan(
		&idBytes,
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

	if err := session.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal session id")
	}

	if revokedAt.Valid {
		session.RevokedAt = &revokedAt.Time
	}
	return &session, nil
}

// Revoke sets revoked_at on an active session. Already revoked or unknown
// sessions are left untouched.
func (m *MySQLSessionRepository) Revoke(ctx context.Context, tokenHash string, revokedAt time.Time) error {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE admin_sessions SET revoked_at = ? WHERE token_hash = ? AND revoked_at IS NULL`

	if _, err := querier.ExecContext(ctx, query, revokedAt, tokenHash); err != nil {
		return apperrors.Wrap(err, "failed to revoke admin session")
	}
	return nil
}

// DeleteExpired removes sessions that expired or were revoked before the cutoff.
func (m *MySQLSessionRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	querier := database.GetTx(ctx, m.db)

	query := `DELETE FROM admin_sessions WHERE expires_at < ? OR revoked_at < ?`

	result, err := querier.ExecContext(ctx, query, before, before)
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
func (m *MySQLSessionRepository) CountExpired(ctx context.Context, before time.Time) (int64, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT COUNT(*) FROM admin_sessions WHERE expires_at < ? OR revoked_at < ?`

	var count int64
	if err := querier.QueryRowContext(ctx, query, before, before).Scan(&count); err != nil {
		return 0, apperrors.Wrap(err, "failed to count expired admin sessions")
	}
	return count, nil
}

// NewMySQLSessionRepository creates a new MySQL Session repository.
func NewMySQLSessionRepository(db *sql.DB) *MySQLSessionRepository {
	return &MySQLSessionRepository{db: db}
}
