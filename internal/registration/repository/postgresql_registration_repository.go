package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/allisson/enrollment/internal/database"
	apperrors "github.com/allisson/enrollment/internal/errors"
	registrationDomain "github.com/allisson/enrollment/internal/registration/domain"
)

// PostgreSQLRegistrationRepository implements Registration persistence for PostgreSQL.
// Uses native UUID types with transaction support via database.GetTx().
type PostgreSQLRegistrationRepository struct {
	db *sql.DB
}

// Create inserts a new Registration. A unique violation on the CPF column
// returns ErrRegistrationAlreadyExists.
func (p *PostgreSQLRegistrationRepository) Create(
	ctx context.Context,
	registration *registrationDomain.Registration,
) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO registrations (` + registrationColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	args := []any{registration.ID, registration.CPF, registration.Name}
	args = append(args, optionalArgs(registration)...)
	args = append(args, registration.TeamLeader, registration.CreatedAt)

	if _, err := querier.ExecContext(ctx, query, args...); err != nil {
		if database.IsUniqueViolation(err) {
			return registrationDomain.ErrRegistrationAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create registration")
	}
	return nil
}

// GetByCPF retrieves a Registration by normalized CPF. Returns ErrRegistrationNotFound
// if no row matches.
func (p *PostgreSQLRegistrationRepository) GetByCPF(
	ctx context.Context,
	cpf string,
) (*registrationDomain.Registration, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + registrationColumns + ` FROM registrations WHERE cpf = $1`

	registration, err := p.scan(querier.QueryRowContext(ctx, query, cpf))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, registrationDomain.ErrRegistrationNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get registration")
	}
	return registration, nil
}

// List retrieves registrations newest first with pagination support.
// Returns an empty slice when there are no rows.
func (p *PostgreSQLRegistrationRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*registrationDomain.Registration, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + registrationColumns + `
			  FROM registrations
			  ORDER BY created_at DESC, id DESC
			  LIMIT $1 OFFSET $2`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list registrations")
	}
	defer func() {
		_ = rows.Close()
	}()

	registrations := make([]*registrationDomain.Registration, 0)
	for rows.Next() {
		registration, err := p.scan(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan registration row")
		}
		registrations = append(registrations, registration)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "error iterating registration rows")
	}

	return registrations, nil
}

// Count returns the number of stored registrations.
func (p *PostgreSQLRegistrationRepository) Count(ctx context.Context) (int64, error) {
	querier := database.GetTx(ctx, p.db)

	var total int64
	if err := querier.QueryRowContext(ctx, `SELECT COUNT(*) FROM registrations`).Scan(&total); err != nil {
		return 0, apperrors.Wrap(err, "failed to count registrations")
	}
	return total, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (p *PostgreSQLRegistrationRepository) scan(row rowScanner) (*registrationDomain.Registration, error) {
	var registration registrationDomain.Registration
	var n nullableColumns

	err := row.Scan(
		&registration.ID,
		&registration.CPF,
		&registration.Name,
		&n.maritalStatus,
		&n.sex,
		&n.birthDate,
		&n.address,
		&n.neighborhood,
		&n.cityState,
		&n.phone,
		&n.age,
		&registration.TeamLeader,
		&registration.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	n.apply(&registration)
	return &registration, nil
}

// NewPostgreSQLRegistrationRepository creates a new PostgreSQL Registration repository.
func NewPostgreSQLRegistrationRepository(db *sql.DB) *PostgreSQLRegistrationRepository {
	return &PostgreSQLRegistrationRepository{db: db}
}
