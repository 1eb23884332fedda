package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/allisson/enrollment/internal/database"
	apperrors "github.com/allisson/enrollment/internal/errors"
	registrationDomain "github.com/allisson/enrollment/internal/registration/domain"
)

// MySQLRegistrationRepository implements Registration persistence for MySQL.
// Uses BINARY(16) for UUID storage with transaction support via database.GetTx().
type MySQLRegistrationRepository struct {
	db *sql.DB
}

// Create inserts a new Registration using BINARY(16) for the ID. A duplicate
// key on the CPF column returns ErrRegistrationAlreadyExists.
func (m *MySQLRegistrationRepository) Create(
	ctx context.Context,
	registration *registrationDomain.Registration,
) error {
	querier := database.GetTx(ctx, m.db)

	id, err := registration.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal registration id")
	}

	query := `INSERT INTO registrations (` + registrationColumns + `)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	args := []any{id, registration.CPF, registration.Name}
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
func (m *MySQLRegistrationRepository) GetByCPF(
	ctx context.Context,
	cpf string,
) (*registrationDomain.Registration, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT ` + registrationColumns + ` FROM registrations WHERE cpf = ?`

	registration, err := m.scan(querier.QueryRowContext(ctx, query, cpf))
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
func (m *MySQLRegistrationRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*registrationDomain.Registration, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT ` + registrationColumns + `
			  FROM registrations
			  ORDER BY created_at DESC, id DESC
			  LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list registrations")
	}
	defer func() {
		_ = rows.Close()
	}()

	registrations := make([]*registrationDomain.Registration, 0)
	for rows.Next() {
		registration, err := m.scan(rows)
		if err != nil {
			return nil, err
		}
		registrations = append(registrations, registration)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "error iterating registration rows")
	}

	return registrations, nil
}

// Count returns the number of stored registrations.
func (m *MySQLRegistrationRepository) Count(ctx context.Context) (int64, error) {
	querier := database.GetTx(ctx, m.db)

	var total int64
	if err := querier.QueryRowContext(ctx, `SELECT COUNT(*) FROM registrations`).Scan(&total); err != nil {
		return 0, apperrors.Wrap(err, "failed to count registrations")
	}
	return total, nil
}

func (m *MySQLRegistrationRepository) scan(row rowScanner) (*registrationDomain.Registration, error) {
	var registration registrationDomain.Registration
	var idBytes []byte
	var n nullableColumns

	err := row.Scan(
		&idBytes,
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
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, apperrors.Wrap(err, "failed to scan registration row")
	}

	if err := registration.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal registration id")
	}

	n.apply(&registration)
	return &registration, nil
}

// NewMySQLRegistrationRepository creates a new MySQL Registration repository.
func NewMySQLRegistrationRepository(db *sql.DB) *MySQLRegistrationRepository {
	return &MySQLRegistrationRepository{db: db}
}
