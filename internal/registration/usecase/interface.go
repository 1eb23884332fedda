// Package usecase defines business logic interfaces for registration operations.
package usecase

import (
	"context"

	registrationDomain "github.com/allisson/enrollment/internal/registration/domain"
)

// RegistrationRepository defines persistence operations for registrations.
// Implementations must support transaction-aware operations via context propagation.
type RegistrationRepository interface {
	// Create stores a new registration. Returns ErrRegistrationAlreadyExists
	// when the CPF is already registered.
	Create(ctx context.Context, registration *registrationDomain.Registration) error

	// GetByCPF retrieves a registration by its normalized CPF.
	// Returns ErrRegistrationNotFound if not found.
	GetByCPF(ctx context.Context, cpf string) (*registrationDomain.Registration, error)

	// List returns registrations newest first.
	List(ctx context.Context, offset, limit int) ([]*registrationDomain.Registration, error)

	Count(ctx context.Context) (int64, error)
}

// RegistrationUseCase defines business logic operations for registrations.
type RegistrationUseCase interface {
	// Register validates the input, normalizes the CPF and persists a new registration
	// in a single transaction. Validation failures wrap ErrInvalidInput and keep the
	// per-field errors in the chain. A CPF that is already registered returns
	// ErrRegistrationAlreadyExists.
	Register(
		ctx context.Context,
		input *registrationDomain.RegisterInput,
	) (*registrationDomain.Registration, error)

	// List returns registrations ordered by creation time descending.
	List(ctx context.Context, offset, limit int) ([]*registrationDomain.Registration, error)

	// Count returns the total number of registrations.
	Count(ctx context.Context) (int64, error)

	// GetByCPF normalizes raw before the lookup. Returns ErrInvalidCPF when raw is
	// not a valid CPF and ErrRegistrationNotFound when nothing is stored under it.
	GetByCPF(ctx context.Context, raw string) (*registrationDomain.Registration, error)
}
