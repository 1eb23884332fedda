package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/enrollment/internal/cpf"
	"github.com/allisson/enrollment/internal/database"
	registrationDomain "github.com/allisson/enrollment/internal/registration/domain"
	"github.com/allisson/enrollment/internal/validation"
)

// registrationUseCase implements RegistrationUseCase.
type registrationUseCase struct {
	txManager        database.TxManager
	registrationRepo RegistrationRepository
	now              func() time.Time
}

// Register validates and stores a registration.
//
// The CPF is persisted in its normalized digit-only form. The name is trimmed,
// empty optional fields become NULL and the age is derived from the birth date
// on the current day in the location of the configured clock.
func (r *registrationUseCase) Register(
	ctx context.Context,
	input *registrationDomain.RegisterInput,
) (*registrationDomain.Registration, error) {
	if err := input.Validate(r.now); err != nil {
		return nil, validation.WrapValidationError(err)
	}

	normalized, err := cpf.Validate(input.CPF)
	if err != nil {
		return nil, registrationDomain.ErrInvalidCPF
	}

	now := r.now()
	registration := &registrationDomain.Registration{
		ID:           uuid.Must(uuid.NewV7()),
		CPF:          normalized,
		Name:         strings.TrimSpace(input.Name),
		Address:      optional(input.Address),
		Neighborhood: optional(input.Neighborhood),
		CityState:    optional(input.CityState),
		Phone:        optional(input.Phone),
		TeamLeader:   input.TeamLeader,
		CreatedAt:    now.UTC(),
	}

	if input.MaritalStatus != "" {
		status := registrationDomain.MaritalStatus(input.MaritalStatus)
		registration.MaritalStatus = &status
	}
	if input.Sex != "" {
		sex := registrationDomain.Sex(input.Sex)
		registration.Sex = &sex
	}
	if input.BirthDate != "" {
		birthDate, err := time.Parse(validation.DateLayout, input.BirthDate)
		if err != nil {
			return nil, validation.WrapValidationError(err)
		}
		age := registrationDomain.AgeOn(birthDate, now)
		registration.BirthDate = &birthDate
		registration.Age = &age
	}

	err = r.txManager.WithTx(ctx, func(txCtx context.Context) error {
		return r.registrationRepo.Create(txCtx, registration)
	})
	if err != nil {
		return nil, err
	}

	return registration, nil
}

// List returns registrations ordered by creation time descending.
func (r *registrationUseCase) List(
	ctx context.Context,
	offset, limit int,
) ([]*registrationDomain.Registration, error) {
	return r.registrationRepo.List(ctx, offset, limit)
}

// Count returns the total number of registrations.
func (r *registrationUseCase) Count(ctx context.Context) (int64, error) {
	return r.registrationRepo.Count(ctx)
}

// GetByCPF looks up a registration by CPF in any accepted formatting.
func (r *registrationUseCase) GetByCPF(
	ctx context.Context,
	raw string,
) (*registrationDomain.Registration, error) {
	normalized, err := cpf.Validate(raw)
	if err != nil {
		return nil, registrationDomain.ErrInvalidCPF
	}
	return r.registrationRepo.GetByCPF(ctx, normalized)
}

// optional returns nil for blank strings and a pointer to the trimmed value otherwise.
func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// NewRegistrationUseCase creates a new RegistrationUseCase. A nil now uses time.Now.
func NewRegistrationUseCase(
	txManager database.TxManager,
	registrationRepo RegistrationRepository,
	now func() time.Time,
) RegistrationUseCase {
	if now == nil {
		now = time.Now
	}
	return &registrationUseCase{
		txManager:        txManager,
		registrationRepo: registrationRepo,
		now:              now,
	}
}
