package domain

import (
	"github.com/allisson/enrollment/internal/cpf"
	"github.com/allisson/enrollment/internal/errors"
)

// Registration errors.
var (
	// ErrRegistrationNotFound indicates no registration exists for the given CPF.
	ErrRegistrationNotFound = errors.Wrap(errors.ErrNotFound, "registration not found")

	// ErrRegistrationAlreadyExists indicates the CPF is already registered.
	ErrRegistrationAlreadyExists = errors.Kind(errors.ErrConflict, "CPF already registered")

	// ErrInvalidCPF indicates the CPF failed normalization or checksum validation.
	ErrInvalidCPF = errors.Kind(errors.Join(errors.ErrInvalidInput, cpf.ErrInvalid), cpf.ErrInvalid.Error())
)
