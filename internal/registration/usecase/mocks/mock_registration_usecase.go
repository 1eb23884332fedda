// Package mocks provides mock implementations of the registration use cases.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	registrationDomain "github.com/allisson/enrollment/internal/registration/domain"
)

// MockRegistrationUseCase is a mock implementation of RegistrationUseCase for testing.
type MockRegistrationUseCase struct {
	mock.Mock
}

// Register mocks the Register method of RegistrationUseCase.
func (m *MockRegistrationUseCase) Register(
	ctx context.Context,
	input *registrationDomain.RegisterInput,
) (*registrationDomain.Registration, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*registrationDomain.Registration), args.Error(1)
}

// List mocks the List method of RegistrationUseCase.
func (m *MockRegistrationUseCase) List(
	ctx context.Context,
	offset, limit int,
) ([]*registrationDomain.Registration, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*registrationDomain.Registration), args.Error(1)
}

// Count mocks the Count method of RegistrationUseCase.
func (m *MockRegistrationUseCase) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// GetByCPF mocks the GetByCPF method of RegistrationUseCase.
func (m *MockRegistrationUseCase) GetByCPF(
	ctx context.Context,
	raw string,
) (*registrationDomain.Registration, error) {
	args := m.Called(ctx, raw)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*registrationDomain.Registration), args.Error(1)
}

// NewMockRegistrationUseCase creates a MockRegistrationUseCase whose expectations
// are asserted on cleanup.
func NewMockRegistrationUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRegistrationUseCase {
	m := &MockRegistrationUseCase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
