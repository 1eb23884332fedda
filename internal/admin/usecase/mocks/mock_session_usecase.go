// Package mocks provides mock implementations of the admin session use case.
package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	adminDomain "github.com/allisson/enrollment/internal/admin/domain"
)

// MockSessionUseCase is a mock implementation of SessionUseCase for testing.
type MockSessionUseCase struct {
	mock.Mock
}

// Login mocks the Login method of SessionUseCase.
func (m *MockSessionUseCase) Login(ctx context.Context, password string) (*adminDomain.LoginOutput, error) {
	args := m.Called(ctx, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*adminDomain.LoginOutput), args.Error(1)
}

// Authenticate mocks the Authenticate method of SessionUseCase.
func (m *MockSessionUseCase) Authenticate(ctx context.Context, tokenHash string) (*adminDomain.Session, error) {
	args := m.Called(ctx, tokenHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*adminDomain.Session), args.Error(1)
}

// Logout mocks the Logout method of SessionUseCase.
func (m *MockSessionUseCase) Logout(ctx context.Context, tokenHash string) error {
	args := m.Called(ctx, tokenHash)
	return args.Error(0)
}

// PurgeExpired mocks the PurgeExpired method of SessionUseCase.
func (m *MockSessionUseCase) PurgeExpired(ctx context.Context, before time.Time, dryRun bool) (int64, error) {
	args := m.Called(ctx, before, dryRun)
	return args.Get(0).(int64), args.Error(1)
}

// NewMockSessionUseCase creates a MockSessionUseCase whose expectations are asserted on cleanup.
func NewMockSessionUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSessionUseCase {
	m := &MockSessionUseCase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
