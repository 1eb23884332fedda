package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	adminDomain "github.com/allisson/enrollment/internal/admin/domain"
	adminService "github.com/allisson/enrollment/internal/admin/service"
	"github.com/allisson/enrollment/internal/database"
)

// Config holds the admin settings the session use case depends on.
type Config struct {
	PasswordHash      string
	SessionExpiration time.Duration
}

// sessionUseCase implements SessionUseCase.
type sessionUseCase struct {
	config          Config
	txManager       database.TxManager
	sessionRepo     SessionRepository
	passwordService adminService.PasswordService
	tokenService    adminService.TokenService
	now             func() time.Time
}

// Login verifies the password and stores the hash of a freshly generated token.
func (s *sessionUseCase) Login(ctx context.Context, password string) (*adminDomain.LoginOutput, error) {
	if s.config.PasswordHash == "" {
		return nil, adminDomain.ErrAdminDisabled
	}

	if !s.passwordService.Verify(password, s.config.PasswordHash) {
		return nil, adminDomain.ErrInvalidCredentials
	}

	plainToken, tokenHash, err := s.tokenService.GenerateToken()
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	session := &adminDomain.Session{
		ID:        uuid.Must(uuid.NewV7()),
		TokenHash: tokenHash,
		ExpiresAt: now.Add(s.config.SessionExpiration),
		CreatedAt: now,
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}

	return &adminDomain.LoginOutput{
		PlainToken: plainToken,
		ExpiresAt:  session.ExpiresAt,
	}, nil
}

// Authenticate returns the session for tokenHash if it is still active.
func (s *sessionUseCase) Authenticate(ctx context.Context, tokenHash string) (*adminDomain.Session, error) {
	if s.config.PasswordHash == "" {
		return nil, adminDomain.ErrAdminDisabled
	}

	session, err := s.sessionRepo.GetByTokenHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, adminDomain.ErrSessionNotFound) {
			return nil, adminDomain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !session.IsActive(s.now().UTC()) {
		return nil, adminDomain.ErrInvalidCredentials
	}

	return session, nil
}

// Logout revokes the session for tokenHash.
func (s *sessionUseCase) Logout(ctx context.Context, tokenHash string) error {
	return s.sessionRepo.Revoke(ctx, tokenHash, s.now().UTC())
}

// PurgeExpired removes, or with dryRun counts, sessions that are no longer usable.
func (s *sessionUseCase) PurgeExpired(ctx context.Context, before time.Time, dryRun bool) (int64, error) {
	if dryRun {
		return s.sessionRepo.CountExpired(ctx, before.UTC())
	}

	var deleted int64
	err := s.txManager.WithTx(ctx, func(txCtx context.Context) error {
		n, err := s.sessionRepo.DeleteExpired(txCtx, before.UTC())
		if err != nil {
			return err
		}
		deleted = n
		return nil
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}

// NewSessionUseCase creates a new SessionUseCase. A nil now uses time.Now.
func NewSessionUseCase(
	config Config,
	txManager database.TxManager,
	sessionRepo SessionRepository,
	passwordService adminService.PasswordService,
	tokenService adminService.TokenService,
	now func() time.Time,
) SessionUseCase {
	if now == nil {
		now = time.Now
	}
	return &sessionUseCase{
		config:          config,
		txManager:       txManager,
		sessionRepo:     sessionRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
		now:             now,
	}
}
