package app

import (
	"fmt"
	"sync"

	adminHTTP "github.com/allisson/enrollment/internal/admin/http"
	adminRepository "github.com/allisson/enrollment/internal/admin/repository"
	adminService "github.com/allisson/enrollment/internal/admin/service"
	adminUseCase "github.com/allisson/enrollment/internal/admin/usecase"
	"github.com/allisson/enrollment/internal/database"
)

type adminComponents struct {
	passwordService adminService.PasswordService
	tokenService    adminService.TokenService
	sessionRepo     adminUseCase.SessionRepository
	sessionUseCase  adminUseCase.SessionUseCase
	sessionHandler  *adminHTTP.SessionHandler

	passwordServiceInit sync.Once
	tokenServiceInit    sync.Once
	sessionRepoInit     sync.Once
	sessionUseCaseInit  sync.Once
	sessionHandlerInit  sync.Once
}

// PasswordService returns the admin password hasher.
func (c *Container) PasswordService() adminService.PasswordService {
	c.passwordServiceInit.Do(func() {
		c.passwordService = adminService.NewPasswordService()
	})
	return c.passwordService
}

// TokenService returns the session token generator.
func (c *Container) TokenService() adminService.TokenService {
	c.tokenServiceInit.Do(func() {
		c.tokenService = adminService.NewTokenService()
	})
	return c.tokenService
}

// SessionRepository returns the admin session repository for the configured driver.
func (c *Container) SessionRepository() (adminUseCase.SessionRepository, error) {
	err := c.once(&c.sessionRepoInit, "sessionRepository", func() error {
		db, err := c.DB()
		if err != nil {
			return fmt.Errorf("failed to get database for session repository: %w", err)
		}

		switch c.config.DBDriver {
		case database.DriverMySQL:
			c.sessionRepo = adminRepository.NewMySQLSessionRepository(db)
		case database.DriverPostgres:
			c.sessionRepo = adminRepository.NewPostgreSQLSessionRepository(db)
		default:
			return fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.sessionRepo, nil
}

// SessionUseCase returns the admin session use case wrapped with metrics.
func (c *Container) SessionUseCase() (adminUseCase.SessionUseCase, error) {
	err := c.once(&c.sessionUseCaseInit, "sessionUseCase", func() error {
		txManager, err := c.TxManager()
		if err != nil {
			return fmt.Errorf("failed to get tx manager for session use case: %w", err)
		}

		repo, err := c.SessionRepository()
		if err != nil {
			return err
		}

		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return err
		}

		if !c.config.AdminEnabled() {
			c.Logger().Warn("ADMIN_PASSWORD_HASH is empty; admin endpoints are disabled")
		}

		useCase := adminUseCase.NewSessionUseCase(
			adminUseCase.Config{
				PasswordHash:      c.config.AdminPasswordHash,
				SessionExpiration: c.config.AdminSessionExpiration,
			},
			txManager,
			repo,
			c.PasswordService(),
			c.TokenService(),
			nil,
		)
		c.sessionUseCase = adminUseCase.NewSessionUseCaseWithMetrics(useCase, businessMetrics)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.sessionUseCase, nil
}

// SessionHandler returns the admin login/logout HTTP handler.
func (c *Container) SessionHandler() (*adminHTTP.SessionHandler, error) {
	err := c.once(&c.sessionHandlerInit, "sessionHandler", func() error {
		useCase, err := c.SessionUseCase()
		if err != nil {
			return err
		}
		c.sessionHandler = adminHTTP.NewSessionHandler(
			useCase,
			c.TokenService(),
			c.config.AdminCookieSecure,
			c.Logger(),
		)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.sessionHandler, nil
}
