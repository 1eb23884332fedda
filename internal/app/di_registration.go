package app

import (
	"fmt"
	"sync"

	"github.com/allisson/enrollment/internal/database"
	registrationHTTP "github.com/allisson/enrollment/internal/registration/http"
	registrationRepository "github.com/allisson/enrollment/internal/registration/repository"
	registrationUseCase "github.com/allisson/enrollment/internal/registration/usecase"
)

type registrationComponents struct {
	registrationRepo    registrationUseCase.RegistrationRepository
	registrationUseCase registrationUseCase.RegistrationUseCase
	registrationHandler *registrationHTTP.RegistrationHandler

	registrationRepoInit    sync.Once
	registrationUseCaseInit sync.Once
	registrationHandlerInit sync.Once
}

// RegistrationRepository returns the registration repository for the configured driver.
func (c *Container) RegistrationRepository() (registrationUseCase.RegistrationRepository, error) {
	err := c.once(&c.registrationRepoInit, "registrationRepository", func() error {
		db, err := c.DB()
		if err != nil {
			return fmt.Errorf("failed to get database for registration repository: %w", err)
		}

		switch c.config.DBDriver {
		case database.DriverMySQL:
			c.registrationRepo = registrationRepository.NewMySQLRegistrationRepository(db)
		case database.DriverPostgres:
			c.registrationRepo = registrationRepository.NewPostgreSQLRegistrationRepository(db)
		default:
			return fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.registrationRepo, nil
}

// RegistrationUseCase returns the registration use case wrapped with metrics.
func (c *Container) RegistrationUseCase() (registrationUseCase.RegistrationUseCase, error) {
	err := c.once(&c.registrationUseCaseInit, "registrationUseCase", func() error {
		txManager, err := c.TxManager()
		if err != nil {
			return fmt.Errorf("failed to get tx manager for registration use case: %w", err)
		}

		repo, err := c.RegistrationRepository()
		if err != nil {
			return err
		}

		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return err
		}

		clock, err := c.Clock()
		if err != nil {
			return err
		}

		useCase := registrationUseCase.NewRegistrationUseCase(txManager, repo, clock)
		c.registrationUseCase = registrationUseCase.NewRegistrationUseCaseWithMetrics(useCase, businessMetrics)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.registrationUseCase, nil
}

// RegistrationHandler returns the registration HTTP handler.
func (c *Container) RegistrationHandler() (*registrationHTTP.RegistrationHandler, error) {
	err := c.once(&c.registrationHandlerInit, "registrationHandler", func() error {
		useCase, err := c.RegistrationUseCase()
		if err != nil {
			return err
		}
		c.registrationHandler = registrationHTTP.NewRegistrationHandler(useCase, c.Logger())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.registrationHandler, nil
}
