package app

import (
	"fmt"
	"sync"

	onboardingHTTP "github.com/allisson/hrvault/internal/onboarding/http"
	onboardingRepository "github.com/allisson/hrvault/internal/onboarding/repository"
	onboardingService "github.com/allisson/hrvault/internal/onboarding/service"
	onboardingUseCase "github.com/allisson/hrvault/internal/onboarding/usecase"
)

// onboardingComponents holds the onboarding module dependencies.
type onboardingComponents struct {
	tokenRepo     onboardingUseCase.TokenRepository
	secretService onboardingService.SecretService
	useCase       onboardingUseCase.OnboardingUseCase
	handler       *onboardingHTTP.OnboardingHandler

	tokenRepoInit     sync.Once
	secretServiceInit sync.Once
	useCaseInit       sync.Once
	handlerInit       sync.Once
}

// OnboardingTokenRepository returns the onboarding token repository instance
// for the configured database driver.
func (c *Container) OnboardingTokenRepository() (onboardingUseCase.TokenRepository, error) {
	c.onboarding.tokenRepoInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["onboardingTokenRepo"] = fmt.Errorf("failed to get database for token repository: %w", err)
			return
		}

		switch c.config.DBDriver {
		case "mysql":
			c.onboarding.tokenRepo = onboardingRepository.NewMySQLTokenRepository(db)
		case "postgres":
			c.onboarding.tokenRepo = onboardingRepository.NewPostgreSQLTokenRepository(db)
		default:
			c.initErrors["onboardingTokenRepo"] = fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
		}
	})
	if storedErr, exists := c.initErrors["onboardingTokenRepo"]; exists {
		return nil, storedErr
	}
	return c.onboarding.tokenRepo, nil
}

// OnboardingSecretService returns the Argon2id secret service for onboarding
// link tokens.
func (c *Container) OnboardingSecretService() onboardingService.SecretService {
	c.onboarding.secretServiceInit.Do(func() {
		c.onboarding.secretService = onboardingService.NewSecretService()
	})
	return c.onboarding.secretService
}

// OnboardingUseCase returns the onboarding use case, wrapped with metrics
// instrumentation.
func (c *Container) OnboardingUseCase() (onboardingUseCase.OnboardingUseCase, error) {
	c.onboarding.useCaseInit.Do(func() {
		tokenRepo, err := c.OnboardingTokenRepository()
		if err != nil {
			c.initErrors["onboardingUseCase"] = err
			return
		}

		employeeRepo, err := c.EmployeeRepository()
		if err != nil {
			c.initErrors["onboardingUseCase"] = err
			return
		}

		txManager, err := c.TxManager()
		if err != nil {
			c.initErrors["onboardingUseCase"] = err
			return
		}

		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			c.initErrors["onboardingUseCase"] = err
			return
		}

		useCase := onboardingUseCase.NewOnboardingUseCase(
			c.config,
			tokenRepo,
			employeeRepo,
			c.OnboardingSecretService(),
			txManager,
		)
		c.onboarding.useCase = onboardingUseCase.NewOnboardingUseCaseWithMetrics(useCase, businessMetrics)
	})
	if storedErr, exists := c.initErrors["onboardingUseCase"]; exists {
		return nil, storedErr
	}
	return c.onboarding.useCase, nil
}

// OnboardingHandler returns the onboarding HTTP handler.
func (c *Container) OnboardingHandler() (*onboardingHTTP.OnboardingHandler, error) {
	c.onboarding.handlerInit.Do(func() {
		onboarding, err := c.OnboardingUseCase()
		if err != nil {
			c.initErrors["onboardingHandler"] = err
			return
		}
		employees, err := c.EmployeeUseCase()
		if err != nil {
			c.initErrors["onboardingHandler"] = err
			return
		}
		c.onboarding.handler = onboardingHTTP.NewOnboardingHandler(onboarding, employees, c.Logger())
	})
	if storedErr, exists := c.initErrors["onboardingHandler"]; exists {
		return nil, storedErr
	}
	return c.onboarding.handler, nil
}
