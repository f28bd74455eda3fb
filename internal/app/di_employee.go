package app

import (
	"fmt"
	"sync"

	employeeHTTP "github.com/allisson/hrvault/internal/employee/http"
	employeeRepository "github.com/allisson/hrvault/internal/employee/repository"
	employeeUseCase "github.com/allisson/hrvault/internal/employee/usecase"
)

// employeeComponents holds the employee module dependencies.
type employeeComponents struct {
	repo    employeeUseCase.EmployeeRepository
	useCase employeeUseCase.EmployeeUseCase
	handler *employeeHTTP.EmployeeHandler

	repoInit    sync.Once
	useCaseInit sync.Once
	handlerInit sync.Once
}

// EmployeeRepository returns the employee repository instance for the
// configured database driver.
func (c *Container) EmployeeRepository() (employeeUseCase.EmployeeRepository, error) {
	c.employee.repoInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["employeeRepo"] = fmt.Errorf("failed to get database for employee repository: %w", err)
			return
		}

		switch c.config.DBDriver {
		case "mysql":
			c.employee.repo = employeeRepository.NewMySQLEmployeeRepository(db)
		case "postgres":
			c.employee.repo = employeeRepository.NewPostgreSQLEmployeeRepository(db)
		default:
			c.initErrors["employeeRepo"] = fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
		}
	})
	if storedErr, exists := c.initErrors["employeeRepo"]; exists {
		return nil, storedErr
	}
	return c.employee.repo, nil
}

// EmployeeUseCase returns the employee use case, wrapped with metrics
// instrumentation.
func (c *Container) EmployeeUseCase() (employeeUseCase.EmployeeUseCase, error) {
	c.employee.useCaseInit.Do(func() {
		repo, err := c.EmployeeRepository()
		if err != nil {
			c.initErrors["employeeUseCase"] = err
			return
		}

		vault, err := c.FieldVault()
		if err != nil {
			c.initErrors["employeeUseCase"] = err
			return
		}

		hasher, err := c.SearchHasher()
		if err != nil {
			c.initErrors["employeeUseCase"] = err
			return
		}

		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			c.initErrors["employeeUseCase"] = err
			return
		}

		useCase := employeeUseCase.NewEmployeeUseCase(repo, vault, hasher)
		c.employee.useCase = employeeUseCase.NewEmployeeUseCaseWithMetrics(useCase, businessMetrics)
	})
	if storedErr, exists := c.initErrors["employeeUseCase"]; exists {
		return nil, storedErr
	}
	return c.employee.useCase, nil
}

// EmployeeHandler returns the employee HTTP handler.
func (c *Container) EmployeeHandler() (*employeeHTTP.EmployeeHandler, error) {
	c.employee.handlerInit.Do(func() {
		useCase, err := c.EmployeeUseCase()
		if err != nil {
			c.initErrors["employeeHandler"] = err
			return
		}
		c.employee.handler = employeeHTTP.NewEmployeeHandler(useCase, c.Logger())
	})
	if storedErr, exists := c.initErrors["employeeHandler"]; exists {
		return nil, storedErr
	}
	return c.employee.handler, nil
}
