// Package mocks provides mock implementations for testing employee use cases.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	accessDomain "github.com/allisson/hrvault/internal/access/domain"
	employeeDomain "github.com/allisson/hrvault/internal/employee/domain"
)

// MockEmployeeRepository is a mock implementation of EmployeeRepository for testing.
type MockEmployeeRepository struct {
	mock.Mock
}

// Create mocks the Create method of EmployeeRepository.
func (m *MockEmployeeRepository) Create(ctx context.Context, employee *employeeDomain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

// GetByNumber mocks the GetByNumber method of EmployeeRepository.
func (m *MockEmployeeRepository) GetByNumber(
	ctx context.Context,
	employeeNumber string,
) (*employeeDomain.Employee, error) {
	args := m.Called(ctx, employeeNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*employeeDomain.Employee), args.Error(1)
}

// List mocks the List method of EmployeeRepository.
func (m *MockEmployeeRepository) List(
	ctx context.Context,
	filter accessDomain.ScopeFilter,
	offset, limit int,
) ([]*employeeDomain.Employee, error) {
	args := m.Called(ctx, filter, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*employeeDomain.Employee), args.Error(1)
}

// Update mocks the Update method of EmployeeRepository.
func (m *MockEmployeeRepository) Update(ctx context.Context, employee *employeeDomain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

// FindBySearchHash mocks the FindBySearchHash method of EmployeeRepository.
func (m *MockEmployeeRepository) FindBySearchHash(
	ctx context.Context,
	filter accessDomain.ScopeFilter,
	field, hash string,
) ([]*employeeDomain.Employee, error) {
	args := m.Called(ctx, filter, field, hash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*employeeDomain.Employee), args.Error(1)
}
