// Package mocks provides mock implementations for testing HTTP handlers.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	accessDomain "github.com/allisson/hrvault/internal/access/domain"
	"github.com/allisson/hrvault/internal/employee/usecase"
)

// MockEmployeeUseCase is a mock implementation of usecase.EmployeeUseCase.
type MockEmployeeUseCase struct {
	mock.Mock
}

// Create mocks the Create method.
func (m *MockEmployeeUseCase) Create(ctx context.Context, principal *accessDomain.Principal, input *usecase.CreateEmployeeInput) (*usecase.EmployeeView, error) {
	args := m.Called(ctx, principal, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.EmployeeView), args.Error(1)
}

// Get mocks the Get method.
func (m *MockEmployeeUseCase) Get(ctx context.Context, principal *accessDomain.Principal, employeeNumber string) (*usecase.EmployeeView, error) {
	args := m.Called(ctx, principal, employeeNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.EmployeeView), args.Error(1)
}

// List mocks the List method.
func (m *MockEmployeeUseCase) List(ctx context.Context, principal *accessDomain.Principal, requestedDepartmentID string, offset, limit int) ([]*usecase.EmployeeView, error) {
	args := m.Called(ctx, principal, requestedDepartmentID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*usecase.EmployeeView), args.Error(1)
}

// Update mocks the Update method.
func (m *MockEmployeeUseCase) Update(ctx context.Context, principal *accessDomain.Principal, employeeNumber string, changes map[string]string) (*usecase.UpdateEmployeeOutput, error) {
	args := m.Called(ctx, principal, employeeNumber, changes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.UpdateEmployeeOutput), args.Error(1)
}

// Search mocks the Search method.
func (m *MockEmployeeUseCase) Search(ctx context.Context, principal *accessDomain.Principal, field, value string) ([]*usecase.EmployeeView, error) {
	args := m.Called(ctx, principal, field, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*usecase.EmployeeView), args.Error(1)
}
