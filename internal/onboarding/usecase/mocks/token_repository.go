// Package mocks provides mock implementations for testing use cases.
package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	employeeDomain "github.com/allisson/hrvault/internal/employee/domain"
	onboardingDomain "github.com/allisson/hrvault/internal/onboarding/domain"
)

// MockTokenRepository is a mock implementation of usecase.TokenRepository.
type MockTokenRepository struct {
	mock.Mock
}

// Create mocks the Create method.
func (m *MockTokenRepository) Create(ctx context.Context, token *onboardingDomain.LinkToken) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

// Get mocks the Get method.
func (m *MockTokenRepository) Get(ctx context.Context, tokenID uuid.UUID) (*onboardingDomain.LinkToken, error) {
	args := m.Called(ctx, tokenID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*onboardingDomain.LinkToken), args.Error(1)
}

// MarkUsed mocks the MarkUsed method.
func (m *MockTokenRepository) MarkUsed(ctx context.Context, tokenID uuid.UUID, usedAt time.Time) error {
	args := m.Called(ctx, tokenID, usedAt)
	return args.Error(0)
}

// MockEmployeeDirectory is a mock implementation of usecase.EmployeeDirectory.
type MockEmployeeDirectory struct {
	mock.Mock
}

// GetByNumber mocks the GetByNumber method.
func (m *MockEmployeeDirectory) GetByNumber(ctx context.Context, employeeNumber string) (*employeeDomain.Employee, error) {
	args := m.Called(ctx, employeeNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*employeeDomain.Employee), args.Error(1)
}

// MockSecretService is a mock implementation of service.SecretService.
type MockSecretService struct {
	mock.Mock
}

// GenerateSecret mocks the GenerateSecret method.
func (m *MockSecretService) GenerateSecret() (string, string, error) {
	args := m.Called()
	return args.String(0), args.String(1), args.Error(2)
}

// CompareSecret mocks the CompareSecret method.
func (m *MockSecretService) CompareSecret(plainSecret string, hashedSecret string) bool {
	args := m.Called(plainSecret, hashedSecret)
	return args.Bool(0)
}
