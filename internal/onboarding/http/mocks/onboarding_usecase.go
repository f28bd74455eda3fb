// Package mocks provides mock implementations for testing HTTP handlers.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	accessDomain "github.com/allisson/hrvault/internal/access/domain"
	onboardingUseCase "github.com/allisson/hrvault/internal/onboarding/usecase"
)

// MockOnboardingUseCase is a mock implementation of usecase.OnboardingUseCase.
type MockOnboardingUseCase struct {
	mock.Mock
}

// IssueToken mocks the IssueToken method.
func (m *MockOnboardingUseCase) IssueToken(ctx context.Context, employeeNumber string) (*onboardingUseCase.IssueTokenOutput, error) {
	args := m.Called(ctx, employeeNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*onboardingUseCase.IssueTokenOutput), args.Error(1)
}

// Redeem mocks the Redeem method.
func (m *MockOnboardingUseCase) Redeem(ctx context.Context, plainToken string) (*accessDomain.Principal, error) {
	args := m.Called(ctx, plainToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accessDomain.Principal), args.Error(1)
}
