package usecase

import (
	"context"
	"time"

	accessDomain "github.com/allisson/hrvault/internal/access/domain"
	"github.com/allisson/hrvault/internal/metrics"
)

// onboardingUseCaseWithMetrics decorates OnboardingUseCase with metrics
// instrumentation.
type onboardingUseCaseWithMetrics struct {
	next    OnboardingUseCase
	metrics metrics.BusinessMetrics
}

// NewOnboardingUseCaseWithMetrics wraps an OnboardingUseCase with metrics recording.
func NewOnboardingUseCaseWithMetrics(useCase OnboardingUseCase, m metrics.BusinessMetrics) OnboardingUseCase {
	return &onboardingUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// IssueToken records metrics for token issuance operations.
func (o *onboardingUseCaseWithMetrics) IssueToken(ctx context.Context, employeeNumber string) (*IssueTokenOutput, error) {
	start := time.Now()
	output, err := o.next.IssueToken(ctx, employeeNumber)

	status := "success"
	if err != nil {
		status = "error"
	}

	o.metrics.RecordOperation(ctx, "onboarding", "token_issue", status)
	o.metrics.RecordDuration(ctx, "onboarding", "token_issue", time.Since(start), status)

	return output, err
}

// Redeem records metrics for token redemption operations.
func (o *onboardingUseCaseWithMetrics) Redeem(ctx context.Context, plainToken string) (*accessDomain.Principal, error) {
	start := time.Now()
	principal, err := o.next.Redeem(ctx, plainToken)

	status := "success"
	if err != nil {
		status = "error"
	}

	o.metrics.RecordOperation(ctx, "onboarding", "token_redeem", status)
	o.metrics.RecordDuration(ctx, "onboarding", "token_redeem", time.Since(start), status)

	return principal, err
}
