// Package usecase implements business logic orchestration for self-service
// onboarding tokens: issuing one-time links and redeeming them into a
// Self-scoped principal.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	accessDomain "github.com/allisson/hrvault/internal/access/domain"
	employeeDomain "github.com/allisson/hrvault/internal/employee/domain"
	onboardingDomain "github.com/allisson/hrvault/internal/onboarding/domain"
)

// TokenRepository defines the interface for onboarding token persistence.
type TokenRepository interface {
	Create(ctx context.Context, token *onboardingDomain.LinkToken) error
	Get(ctx context.Context, tokenID uuid.UUID) (*onboardingDomain.LinkToken, error)
	// MarkUsed stamps the token as redeemed. Returns ErrTokenNotFound when
	// the token does not exist or was already used, so concurrent redemptions
	// cannot both succeed.
	MarkUsed(ctx context.Context, tokenID uuid.UUID, usedAt time.Time) error
}

// EmployeeDirectory is the narrow slice of the employee repository the
// onboarding flow needs: confirming a record exists before issuing a link.
type EmployeeDirectory interface {
	GetByNumber(ctx context.Context, employeeNumber string) (*employeeDomain.Employee, error)
}

// IssueTokenOutput carries a freshly issued onboarding link token. PlainToken
// is shown exactly once; only its hash is stored.
type IssueTokenOutput struct {
	PlainToken     string
	EmployeeNumber string
	ExpiresAt      time.Time
}

// OnboardingUseCase defines the interface for onboarding token business logic.
type OnboardingUseCase interface {
	// IssueToken creates a single-use onboarding link token for an existing
	// employee record.
	IssueToken(ctx context.Context, employeeNumber string) (*IssueTokenOutput, error)

	// Redeem consumes a token and synthesizes the Self-scoped principal bound
	// to the token's employee. A token redeems at most once.
	Redeem(ctx context.Context, plainToken string) (*accessDomain.Principal, error)
}
