package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	accessDomain "github.com/allisson/hrvault/internal/access/domain"
	"github.com/allisson/hrvault/internal/config"
	"github.com/allisson/hrvault/internal/database"
	apperrors "github.com/allisson/hrvault/internal/errors"
	onboardingDomain "github.com/allisson/hrvault/internal/onboarding/domain"
	onboardingService "github.com/allisson/hrvault/internal/onboarding/service"
)

// onboardingUseCase implements OnboardingUseCase.
type onboardingUseCase struct {
	config        *config.Config
	tokenRepo     TokenRepository
	employees     EmployeeDirectory
	secretService onboardingService.SecretService
	txManager     database.TxManager
}

// IssueToken creates a single-use onboarding link token for an employee.
//
// The plain token has the form "<token_id>.<secret>"; the secret is random
// and only its Argon2id hash is persisted. Token expiration comes from
// Config.OnboardingTokenExpiration.
func (o *onboardingUseCase) IssueToken(ctx context.Context, employeeNumber string) (*IssueTokenOutput, error) {
	// Confirm the employee record exists before minting a link for it.
	employee, err := o.employees.GetByNumber(ctx, employeeNumber)
	if err != nil {
		return nil, err
	}

	plainSecret, hashedSecret, err := o.secretService.GenerateSecret()
	if err != nil {
		return nil, err
	}

	token := &onboardingDomain.LinkToken{
		ID:             uuid.Must(uuid.NewV7()),
		SecretHash:     hashedSecret,
		EmployeeNumber: employee.EmployeeNumber,
		ExpiresAt:      time.Now().UTC().Add(o.config.OnboardingTokenExpiration),
		UsedAt:         nil,
		CreatedAt:      time.Now().UTC(),
	}

	if err := o.tokenRepo.Create(ctx, token); err != nil {
		return nil, err
	}

	return &IssueTokenOutput{
		PlainToken:     fmt.Sprintf("%s.%s", token.ID, plainSecret),
		EmployeeNumber: token.EmployeeNumber,
		ExpiresAt:      token.ExpiresAt,
	}, nil
}

// Redeem consumes an onboarding token and returns the Self-scoped principal
// bound to the token's employee.
//
// Security Notes:
//   - Returns ErrTokenInvalid for unknown IDs, wrong secrets, expired and
//     already-used tokens alike, so callers cannot probe which tokens exist
//   - Lookup and the single-use stamp run in one transaction; the conditional
//     update in MarkUsed ensures at most one concurrent redemption wins
//   - The synthesized principal is always Self scope bound to one employee,
//     never Department or All
func (o *onboardingUseCase) Redeem(ctx context.Context, plainToken string) (*accessDomain.Principal, error) {
	tokenID, plainSecret, err := splitPlainToken(plainToken)
	if err != nil {
		return nil, onboardingDomain.ErrTokenInvalid
	}

	var employeeNumber string

	err = o.txManager.WithTx(ctx, func(ctx context.Context) error {
		token, err := o.tokenRepo.Get(ctx, tokenID)
		if err != nil {
			if apperrors.Is(err, apperrors.ErrNotFound) {
				return onboardingDomain.ErrTokenInvalid
			}
			return err
		}

		now := time.Now().UTC()
		if token.IsExpired(now) || token.IsUsed() {
			return onboardingDomain.ErrTokenInvalid
		}

		if !o.secretService.CompareSecret(plainSecret, token.SecretHash) {
			return onboardingDomain.ErrTokenInvalid
		}

		if err := o.tokenRepo.MarkUsed(ctx, token.ID, now); err != nil {
			if apperrors.Is(err, apperrors.ErrNotFound) {
				// Another redemption won the race.
				return onboardingDomain.ErrTokenInvalid
			}
			return err
		}

		employeeNumber = token.EmployeeNumber
		return nil
	})
	if err != nil {
		return nil, err
	}

	return accessDomain.SelfServicePrincipal(employeeNumber), nil
}

// splitPlainToken parses a "<token_id>.<secret>" link token.
func splitPlainToken(plainToken string) (uuid.UUID, string, error) {
	idPart, secretPart, found := strings.Cut(plainToken, ".")
	if !found || secretPart == "" {
		return uuid.Nil, "", fmt.Errorf("malformed token")
	}

	tokenID, err := uuid.Parse(idPart)
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("malformed token id")
	}

	return tokenID, secretPart, nil
}

// NewOnboardingUseCase creates a new OnboardingUseCase with the provided dependencies.
func NewOnboardingUseCase(
	config *config.Config,
	tokenRepo TokenRepository,
	employees EmployeeDirectory,
	secretService onboardingService.SecretService,
	txManager database.TxManager,
) OnboardingUseCase {
	return &onboardingUseCase{
		config:        config,
		tokenRepo:     tokenRepo,
		employees:     employees,
		secretService: secretService,
		txManager:     txManager,
	}
}
