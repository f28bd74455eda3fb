package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/allisson/hrvault/internal/app"
	"github.com/allisson/hrvault/internal/config"
)

// RunCreateOnboardingToken issues a one-time onboarding link token for the
// given employee number and prints it. The plain token is shown only here;
// the database stores an Argon2id hash of its secret half.
func RunCreateOnboardingToken(ctx context.Context, employeeNumber string, out io.Writer) error {
	cfg := config.Load()

	container := app.NewContainer(cfg)
	logger := container.Logger()
	defer closeContainer(container, logger)

	onboardingUseCase, err := container.OnboardingUseCase()
	if err != nil {
		return fmt.Errorf("failed to initialize onboarding use case: %w", err)
	}

	output, err := onboardingUseCase.IssueToken(ctx, employeeNumber)
	if err != nil {
		return fmt.Errorf("failed to issue onboarding token: %w", err)
	}

	fmt.Fprintln(out, "# One-time onboarding token (shown only once)")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Employee number: %s\n", output.EmployeeNumber)
	fmt.Fprintf(out, "Token:           %s\n", output.PlainToken)
	fmt.Fprintf(out, "Expires at:      %s\n", output.ExpiresAt.Format("2006-01-02 15:04:05 MST"))
	return nil
}
