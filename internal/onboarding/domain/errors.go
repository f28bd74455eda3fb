package domain

import (
	"github.com/allisson/hrvault/internal/errors"
)

var (
	// ErrTokenNotFound indicates the token record does not exist.
	ErrTokenNotFound = errors.Wrap(errors.ErrNotFound, "onboarding token not found")

	// ErrTokenInvalid indicates the token cannot be redeemed: unknown, wrong
	// secret, expired or already used. One error for all cases so callers
	// cannot probe which tokens exist.
	ErrTokenInvalid = errors.Wrap(errors.ErrUnauthorized, "invalid onboarding token")
)
