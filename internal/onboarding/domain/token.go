// Package domain defines the one-time onboarding link token and its rules.
// A token lets a new hire reach their own record before any directory account
// exists: redeeming it yields a principal bound to exactly one employee with
// Self scope, never anything wider.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// LinkToken is a single-use onboarding token. The random secret never touches
// storage: only its Argon2id hash is persisted, so a database dump cannot be
// replayed into working links.
type LinkToken struct {
	ID             uuid.UUID
	SecretHash     string
	EmployeeNumber string
	ExpiresAt      time.Time
	UsedAt         *time.Time
	CreatedAt      time.Time
}

// IsExpired reports whether the token lifetime has passed at the given moment.
func (t *LinkToken) IsExpired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}

// IsUsed reports whether the token has already been redeemed.
func (t *LinkToken) IsUsed() bool {
	return t.UsedAt != nil
}
