// Package http provides HTTP middleware for principal resolution and
// request throttling.
package http

import (
	"context"

	accessDomain "github.com/allisson/hrvault/internal/access/domain"
)

// principalKey is a context key type for storing the resolved principal.
type principalKey struct{}

// WithPrincipal stores the principal in the context.
func WithPrincipal(ctx context.Context, principal *accessDomain.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, principal)
}

// GetPrincipal retrieves the principal from the context.
func GetPrincipal(ctx context.Context) (*accessDomain.Principal, bool) {
	principal, ok := ctx.Value(principalKey{}).(*accessDomain.Principal)
	return principal, ok
}
