package domain

import (
	"github.com/allisson/hrvault/internal/errors"
)

var (
	// ErrScopeViolation indicates a request for records outside the
	// principal's data scope. The request is rejected outright, never
	// silently narrowed to something the principal may see.
	ErrScopeViolation = errors.Wrap(errors.ErrForbidden, "data scope violation")
)
