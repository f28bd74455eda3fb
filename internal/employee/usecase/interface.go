// Package usecase implements business logic orchestration for employee records.
// It composes the scope resolver, the field access rules, the field vault and
// the masking policy so that every read and write of protected data goes
// through a single, per-principal decision path.
package usecase

import (
	"context"
	"time"

	accessDomain "github.com/allisson/hrvault/internal/access/domain"
	employeeDomain "github.com/allisson/hrvault/internal/employee/domain"
)

// EmployeeRepository defines the interface for employee persistence
// operations. Implementations translate the ScopeFilter into query
// predicates; they never decrypt anything.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *employeeDomain.Employee) error
	GetByNumber(ctx context.Context, employeeNumber string) (*employeeDomain.Employee, error)
	List(ctx context.Context, filter accessDomain.ScopeFilter, offset, limit int) ([]*employeeDomain.Employee, error)
	Update(ctx context.Context, employee *employeeDomain.Employee) error
	FindBySearchHash(ctx context.Context, filter accessDomain.ScopeFilter, field, hash string) ([]*employeeDomain.Employee, error)
}

// CreateEmployeeInput carries the plaintext attributes of a new employee.
// Protected field values arrive in Fields keyed by field name and are
// encrypted before anything is persisted.
type CreateEmployeeInput struct {
	EmployeeNumber string
	DepartmentID   string
	Position       string
	Email          string
	Gender         string
	HireDate       time.Time
	Fields         map[string]string
}

// EmployeeView is an employee record rendered for one principal. Fields holds
// the display values of protected fields: raw plaintext when the viewer
// passed the sensitive-view gate, masked otherwise, and absent entirely for
// fields that have no safe partial representation. Encrypted blobs never
// appear in a view.
type EmployeeView struct {
	EmployeeNumber    string
	DepartmentID      string
	Position          string
	Email             string
	Gender            string
	HireDate          time.Time
	Status            string
	Fields            map[string]string
	SensitiveRevealed bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// UpdateEmployeeOutput is the result of a field update. Rejection is partial:
// RejectedFields names the requested fields the principal could not edit,
// while the remaining ones were applied.
type UpdateEmployeeOutput struct {
	Employee       *EmployeeView
	RejectedFields []string
}

// EmployeeUseCase defines the interface for employee record business logic.
// Every method takes the calling principal and enforces scope, permission and
// field access rules before touching protected data.
type EmployeeUseCase interface {
	Create(ctx context.Context, principal *accessDomain.Principal, input *CreateEmployeeInput) (*EmployeeView, error)
	Get(ctx context.Context, principal *accessDomain.Principal, employeeNumber string) (*EmployeeView, error)
	List(ctx context.Context, principal *accessDomain.Principal, requestedDepartmentID string, offset, limit int) ([]*EmployeeView, error)
	Update(ctx context.Context, principal *accessDomain.Principal, employeeNumber string, changes map[string]string) (*UpdateEmployeeOutput, error)
	Search(ctx context.Context, principal *accessDomain.Principal, field, value string) ([]*EmployeeView, error)
}
