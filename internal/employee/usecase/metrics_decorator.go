package usecase

import (
	"context"
	"time"

	accessDomain "github.com/allisson/hrvault/internal/access/domain"
	"github.com/allisson/hrvault/internal/metrics"
)

// employeeUseCaseWithMetrics decorates EmployeeUseCase with metrics
// instrumentation.
type employeeUseCaseWithMetrics struct {
	next    EmployeeUseCase
	metrics metrics.BusinessMetrics
}

// NewEmployeeUseCaseWithMetrics wraps an EmployeeUseCase with metrics recording.
func NewEmployeeUseCaseWithMetrics(useCase EmployeeUseCase, m metrics.BusinessMetrics) EmployeeUseCase {
	return &employeeUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Create records metrics for employee creation operations.
func (e *employeeUseCaseWithMetrics) Create(
	ctx context.Context,
	principal *accessDomain.Principal,
	input *CreateEmployeeInput,
) (*EmployeeView, error) {
	start := time.Now()
	view, err := e.next.Create(ctx, principal, input)

	status := "success"
	if err != nil {
		status = "error"
	}

	e.metrics.RecordOperation(ctx, "employees", "employee_create", status)
	e.metrics.RecordDuration(ctx, "employees", "employee_create", time.Since(start), status)

	return view, err
}

// Get records metrics for employee retrieval operations.
func (e *employeeUseCaseWithMetrics) Get(
	ctx context.Context,
	principal *accessDomain.Principal,
	employeeNumber string,
) (*EmployeeView, error) {
	start := time.Now()
	view, err := e.next.Get(ctx, principal, employeeNumber)

	status := "success"
	if err != nil {
		status = "error"
	}

	e.metrics.RecordOperation(ctx, "employees", "employee_get", status)
	e.metrics.RecordDuration(ctx, "employees", "employee_get", time.Since(start), status)

	return view, err
}

// List records metrics for employee listing operations.
func (e *employeeUseCaseWithMetrics) List(
	ctx context.Context,
	principal *accessDomain.Principal,
	requestedDepartmentID string,
	offset, limit int,
) ([]*EmployeeView, error) {
	start := time.Now()
	views, err := e.next.List(ctx, principal, requestedDepartmentID, offset, limit)

	status := "success"
	if err != nil {
		status = "error"
	}

	e.metrics.RecordOperation(ctx, "employees", "employee_list", status)
	e.metrics.RecordDuration(ctx, "employees", "employee_list", time.Since(start), status)

	return views, err
}

// Update records metrics for employee update operations.
func (e *employeeUseCaseWithMetrics) Update(
	ctx context.Context,
	principal *accessDomain.Principal,
	employeeNumber string,
	changes map[string]string,
) (*UpdateEmployeeOutput, error) {
	start := time.Now()
	output, err := e.next.Update(ctx, principal, employeeNumber, changes)

	status := "success"
	if err != nil {
		status = "error"
	}

	e.metrics.RecordOperation(ctx, "employees", "employee_update", status)
	e.metrics.RecordDuration(ctx, "employees", "employee_update", time.Since(start), status)

	return output, err
}

// Search records metrics for hash sidecar search operations.
func (e *employeeUseCaseWithMetrics) Search(
	ctx context.Context,
	principal *accessDomain.Principal,
	field, value string,
) ([]*EmployeeView, error) {
	start := time.Now()
	views, err := e.next.Search(ctx, principal, field, value)

	status := "success"
	if err != nil {
		status = "error"
	}

	e.metrics.RecordOperation(ctx, "employees", "employee_search", status)
	e.metrics.RecordDuration(ctx, "employees", "employee_search", time.Since(start), status)

	return views, err
}
