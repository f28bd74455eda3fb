package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	accessDomain "github.com/allisson/hrvault/internal/access/domain"
	cryptoService "github.com/allisson/hrvault/internal/crypto/service"
	employeeDomain "github.com/allisson/hrvault/internal/employee/domain"
	apperrors "github.com/allisson/hrvault/internal/errors"
	"github.com/allisson/hrvault/internal/masking"
)

// employeeUseCase implements the EmployeeUseCase interface.
type employeeUseCase struct {
	employeeRepo EmployeeRepository
	vault        cryptoService.FieldVault
	hasher       cryptoService.SearchHasher
}

// Create encrypts the protected fields of a new employee and persists the
// record. Requires the employees.create permission.
func (e *employeeUseCase) Create(
	ctx context.Context,
	principal *accessDomain.Principal,
	input *CreateEmployeeInput,
) (*EmployeeView, error) {
	if !accessDomain.HasPermission("employees.create", principal.Permissions()) {
		return nil, apperrors.Wrap(apperrors.ErrForbidden, "missing employees.create permission")
	}

	if input.EmployeeNumber == "" {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "employee number is required")
	}
	if input.DepartmentID == "" {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "department id is required")
	}
	for field := range input.Fields {
		if !employeeDomain.IsProtectedField(field) {
			return nil, apperrors.Wrap(employeeDomain.ErrUnknownField, field)
		}
	}

	employee := &employeeDomain.Employee{
		ID:             uuid.Must(uuid.NewV7()),
		EmployeeNumber: input.EmployeeNumber,
		DepartmentID:   input.DepartmentID,
		Position:       input.Position,
		Email:          input.Email,
		Gender:         input.Gender,
		HireDate:       input.HireDate,
		Status:         "active",
		Fields:         make(map[string]employeeDomain.EncryptedField, len(input.Fields)),
		CreatedAt:      time.Now().UTC(),
		UpdatedAt:      time.Now().UTC(),
	}

	for field, value := range input.Fields {
		encrypted, err := e.sealField(value)
		if err != nil {
			return nil, err
		}
		employee.Fields[field] = encrypted
	}

	if err := e.employeeRepo.Create(ctx, employee); err != nil {
		return nil, err
	}

	return e.render(principal, employee)
}

// Get retrieves one employee visible to the principal and renders it for
// display. Records outside the principal's scope read as not found.
func (e *employeeUseCase) Get(
	ctx context.Context,
	principal *accessDomain.Principal,
	employeeNumber string,
) (*EmployeeView, error) {
	employee, err := e.visibleEmployee(ctx, principal, employeeNumber)
	if err != nil {
		return nil, err
	}

	return e.render(principal, employee)
}

// List retrieves the employees visible to the principal, optionally narrowed
// to one department, and renders each for display.
func (e *employeeUseCase) List(
	ctx context.Context,
	principal *accessDomain.Principal,
	requestedDepartmentID string,
	offset, limit int,
) ([]*EmployeeView, error) {
	filter, err := accessDomain.ResolveFilter(principal, requestedDepartmentID)
	if err != nil {
		return nil, err
	}
	if filter.DenyAll {
		return []*EmployeeView{}, nil
	}

	employees, err := e.employeeRepo.List(ctx, filter, offset, limit)
	if err != nil {
		return nil, err
	}

	return e.renderAll(principal, employees)
}

// Update applies field changes to an employee record. Fields the principal
// may not edit are rejected individually by name; the editable remainder is
// applied. A request where nothing is editable fails without writing.
func (e *employeeUseCase) Update(
	ctx context.Context,
	principal *accessDomain.Principal,
	employeeNumber string,
	changes map[string]string,
) (*UpdateEmployeeOutput, error) {
	employee, err := e.visibleEmployee(ctx, principal, employeeNumber)
	if err != nil {
		return nil, err
	}

	probe := accessDomain.CanEditFields(principal, employee.EmployeeNumber, employee.DepartmentID, nil)
	if !probe.AllowedAll {
		return nil, apperrors.Wrap(apperrors.ErrForbidden, "principal may not edit this record")
	}

	requested := make([]string, 0, len(changes))
	for field := range changes {
		if !employeeDomain.IsProtectedField(field) &&
			field != employeeDomain.FieldEmail &&
			field != employeeDomain.FieldPosition {
			return nil, apperrors.Wrap(employeeDomain.ErrUnknownField, field)
		}
		requested = append(requested, field)
	}
	sort.Strings(requested)

	decision := accessDomain.CanEditFields(principal, employee.EmployeeNumber, employee.DepartmentID, requested)
	if len(decision.Editable) == 0 && len(decision.Rejected) > 0 {
		return nil, apperrors.NewFieldValidationError(decision.Rejected...)
	}

	for _, field := range decision.Editable {
		value := changes[field]
		switch field {
		case employeeDomain.FieldEmail:
			employee.Email = value
		case employeeDomain.FieldPosition:
			employee.Position = value
		default:
			encrypted, err := e.sealField(value)
			if err != nil {
				return nil, err
			}
			employee.Fields[field] = encrypted
		}
	}
	employee.UpdatedAt = time.Now().UTC()

	if err := e.employeeRepo.Update(ctx, employee); err != nil {
		return nil, err
	}

	view, err := e.render(principal, employee)
	if err != nil {
		return nil, err
	}

	return &UpdateEmployeeOutput{
		Employee:       view,
		RejectedFields: decision.Rejected,
	}, nil
}

// Search performs an exact-match lookup on a protected field through its hash
// sidecar. The stored values are never decrypted to answer the query, and the
// results are restricted to the principal's scope before rendering.
func (e *employeeUseCase) Search(
	ctx context.Context,
	principal *accessDomain.Principal,
	field, value string,
) ([]*EmployeeView, error) {
	if !employeeDomain.IsSearchableField(field) {
		return nil, apperrors.Wrap(employeeDomain.ErrFieldNotSearchable, field)
	}
	if value == "" {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "search value is required")
	}

	filter, err := accessDomain.ResolveFilter(principal, "")
	if err != nil {
		return nil, err
	}
	if filter.DenyAll {
		return []*EmployeeView{}, nil
	}

	employees, err := e.employeeRepo.FindBySearchHash(ctx, filter, field, e.hasher.Hash(value))
	if err != nil {
		return nil, err
	}

	return e.renderAll(principal, employees)
}

// visibleEmployee fetches an employee and checks it against the principal's
// resolved scope filter. Out-of-scope records read as not found so their
// existence does not leak.
func (e *employeeUseCase) visibleEmployee(
	ctx context.Context,
	principal *accessDomain.Principal,
	employeeNumber string,
) (*employeeDomain.Employee, error) {
	filter, err := accessDomain.ResolveFilter(principal, "")
	if err != nil {
		return nil, err
	}
	if filter.DenyAll {
		return nil, employeeDomain.ErrEmployeeNotFound
	}

	employee, err := e.employeeRepo.GetByNumber(ctx, employeeNumber)
	if err != nil {
		return nil, err
	}

	if filter.EmployeeID != "" && employee.EmployeeNumber != filter.EmployeeID {
		return nil, employeeDomain.ErrEmployeeNotFound
	}
	if filter.DepartmentID != "" && employee.DepartmentID != filter.DepartmentID {
		return nil, employeeDomain.ErrEmployeeNotFound
	}

	return employee, nil
}

// sealField encrypts one field value and computes its search-hash sidecar.
func (e *employeeUseCase) sealField(value string) (employeeDomain.EncryptedField, error) {
	blob, err := e.vault.Encrypt(value)
	if err != nil {
		return employeeDomain.EncryptedField{}, err
	}

	return employeeDomain.EncryptedField{
		Blob:       blob,
		SearchHash: e.hasher.Hash(value),
	}, nil
}

// render projects an employee record into a per-principal view. For each
// protected field the sensitive-view gate decides between raw plaintext,
// the masked form, or omission.
func (e *employeeUseCase) render(
	principal *accessDomain.Principal,
	employee *employeeDomain.Employee,
) (*EmployeeView, error) {
	canView := accessDomain.CanViewSensitive(principal, employee.EmployeeNumber)

	fields := make(map[string]string, len(employee.Fields))
	for _, field := range employeeDomain.ProtectedFields() {
		encrypted, ok := employee.Fields[field]
		if !ok {
			continue
		}

		if canView {
			plaintext, err := e.vault.Decrypt(encrypted.Blob)
			if err != nil {
				return nil, err
			}
			fields[field] = plaintext
			continue
		}

		kind, maskable := employeeDomain.MaskKind(field)
		if !maskable {
			continue
		}
		plaintext, err := e.vault.Decrypt(encrypted.Blob)
		if err != nil {
			return nil, err
		}
		fields[field] = masking.Mask(plaintext, kind)
	}

	return &EmployeeView{
		EmployeeNumber:    employee.EmployeeNumber,
		DepartmentID:      employee.DepartmentID,
		Position:          employee.Position,
		Email:             employee.Email,
		Gender:            employee.Gender,
		HireDate:          employee.HireDate,
		Status:            employee.Status,
		Fields:            fields,
		SensitiveRevealed: canView,
		CreatedAt:         employee.CreatedAt,
		UpdatedAt:         employee.UpdatedAt,
	}, nil
}

// renderAll renders a slice of employees for the same principal.
func (e *employeeUseCase) renderAll(
	principal *accessDomain.Principal,
	employees []*employeeDomain.Employee,
) ([]*EmployeeView, error) {
	views := make([]*EmployeeView, 0, len(employees))
	for _, employee := range employees {
		view, err := e.render(principal, employee)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

// NewEmployeeUseCase creates a new employee use case instance with the
// provided dependencies.
func NewEmployeeUseCase(
	employeeRepo EmployeeRepository,
	vault cryptoService.FieldVault,
	hasher cryptoService.SearchHasher,
) EmployeeUseCase {
	return &employeeUseCase{
		employeeRepo: employeeRepo,
		vault:        vault,
		hasher:       hasher,
	}
}
