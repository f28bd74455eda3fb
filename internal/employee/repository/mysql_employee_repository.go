package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	accessDomain "github.com/allisson/hrvault/internal/access/domain"
	"github.com/allisson/hrvault/internal/database"
	employeeDomain "github.com/allisson/hrvault/internal/employee/domain"

	apperrors "github.com/allisson/hrvault/internal/errors"
)

// MySQLEmployeeRepository handles employee persistence for MySQL.
type MySQLEmployeeRepository struct {
	db *sql.DB
}

// NewMySQLEmployeeRepository creates a new MySQLEmployeeRepository.
func NewMySQLEmployeeRepository(db *sql.DB) *MySQLEmployeeRepository {
	return &MySQLEmployeeRepository{
		db: db,
	}
}

// Create inserts a new employee record.
func (r *MySQLEmployeeRepository) Create(ctx context.Context, employee *employeeDomain.Employee) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO employees (id, employee_number, department_id, position, email, gender, hire_date, status,
				name_enc, name_hash, birth_date_enc, birth_date_hash, id_card_enc, id_card_hash,
				phone_enc, phone_hash, bank_card_enc, bank_card_hash, home_address_enc, home_address_hash,
				emergency_contact_enc, emergency_contact_hash, emergency_phone_enc, emergency_phone_hash,
				created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW(), NOW())`

	// Convert UUID to bytes for MySQL BINARY(16)
	uuidBytes, err := employee.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	args := []any{
		uuidBytes,
		employee.EmployeeNumber,
		employee.DepartmentID,
		employee.Position,
		employee.Email,
		employee.Gender,
		employee.HireDate,
		employee.Status,
	}
	args = append(args, protectedArgs(employee)...)

	_, err = querier.ExecContext(ctx, query, args...)
	if err != nil {
		if isMySQLUniqueViolation(err) {
			return employeeDomain.ErrEmployeeAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create employee")
	}
	return nil
}

// GetByNumber retrieves an employee by employee number.
func (r *MySQLEmployeeRepository) GetByNumber(
	ctx context.Context,
	employeeNumber string,
) (*employeeDomain.Employee, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE employee_number = ?`

	employee := &employeeDomain.Employee{}
	var idBytes []byte
	row := querier.QueryRowContext(ctx, query, employeeNumber)
	if err := scanEmployee(row, employee, &idBytes); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, employeeDomain.ErrEmployeeNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get employee by number")
	}

	if err := employee.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
	}

	return employee, nil
}

// List retrieves employees matching the scope filter, ordered by employee
// number with pagination.
func (r *MySQLEmployeeRepository) List(
	ctx context.Context,
	filter accessDomain.ScopeFilter,
	offset, limit int,
) ([]*employeeDomain.Employee, error) {
	if filter.DenyAll {
		return []*employeeDomain.Employee{}, nil
	}

	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees`
	args, conditions := mysqlFilterConditions(filter)
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY employee_number LIMIT ? OFFSET ?"
	args = append(args, limit, offset)

	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list employees")
	}
	defer func() { _ = rows.Close() }()

	return collectMySQLRows(rows)
}

// Update persists the full state of an employee record.
func (r *MySQLEmployeeRepository) Update(ctx context.Context, employee *employeeDomain.Employee) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE employees SET department_id = ?, position = ?, email = ?, gender = ?,
				hire_date = ?, status = ?,
				name_enc = ?, name_hash = ?, birth_date_enc = ?, birth_date_hash = ?,
				id_card_enc = ?, id_card_hash = ?, phone_enc = ?, phone_hash = ?,
				bank_card_enc = ?, bank_card_hash = ?, home_address_enc = ?, home_address_hash = ?,
				emergency_contact_enc = ?, emergency_contact_hash = ?,
				emergency_phone_enc = ?, emergency_phone_hash = ?, updated_at = NOW()
			  WHERE employee_number = ?`

	args := []any{
		employee.DepartmentID,
		employee.Position,
		employee.Email,
		employee.Gender,
		employee.HireDate,
		employee.Status,
	}
	args = append(args, protectedArgs(employee)...)
	args = append(args, employee.EmployeeNumber)

	result, err := querier.ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.Wrap(err, "failed to update employee")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to check update result")
	}
	if affected == 0 {
		return employeeDomain.ErrEmployeeNotFound
	}
	return nil
}

// FindBySearchHash retrieves the employees whose hash sidecar for the given
// field matches, restricted to the scope filter. The field name is checked
// against the searchable whitelist before it reaches the query text.
func (r *MySQLEmployeeRepository) FindBySearchHash(
	ctx context.Context,
	filter accessDomain.ScopeFilter,
	field, hash string,
) ([]*employeeDomain.Employee, error) {
	if !employeeDomain.IsSearchableField(field) {
		return nil, employeeDomain.ErrFieldNotSearchable
	}
	if filter.DenyAll {
		return []*employeeDomain.Employee{}, nil
	}

	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees`
	args, conditions := mysqlFilterConditions(filter)
	conditions = append(conditions, fmt.Sprintf("%s_hash = ?", field))
	args = append(args, hash)
	query += " WHERE " + strings.Join(conditions, " AND ") + " ORDER BY employee_number"

	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to search employees by hash")
	}
	defer func() { _ = rows.Close() }()

	return collectMySQLRows(rows)
}

// mysqlFilterConditions translates a scope filter into WHERE conditions.
func mysqlFilterConditions(filter accessDomain.ScopeFilter) ([]any, []string) {
	var args []any
	var conditions []string
	if filter.DepartmentID != "" {
		conditions = append(conditions, "department_id = ?")
		args = append(args, filter.DepartmentID)
	}
	if filter.EmployeeID != "" {
		conditions = append(conditions, "employee_number = ?")
		args = append(args, filter.EmployeeID)
	}
	return args, conditions
}

// collectMySQLRows scans all rows into employee records.
func collectMySQLRows(rows *sql.Rows) ([]*employeeDomain.Employee, error) {
	employees := []*employeeDomain.Employee{}
	for rows.Next() {
		employee := &employeeDomain.Employee{}
		var idBytes []byte
		if err := scanEmployee(rows, employee, &idBytes); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan employee row")
		}
		if err := employee.ID.UnmarshalBinary(idBytes); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
		}
		employees = append(employees, employee)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate employee rows")
	}
	return employees, nil
}

// isMySQLUniqueViolation checks if the error is a MySQL unique constraint violation.
func isMySQLUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate entry") || strings.Contains(errMsg, "1062")
}
