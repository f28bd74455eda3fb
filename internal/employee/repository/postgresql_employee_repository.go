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

// PostgreSQLEmployeeRepository handles employee persistence for PostgreSQL.
type PostgreSQLEmployeeRepository struct {
	db *sql.DB
}

// NewPostgreSQLEmployeeRepository creates a new PostgreSQLEmployeeRepository.
func NewPostgreSQLEmployeeRepository(db *sql.DB) *PostgreSQLEmployeeRepository {
	return &PostgreSQLEmployeeRepository{
		db: db,
	}
}

// Create inserts a new employee record.
func (r *PostgreSQLEmployeeRepository) Create(ctx context.Context, employee *employeeDomain.Employee) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO employees (id, employee_number, department_id, position, email, gender, hire_date, status,
				name_enc, name_hash, birth_date_enc, birth_date_hash, id_card_enc, id_card_hash,
				phone_enc, phone_hash, bank_card_enc, bank_card_hash, home_address_enc, home_address_hash,
				emergency_contact_enc, emergency_contact_hash, emergency_phone_enc, emergency_phone_hash,
				created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18,
				$19, $20, $21, $22, $23, $24, NOW(), NOW())`

	args := []any{
		employee.ID,
		employee.EmployeeNumber,
		employee.DepartmentID,
		employee.Position,
		employee.Email,
		employee.Gender,
		employee.HireDate,
		employee.Status,
	}
	args = append(args, protectedArgs(employee)...)

	_, err := querier.ExecContext(ctx, query, args...)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return employeeDomain.ErrEmployeeAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create employee")
	}
	return nil
}

// GetByNumber retrieves an employee by employee number.
func (r *PostgreSQLEmployeeRepository) GetByNumber(
	ctx context.Context,
	employeeNumber string,
) (*employeeDomain.Employee, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE employee_number = $1`

	employee := &employeeDomain.Employee{}
	row := querier.QueryRowContext(ctx, query, employeeNumber)
	if err := scanEmployee(row, employee, &employee.ID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, employeeDomain.ErrEmployeeNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get employee by number")
	}

	return employee, nil
}

// List retrieves employees matching the scope filter, ordered by employee
// number with pagination.
func (r *PostgreSQLEmployeeRepository) List(
	ctx context.Context,
	filter accessDomain.ScopeFilter,
	offset, limit int,
) ([]*employeeDomain.Employee, error) {
	if filter.DenyAll {
		return []*employeeDomain.Employee{}, nil
	}

	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees`
	args, conditions := postgresFilterConditions(filter, nil)
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY employee_number LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list employees")
	}
	defer func() { _ = rows.Close() }()

	return collectPostgresRows(rows)
}

// Update persists the full state of an employee record.
func (r *PostgreSQLEmployeeRepository) Update(ctx context.Context, employee *employeeDomain.Employee) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE employees SET department_id = $1, position = $2, email = $3, gender = $4,
				hire_date = $5, status = $6,
				name_enc = $7, name_hash = $8, birth_date_enc = $9, birth_date_hash = $10,
				id_card_enc = $11, id_card_hash = $12, phone_enc = $13, phone_hash = $14,
				bank_card_enc = $15, bank_card_hash = $16, home_address_enc = $17, home_address_hash = $18,
				emergency_contact_enc = $19, emergency_contact_hash = $20,
				emergency_phone_enc = $21, emergency_phone_hash = $22, updated_at = NOW()
			  WHERE employee_number = $23`

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
func (r *PostgreSQLEmployeeRepository) FindBySearchHash(
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
	args, conditions := postgresFilterConditions(filter, nil)
	args = append(args, hash)
	conditions = append(conditions, fmt.Sprintf("%s_hash = $%d", field, len(args)))
	query += " WHERE " + strings.Join(conditions, " AND ") + " ORDER BY employee_number"

	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to search employees by hash")
	}
	defer func() { _ = rows.Close() }()

	return collectPostgresRows(rows)
}

// postgresFilterConditions translates a scope filter into numbered WHERE
// conditions, continuing from the given argument list.
func postgresFilterConditions(filter accessDomain.ScopeFilter, args []any) ([]any, []string) {
	var conditions []string
	if filter.DepartmentID != "" {
		args = append(args, filter.DepartmentID)
		conditions = append(conditions, fmt.Sprintf("department_id = $%d", len(args)))
	}
	if filter.EmployeeID != "" {
		args = append(args, filter.EmployeeID)
		conditions = append(conditions, fmt.Sprintf("employee_number = $%d", len(args)))
	}
	return args, conditions
}

// collectPostgresRows scans all rows into employee records.
func collectPostgresRows(rows *sql.Rows) ([]*employeeDomain.Employee, error) {
	employees := []*employeeDomain.Employee{}
	for rows.Next() {
		employee := &employeeDomain.Employee{}
		if err := scanEmployee(rows, employee, &employee.ID); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan employee row")
		}
		employees = append(employees, employee)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate employee rows")
	}
	return employees, nil
}

// isPostgreSQLUniqueViolation checks if the error is a PostgreSQL unique
// constraint violation.
func isPostgreSQLUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate key") || strings.Contains(errMsg, "unique constraint")
}
