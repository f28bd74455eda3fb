// Package repository provides data persistence implementations for employee
// records. Encrypted blobs and their hash sidecars are stored and returned
// opaquely; nothing in this package decrypts anything.
package repository

import (
	"database/sql"

	employeeDomain "github.com/allisson/hrvault/internal/employee/domain"
)

// protectedColumnOrder fixes the storage order of the encrypted field
// columns. Each field maps to a <field>_enc and a <field>_hash column.
var protectedColumnOrder = []string{
	employeeDomain.FieldName,
	employeeDomain.FieldBirthDate,
	employeeDomain.FieldIDCard,
	employeeDomain.FieldPhone,
	employeeDomain.FieldBankCard,
	employeeDomain.FieldHomeAddress,
	employeeDomain.FieldEmergencyContact,
	employeeDomain.FieldEmergencyPhone,
}

// employeeColumns is the full column list in scan order.
const employeeColumns = `id, employee_number, department_id, position, email, gender, hire_date, status,
	name_enc, name_hash, birth_date_enc, birth_date_hash, id_card_enc, id_card_hash,
	phone_enc, phone_hash, bank_card_enc, bank_card_hash, home_address_enc, home_address_hash,
	emergency_contact_enc, emergency_contact_hash, emergency_phone_enc, emergency_phone_hash,
	created_at, updated_at`

// protectedArgs flattens the encrypted fields into insert/update arguments in
// column order. Absent fields become NULL pairs.
func protectedArgs(employee *employeeDomain.Employee) []any {
	args := make([]any, 0, len(protectedColumnOrder)*2)
	for _, field := range protectedColumnOrder {
		encrypted, ok := employee.Fields[field]
		if !ok {
			args = append(args, nil, nil)
			continue
		}
		args = append(args, encrypted.Blob, encrypted.SearchHash)
	}
	return args
}

// rowScanner abstracts *sql.Row and *sql.Rows for scanning.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanEmployee reads one row in employeeColumns order into employee. The id
// destination is driver-specific (native UUID for PostgreSQL, raw bytes for
// MySQL), so the caller provides it.
func scanEmployee(row rowScanner, employee *employeeDomain.Employee, idDest any) error {
	encrypted := make([]sql.NullString, len(protectedColumnOrder))
	hashes := make([]sql.NullString, len(protectedColumnOrder))

	dest := []any{
		idDest,
		&employee.EmployeeNumber,
		&employee.DepartmentID,
		&employee.Position,
		&employee.Email,
		&employee.Gender,
		&employee.HireDate,
		&employee.Status,
	}
	for i := range protectedColumnOrder {
		dest = append(dest, &encrypted[i], &hashes[i])
	}
	dest = append(dest, &employee.CreatedAt, &employee.UpdatedAt)

	if err := row.Scan(dest...); err != nil {
		return err
	}

	employee.Fields = make(map[string]employeeDomain.EncryptedField)
	for i, field := range protectedColumnOrder {
		if encrypted[i].Valid {
			employee.Fields[field] = employeeDomain.EncryptedField{
				Blob:       encrypted[i].String,
				SearchHash: hashes[i].String,
			}
		}
	}

	return nil
}
