// Package domain defines the employee record entity and its protected fields.
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/allisson/hrvault/internal/errors"
	"github.com/allisson/hrvault/internal/masking"
)

// Names of the protected (encrypted at rest) employee fields.
const (
	FieldName             = "name"
	FieldBirthDate        = "birth_date"
	FieldIDCard           = "id_card"
	FieldPhone            = "phone"
	FieldBankCard         = "bank_card"
	FieldHomeAddress      = "home_address"
	FieldEmergencyContact = "emergency_contact"
	FieldEmergencyPhone   = "emergency_phone"
)

// Names of the plaintext fields that are editable through the update path.
const (
	FieldEmail    = "email"
	FieldPosition = "position"
)

// protectedFields lists every encrypted field in storage order.
var protectedFields = []string{
	FieldName,
	FieldBirthDate,
	FieldIDCard,
	FieldPhone,
	FieldBankCard,
	FieldHomeAddress,
	FieldEmergencyContact,
	FieldEmergencyPhone,
}

// maskKinds maps protected fields to their display masking rule. Fields
// without an entry have no safe partial representation and are omitted
// entirely when the viewer lacks the sensitive-view grant.
var maskKinds = map[string]masking.Kind{
	FieldIDCard:         masking.KindIDCard,
	FieldPhone:          masking.KindPhone,
	FieldEmergencyPhone: masking.KindPhone,
	FieldBankCard:       masking.KindBankCard,
}

// searchableFields lists the protected fields reachable through the
// hash sidecar exact-match lookup.
var searchableFields = map[string]bool{
	FieldPhone:  true,
	FieldIDCard: true,
}

// ProtectedFields returns the names of all encrypted employee fields.
func ProtectedFields() []string {
	out := make([]string, len(protectedFields))
	copy(out, protectedFields)
	return out
}

// IsProtectedField reports whether the field is stored encrypted.
func IsProtectedField(field string) bool {
	for _, f := range protectedFields {
		if f == field {
			return true
		}
	}
	return false
}

// MaskKind returns the masking rule for a protected field, if it has one.
func MaskKind(field string) (masking.Kind, bool) {
	kind, ok := maskKinds[field]
	return kind, ok
}

// IsSearchableField reports whether the field carries a hash sidecar usable
// for exact-match lookup.
func IsSearchableField(field string) bool {
	return searchableFields[field]
}

// EncryptedField is one protected value at rest: the authenticated encryption
// blob plus the keyed-hash sidecar that enables exact-match search without
// decryption.
type EncryptedField struct {
	Blob       string
	SearchHash string
}

// Employee is the persisted employee record. Plain attributes are stored as
// regular columns; everything in Fields is encrypted with the field key and
// only ever decrypted on a per-request, per-viewer basis.
type Employee struct {
	ID             uuid.UUID
	EmployeeNumber string
	DepartmentID   string
	Position       string
	Email          string
	Gender         string
	HireDate       time.Time
	Status         string
	Fields         map[string]EncryptedField
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// OwnerEmployeeID identifies the employee the record belongs to.
func (e *Employee) OwnerEmployeeID() string {
	return e.EmployeeNumber
}

// OwnerDepartmentID identifies the department the record belongs to.
func (e *Employee) OwnerDepartmentID() string {
	return e.DepartmentID
}

// Domain-specific errors for employee operations.
var (
	// ErrEmployeeNotFound indicates the requested employee does not exist or
	// is not visible to the caller.
	ErrEmployeeNotFound = errors.Wrap(errors.ErrNotFound, "employee not found")

	// ErrEmployeeAlreadyExists indicates an employee with the same employee
	// number already exists.
	ErrEmployeeAlreadyExists = errors.Wrap(errors.ErrConflict, "employee already exists")

	// ErrFieldNotSearchable indicates an exact-match search was requested on a
	// field without a hash sidecar.
	ErrFieldNotSearchable = errors.Wrap(errors.ErrInvalidInput, "field is not searchable")

	// ErrUnknownField indicates a write referenced a field the record does not
	// carry.
	ErrUnknownField = errors.Wrap(errors.ErrInvalidInput, "unknown employee field")
)
