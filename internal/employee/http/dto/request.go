// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"time"

	validation "github.com/jellydator/validation"

	employeeDomain "github.com/allisson/hrvault/internal/employee/domain"
	"github.com/allisson/hrvault/internal/employee/usecase"
	customValidation "github.com/allisson/hrvault/internal/validation"
)

// CreateEmployeeRequest contains the parameters for creating a new employee.
// Protected field values travel in Fields keyed by field name; they are
// encrypted before anything is persisted.
type CreateEmployeeRequest struct {
	EmployeeNumber string            `json:"employee_number"`
	DepartmentID   string            `json:"department_id"`
	Position       string            `json:"position"`
	Email          string            `json:"email"`
	Gender         string            `json:"gender"`
	HireDate       time.Time         `json:"hire_date"`
	Fields         map[string]string `json:"fields"`
}

// Validate checks if the create employee request is valid.
func (r *CreateEmployeeRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.EmployeeNumber,
			validation.Required,
			customValidation.EmployeeNumber,
		),
		validation.Field(&r.DepartmentID,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 64),
		),
		validation.Field(&r.Email,
			validation.When(r.Email != "", customValidation.Email),
		),
		validation.Field(&r.Fields,
			validation.By(validateProtectedFields),
		),
	)
}

// UpdateEmployeeRequest contains the field changes for an employee update.
// Both plaintext attributes (email, position) and protected fields travel in
// the same map; the server decides per field whether the caller may edit it.
type UpdateEmployeeRequest struct {
	Fields map[string]string `json:"fields"`
}

// Validate checks if the update employee request is valid.
func (r *UpdateEmployeeRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Fields,
			validation.Required,
			validation.Length(1, 0),
		),
	)
}

// ToCreateInput converts the request into the use case input.
func (r *CreateEmployeeRequest) ToCreateInput() *usecase.CreateEmployeeInput {
	return &usecase.CreateEmployeeInput{
		EmployeeNumber: r.EmployeeNumber,
		DepartmentID:   r.DepartmentID,
		Position:       r.Position,
		Email:          r.Email,
		Gender:         r.Gender,
		HireDate:       r.HireDate,
		Fields:         r.Fields,
	}
}

// validateProtectedFields checks the per-field value formats for the
// protected fields that have one.
func validateProtectedFields(value interface{}) error {
	fields, ok := value.(map[string]string)
	if !ok || fields == nil {
		return nil
	}

	for field, fieldValue := range fields {
		if fieldValue == "" {
			continue
		}
		var err error
		switch field {
		case employeeDomain.FieldPhone, employeeDomain.FieldEmergencyPhone:
			err = customValidation.MobilePhone.Validate(fieldValue)
		case employeeDomain.FieldIDCard:
			err = customValidation.IDCard.Validate(fieldValue)
		case employeeDomain.FieldBankCard:
			err = customValidation.BankCard.Validate(fieldValue)
		}
		if err != nil {
			return validation.NewError("validation_protected_field", field+": "+err.Error())
		}
	}
	return nil
}
