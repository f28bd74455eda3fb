// Package validation provides custom validation rules for the application.
package validation

import (
	"regexp"
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/hrvault/internal/errors"
)

var (
	// emailRegex is a basic email validation pattern
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

	// employeeNumberRegex matches employee numbers like EMP0001
	employeeNumberRegex = regexp.MustCompile(`^[A-Z]{2,4}\d{4,8}$`)

	// mobilePhoneRegex matches mainland mobile numbers (11 digits, leading 1)
	mobilePhoneRegex = regexp.MustCompile(`^1\d{10}$`)

	// idCardRegex matches 18-character resident identity numbers
	idCardRegex = regexp.MustCompile(`^\d{17}[\dXx]$`)

	// bankCardRegex matches bank card numbers of 12 to 19 digits
	bankCardRegex = regexp.MustCompile(`^\d{12,19}$`)
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// Email validates email format using regex
var Email = validation.NewStringRuleWithError(
	func(s string) bool {
		return emailRegex.MatchString(s)
	},
	validation.NewError("validation_email_format", "must be a valid email address"),
)

// EmployeeNumber validates the employee number format
var EmployeeNumber = validation.NewStringRuleWithError(
	func(s string) bool {
		return employeeNumberRegex.MatchString(s)
	},
	validation.NewError("validation_employee_number", "must be a valid employee number"),
)

// MobilePhone validates an 11-digit mobile phone number
var MobilePhone = validation.NewStringRuleWithError(
	func(s string) bool {
		return mobilePhoneRegex.MatchString(s)
	},
	validation.NewError("validation_mobile_phone", "must be an 11-digit mobile number"),
)

// IDCard validates an 18-character resident identity card number
var IDCard = validation.NewStringRuleWithError(
	func(s string) bool {
		return idCardRegex.MatchString(s)
	},
	validation.NewError("validation_id_card", "must be an 18-character identity card number"),
)

// BankCard validates a bank card number after stripping spaces and dashes
var BankCard = validation.NewStringRuleWithError(
	func(s string) bool {
		normalized := strings.NewReplacer(" ", "", "-", "").Replace(s)
		return bankCardRegex.MatchString(normalized)
	},
	validation.NewError("validation_bank_card", "must be a 12 to 19 digit card number"),
)

// NoWhitespace validates that string doesn't contain leading/trailing whitespace
var NoWhitespace = validation.NewStringRuleWithError(
	func(s string) bool {
		return s == strings.TrimSpace(s)
	},
	validation.NewError("validation_no_whitespace", "must not contain leading or trailing whitespace"),
)

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)
