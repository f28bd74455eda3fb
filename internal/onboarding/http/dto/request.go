// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/hrvault/internal/validation"
)

// IssueTokenRequest contains the parameters for issuing an onboarding link token.
type IssueTokenRequest struct {
	EmployeeNumber string `json:"employee_number"`
}

// Validate checks if the issue token request is valid.
func (r *IssueTokenRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.EmployeeNumber,
			validation.Required,
			customValidation.EmployeeNumber,
		),
	)
}

// RedeemTokenRequest contains the one-time link token being redeemed.
type RedeemTokenRequest struct {
	Token string `json:"token"`
}

// Validate checks if the redeem token request is valid.
func (r *RedeemTokenRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Token,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 256),
		),
	)
}
