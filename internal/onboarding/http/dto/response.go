package dto

import (
	"time"

	accessDomain "github.com/allisson/hrvault/internal/access/domain"
	employeeDTO "github.com/allisson/hrvault/internal/employee/http/dto"
	employeeUseCase "github.com/allisson/hrvault/internal/employee/usecase"
	onboardingUseCase "github.com/allisson/hrvault/internal/onboarding/usecase"
)

// IssueTokenResponse carries a freshly issued onboarding link token.
// SECURITY: the token value appears here exactly once and is never stored in
// plain form; it must be delivered to the new hire over a secure channel.
type IssueTokenResponse struct {
	Token          string    `json:"token"`
	EmployeeNumber string    `json:"employee_number"`
	ExpiresAt      time.Time `json:"expires_at"`
}

// MapIssueOutputToResponse converts an issued token to an API response.
func MapIssueOutputToResponse(output *onboardingUseCase.IssueTokenOutput) IssueTokenResponse {
	return IssueTokenResponse{
		Token:          output.PlainToken,
		EmployeeNumber: output.EmployeeNumber,
		ExpiresAt:      output.ExpiresAt,
	}
}

// RedeemTokenResponse is the result of redeeming an onboarding token: the
// employee record rendered for the synthesized Self-scoped principal.
type RedeemTokenResponse struct {
	Identity  string                       `json:"identity"`
	Role      string                       `json:"role"`
	DataScope string                       `json:"data_scope"`
	Employee  employeeDTO.EmployeeResponse `json:"employee"`
}

// MapRedeemToResponse converts a redeemed principal and its employee view to
// an API response.
func MapRedeemToResponse(principal *accessDomain.Principal, view *employeeUseCase.EmployeeView) RedeemTokenResponse {
	return RedeemTokenResponse{
		Identity:  principal.Identity,
		Role:      string(principal.Role),
		DataScope: string(principal.DataScope),
		Employee:  employeeDTO.MapEmployeeViewToResponse(view),
	}
}
