package dto

import (
	"time"

	"github.com/allisson/hrvault/internal/employee/usecase"
)

// EmployeeResponse represents an employee record rendered for the calling
// principal. Fields holds the display values of protected fields: plaintext
// when sensitive_revealed is true, masked otherwise, and absent entirely for
// fields without a safe partial representation.
type EmployeeResponse struct {
	EmployeeNumber    string            `json:"employee_number"`
	DepartmentID      string            `json:"department_id"`
	Position          string            `json:"position"`
	Email             string            `json:"email,omitempty"`
	Gender            string            `json:"gender,omitempty"`
	HireDate          time.Time         `json:"hire_date"`
	Status            string            `json:"status"`
	Fields            map[string]string `json:"fields,omitempty"`
	SensitiveRevealed bool              `json:"sensitive_revealed"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

// EmployeeListResponse represents a paginated list of employee records.
type EmployeeListResponse struct {
	Employees []EmployeeResponse `json:"employees"`
	Offset    int                `json:"offset"`
	Limit     int                `json:"limit"`
}

// UpdateEmployeeResponse represents the result of a field update. Rejection
// is partial: rejected_fields names the requested fields the principal could
// not edit, while the remaining ones were applied.
type UpdateEmployeeResponse struct {
	Employee       EmployeeResponse `json:"employee"`
	RejectedFields []string         `json:"rejected_fields,omitempty"`
}

// MapEmployeeViewToResponse converts a rendered employee view to an API response.
func MapEmployeeViewToResponse(view *usecase.EmployeeView) EmployeeResponse {
	return EmployeeResponse{
		EmployeeNumber:    view.EmployeeNumber,
		DepartmentID:      view.DepartmentID,
		Position:          view.Position,
		Email:             view.Email,
		Gender:            view.Gender,
		HireDate:          view.HireDate,
		Status:            view.Status,
		Fields:            view.Fields,
		SensitiveRevealed: view.SensitiveRevealed,
		CreatedAt:         view.CreatedAt,
		UpdatedAt:         view.UpdatedAt,
	}
}

// MapEmployeeViewsToListResponse converts rendered employee views to a
// paginated API response.
func MapEmployeeViewsToListResponse(views []*usecase.EmployeeView, offset, limit int) EmployeeListResponse {
	employees := make([]EmployeeResponse, 0, len(views))
	for _, view := range views {
		employees = append(employees, MapEmployeeViewToResponse(view))
	}
	return EmployeeListResponse{
		Employees: employees,
		Offset:    offset,
		Limit:     limit,
	}
}

// MapUpdateOutputToResponse converts an update result to an API response.
func MapUpdateOutputToResponse(output *usecase.UpdateEmployeeOutput) UpdateEmployeeResponse {
	return UpdateEmployeeResponse{
		Employee:       MapEmployeeViewToResponse(output.Employee),
		RejectedFields: output.RejectedFields,
	}
}
