// Package http provides HTTP handlers for employee record operations.
// Every handler resolves the calling principal from the request context and
// delegates the access decision to the employee use case; handlers never see
// plaintext that the principal is not allowed to see.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	accessHTTP "github.com/allisson/hrvault/internal/access/http"
	"github.com/allisson/hrvault/internal/employee/http/dto"
	employeeUseCase "github.com/allisson/hrvault/internal/employee/usecase"
	apperrors "github.com/allisson/hrvault/internal/errors"
	"github.com/allisson/hrvault/internal/httputil"
	customValidation "github.com/allisson/hrvault/internal/validation"
)

// EmployeeHandler handles HTTP requests for employee record operations.
type EmployeeHandler struct {
	employeeUseCase employeeUseCase.EmployeeUseCase
	logger          *slog.Logger
}

// NewEmployeeHandler creates a new employee handler with required dependencies.
func NewEmployeeHandler(useCase employeeUseCase.EmployeeUseCase, logger *slog.Logger) *EmployeeHandler {
	return &EmployeeHandler{
		employeeUseCase: useCase,
		logger:          logger,
	}
}

// CreateHandler creates a new employee record with encrypted protected fields.
// POST /v1/employees - Requires the employees.create permission.
// Returns 201 Created with the record rendered for the calling principal.
func (h *EmployeeHandler) CreateHandler(c *gin.Context) {
	principal, ok := accessHTTP.GetPrincipal(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	view, err := h.employeeUseCase.Create(c.Request.Context(), principal, req.ToCreateInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapEmployeeViewToResponse(view))
}

// GetHandler retrieves an employee record rendered for the calling principal.
// GET /v1/employees/:employee_number
// Returns 200 OK; records outside the principal's scope read as 404.
func (h *EmployeeHandler) GetHandler(c *gin.Context) {
	principal, ok := accessHTTP.GetPrincipal(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	employeeNumber := c.Param("employee_number")
	if employeeNumber == "" {
		httputil.HandleValidationErrorGin(
			c,
			fmt.Errorf("employee_number cannot be empty"),
			h.logger,
		)
		return
	}

	view, err := h.employeeUseCase.Get(c.Request.Context(), principal, employeeNumber)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapEmployeeViewToResponse(view))
}

// ListHandler retrieves employee records within the principal's data scope.
// GET /v1/employees?department_id=D1&offset=0&limit=50
// Returns 200 OK with a paginated list; requesting a department outside the
// principal's scope is a 403.
func (h *EmployeeHandler) ListHandler(c *gin.Context) {
	principal, ok := accessHTTP.GetPrincipal(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	requestedDepartmentID := c.Query("department_id")

	views, err := h.employeeUseCase.List(c.Request.Context(), principal, requestedDepartmentID, offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapEmployeeViewsToListResponse(views, offset, limit))
}

// UpdateHandler applies field changes to an employee record. Rejection is
// partial: fields the principal may not edit are reported back while the
// allowed ones are applied.
// PATCH /v1/employees/:employee_number
// Returns 200 OK with the updated record and any rejected fields.
func (h *EmployeeHandler) UpdateHandler(c *gin.Context) {
	principal, ok := accessHTTP.GetPrincipal(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	employeeNumber := c.Param("employee_number")
	if employeeNumber == "" {
		httputil.HandleValidationErrorGin(
			c,
			fmt.Errorf("employee_number cannot be empty"),
			h.logger,
		)
		return
	}

	var req dto.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	output, err := h.employeeUseCase.Update(c.Request.Context(), principal, employeeNumber, req.Fields)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapUpdateOutputToResponse(output))
}

// SearchHandler finds employee records by exact match on a searchable
// protected field. The plaintext probe value is hashed before it reaches
// storage; the value itself is never persisted or logged.
// GET /v1/employees/search?field=phone&value=13812345678
// Returns 200 OK with the matching records within the principal's scope.
func (h *EmployeeHandler) SearchHandler(c *gin.Context) {
	principal, ok := accessHTTP.GetPrincipal(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	field := c.Query("field")
	value := c.Query("value")
	if field == "" || value == "" {
		httputil.HandleValidationErrorGin(
			c,
			fmt.Errorf("field and value query parameters are required"),
			h.logger,
		)
		return
	}

	views, err := h.employeeUseCase.Search(c.Request.Context(), principal, field, value)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapEmployeeViewsToListResponse(views, 0, len(views)))
}
