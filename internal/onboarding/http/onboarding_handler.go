// Package http provides HTTP handlers for self-service onboarding tokens.
// Issuing is a privileged operation behind the principal middleware; redeeming
// is anonymous, the token itself is the credential.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	accessHTTP "github.com/allisson/hrvault/internal/access/http"
	employeeUseCase "github.com/allisson/hrvault/internal/employee/usecase"
	apperrors "github.com/allisson/hrvault/internal/errors"
	"github.com/allisson/hrvault/internal/httputil"
	"github.com/allisson/hrvault/internal/onboarding/http/dto"
	onboardingUseCase "github.com/allisson/hrvault/internal/onboarding/usecase"
	customValidation "github.com/allisson/hrvault/internal/validation"
)

// OnboardingHandler handles HTTP requests for onboarding token operations.
type OnboardingHandler struct {
	onboardingUseCase onboardingUseCase.OnboardingUseCase
	employeeUseCase   employeeUseCase.EmployeeUseCase
	logger            *slog.Logger
}

// NewOnboardingHandler creates a new onboarding handler with required dependencies.
func NewOnboardingHandler(
	onboarding onboardingUseCase.OnboardingUseCase,
	employees employeeUseCase.EmployeeUseCase,
	logger *slog.Logger,
) *OnboardingHandler {
	return &OnboardingHandler{
		onboardingUseCase: onboarding,
		employeeUseCase:   employees,
		logger:            logger,
	}
}

// IssueHandler issues a one-time onboarding link token for an employee.
// POST /v1/onboarding/tokens - Requires the onboarding.issue permission.
// Returns 201 Created with the plain token. SECURITY: the token is shown once.
func (h *OnboardingHandler) IssueHandler(c *gin.Context) {
	if _, ok := accessHTTP.GetPrincipal(c.Request.Context()); !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	var req dto.IssueTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	output, err := h.onboardingUseCase.IssueToken(c.Request.Context(), req.EmployeeNumber)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapIssueOutputToResponse(output))
}

// RedeemHandler consumes an onboarding token and returns the new hire's own
// record rendered under the synthesized Self-scoped principal.
// POST /v1/onboarding/redeem - Anonymous; the token is the credential.
// Returns 200 OK; unknown, expired and used tokens all read as 401.
func (h *OnboardingHandler) RedeemHandler(c *gin.Context) {
	var req dto.RedeemTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	principal, err := h.onboardingUseCase.Redeem(c.Request.Context(), req.Token)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	view, err := h.employeeUseCase.Get(c.Request.Context(), principal, principal.EmployeeID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapRedeemToResponse(principal, view))
}
