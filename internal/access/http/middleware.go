package http

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	accessDomain "github.com/allisson/hrvault/internal/access/domain"
	apperrors "github.com/allisson/hrvault/internal/errors"
	"github.com/allisson/hrvault/internal/httputil"
)

// Identity headers set by the authenticating gateway. The service trusts
// them: verifying the session itself is the gateway's job, deciding what the
// identity may do is ours.
const (
	HeaderIdentity    = "X-Auth-Identity"
	HeaderRole        = "X-Auth-Role"
	HeaderScope       = "X-Auth-Scope"
	HeaderDepartment  = "X-Auth-Department"
	HeaderEmployee    = "X-Auth-Employee"
	HeaderSensitive   = "X-Auth-Sensitive"
	HeaderPermissions = "X-Auth-Permissions"
)

// PrincipalMiddleware resolves the calling principal from the gateway
// identity headers and stores it in the request context.
//
// Identity and role are required; everything else is optional. Unknown roles
// and scopes are accepted here and fail closed downstream: an unknown role
// resolves to an empty permission set, an unknown scope to a deny-all filter.
//
// Error handling:
//   - Missing identity or role header → 401 Unauthorized
func PrincipalMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := c.GetHeader(HeaderIdentity)
		role := c.GetHeader(HeaderRole)
		if identity == "" || role == "" {
			logger.Debug("principal resolution failed: missing identity headers")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		principal := &accessDomain.Principal{
			Identity:         identity,
			Role:             accessDomain.Role(role),
			DataScope:        accessDomain.DataScope(c.GetHeader(HeaderScope)),
			DepartmentID:     c.GetHeader(HeaderDepartment),
			EmployeeID:       c.GetHeader(HeaderEmployee),
			CanViewSensitive: strings.EqualFold(c.GetHeader(HeaderSensitive), "true"),
		}
		if permissions := c.GetHeader(HeaderPermissions); permissions != "" {
			principal.GrantedPermissions = splitPermissions(permissions)
		}

		ctx := WithPrincipal(c.Request.Context(), principal)
		c.Request = c.Request.WithContext(ctx)

		logger.Debug("principal resolved",
			slog.String("identity", principal.Identity),
			slog.String("role", string(principal.Role)),
			slog.String("scope", string(principal.DataScope)),
		)

		c.Next()
	}
}

// RequirePermission rejects requests whose principal does not hold the given
// permission. MUST be used after PrincipalMiddleware.
func RequirePermission(permission string, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c.Request.Context())
		if !ok || principal == nil {
			logger.Debug("permission check failed: no principal in context")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		if !accessDomain.HasPermission(permission, principal.Permissions()) {
			logger.Debug("permission check failed",
				slog.String("identity", principal.Identity),
				slog.String("permission", permission),
			)
			httputil.HandleErrorGin(c, apperrors.ErrForbidden, logger)
			c.Abort()
			return
		}

		c.Next()
	}
}

// splitPermissions parses a comma-separated permission list, trimming
// whitespace and dropping empty entries.
func splitPermissions(raw string) []string {
	parts := strings.Split(raw, ",")
	permissions := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			permissions = append(permissions, trimmed)
		}
	}
	return permissions
}
