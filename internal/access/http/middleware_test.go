package http

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	accessDomain "github.com/allisson/hrvault/internal/access/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// principalRouter builds a router with the principal middleware and a probe
// endpoint that echoes the resolved principal.
func principalRouter(extra ...gin.HandlerFunc) (*gin.Engine, *accessDomain.Principal) {
	gin.SetMode(gin.TestMode)

	captured := &accessDomain.Principal{}
	router := gin.New()
	handlers := append([]gin.HandlerFunc{PrincipalMiddleware(testLogger())}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		if principal, ok := GetPrincipal(c.Request.Context()); ok {
			*captured = *principal
		}
		c.Status(http.StatusNoContent)
	})
	router.GET("/probe", handlers...)

	return router, captured
}

func TestPrincipalMiddleware(t *testing.T) {
	t.Run("Success_ResolvesPrincipalFromHeaders", func(t *testing.T) {
		router, captured := principalRouter()

		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set(HeaderIdentity, "user:42")
		req.Header.Set(HeaderRole, "department_manager")
		req.Header.Set(HeaderScope, "department")
		req.Header.Set(HeaderDepartment, "D1")
		req.Header.Set(HeaderEmployee, "EMP0042")
		req.Header.Set(HeaderSensitive, "TRUE")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "user:42", captured.Identity)
		assert.Equal(t, accessDomain.RoleDepartmentManager, captured.Role)
		assert.Equal(t, accessDomain.ScopeDepartment, captured.DataScope)
		assert.Equal(t, "D1", captured.DepartmentID)
		assert.Equal(t, "EMP0042", captured.EmployeeID)
		assert.True(t, captured.CanViewSensitive)
	})

	t.Run("Success_PermissionHeaderOverridesRoleTable", func(t *testing.T) {
		router, captured := principalRouter()

		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set(HeaderIdentity, "user:42")
		req.Header.Set(HeaderRole, "employee")
		req.Header.Set(HeaderPermissions, "employees.view_self, leave.request")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, []string{"employees.view_self", "leave.request"}, captured.GrantedPermissions)
	})

	t.Run("Error_MissingIdentityHeader", func(t *testing.T) {
		router, _ := principalRouter()

		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set(HeaderRole, "employee")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Error_MissingRoleHeader", func(t *testing.T) {
		router, _ := principalRouter()

		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set(HeaderIdentity, "user:42")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRequirePermission(t *testing.T) {
	t.Run("Success_RoleTableGrants", func(t *testing.T) {
		router, _ := principalRouter(RequirePermission("employees.view_all", testLogger()))

		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set(HeaderIdentity, "user:1")
		req.Header.Set(HeaderRole, "hr_admin")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("Error_UnknownRoleHasNoPermissions", func(t *testing.T) {
		router, _ := principalRouter(RequirePermission("employees.view_all", testLogger()))

		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set(HeaderIdentity, "user:1")
		req.Header.Set(HeaderRole, "contractor")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Error_EmployeeLacksViewAll", func(t *testing.T) {
		router, _ := principalRouter(RequirePermission("employees.view_all", testLogger()))

		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set(HeaderIdentity, "user:1")
		req.Header.Set(HeaderRole, "employee")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Run("Success_WithinLimit", func(t *testing.T) {
		router, _ := principalRouter(RateLimitMiddleware(10, 5, testLogger()))

		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set(HeaderIdentity, "user:1")
		req.Header.Set(HeaderRole, "employee")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("Error_BurstExceeded", func(t *testing.T) {
		router, _ := principalRouter(RateLimitMiddleware(0.001, 1, testLogger()))

		first := httptest.NewRecorder()
		second := httptest.NewRecorder()
		for _, w := range []*httptest.ResponseRecorder{first, second} {
			req := httptest.NewRequest(http.MethodGet, "/probe", nil)
			req.Header.Set(HeaderIdentity, "user:1")
			req.Header.Set(HeaderRole, "employee")
			router.ServeHTTP(w, req)
		}

		assert.Equal(t, http.StatusNoContent, first.Code)
		assert.Equal(t, http.StatusTooManyRequests, second.Code)
		assert.NotEmpty(t, second.Header().Get("Retry-After"))
	})

	t.Run("Success_LimitersAreIndependentPerIdentity", func(t *testing.T) {
		router, _ := principalRouter(RateLimitMiddleware(0.001, 1, testLogger()))

		for i, identity := range []string{"user:1", "user:2"} {
			req := httptest.NewRequest(http.MethodGet, "/probe", nil)
			req.Header.Set(HeaderIdentity, identity)
			req.Header.Set(HeaderRole, "employee")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusNoContent, w.Code, "request %d", i)
		}
	})
}
