package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/hrvault/internal/errors"
)

func TestResolveFilter(t *testing.T) {
	t.Run("Success_AllScopeUnrestricted", func(t *testing.T) {
		p := &Principal{Role: RoleHRAdmin, DataScope: ScopeAll}

		filter, err := ResolveFilter(p, "")

		require.NoError(t, err)
		assert.True(t, filter.Unrestricted())
	})

	t.Run("Success_AllScopeNarrowsOptIn", func(t *testing.T) {
		p := &Principal{Role: RoleHRAdmin, DataScope: ScopeAll}

		filter, err := ResolveFilter(p, "D2")

		require.NoError(t, err)
		assert.Equal(t, "D2", filter.DepartmentID)
		assert.False(t, filter.DenyAll)
	})

	t.Run("Success_DepartmentScopeForcedToOwnDepartment", func(t *testing.T) {
		p := &Principal{Role: RoleDepartmentManager, DataScope: ScopeDepartment, DepartmentID: "D1"}

		// Regardless of what is requested within it, the filter is always D1.
		filter, err := ResolveFilter(p, "")
		require.NoError(t, err)
		assert.Equal(t, "D1", filter.DepartmentID)

		filter, err = ResolveFilter(p, "D1")
		require.NoError(t, err)
		assert.Equal(t, "D1", filter.DepartmentID)
	})

	t.Run("Error_DepartmentScopeForeignDepartmentRejected", func(t *testing.T) {
		p := &Principal{Role: RoleDepartmentManager, DataScope: ScopeDepartment, DepartmentID: "D1"}

		filter, err := ResolveFilter(p, "D2")

		assert.ErrorIs(t, err, ErrScopeViolation)
		assert.True(t, apperrors.Is(err, apperrors.ErrForbidden))
		assert.True(t, filter.DenyAll, "rejected request must not leak a usable filter")
	})

	t.Run("Success_SelfScopeForcedToOwnRecord", func(t *testing.T) {
		p := &Principal{Role: RoleEmployee, DataScope: ScopeSelf, EmployeeID: "E1"}

		filter, err := ResolveFilter(p, "")

		require.NoError(t, err)
		assert.Equal(t, "E1", filter.EmployeeID)
		assert.Empty(t, filter.DepartmentID)
	})

	t.Run("Error_SelfScopeDepartmentRequestRejected", func(t *testing.T) {
		p := &Principal{Role: RoleEmployee, DataScope: ScopeSelf, EmployeeID: "E1"}

		_, err := ResolveFilter(p, "D1")

		assert.ErrorIs(t, err, ErrScopeViolation)
	})

	t.Run("Success_MissingBindingDeniesAll", func(t *testing.T) {
		// Department scope without a department, Self scope without an
		// employee: fail closed, no error, no rows.
		for _, p := range []*Principal{
			{Role: RoleDepartmentManager, DataScope: ScopeDepartment},
			{Role: RoleEmployee, DataScope: ScopeSelf},
		} {
			filter, err := ResolveFilter(p, "")
			require.NoError(t, err)
			assert.True(t, filter.DenyAll)
		}
	})

	t.Run("Success_UnknownScopeDeniesAll", func(t *testing.T) {
		p := &Principal{Role: RoleEmployee, DataScope: DataScope("global")}

		filter, err := ResolveFilter(p, "")

		require.NoError(t, err)
		assert.True(t, filter.DenyAll)
	})
}

func TestCanAccessDepartment(t *testing.T) {
	t.Run("Success_AllScope", func(t *testing.T) {
		p := &Principal{DataScope: ScopeAll}

		assert.True(t, CanAccessDepartment(p, "D1"))
		assert.True(t, CanAccessDepartment(p, "D2"))
	})

	t.Run("Success_DepartmentScopeEqualityCheck", func(t *testing.T) {
		p := &Principal{DataScope: ScopeDepartment, DepartmentID: "D1"}

		assert.True(t, CanAccessDepartment(p, "D1"))
		assert.False(t, CanAccessDepartment(p, "D2"))
	})

	t.Run("Success_SelfScopeNever", func(t *testing.T) {
		p := &Principal{DataScope: ScopeSelf, EmployeeID: "E1", DepartmentID: "D1"}

		assert.False(t, CanAccessDepartment(p, "D1"))
	})

	t.Run("Success_UnboundDepartmentScope", func(t *testing.T) {
		p := &Principal{DataScope: ScopeDepartment}

		assert.False(t, CanAccessDepartment(p, ""))
	})
}
