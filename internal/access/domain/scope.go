package domain

// ScopeFilter is the row-visibility filter derived from a principal's data
// scope. It is translated by repositories into query predicates; this
// resolver is the single source of truth for which rows are visible, and no
// other component may independently broaden or narrow visibility.
type ScopeFilter struct {
	// DepartmentID restricts results to one department when non-empty.
	DepartmentID string

	// EmployeeID restricts results to one employee when non-empty.
	EmployeeID string

	// DenyAll matches no rows at all. Set when a principal's scope cannot be
	// resolved to anything (unknown scope, or a scope missing its binding).
	DenyAll bool
}

// Unrestricted reports whether the filter imposes no restriction.
func (f ScopeFilter) Unrestricted() bool {
	return !f.DenyAll && f.DepartmentID == "" && f.EmployeeID == ""
}

// ResolveFilter turns a principal's data scope into a row filter.
//
//   - All: no restriction; an explicitly requested department narrows the
//     filter as an opt-in convenience, never as a security widening.
//   - Department: the filter is forced to the principal's department. A
//     requested department outside it is rejected with ErrScopeViolation,
//     never silently substituted.
//   - Self: the filter is forced to the principal's employee ID; any
//     department request is rejected.
//
// A principal whose scope binding is missing (Department scope without a
// department, Self scope without an employee) or whose scope is unrecognized
// resolves to DenyAll.
func ResolveFilter(p *Principal, requestedDepartmentID string) (ScopeFilter, error) {
	switch p.DataScope {
	case ScopeAll:
		return ScopeFilter{DepartmentID: requestedDepartmentID}, nil

	case ScopeDepartment:
		if p.DepartmentID == "" {
			return ScopeFilter{DenyAll: true}, nil
		}
		if requestedDepartmentID != "" && requestedDepartmentID != p.DepartmentID {
			return ScopeFilter{DenyAll: true}, ErrScopeViolation
		}
		return ScopeFilter{DepartmentID: p.DepartmentID}, nil

	case ScopeSelf:
		if p.EmployeeID == "" {
			return ScopeFilter{DenyAll: true}, nil
		}
		if requestedDepartmentID != "" {
			return ScopeFilter{DenyAll: true}, ErrScopeViolation
		}
		return ScopeFilter{EmployeeID: p.EmployeeID}, nil

	default:
		return ScopeFilter{DenyAll: true}, nil
	}
}

// CanAccessDepartment reports whether the principal may access records of the
// given department: All scope always may, Department scope only its own
// department, Self scope never.
func CanAccessDepartment(p *Principal, departmentID string) bool {
	switch p.DataScope {
	case ScopeAll:
		return true
	case ScopeDepartment:
		return p.DepartmentID != "" && p.DepartmentID == departmentID
	default:
		return false
	}
}
