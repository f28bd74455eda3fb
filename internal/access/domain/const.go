// Package domain defines the role-scoped access control model: principals,
// the static role permission table, data scope resolution, and field-level
// view/edit gates. Every decision is a pure function of its arguments; no
// state is kept between calls.
package domain

// Role identifies the authorization role carried by a principal.
type Role string

const (
	// RoleAdmin is the system administrator role.
	RoleAdmin Role = "admin"

	// RoleHRAdmin is the HR administrator role with full record access.
	RoleHRAdmin Role = "hr_admin"

	// RoleDepartmentManager manages the records of a single department.
	RoleDepartmentManager Role = "department_manager"

	// RoleEmployee is a regular employee restricted to their own record.
	RoleEmployee Role = "employee"
)

// DataScope is the breadth of records a principal may access.
type DataScope string

const (
	// ScopeAll grants access to every record.
	ScopeAll DataScope = "all"

	// ScopeDepartment restricts access to the principal's department.
	ScopeDepartment DataScope = "department"

	// ScopeSelf restricts access to the principal's own record.
	ScopeSelf DataScope = "self"
)
