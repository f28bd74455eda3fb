package domain

import (
	"slices"
	"strings"
)

// permissionTable is the static map from role to granted permission strings.
// Entries are exact "resource.action" pairs, the global wildcard "*", or a
// resource wildcard "resource.*". The table is authoritative: call sites
// never re-derive role checks, they ask HasPermission.
var permissionTable = map[Role][]string{
	RoleAdmin: {
		"*",
	},
	RoleHRAdmin: {
		"employees.*",
		"departments.*",
		"attendance.*",
		"leave.*",
		"onboarding.*",
		"reports.view_all",
	},
	RoleDepartmentManager: {
		"employees.view_department",
		"employees.update_department",
		"attendance.view_department",
		"leave.view_department",
		"leave.approve",
		"reports.view_department",
	},
	RoleEmployee: {
		"employees.view_self",
		"employees.update_self",
		"attendance.view_self",
		"leave.view_self",
		"leave.create",
	},
}

// RolePermissions returns the static permission set for a role. An
// unrecognized role returns the empty set, never an error: absence of access
// is expressed as emptiness.
func RolePermissions(role Role) []string {
	perms, ok := permissionTable[role]
	if !ok {
		return []string{}
	}
	return slices.Clone(perms)
}

// HasPermission reports whether the granted set covers the required
// "resource.action" permission. Matching order:
//
//  1. granted contains "*" (super-admin)
//  2. granted contains required exactly
//  3. granted contains "resource.*" for the resource portion of required
//
// Matching is case-sensitive. No other wildcard shapes are recognized:
// "*.view_all" and "reports.view_*" never match. A nil granted set is
// treated as empty.
func HasPermission(required string, granted []string) bool {
	if required == "" || len(granted) == 0 {
		return false
	}

	if slices.Contains(granted, "*") {
		return true
	}

	if slices.Contains(granted, required) {
		return true
	}

	resource, _, found := strings.Cut(required, ".")
	if !found {
		return false
	}
	return slices.Contains(granted, resource+".*")
}
