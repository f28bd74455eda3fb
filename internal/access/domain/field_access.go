package domain

import "slices"

// Field edit allow-lists for roles that edit records they do not fully own.
// Identity fields (name, id_card, employee_number) appear in neither list and
// are therefore never editable through these paths.
var (
	departmentManagerEditableFields = []string{
		"phone",
		"email",
		"position",
		"emergency_contact",
		"emergency_phone",
	}

	employeeSelfEditableFields = []string{
		"phone",
		"email",
		"home_address",
		"emergency_contact",
		"emergency_phone",
	}
)

// FieldEditDecision is the result of a CanEditFields check. Rejection is
// partial: each requested field is accepted or rejected individually and
// rejected fields are returned by name.
type FieldEditDecision struct {
	// AllowedAll is true when every requested field may be edited.
	AllowedAll bool

	// Editable contains the requested fields the principal may mutate.
	Editable []string

	// Rejected contains the requested fields the principal may not mutate.
	Rejected []string
}

// CanViewSensitive reports whether the principal may see decrypted sensitive
// fields of the target employee's record: either the principal holds the
// sensitive-view grant under All scope, or the record is their own.
//
// This is the single gate before any decrypt-for-display; when it returns
// false, callers must mask the value or omit the field, and must never expose
// the raw encrypted blob.
func CanViewSensitive(p *Principal, targetEmployeeID string) bool {
	if p.CanViewSensitive && p.DataScope == ScopeAll {
		return true
	}
	return p.IsSelf(targetEmployeeID)
}

// CanEditFields decides which of the requested fields the principal may
// mutate on the target employee's record.
//
//   - Admin or HRAdmin holding the full update permission: all requested
//     fields are allowed.
//   - DepartmentManager editing a target within their own department: limited
//     to the manager allow-list, out-of-list fields rejected by name.
//   - Employee editing their own record: limited to the self-service
//     allow-list (contact and emergency fields only).
//   - Any other combination: nothing is editable.
//
// The decision is a pure function of its arguments; it carries no memory of
// prior calls.
func CanEditFields(p *Principal, targetEmployeeID, targetDepartmentID string, requested []string) FieldEditDecision {
	switch {
	case (p.Role == RoleAdmin || p.Role == RoleHRAdmin) && HasPermission("employees.update", p.Permissions()):
		return FieldEditDecision{
			AllowedAll: true,
			Editable:   slices.Clone(requested),
			Rejected:   []string{},
		}

	case p.Role == RoleDepartmentManager && p.DepartmentID != "" && p.DepartmentID == targetDepartmentID:
		return partitionByAllowList(requested, departmentManagerEditableFields)

	case p.Role == RoleEmployee && p.IsSelf(targetEmployeeID):
		return partitionByAllowList(requested, employeeSelfEditableFields)

	default:
		return FieldEditDecision{
			AllowedAll: false,
			Editable:   []string{},
			Rejected:   slices.Clone(requested),
		}
	}
}

// partitionByAllowList splits the requested fields into editable and rejected
// according to the allow-list. AllowedAll holds only when nothing was rejected.
func partitionByAllowList(requested, allowList []string) FieldEditDecision {
	decision := FieldEditDecision{
		Editable: []string{},
		Rejected: []string{},
	}

	for _, field := range requested {
		if slices.Contains(allowList, field) {
			decision.Editable = append(decision.Editable, field)
		} else {
			decision.Rejected = append(decision.Rejected, field)
		}
	}

	decision.AllowedAll = len(decision.Rejected) == 0
	return decision
}
