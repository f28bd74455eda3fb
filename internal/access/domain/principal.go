package domain

// Principal represents an authenticated caller for the lifetime of one request.
//
// It is constructed once per request from verified token claims by the
// authentication boundary; this core performs no independent verification of
// role or scope claims and trusts them as given. A principal is never
// persisted and must be treated as immutable after construction.
type Principal struct {
	// Identity is the subject identifier from the verified credentials.
	Identity string

	// Role is the authorization role claimed for this request.
	Role Role

	// DataScope is the breadth of records this principal may access.
	DataScope DataScope

	// DepartmentID is the principal's department, set for Department scope.
	DepartmentID string

	// EmployeeID is the principal's own employee record, set for Self scope
	// and for any principal backed by an employee.
	EmployeeID string

	// CanViewSensitive indicates the principal may view decrypted sensitive
	// fields of records beyond their own (only effective under All scope).
	CanViewSensitive bool

	// GrantedPermissions is the permission set attached to the credentials.
	// When empty, the static role table applies.
	GrantedPermissions []string
}

// Permissions returns the effective permission set: the explicit grants from
// the credentials when present, otherwise the static table entry for the role.
func (p *Principal) Permissions() []string {
	if len(p.GrantedPermissions) > 0 {
		return p.GrantedPermissions
	}
	return RolePermissions(p.Role)
}

// IsSelf reports whether the given employee record is the principal's own.
// An unbound principal (empty EmployeeID) owns no record.
func (p *Principal) IsSelf(employeeID string) bool {
	return p.EmployeeID != "" && p.EmployeeID == employeeID
}

// SelfServicePrincipal synthesizes the principal used by token-scoped
// self-service flows (e.g. a one-time onboarding link). It is always bound to
// exactly one employee with Self scope and must never be widened to
// Department or All.
func SelfServicePrincipal(employeeID string) *Principal {
	return &Principal{
		Identity:   "onboarding:" + employeeID,
		Role:       RoleEmployee,
		DataScope:  ScopeSelf,
		EmployeeID: employeeID,
	}
}
