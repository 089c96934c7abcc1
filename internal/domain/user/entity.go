package user

type Role string

const (
	RoleAdmin    Role = "admin"    // Full access
	RoleHR       Role = "hr"       // Manages people, leave and reports
	RoleManager  Role = "manager"  // Sees team attendance
	RoleEmployee Role = "employee" // Self service only
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	_, ok := RolePermissions[r]
	return ok
}

// Principal is the authenticated caller as asserted by the identity provider's token.
type Principal struct {
	UserID     string
	EmployeeID *string
	Email      string
	Role       Role
}

// Can checks the caller's role against the permission table.
func (p Principal) Can(permission Permission) bool {
	return HasPermission(p.Role, permission)
}

// HasEmployee reports whether the caller is linked to an employee record.
func (p Principal) HasEmployee() bool {
	return p.EmployeeID != nil && *p.EmployeeID != ""
}
