package auth

// Role is the permission tier carried in the access token.
type Role string

const (
	RoleSuperAdmin Role = "super_admin"
	RoleAdmin      Role = "admin"
	RoleStaff      Role = "staff"
)

var allRoles = map[Role]struct{}{
	RoleSuperAdmin: {},
	RoleAdmin:      {},
	RoleStaff:      {},
}

func (r Role) Valid() bool {
	_, ok := allRoles[r]
	return ok
}

// Principal identifies the verified caller of a request.
type Principal struct {
	UserID   string
	TenantID string
	Role     Role
}

func (p Principal) IsSuperAdmin() bool {
	return p.Role == RoleSuperAdmin
}

// IsAdmin reports whether the principal passes the admin gate.
// Super admins pass every lower gate.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin || p.Role == RoleSuperAdmin
}
