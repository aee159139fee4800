package domain

// Role is a member of the closed role set. Adding a role is a compile-time
// visible change: every switch over roles must be extended.
type Role string

const (
	RoleOwner    Role = "owner"    // wallet holder
	RoleGuardian Role = "guardian" // trusted third party with read access
	RoleOperator Role = "operator" // program operator (subsidies)
	RoleAdmin    Role = "admin"
)

// AllRoles lists every member of the closed role set.
func AllRoles() []Role {
	return []Role{RoleOwner, RoleGuardian, RoleOperator, RoleAdmin}
}

// ParseRole maps a string onto the closed role set.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleOwner, RoleGuardian, RoleOperator, RoleAdmin:
		return Role(s), true
	}
	return "", false
}

// HasRole reports whether roles contains r.
func HasRole(roles []Role, r Role) bool {
	for _, have := range roles {
		if have == r {
			return true
		}
	}
	return false
}

// RolesFromStrings parses a string slice, dropping unknown values.
func RolesFromStrings(ss []string) []Role {
	roles := make([]Role, 0, len(ss))
	for _, s := range ss {
		if r, ok := ParseRole(s); ok {
			roles = append(roles, r)
		}
	}
	return roles
}

// RolesToStrings converts a role slice for serialization.
func RolesToStrings(roles []Role) []string {
	ss := make([]string, 0, len(roles))
	for _, r := range roles {
		ss = append(ss, string(r))
	}
	return ss
}
