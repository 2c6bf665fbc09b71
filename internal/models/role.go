package models

// Role is the closed set of portal roles. Values match the strings stored on
// user documents and embedded in access-token claims.
type Role string

const (
	RoleGlobalAdmin Role = "global_admin"
	RoleTnpAdmin    Role = "tnp_admin"
	RoleStudent     Role = "student"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleGlobalAdmin, RoleTnpAdmin, RoleStudent:
		return true
	}
	return false
}

func (r Role) String() string { return string(r) }
