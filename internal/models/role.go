package models

// ERole enumerates the roles known to the application.
type ERole string

const (
	RoleUser  ERole = "ROLE_USER"
	RoleAdmin ERole = "ROLE_ADMIN"
)

// AllRoles is the fixed set seeded at startup.
var AllRoles = []ERole{RoleUser, RoleAdmin}

// Valid reports whether r is one of AllRoles.
func (r ERole) Valid() bool {
	for _, known := range AllRoles {
		if r == known {
			return true
		}
	}
	return false
}

type Role struct {
	ID   int   `json:"id"`
	Name ERole `json:"name"`
}
