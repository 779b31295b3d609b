package models

// Principal is the caller identity carried by a valid session token.
type Principal struct {
	UserID   int      `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email,omitempty"`
	Roles    []string `json:"roles"`
}

// HasAnyRole reports whether the principal holds at least one of roles.
func (p *Principal) HasAnyRole(roles ...ERole) bool {
	if p == nil {
		return false
	}
	for _, have := range p.Roles {
		for _, want := range roles {
			if have == string(want) {
				return true
			}
		}
	}
	return false
}
