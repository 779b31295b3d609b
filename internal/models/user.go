package models

import "time"

// Sign-up methods recorded on a user.
const (
	SignUpMethodEmail  = "email"
	SignUpMethodGoogle = "google"
)

type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // empty for federated accounts
	SignUpMethod string    `json:"sign_up_method"`
	Roles        []Role    `json:"roles"`
	CreatedAt    time.Time `json:"created_at"`
}

// Authorities lists role names as granted authorities. A user without
// roles still gets RoleUser.
func (u *User) Authorities() []string {
	if u == nil || len(u.Roles) == 0 {
		return []string{string(RoleUser)}
	}
	out := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		out = append(out, string(r.Name))
	}
	return out
}
