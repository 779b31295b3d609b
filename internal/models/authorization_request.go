package models

import "time"

// AuthorizationRequest is a pending OAuth2 authorization-code flow,
// keyed by the state parameter sent to the provider.
type AuthorizationRequest struct {
	State          string    `json:"state"`
	RegistrationID string    `json:"registration_id"`
	CodeVerifier   string    `json:"-"`
	ExpiresAt      time.Time `json:"expires_at"`
}

// Expired reports whether the request is no longer usable at now.
func (r *AuthorizationRequest) Expired(now time.Time) bool {
	return !now.Before(r.ExpiresAt)
}
