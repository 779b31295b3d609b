package service

import "errors"

// Local authentication errors.
var (
	ErrInvalidPassword = errors.New("invalid password")
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidToken    = errors.New("invalid token")
	ErrUsernameTaken   = errors.New("username is already taken")
	ErrEmailTaken      = errors.New("email is already in use")
)

// ErrDefaultRoleNotFound means the role store has not been seeded. New
// accounts cannot be created until it is.
var ErrDefaultRoleNotFound = errors.New("default role not found")

// Federated login errors.
var (
	ErrUnknownProvider     = errors.New("unknown oauth2 provider")
	ErrUnsupportedProvider = errors.New("provider is not reconciled with local accounts")
	ErrInvalidState        = errors.New("invalid or expired oauth2 state")
	ErrMissingCode         = errors.New("missing authorization code or state")
	ErrTokenExchange       = errors.New("oauth2 token exchange failed")
	ErrUserInfo            = errors.New("oauth2 userinfo request failed")
	ErrMissingEmail        = errors.New("oauth2 profile has no email")
)

// IsAuthenticationFailure reports whether err means the external login
// itself failed, as opposed to a local storage or configuration problem.
func IsAuthenticationFailure(err error) bool {
	for _, target := range []error{ErrInvalidState, ErrMissingCode, ErrTokenExchange, ErrUserInfo, ErrMissingEmail} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
