package fitness_tracker

// MessageResponse is the generic acknowledgement body.
type MessageResponse struct {
	Message string `json:"message" example:"User registered successfully!"`
}

// JwtResponse is returned by a successful sign-in.
type JwtResponse struct {
	ID       int      `json:"id" example:"1"`
	Username string   `json:"username" example:"user1"`
	Email    string   `json:"email" example:"user1@example.com"`
	Roles    []string `json:"roles" example:"ROLE_USER"`
	Token    string   `json:"token"`
}

// UserInfoResponse describes the signed-in user.
type UserInfoResponse struct {
	ID           int      `json:"id" example:"1"`
	Username     string   `json:"username" example:"user1"`
	Email        string   `json:"email" example:"user1@example.com"`
	Roles        []string `json:"roles" example:"ROLE_USER"`
	SignUpMethod string   `json:"signUpMethod" example:"email"`
}

// CSRFTokenResponse tells the frontend where to echo the CSRF token.
type CSRFTokenResponse struct {
	Token         string `json:"token"`
	HeaderName    string `json:"headerName" example:"X-XSRF-TOKEN"`
	ParameterName string `json:"parameterName" example:"_csrf"`
}
