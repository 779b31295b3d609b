package handlers

import (
	"context"
	"net/http"
	"time"

	"fitness_tracker/internal/models"
	"fitness_tracker/internal/security"
	"fitness_tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpUser *models.User
	signUpErr  error
	session    *service.Session
	signInErr  error
	current    *models.User
	currentErr error

	// tokens accepted by ParseToken
	principals map[string]*models.Principal

	lastSignUp         service.SignUpInput
	lastSignInUsername string
	lastSignInPassword string
	lastCurrentUser    string
}

func (m *mockAuth) SignUp(_ context.Context, in service.SignUpInput) (*models.User, error) {
	m.lastSignUp = in
	return m.signUpUser, m.signUpErr
}

func (m *mockAuth) SignIn(_ context.Context, username, password string) (*service.Session, error) {
	m.lastSignInUsername = username
	m.lastSignInPassword = password
	return m.session, m.signInErr
}

func (m *mockAuth) ParseToken(token string) (*models.Principal, error) {
	if p, ok := m.principals[token]; ok {
		return p, nil
	}
	return nil, service.ErrInvalidToken
}

func (m *mockAuth) CurrentUser(_ context.Context, username string) (*models.User, error) {
	m.lastCurrentUser = username
	return m.current, m.currentErr
}

type mockOAuth2 struct {
	authURL     string
	authErr     error
	session     *service.Session
	completeErr error

	lastRegistrationID string
	lastState          string
	lastCode           string
}

func (m *mockOAuth2) AuthorizationURL(_ context.Context, registrationID string) (string, error) {
	m.lastRegistrationID = registrationID
	return m.authURL, m.authErr
}

func (m *mockOAuth2) CompleteLogin(_ context.Context, registrationID, state, code string) (*service.Session, error) {
	m.lastRegistrationID = registrationID
	m.lastState = state
	m.lastCode = code
	return m.session, m.completeErr
}

func (m *mockOAuth2) LoginSuccess(context.Context, service.OAuth2User) (*service.Session, error) {
	return m.session, m.completeErr
}

// ---- Shared Test Helpers ----

const (
	testCookie   = "fitness-jwt"
	testFrontend = "http://localhost:5173/"
	userToken    = "user-token"
	adminToken   = "admin-token"
)

func newMockAuth() *mockAuth {
	return &mockAuth{principals: map[string]*models.Principal{
		userToken:  {UserID: 1, Username: "user1", Email: "user1@example.com", Roles: []string{"ROLE_USER"}},
		adminToken: {UserID: 2, Username: "admin", Email: "admin@example.com", Roles: []string{"ROLE_ADMIN"}},
	}}
}

func testSettings() Settings {
	return Settings{
		Policy:      security.DefaultPolicy(),
		JWTCookie:   testCookie,
		CookieTTL:   24 * time.Hour,
		FrontendURL: testFrontend,
	}
}

func newTestRouter(s *service.Service) *gin.Engine {
	return newTestRouterWith(s, testSettings())
}

func newTestRouterWith(s *service.Service, cfg Settings) *gin.Engine {
	h := NewHandler(s, nil, cfg)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}

func cookieNamed(resp *http.Response, name string) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
