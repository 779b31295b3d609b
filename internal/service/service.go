package service

import (
	"context"
	"time"

	"fitness_tracker/internal/models"
	"fitness_tracker/internal/repository"
)

// SignUpInput is a validated local registration request.
type SignUpInput struct {
	Username string
	Email    string
	Password string
}

// Session is an authenticated user with a freshly issued token.
type Session struct {
	User      *models.User
	Token     string
	ExpiresAt time.Time
}

// OAuth2User is the identity returned by an external provider.
type OAuth2User struct {
	RegistrationID string
	Subject        string
	Email          string
	Name           string
	Attributes     map[string]any
}

// SeedUser describes an account created at startup.
type SeedUser struct {
	Username string
	Email    string
	Password string
	Role     models.ERole
}

type Authorization interface {
	SignUp(ctx context.Context, in SignUpInput) (*models.User, error)
	SignIn(ctx context.Context, username, password string) (*Session, error)
	ParseToken(accessToken string) (*models.Principal, error)
	CurrentUser(ctx context.Context, username string) (*models.User, error)
}

// OAuth2Login drives the federated login flow.
type OAuth2Login interface {
	AuthorizationURL(ctx context.Context, registrationID string) (string, error)
	CompleteLogin(ctx context.Context, registrationID, state, code string) (*Session, error)
	LoginSuccess(ctx context.Context, ou OAuth2User) (*Session, error)
}

type Seeder interface {
	Seed(ctx context.Context, users []SeedUser) error
}

// Maintenance runs from the scheduler.
type Maintenance interface {
	PurgeExpiredAuthorizationRequests(ctx context.Context) (int64, error)
}

// Notifier sends account mail. Failures never block a login.
type Notifier interface {
	Welcome(ctx context.Context, u *models.User) error
}

// NopNotifier discards every notification.
type NopNotifier struct{}

func (NopNotifier) Welcome(context.Context, *models.User) error { return nil }

// welcomeTimeout bounds a single welcome delivery.
var welcomeTimeout = 15 * time.Second

// sendWelcome delivers the welcome mail off the request path. The
// caller's context is not reused since the request may end first.
func sendWelcome(n Notifier, u *models.User) {
	cp := *u
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), welcomeTimeout)
		defer cancel()
		_ = n.Welcome(ctx, &cp)
	}()
}

// Deps carries the non-repository collaborators of the services.
type Deps struct {
	Tokens    *TokenManager
	Notifier  Notifier
	Providers []Provider
	StateTTL  time.Duration
}

// Service aggregates all sub-services.
type Service struct {
	Authorization
	OAuth2Login
	Seeder
	Maintenance
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, deps Deps) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Users, repos.Roles, deps.Tokens, deps.Notifier),
		OAuth2Login: NewOAuth2Service(deps.Providers, repos.AuthorizationRequests,
			repos.Users, repos.Roles, deps.Tokens, deps.Notifier, deps.StateTTL),
		Seeder:      NewSeedService(repos.Users, repos.Roles),
		Maintenance: NewMaintenanceService(repos.AuthorizationRequests),
	}
}
