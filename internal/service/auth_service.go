package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fitness_tracker/internal/models"
	"fitness_tracker/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// AuthService handles local username/password accounts.
type AuthService struct {
	users    repository.UserRepo
	roles    repository.RoleRepo
	tokens   *TokenManager
	notifier Notifier
}

func NewAuthService(users repository.UserRepo, roles repository.RoleRepo, tokens *TokenManager, notifier Notifier) *AuthService {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &AuthService{users: users, roles: roles, tokens: tokens, notifier: notifier}
}

// SignUp registers a local account with the default role.
func (s *AuthService) SignUp(ctx context.Context, in SignUpInput) (*models.User, error) {
	username := strings.TrimSpace(in.Username)
	email := normalizeEmail(in.Email)

	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}

	taken, err := s.users.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrUsernameTaken
	}
	taken, err = s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	role, err := s.roles.GetByName(ctx, models.RoleUser)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, ErrDefaultRoleNotFound
	}

	u := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		SignUpMethod: models.SignUpMethodEmail,
		Roles:        []models.Role{*role},
	}
	if _, err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, s.duplicateCause(ctx, email)
		}
		return nil, err
	}
	sendWelcome(s.notifier, u)
	return u, nil
}

// duplicateCause tells which unique column a racing sign-up claimed first.
func (s *AuthService) duplicateCause(ctx context.Context, email string) error {
	taken, err := s.users.ExistsByEmail(ctx, email)
	if err == nil && taken {
		return ErrEmailTaken
	}
	return ErrUsernameTaken
}

// SignIn validates credentials and returns a session for the user.
func (s *AuthService) SignIn(ctx context.Context, username, password string) (*Session, error) {
	u, err := s.users.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	// federated accounts have no password to check against
	if u.PasswordHash == "" {
		return nil, ErrInvalidPassword
	}
	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return nil, ErrInvalidPassword
	}

	return newSession(s.tokens, u)
}

// ParseToken parses a JWT and returns the principal it names.
func (s *AuthService) ParseToken(accessToken string) (*models.Principal, error) {
	return s.tokens.Parse(accessToken)
}

// CurrentUser reloads the account behind a principal.
func (s *AuthService) CurrentUser(ctx context.Context, username string) (*models.User, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func newSession(tokens *TokenManager, u *models.User) (*Session, error) {
	token, exp, err := tokens.Issue(u)
	if err != nil {
		return nil, err
	}
	return &Session{User: u, Token: token, ExpiresAt: exp}, nil
}

// helper: hash password safely
func hashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", errors.New("password is empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
