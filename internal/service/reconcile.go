package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fitness_tracker/internal/models"
	"fitness_tracker/internal/repository"
)

// LoginSuccess links an externally authenticated identity to a local
// account and opens a session for it. Only Google logins are linked; other
// registrations get ErrUnsupportedProvider.
func (s *OAuth2Service) LoginSuccess(ctx context.Context, ou OAuth2User) (*Session, error) {
	if ou.RegistrationID != GoogleRegistrationID {
		return nil, ErrUnsupportedProvider
	}

	email := normalizeEmail(ou.Email)
	if email == "" {
		email = normalizeEmail(attrString(ou.Attributes, "email"))
	}
	if email == "" {
		return nil, ErrMissingEmail
	}

	u, err := s.findOrCreate(ctx, ou.RegistrationID, email)
	if err != nil {
		return nil, err
	}
	return newSession(s.tokens, u)
}

func (s *OAuth2Service) findOrCreate(ctx context.Context, registrationID, email string) (*models.User, error) {
	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	role, err := s.roles.GetByName(ctx, models.RoleUser)
	if err != nil {
		return nil, fmt.Errorf("load default role: %w", err)
	}
	if role == nil {
		return nil, ErrDefaultRoleNotFound
	}

	u := &models.User{
		Username:     usernameFromEmail(email),
		Email:        email,
		SignUpMethod: registrationID,
		Roles:        []models.Role{*role},
	}
	if _, err := s.users.Create(ctx, u); err != nil {
		if !errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("register federated user: %w", err)
		}
		// a concurrent login may have created the account first
		again, gerr := s.users.GetByEmail(ctx, email)
		if gerr != nil {
			return nil, fmt.Errorf("find user by email: %w", gerr)
		}
		if again == nil {
			return nil, fmt.Errorf("register federated user %q: %w", u.Username, ErrUsernameTaken)
		}
		return again, nil
	}
	sendWelcome(s.notifier, u)
	return u, nil
}

func usernameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return local
}

func attrString(attrs map[string]any, key string) string {
	v, ok := attrs[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
