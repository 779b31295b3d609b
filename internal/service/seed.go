package service

import (
	"context"
	"fmt"

	"fitness_tracker/internal/models"
	"fitness_tracker/internal/repository"
)

// SeedService makes sure the role store and the demo accounts exist.
type SeedService struct {
	users repository.UserRepo
	roles repository.RoleRepo
}

func NewSeedService(users repository.UserRepo, roles repository.RoleRepo) *SeedService {
	return &SeedService{users: users, roles: roles}
}

// Seed creates every known role and each user whose username is free.
// Running it twice changes nothing.
func (s *SeedService) Seed(ctx context.Context, users []SeedUser) error {
	roles := make(map[models.ERole]models.Role, len(models.AllRoles))
	for _, name := range models.AllRoles {
		r, err := s.ensureRole(ctx, name)
		if err != nil {
			return err
		}
		roles[name] = *r
	}

	for _, su := range users {
		name := su.Role
		if name == "" {
			name = models.RoleUser
		}
		if !name.Valid() {
			return fmt.Errorf("seed user %q: unknown role %q", su.Username, su.Role)
		}
		role := roles[name]

		exists, err := s.users.ExistsByUsername(ctx, su.Username)
		if err != nil {
			return err
		}
		if exists {
			continue
		}

		hash, err := hashPassword(su.Password)
		if err != nil {
			return fmt.Errorf("seed user %q: %w", su.Username, err)
		}
		u := &models.User{
			Username:     su.Username,
			Email:        normalizeEmail(su.Email),
			PasswordHash: hash,
			SignUpMethod: models.SignUpMethodEmail,
			Roles:        []models.Role{role},
		}
		if _, err := s.users.Create(ctx, u); err != nil {
			return fmt.Errorf("seed user %q: %w", su.Username, err)
		}
	}
	return nil
}

func (s *SeedService) ensureRole(ctx context.Context, name models.ERole) (*models.Role, error) {
	r, err := s.roles.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if r != nil {
		return r, nil
	}
	r, err = s.roles.Create(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("create role %s: %w", name, err)
	}
	return r, nil
}
