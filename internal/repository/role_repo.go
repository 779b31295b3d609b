package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fitness_tracker/internal/models"
	"fitness_tracker/internal/repository/db"
)

type RoleRepository struct {
	db      *sql.DB
	dialect db.Dialect
}

func NewRoleRepository(conn *sql.DB, dialect db.Dialect) *RoleRepository {
	return &RoleRepository{db: conn, dialect: dialect}
}

var _ RoleRepo = (*RoleRepository)(nil)

const (
	selectRoleByNameSQL = `SELECT id, name FROM roles WHERE name = ?`
	insertRoleSQL       = `INSERT INTO roles (name) VALUES (?) RETURNING id`
)

// GetByName returns (nil, nil) if the role does not exist.
func (r *RoleRepository) GetByName(ctx context.Context, name models.ERole) (*models.Role, error) {
	var role models.Role
	err := r.db.QueryRowContext(ctx, r.dialect.Rebind(selectRoleByNameSQL), string(name)).Scan(&role.ID, &role.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select role %s: %w", name, err)
	}
	return &role, nil
}

func (r *RoleRepository) Create(ctx context.Context, name models.ERole) (*models.Role, error) {
	var id int
	if err := r.db.QueryRowContext(ctx, r.dialect.Rebind(insertRoleSQL), string(name)).Scan(&id); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("insert role %s: %w", name, ErrDuplicate)
		}
		return nil, fmt.Errorf("insert role %s: %w", name, err)
	}
	return &models.Role{ID: id, Name: name}, nil
}
