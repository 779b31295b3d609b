package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"fitness_tracker/internal/models"
	"fitness_tracker/internal/repository/db"
)

type UserRepository struct {
	db      *sql.DB
	dialect db.Dialect
}

func NewUserRepository(conn *sql.DB, dialect db.Dialect) *UserRepository {
	return &UserRepository{db: conn, dialect: dialect}
}

var _ UserRepo = (*UserRepository)(nil)

const (
	insertUserSQL     = `INSERT INTO users (username, email, password_hash, sign_up_method, created_at) VALUES (?, ?, ?, ?, ?) RETURNING id`
	insertUserRoleSQL = `INSERT INTO user_roles (user_id, role_id) VALUES (?, ?)`

	selectUserColumns       = `SELECT id, username, email, password_hash, sign_up_method, created_at FROM users`
	selectUserByUsernameSQL = selectUserColumns + ` WHERE username = ?`
	selectUserByEmailSQL    = selectUserColumns + ` WHERE email = ?`
	selectUserRolesSQL      = `SELECT r.id, r.name FROM roles r JOIN user_roles ur ON ur.role_id = r.id WHERE ur.user_id = ? ORDER BY r.id`

	existsByUsernameSQL = `SELECT EXISTS(SELECT 1 FROM users WHERE username = ?)`
	existsByEmailSQL    = `SELECT EXISTS(SELECT 1 FROM users WHERE email = ?)`
)

// Create inserts the user and its role assignments in one transaction and
// returns the new ID. u.ID and u.CreatedAt are filled in on success.
func (r *UserRepository) Create(ctx context.Context, u *models.User) (int, error) {
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin insert user %q: %w", u.Username, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var passwordHash sql.NullString
	if u.PasswordHash != "" {
		passwordHash = sql.NullString{String: u.PasswordHash, Valid: true}
	}

	var id int
	err = tx.QueryRowContext(ctx, r.dialect.Rebind(insertUserSQL),
		u.Username, u.Email, passwordHash, u.SignUpMethod, formatTime(u.CreatedAt),
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("insert user %q: %w", u.Username, ErrDuplicate)
		}
		return 0, fmt.Errorf("insert user %q: %w", u.Username, err)
	}

	for _, role := range u.Roles {
		if _, err := tx.ExecContext(ctx, r.dialect.Rebind(insertUserRoleSQL), id, role.ID); err != nil {
			return 0, fmt.Errorf("assign role %s to user %q: %w", role.Name, u.Username, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit insert user %q: %w", u.Username, err)
	}
	u.ID = id
	return id, nil
}

// GetByUsername fetches a user with roles. Returns (nil, nil) if not found.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.getOne(ctx, selectUserByUsernameSQL, username)
}

// GetByEmail fetches a user with roles. Returns (nil, nil) if not found.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getOne(ctx, selectUserByEmailSQL, email)
}

func (r *UserRepository) getOne(ctx context.Context, query, key string) (*models.User, error) {
	var (
		u            models.User
		passwordHash sql.NullString
	)
	err := r.db.QueryRowContext(ctx, r.dialect.Rebind(query), key).
		Scan(&u.ID, &u.Username, &u.Email, &passwordHash, &u.SignUpMethod, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user %q: %w", key, err)
	}
	u.PasswordHash = passwordHash.String

	roles, err := r.rolesOf(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	u.Roles = roles
	return &u, nil
}

func (r *UserRepository) rolesOf(ctx context.Context, userID int) ([]models.Role, error) {
	rows, err := r.db.QueryContext(ctx, r.dialect.Rebind(selectUserRolesSQL), userID)
	if err != nil {
		return nil, fmt.Errorf("select roles of user %d: %w", userID, err)
	}
	defer rows.Close()

	var roles []models.Role
	for rows.Next() {
		var role models.Role
		if err := rows.Scan(&role.ID, &role.Name); err != nil {
			return nil, fmt.Errorf("scan role of user %d: %w", userID, err)
		}
		roles = append(roles, role)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate roles of user %d: %w", userID, err)
	}
	return roles, nil
}

func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, existsByUsernameSQL, username)
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, existsByEmailSQL, email)
}

func (r *UserRepository) exists(ctx context.Context, query, key string) (bool, error) {
	var ok bool
	if err := r.db.QueryRowContext(ctx, r.dialect.Rebind(query), key).Scan(&ok); err != nil {
		return false, fmt.Errorf("check user %q exists: %w", key, err)
	}
	return ok, nil
}
