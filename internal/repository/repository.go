package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"fitness_tracker/internal/models"
	"fitness_tracker/internal/repository/db"

	"github.com/lib/pq"
)

// ErrDuplicate is returned when a unique column (username, email, role name) already holds the value.
var ErrDuplicate = errors.New("duplicate value")

type UserRepo interface {
	Create(ctx context.Context, u *models.User) (int, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type RoleRepo interface {
	GetByName(ctx context.Context, name models.ERole) (*models.Role, error)
	Create(ctx context.Context, name models.ERole) (*models.Role, error)
}

type AuthorizationRequestRepo interface {
	Save(ctx context.Context, req models.AuthorizationRequest) error
	Take(ctx context.Context, state string) (*models.AuthorizationRequest, error)
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type Repository struct {
	Users                 UserRepo
	Roles                 RoleRepo
	AuthorizationRequests AuthorizationRequestRepo
}

func NewRepository(conn *sql.DB, dialect db.Dialect) *Repository {
	return &Repository{
		Users:                 NewUserRepository(conn, dialect),
		Roles:                 NewRoleRepository(conn, dialect),
		AuthorizationRequests: NewAuthorizationRequestRepository(conn, dialect),
	}
}

// timeLayout is fixed-width so stored values compare correctly as text in SQLite.
const timeLayout = "2006-01-02 15:04:05-07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint")
}
