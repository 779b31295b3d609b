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

// AuthorizationRequestRepository persists pending OAuth2 flows so the
// callback can be served by any instance without a server session.
type AuthorizationRequestRepository struct {
	db      *sql.DB
	dialect db.Dialect
}

func NewAuthorizationRequestRepository(conn *sql.DB, dialect db.Dialect) *AuthorizationRequestRepository {
	return &AuthorizationRequestRepository{db: conn, dialect: dialect}
}

var _ AuthorizationRequestRepo = (*AuthorizationRequestRepository)(nil)

const (
	insertAuthRequestSQL         = `INSERT INTO oauth2_authorization_requests (state, registration_id, code_verifier, expires_at) VALUES (?, ?, ?, ?)`
	selectAuthRequestSQL         = `SELECT state, registration_id, code_verifier, expires_at FROM oauth2_authorization_requests WHERE state = ?`
	deleteAuthRequestSQL         = `DELETE FROM oauth2_authorization_requests WHERE state = ?`
	deleteExpiredAuthRequestsSQL = `DELETE FROM oauth2_authorization_requests WHERE expires_at <= ?`
)

func (r *AuthorizationRequestRepository) Save(ctx context.Context, req models.AuthorizationRequest) error {
	_, err := r.db.ExecContext(ctx, r.dialect.Rebind(insertAuthRequestSQL),
		req.State, req.RegistrationID, req.CodeVerifier, formatTime(req.ExpiresAt))
	if err != nil {
		return fmt.Errorf("insert authorization request: %w", err)
	}
	return nil
}

// Take loads and deletes the request for state, so a state value can be
// redeemed only once. Returns (nil, nil) if there is no such request.
func (r *AuthorizationRequestRepository) Take(ctx context.Context, state string) (*models.AuthorizationRequest, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin take authorization request: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var req models.AuthorizationRequest
	err = tx.QueryRowContext(ctx, r.dialect.Rebind(selectAuthRequestSQL), state).
		Scan(&req.State, &req.RegistrationID, &req.CodeVerifier, &req.ExpiresAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select authorization request: %w", err)
	}

	if _, err := tx.ExecContext(ctx, r.dialect.Rebind(deleteAuthRequestSQL), state); err != nil {
		return nil, fmt.Errorf("delete authorization request: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit take authorization request: %w", err)
	}
	req.ExpiresAt = req.ExpiresAt.UTC()
	return &req, nil
}

// DeleteExpired removes requests that expired at or before now.
func (r *AuthorizationRequestRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, r.dialect.Rebind(deleteExpiredAuthRequestsSQL), formatTime(now))
	if err != nil {
		return 0, fmt.Errorf("delete expired authorization requests: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected for expired authorization requests: %w", err)
	}
	return n, nil
}
