package service

import (
	"errors"
	"fmt"
	"time"

	"fitness_tracker/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines JWT claims. Subject carries the username.
type Claims struct {
	jwt.RegisteredClaims
	UserID int      `json:"user_id"`
	Email  string   `json:"email,omitempty"`
	Roles  []string `json:"roles"`
}

// TokenManager signs and verifies HS256 session tokens.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs a token for u and returns it with its expiry.
func (m *TokenManager) Issue(u *models.User) (string, time.Time, error) {
	if u == nil || u.Username == "" {
		return "", time.Time{}, errors.New("issue token: user has no username")
	}
	now := m.now()
	exp := now.Add(m.ttl)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.Username,
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: u.ID,
		Email:  u.Email,
		Roles:  u.Authorities(),
	})
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, exp, nil
}

// Parse verifies the token and returns the principal it carries.
func (m *TokenManager) Parse(accessToken string) (*models.Principal, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	return &models.Principal{
		UserID:   claims.UserID,
		Username: claims.Subject,
		Email:    claims.Email,
		Roles:    claims.Roles,
	}, nil
}
