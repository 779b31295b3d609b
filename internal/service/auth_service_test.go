package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"fitness_tracker/internal/models"
	"fitness_tracker/internal/repository"
)

// --- SignUp tests ---

func TestAuthService_SignUp_SuccessHashesPasswordAndAssignsUserRole(t *testing.T) {
	users := &mockUserRepo{
		CreateFn: func(u *models.User) (int, error) {
			u.ID = 42
			return 42, nil
		},
	}
	notifier := newRecordingNotifier()
	svc := NewAuthService(users, seededRoles(), newTestTokens(), notifier)

	u, err := svc.SignUp(context.Background(), SignUpInput{Username: "alice", Email: " Alice@Example.com ", Password: "s3cr3t"})
	if err != nil {
		t.Fatalf("SignUp returned error: %v", err)
	}
	if u.ID != 42 {
		t.Fatalf("expected id 42, got %d", u.ID)
	}

	if len(users.created) != 1 {
		t.Fatalf("expected 1 Create call, got %d", len(users.created))
	}
	created := users.created[0]
	if created.Email != "alice@example.com" {
		t.Errorf("expected normalized email, got %q", created.Email)
	}
	if created.SignUpMethod != models.SignUpMethodEmail {
		t.Errorf("expected sign-up method %q, got %q", models.SignUpMethodEmail, created.SignUpMethod)
	}
	if len(created.Roles) != 1 || created.Roles[0].Name != models.RoleUser {
		t.Errorf("expected ROLE_USER, got %v", created.Roles)
	}
	if created.PasswordHash == "s3cr3t" {
		t.Errorf("expected hashed password not equal to raw password")
	}
	if err := verifyPassword(created.PasswordHash, "s3cr3t"); err != nil {
		t.Errorf("stored hash does not verify with original password: %v", err)
	}
	notifier.waitFor(t, "alice")
}

func TestAuthService_SignUp_DoesNotWaitForWelcomeMail(t *testing.T) {
	notifier := newBlockingNotifier()
	svc := NewAuthService(&mockUserRepo{}, seededRoles(), newTestTokens(), notifier)

	ctx, cancel := context.WithCancel(context.Background())
	u, err := svc.SignUp(ctx, SignUpInput{Username: "ivy", Email: "ivy@example.com", Password: "pass123"})
	if err != nil {
		t.Fatalf("SignUp returned error: %v", err)
	}
	if u.Username != "ivy" {
		t.Fatalf("expected ivy, got %q", u.Username)
	}
	select {
	case <-notifier.done:
		t.Fatal("welcome delivery finished before it was released")
	default:
	}

	// the request ending must not abort the delivery
	cancel()
	close(notifier.release)
	select {
	case err := <-notifier.done:
		if err != nil {
			t.Fatalf("welcome delivery: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("welcome delivery never completed")
	}
}

func TestAuthService_SignUp_EmptyPassword(t *testing.T) {
	users := &mockUserRepo{}
	svc := NewAuthService(users, seededRoles(), newTestTokens(), nil)

	_, err := svc.SignUp(context.Background(), SignUpInput{Username: "bob", Email: "bob@example.com", Password: "   "})
	if err == nil {
		t.Fatalf("expected error for empty password, got nil")
	}
	if len(users.created) != 0 {
		t.Fatalf("expected no Create calls, got %d", len(users.created))
	}
}

func TestAuthService_SignUp_UsernameTaken(t *testing.T) {
	users := &mockUserRepo{
		ExistsByUsernameFn: func(string) (bool, error) { return true, nil },
	}
	svc := NewAuthService(users, seededRoles(), newTestTokens(), nil)

	_, err := svc.SignUp(context.Background(), SignUpInput{Username: "carl", Email: "carl@example.com", Password: "pass123"})
	if !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
	if len(users.created) != 0 {
		t.Fatalf("expected no Create calls, got %d", len(users.created))
	}
}

func TestAuthService_SignUp_EmailTaken(t *testing.T) {
	users := &mockUserRepo{
		ExistsByEmailFn: func(email string) (bool, error) { return email == "carl@example.com", nil },
	}
	svc := NewAuthService(users, seededRoles(), newTestTokens(), nil)

	_, err := svc.SignUp(context.Background(), SignUpInput{Username: "carl", Email: "CARL@example.com", Password: "pass123"})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthService_SignUp_RoleStoreEmpty(t *testing.T) {
	svc := NewAuthService(&mockUserRepo{}, &mockRoleRepo{}, newTestTokens(), nil)

	_, err := svc.SignUp(context.Background(), SignUpInput{Username: "dora", Email: "dora@example.com", Password: "pass123"})
	if !errors.Is(err, ErrDefaultRoleNotFound) {
		t.Fatalf("expected ErrDefaultRoleNotFound, got %v", err)
	}
}

func TestAuthService_SignUp_DuplicateRace(t *testing.T) {
	users := &mockUserRepo{
		CreateFn: func(*models.User) (int, error) { return 0, repository.ErrDuplicate },
	}
	svc := NewAuthService(users, seededRoles(), newTestTokens(), nil)

	_, err := svc.SignUp(context.Background(), SignUpInput{Username: "fay", Email: "fay@example.com", Password: "pass123"})
	if !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestAuthService_SignUp_DuplicateEmailRace(t *testing.T) {
	emailChecks := 0
	users := &mockUserRepo{
		// free at the pre-check, claimed by the time Create runs
		ExistsByEmailFn: func(string) (bool, error) {
			emailChecks++
			return emailChecks > 1, nil
		},
		CreateFn: func(*models.User) (int, error) { return 0, repository.ErrDuplicate },
	}
	svc := NewAuthService(users, seededRoles(), newTestTokens(), nil)

	_, err := svc.SignUp(context.Background(), SignUpInput{Username: "gus", Email: "gus@example.com", Password: "pass123"})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
	if emailChecks != 2 {
		t.Fatalf("expected email to be re-checked after the conflict, got %d checks", emailChecks)
	}
}

func TestAuthService_SignUp_RepoError(t *testing.T) {
	users := &mockUserRepo{
		CreateFn: func(*models.User) (int, error) { return 0, errors.New("db down") },
	}
	svc := NewAuthService(users, seededRoles(), newTestTokens(), nil)

	_, err := svc.SignUp(context.Background(), SignUpInput{Username: "carl", Email: "carl@example.com", Password: "pass123"})
	if err == nil {
		t.Fatalf("expected repo error, got nil")
	}
}

// --- SignIn tests ---

func TestAuthService_SignIn_Success(t *testing.T) {
	hash, err := hashPassword("letmein")
	if err != nil {
		t.Fatalf("hashPassword failed: %v", err)
	}
	user := &models.User{
		ID:           7,
		Username:     "diana",
		Email:        "diana@example.com",
		PasswordHash: hash,
		Roles:        []models.Role{{ID: 1, Name: models.RoleUser}},
	}

	var lookups []string
	users := &mockUserRepo{
		GetByUsernameFn: func(username string) (*models.User, error) {
			lookups = append(lookups, username)
			return user, nil
		},
	}
	svc := NewAuthService(users, seededRoles(), newTestTokens(), nil)

	session, err := svc.SignIn(context.Background(), "diana", "letmein")
	if err != nil {
		t.Fatalf("SignIn returned error: %v", err)
	}
	if session.Token == "" {
		t.Fatalf("expected non-empty token")
	}
	if session.User != user {
		t.Fatalf("expected session for the stored user")
	}

	// Validate the token parses back to the same principal.
	p, err := svc.ParseToken(session.Token)
	if err != nil {
		t.Fatalf("ParseToken failed: %v", err)
	}
	if p.UserID != 7 || p.Username != "diana" {
		t.Fatalf("unexpected principal %+v", p)
	}
	if len(lookups) != 1 || lookups[0] != "diana" {
		t.Fatalf("expected one lookup of diana, got %v", lookups)
	}
}

func TestAuthService_SignIn_UserNotFound(t *testing.T) {
	svc := NewAuthService(&mockUserRepo{}, seededRoles(), newTestTokens(), nil)

	_, err := svc.SignIn(context.Background(), "ghost", "pw")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got: %v", err)
	}
}

func TestAuthService_SignIn_InvalidPassword(t *testing.T) {
	correctHash, err := hashPassword("correct")
	if err != nil {
		t.Fatalf("hashPassword failed: %v", err)
	}
	users := &mockUserRepo{
		GetByUsernameFn: func(string) (*models.User, error) {
			return &models.User{ID: 1, Username: "eve", PasswordHash: correctHash}, nil
		},
	}
	svc := NewAuthService(users, seededRoles(), newTestTokens(), nil)

	_, err = svc.SignIn(context.Background(), "eve", "wrong")
	if !errors.Is(err, ErrInvalidPassword) {
		t.Fatalf("expected ErrInvalidPassword, got: %v", err)
	}
}

func TestAuthService_SignIn_FederatedAccountHasNoPassword(t *testing.T) {
	users := &mockUserRepo{
		GetByUsernameFn: func(string) (*models.User, error) {
			return &models.User{ID: 3, Username: "gina", SignUpMethod: models.SignUpMethodGoogle}, nil
		},
	}
	svc := NewAuthService(users, seededRoles(), newTestTokens(), nil)

	_, err := svc.SignIn(context.Background(), "gina", "")
	if !errors.Is(err, ErrInvalidPassword) {
		t.Fatalf("expected ErrInvalidPassword, got: %v", err)
	}
}

func TestAuthService_SignIn_RepoError(t *testing.T) {
	users := &mockUserRepo{
		GetByUsernameFn: func(string) (*models.User, error) { return nil, errors.New("query failed") },
	}
	svc := NewAuthService(users, seededRoles(), newTestTokens(), nil)

	_, err := svc.SignIn(context.Background(), "john", "pw")
	if err == nil {
		t.Fatalf("expected repo error, got nil")
	}
}

// --- CurrentUser tests ---

func TestAuthService_CurrentUser(t *testing.T) {
	users := &mockUserRepo{
		GetByUsernameFn: func(username string) (*models.User, error) {
			if username == "henry" {
				return &models.User{ID: 9, Username: "henry"}, nil
			}
			return nil, nil
		},
	}
	svc := NewAuthService(users, seededRoles(), newTestTokens(), nil)

	u, err := svc.CurrentUser(context.Background(), "henry")
	if err != nil || u.ID != 9 {
		t.Fatalf("expected henry, got %+v, %v", u, err)
	}

	if _, err := svc.CurrentUser(context.Background(), "nobody"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
