package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"fitness_tracker/internal/models"
)

// mockUserRepo is a lightweight in-test mock for repository.UserRepo.
type mockUserRepo struct {
	CreateFn           func(u *models.User) (int, error)
	GetByUsernameFn    func(username string) (*models.User, error)
	GetByEmailFn       func(email string) (*models.User, error)
	ExistsByUsernameFn func(username string) (bool, error)
	ExistsByEmailFn    func(email string) (bool, error)

	created []*models.User
}

func (m *mockUserRepo) Create(_ context.Context, u *models.User) (int, error) {
	m.created = append(m.created, u)
	if m.CreateFn == nil {
		u.ID = len(m.created)
		return u.ID, nil
	}
	return m.CreateFn(u)
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	if m.GetByUsernameFn == nil {
		return nil, nil
	}
	return m.GetByUsernameFn(username)
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	if m.GetByEmailFn == nil {
		return nil, nil
	}
	return m.GetByEmailFn(email)
}

func (m *mockUserRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	if m.ExistsByUsernameFn == nil {
		return false, nil
	}
	return m.ExistsByUsernameFn(username)
}

func (m *mockUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	if m.ExistsByEmailFn == nil {
		return false, nil
	}
	return m.ExistsByEmailFn(email)
}

// mockRoleRepo keeps roles in a map; a nil map means the store is empty.
type mockRoleRepo struct {
	roles  map[models.ERole]*models.Role
	getErr error

	createdNames []models.ERole
}

func seededRoles() *mockRoleRepo {
	return &mockRoleRepo{roles: map[models.ERole]*models.Role{
		models.RoleUser:  {ID: 1, Name: models.RoleUser},
		models.RoleAdmin: {ID: 2, Name: models.RoleAdmin},
	}}
}

func (m *mockRoleRepo) GetByName(_ context.Context, name models.ERole) (*models.Role, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.roles[name], nil
}

func (m *mockRoleRepo) Create(_ context.Context, name models.ERole) (*models.Role, error) {
	if m.roles == nil {
		m.roles = map[models.ERole]*models.Role{}
	}
	m.createdNames = append(m.createdNames, name)
	r := &models.Role{ID: len(m.roles) + 1, Name: name}
	m.roles[name] = r
	return r, nil
}

// mockRequestRepo is an in-memory repository.AuthorizationRequestRepo.
type mockRequestRepo struct {
	saved   map[string]models.AuthorizationRequest
	purged  time.Time
	purgeN  int64
	saveErr error
}

func newMockRequestRepo() *mockRequestRepo {
	return &mockRequestRepo{saved: map[string]models.AuthorizationRequest{}}
}

func (m *mockRequestRepo) Save(_ context.Context, req models.AuthorizationRequest) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved[req.State] = req
	return nil
}

func (m *mockRequestRepo) Take(_ context.Context, state string) (*models.AuthorizationRequest, error) {
	req, ok := m.saved[state]
	if !ok {
		return nil, nil
	}
	delete(m.saved, state)
	return &req, nil
}

func (m *mockRequestRepo) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	m.purged = now
	return m.purgeN, nil
}

// recordingNotifier remembers who got a welcome mail. Delivery runs on
// its own goroutine, so tests wait on sent.
type recordingNotifier struct {
	mu       sync.Mutex
	welcomed []string
	sent     chan string
	err      error
}

func newRecordingNotifier() *recordingNotifier {
	return &recordingNotifier{sent: make(chan string, 8)}
}

func (n *recordingNotifier) Welcome(_ context.Context, u *models.User) error {
	n.mu.Lock()
	n.welcomed = append(n.welcomed, u.Username)
	n.mu.Unlock()
	n.sent <- u.Username
	return n.err
}

func (n *recordingNotifier) waitFor(t *testing.T, username string) {
	t.Helper()
	select {
	case got := <-n.sent:
		if got != username {
			t.Fatalf("welcome mail sent to %q, want %q", got, username)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("no welcome mail for %q", username)
	}
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.welcomed)
}

// blockingNotifier holds every delivery until its context ends or release is closed.
type blockingNotifier struct {
	release chan struct{}
	done    chan error
}

func newBlockingNotifier() *blockingNotifier {
	return &blockingNotifier{release: make(chan struct{}), done: make(chan error, 1)}
}

func (n *blockingNotifier) Welcome(ctx context.Context, _ *models.User) error {
	if _, ok := ctx.Deadline(); !ok {
		n.done <- errors.New("welcome delivery has no deadline")
		return nil
	}
	select {
	case <-n.release:
		n.done <- nil
	case <-ctx.Done():
		n.done <- ctx.Err()
	}
	return nil
}

const testSecret = "test-secret"

func newTestTokens() *TokenManager {
	return NewTokenManager(testSecret, time.Hour)
}
