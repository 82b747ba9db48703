package mocks

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/questparty/questparty-api/internal/domain"
	"github.com/questparty/questparty-api/internal/store"
)

// MockUserStore implements store.UserStore for testing.
// Without a function field set, methods operate on the in-memory Users map.
type MockUserStore struct {
	GetByIDFn       func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmailFn    func(ctx context.Context, email string) (*domain.User, error)
	EmailExistsFn   func(ctx context.Context, email string) (bool, error)
	UpdateProfileFn func(ctx context.Context, id uuid.UUID, update domain.ProfileUpdate) (*domain.User, error)
	UpdateUserFn    func(ctx context.Context, id uuid.UUID, update domain.UserUpdate) (*domain.User, error)
	DeleteByEmailFn func(ctx context.Context, email string) (int64, error)

	// Users is keyed by user ID.
	Users map[uuid.UUID]*domain.User

	mu    sync.Mutex
	calls map[string]int
}

var _ store.UserStore = (*MockUserStore)(nil)

// NewMockUserStore creates a mock store seeded with users.
func NewMockUserStore(users ...*domain.User) *MockUserStore {
	m := &MockUserStore{Users: make(map[uuid.UUID]*domain.User)}
	for _, u := range users {
		m.Users[u.ID] = u
	}
	return m
}

func (m *MockUserStore) record(method string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.calls == nil {
		m.calls = make(map[string]int)
	}
	m.calls[method]++
}

// Calls returns how many times method was invoked.
func (m *MockUserStore) Calls(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[method]
}

// TotalCalls returns the number of store calls of any kind.
func (m *MockUserStore) TotalCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	total := 0
	for _, n := range m.calls {
		total += n
	}
	return total
}

// GetByID implements the UserStore interface
func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	m.record("GetByID")
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.Users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

// GetByEmail implements the UserStore interface
func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	m.record("GetByEmail")
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	normalized := domain.NormalizeEmail(email)
	for _, user := range m.Users {
		if user.Email == normalized {
			copied := *user
			return &copied, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// EmailExists implements the UserStore interface
func (m *MockUserStore) EmailExists(ctx context.Context, email string) (bool, error) {
	m.record("EmailExists")
	if m.EmailExistsFn != nil {
		return m.EmailExistsFn(ctx, email)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	normalized := domain.NormalizeEmail(email)
	for _, user := range m.Users {
		if user.Email == normalized {
			return true, nil
		}
	}
	return false, nil
}

// UpdateProfile implements the UserStore interface
func (m *MockUserStore) UpdateProfile(
	ctx context.Context,
	id uuid.UUID,
	update domain.ProfileUpdate,
) (*domain.User, error) {
	m.record("UpdateProfile")
	if m.UpdateProfileFn != nil {
		return m.UpdateProfileFn(ctx, id, update)
	}
	if err := update.Validate(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.Users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	update.Apply(user)
	copied := *user
	return &copied, nil
}

// UpdateUser implements the UserStore interface
func (m *MockUserStore) UpdateUser(
	ctx context.Context,
	id uuid.UUID,
	update domain.UserUpdate,
) (*domain.User, error) {
	m.record("UpdateUser")
	if m.UpdateUserFn != nil {
		return m.UpdateUserFn(ctx, id, update)
	}
	if err := update.Validate(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.Users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	update.Apply(user)
	copied := *user
	return &copied, nil
}

// DeleteByEmail implements the UserStore interface
func (m *MockUserStore) DeleteByEmail(ctx context.Context, email string) (int64, error) {
	m.record("DeleteByEmail")
	if m.DeleteByEmailFn != nil {
		return m.DeleteByEmailFn(ctx, email)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	normalized := domain.NormalizeEmail(email)
	for id, user := range m.Users {
		if user.Email == normalized {
			delete(m.Users, id)
			return 1, nil
		}
	}
	return 0, nil
}
