package mocks

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/questparty/questparty-api/internal/domain"
	"github.com/questparty/questparty-api/internal/store"
)

// MockVictoryStore implements store.VictoryStore for testing.
type MockVictoryStore struct {
	GetByIDFn       func(ctx context.Context, id uuid.UUID) (*domain.Victory, error)
	DeleteByPartyFn func(ctx context.Context, partyID uuid.UUID) (int64, error)

	Victories map[uuid.UUID]*domain.Victory

	mu           sync.Mutex
	getByIDCalls int
}

var _ store.VictoryStore = (*MockVictoryStore)(nil)

// NewMockVictoryStore creates a mock store seeded with victories.
func NewMockVictoryStore(victories ...*domain.Victory) *MockVictoryStore {
	m := &MockVictoryStore{Victories: make(map[uuid.UUID]*domain.Victory)}
	for _, v := range victories {
		m.Victories[v.ID] = v
	}
	return m
}

// GetByIDCalls returns how many times GetByID was invoked.
func (m *MockVictoryStore) GetByIDCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.getByIDCalls
}

// GetByID implements the VictoryStore interface
func (m *MockVictoryStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Victory, error) {
	m.mu.Lock()
	m.getByIDCalls++
	m.mu.Unlock()

	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.Victories[id]
	if !ok {
		return nil, store.ErrVictoryNotFound
	}
	copied := *v
	return &copied, nil
}

// DeleteByParty implements the VictoryStore interface
func (m *MockVictoryStore) DeleteByParty(ctx context.Context, partyID uuid.UUID) (int64, error) {
	if m.DeleteByPartyFn != nil {
		return m.DeleteByPartyFn(ctx, partyID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for id, v := range m.Victories {
		if v.PartyID == partyID {
			delete(m.Victories, id)
			n++
		}
	}
	return n, nil
}
