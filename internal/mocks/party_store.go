package mocks

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/questparty/questparty-api/internal/domain"
	"github.com/questparty/questparty-api/internal/store"
)

// MockPartyStore implements store.PartyStore for testing.
// Without a function field set, methods operate on Memberships, keyed by user ID.
type MockPartyStore struct {
	LeavePartyFn func(ctx context.Context, userID uuid.UUID) (*domain.PartyMembership, error)

	Memberships map[uuid.UUID]*domain.PartyMembership

	mu sync.Mutex
}

var _ store.PartyStore = (*MockPartyStore)(nil)

// NewMockPartyStore creates a mock store seeded with memberships.
func NewMockPartyStore(memberships ...*domain.PartyMembership) *MockPartyStore {
	m := &MockPartyStore{Memberships: make(map[uuid.UUID]*domain.PartyMembership)}
	for _, pm := range memberships {
		m.Memberships[pm.UserID] = pm
	}
	return m
}

// LeaveParty implements the PartyStore interface
func (m *MockPartyStore) LeaveParty(ctx context.Context, userID uuid.UUID) (*domain.PartyMembership, error) {
	if m.LeavePartyFn != nil {
		return m.LeavePartyFn(ctx, userID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	pm, ok := m.Memberships[userID]
	if !ok {
		return nil, store.ErrMembershipNotFound
	}
	delete(m.Memberships, userID)
	return pm, nil
}
