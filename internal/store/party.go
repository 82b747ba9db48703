package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/questparty/questparty-api/internal/domain"
)

// PartyStore defines the interface for party membership persistence.
type PartyStore interface {
	// LeaveParty deletes the membership of userID and returns it.
	// Returns ErrMembershipNotFound if the user is not in a party.
	LeaveParty(ctx context.Context, userID uuid.UUID) (*domain.PartyMembership, error)
}
