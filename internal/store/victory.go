package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/questparty/questparty-api/internal/domain"
)

// VictoryStore defines the interface for victory persistence.
type VictoryStore interface {
	// GetByID retrieves a victory by its unique ID.
	// Returns ErrVictoryNotFound if the victory does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Victory, error)

	// DeleteByParty removes every victory of partyID and returns the number deleted.
	DeleteByParty(ctx context.Context, partyID uuid.UUID) (int64, error)
}
