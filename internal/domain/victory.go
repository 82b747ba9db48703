package domain

import (
	"time"

	"github.com/google/uuid"
)

// Victory records a monster defeated by a party and the reward it granted.
// Victories are immutable once written.
type Victory struct {
	ID           uuid.UUID
	PartyID      uuid.UUID
	MonsterName  string
	MonsterLevel int
	XPReward     int
	DefeatedAt   time.Time
	CreatedAt    time.Time
}
