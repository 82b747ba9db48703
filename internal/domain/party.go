package domain

import (
	"time"

	"github.com/google/uuid"
)

// PartyRole is a member's role inside a party.
type PartyRole string

// Valid party roles.
const (
	PartyRoleLeader PartyRole = "leader"
	PartyRoleMember PartyRole = "member"
)

// Party is a group of users who check in together and fight monsters.
type Party struct {
	ID        uuid.UUID
	Name      string
	Code      string // invite code
	CreatedBy uuid.UUID
	CreatedAt time.Time
}

// PartyMembership links a user to the single party they belong to.
type PartyMembership struct {
	ID       uuid.UUID
	PartyID  uuid.UUID
	UserID   uuid.UUID
	Role     PartyRole
	JoinedAt time.Time
}
