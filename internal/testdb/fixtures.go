package testdb

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/questparty/questparty-api/internal/domain"
	"github.com/stretchr/testify/require"
)

// CreateTestUser inserts a user with a unique email and returns it.
func CreateTestUser(t *testing.T, tx *sql.Tx) *domain.User {
	t.Helper()

	id := uuid.New()
	email := fmt.Sprintf("player-%s@example.com", id.String()[:8])
	var user domain.User
	err := tx.QueryRowContext(context.Background(), `
		INSERT INTO users (id, email, display_name, timezone, character_name)
		VALUES ($1, $2, 'Test Player', 'UTC', 'Squire')
		RETURNING id, email, display_name, timezone, character_name, onboarding_step, created_at, updated_at`,
		id, email,
	).Scan(
		&user.ID, &user.Email, &user.DisplayName, &user.Timezone, &user.CharacterName,
		&user.OnboardingStep, &user.CreatedAt, &user.UpdatedAt,
	)
	require.NoError(t, err, "Failed to create test user")
	return &user
}

// CreateTestParty inserts a party led by leader and returns its ID.
func CreateTestParty(t *testing.T, tx *sql.Tx, leader uuid.UUID) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := tx.ExecContext(context.Background(),
		`INSERT INTO parties (id, name, code, created_by) VALUES ($1, 'Test Party', $2, $3)`,
		id, id.String()[:8], leader,
	)
	require.NoError(t, err, "Failed to create test party")
	return id
}

// AddTestMember inserts a membership for userID in partyID.
func AddTestMember(t *testing.T, tx *sql.Tx, partyID, userID uuid.UUID, role domain.PartyRole) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := tx.ExecContext(context.Background(),
		`INSERT INTO party_members (id, party_id, user_id, role) VALUES ($1, $2, $3, $4)`,
		id, partyID, userID, string(role),
	)
	require.NoError(t, err, "Failed to add party member")
	return id
}

// CreateTestVictory inserts a victory for partyID and returns its ID.
func CreateTestVictory(t *testing.T, tx *sql.Tx, partyID uuid.UUID, monster string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := tx.ExecContext(context.Background(),
		`INSERT INTO victories (id, party_id, monster_name, monster_level, xp_reward, defeated_at)
		 VALUES ($1, $2, $3, 3, 150, $4)`,
		id, partyID, monster, time.Now().UTC(),
	)
	require.NoError(t, err, "Failed to create test victory")
	return id
}
