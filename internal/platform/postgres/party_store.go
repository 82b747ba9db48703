package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/questparty/questparty-api/internal/domain"
	"github.com/questparty/questparty-api/internal/platform/logger"
	"github.com/questparty/questparty-api/internal/store"
)

const membershipColumns = "id, party_id, user_id, role, joined_at"

// PostgresPartyStore implements the store.PartyStore interface
// using a PostgreSQL database as the storage backend.
type PostgresPartyStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresPartyStore creates a new PostgreSQL implementation of the PartyStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresPartyStore(db store.DBTX, logger *slog.Logger) *PostgresPartyStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresPartyStore{
		db:     db,
		logger: logger.With(slog.String("component", "party_store")),
	}
}

// Ensure PostgresPartyStore implements store.PartyStore interface
var _ store.PartyStore = (*PostgresPartyStore)(nil)

func scanMembership(row rowScanner) (*domain.PartyMembership, error) {
	var (
		m    domain.PartyMembership
		role string
	)
	if err := row.Scan(&m.ID, &m.PartyID, &m.UserID, &role, &m.JoinedAt); err != nil {
		return nil, err
	}
	m.Role = domain.PartyRole(role)
	return &m, nil
}

// LeaveParty implements store.PartyStore.LeaveParty
// The membership is deleted and returned by a single DELETE ... RETURNING.
func (s *PostgresPartyStore) LeaveParty(ctx context.Context, userID uuid.UUID) (*domain.PartyMembership, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := "DELETE FROM party_members WHERE user_id = $1 RETURNING " + membershipColumns
	m, err := scanMembership(s.db.QueryRowContext(ctx, query, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("no party membership to leave", slog.String("user_id", userID.String()))
			return nil, store.ErrMembershipNotFound
		}
		log.Error("failed to leave party",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, store.NewStoreError("party_membership", "delete", "failed to leave party", MapError(err))
	}

	log.Info("user left party",
		slog.String("user_id", userID.String()),
		slog.String("party_id", m.PartyID.String()))
	return m, nil
}
