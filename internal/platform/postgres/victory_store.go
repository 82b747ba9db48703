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

const victoryColumns = "id, party_id, monster_name, monster_level, xp_reward, defeated_at, created_at"

// PostgresVictoryStore implements the store.VictoryStore interface
// using a PostgreSQL database as the storage backend.
type PostgresVictoryStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresVictoryStore creates a new PostgreSQL implementation of the VictoryStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresVictoryStore(db store.DBTX, logger *slog.Logger) *PostgresVictoryStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresVictoryStore{
		db:     db,
		logger: logger.With(slog.String("component", "victory_store")),
	}
}

// Ensure PostgresVictoryStore implements store.VictoryStore interface
var _ store.VictoryStore = (*PostgresVictoryStore)(nil)

// GetByID implements store.VictoryStore.GetByID
func (s *PostgresVictoryStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Victory, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var v domain.Victory
	err := s.db.QueryRowContext(ctx,
		"SELECT "+victoryColumns+" FROM victories WHERE id = $1", id,
	).Scan(
		&v.ID,
		&v.PartyID,
		&v.MonsterName,
		&v.MonsterLevel,
		&v.XPReward,
		&v.DefeatedAt,
		&v.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("victory not found", slog.String("victory_id", id.String()))
			return nil, store.ErrVictoryNotFound
		}
		log.Error("failed to get victory by ID",
			slog.String("error", err.Error()),
			slog.String("victory_id", id.String()))
		return nil, MapError(err)
	}
	return &v, nil
}

// DeleteByParty implements store.VictoryStore.DeleteByParty
func (s *PostgresVictoryStore) DeleteByParty(ctx context.Context, partyID uuid.UUID) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, "DELETE FROM victories WHERE party_id = $1", partyID)
	if err != nil {
		log.Error("failed to delete victories",
			slog.String("error", err.Error()),
			slog.String("party_id", partyID.String()))
		return 0, MapError(err)
	}
	n, err := rowsAffected(result)
	if err != nil {
		return 0, err
	}
	log.Info("victories deleted", slog.String("party_id", partyID.String()), slog.Int64("rows", n))
	return n, nil
}
