package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/questparty/questparty-api/internal/domain"
	"github.com/questparty/questparty-api/internal/platform/logger"
	"github.com/questparty/questparty-api/internal/store"
	goredis "github.com/redis/go-redis/v9"
)

const (
	victoryKeyPrefix     = "questparty:victory:"
	partyVictoriesPrefix = "questparty:party-victories:"
	defaultVictoryTTL    = 5 * time.Minute
)

// CachedVictoryStore is a read-through cache in front of a store.VictoryStore.
// Redis failures are logged and the request is served by the wrapped store.
type CachedVictoryStore struct {
	next   store.VictoryStore
	rdb    goredis.Cmdable
	ttl    time.Duration
	logger *slog.Logger
}

// Ensure CachedVictoryStore implements store.VictoryStore interface
var _ store.VictoryStore = (*CachedVictoryStore)(nil)

// NewCachedVictoryStore decorates next with a Redis cache. A non-positive ttl
// falls back to five minutes.
func NewCachedVictoryStore(
	next store.VictoryStore,
	rdb goredis.Cmdable,
	ttl time.Duration,
	logger *slog.Logger,
) *CachedVictoryStore {
	if next == nil {
		panic("next cannot be nil")
	}
	if rdb == nil {
		panic("redis client cannot be nil")
	}
	if ttl <= 0 {
		ttl = defaultVictoryTTL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CachedVictoryStore{
		next:   next,
		rdb:    rdb,
		ttl:    ttl,
		logger: logger.With(slog.String("component", "victory_cache")),
	}
}

// cachedVictory is the JSON form of a victory stored in Redis.
type cachedVictory struct {
	ID           uuid.UUID `json:"id"`
	PartyID      uuid.UUID `json:"party_id"`
	MonsterName  string    `json:"monster_name"`
	MonsterLevel int       `json:"monster_level"`
	XPReward     int       `json:"xp_reward"`
	DefeatedAt   time.Time `json:"defeated_at"`
	CreatedAt    time.Time `json:"created_at"`
}

func encodeVictory(v *domain.Victory) ([]byte, error) {
	return json.Marshal(cachedVictory{
		ID:           v.ID,
		PartyID:      v.PartyID,
		MonsterName:  v.MonsterName,
		MonsterLevel: v.MonsterLevel,
		XPReward:     v.XPReward,
		DefeatedAt:   v.DefeatedAt,
		CreatedAt:    v.CreatedAt,
	})
}

func decodeVictory(data []byte) (*domain.Victory, error) {
	var c cachedVictory
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	if c.ID == uuid.Nil {
		return nil, errors.New("cached victory has no id")
	}
	return &domain.Victory{
		ID:           c.ID,
		PartyID:      c.PartyID,
		MonsterName:  c.MonsterName,
		MonsterLevel: c.MonsterLevel,
		XPReward:     c.XPReward,
		DefeatedAt:   c.DefeatedAt,
		CreatedAt:    c.CreatedAt,
	}, nil
}

func victoryKey(id uuid.UUID) string {
	return victoryKeyPrefix + id.String()
}

func partyVictoriesKey(partyID uuid.UUID) string {
	return partyVictoriesPrefix + partyID.String()
}

// GetByID implements store.VictoryStore.GetByID
func (c *CachedVictoryStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Victory, error) {
	log := logger.FromContextOrDefault(ctx, c.logger)
	key := victoryKey(id)

	data, err := c.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		v, decodeErr := decodeVictory(data)
		if decodeErr == nil {
			log.Debug("victory cache hit", slog.String("victory_id", id.String()))
			return v, nil
		}
		log.Warn("discarding undecodable cache entry",
			slog.String("victory_id", id.String()),
			slog.String("error", decodeErr.Error()))
	case errors.Is(err, goredis.Nil):
		log.Debug("victory cache miss", slog.String("victory_id", id.String()))
	default:
		log.Warn("victory cache unavailable, reading through",
			slog.String("victory_id", id.String()),
			slog.String("error", err.Error()))
	}

	v, err := c.next.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	c.fill(ctx, log, v)
	return v, nil
}

func (c *CachedVictoryStore) fill(ctx context.Context, log *slog.Logger, v *domain.Victory) {
	data, err := encodeVictory(v)
	if err != nil {
		log.Warn("failed to encode victory for cache", slog.String("error", err.Error()))
		return
	}

	indexKey := partyVictoriesKey(v.PartyID)
	_, err = c.rdb.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.Set(ctx, victoryKey(v.ID), data, c.ttl)
		pipe.SAdd(ctx, indexKey, v.ID.String())
		pipe.Expire(ctx, indexKey, c.ttl)
		return nil
	})
	if err != nil {
		log.Warn("failed to populate victory cache",
			slog.String("victory_id", v.ID.String()),
			slog.String("error", err.Error()))
	}
}

// DeleteByParty implements store.VictoryStore.DeleteByParty. Cached entries of
// the party are evicted after the rows are gone.
func (c *CachedVictoryStore) DeleteByParty(ctx context.Context, partyID uuid.UUID) (int64, error) {
	n, err := c.next.DeleteByParty(ctx, partyID)
	if err != nil {
		return 0, err
	}

	if evictErr := c.evictParty(ctx, partyID); evictErr != nil {
		logger.FromContextOrDefault(ctx, c.logger).Warn("failed to evict party victories from cache",
			slog.String("party_id", partyID.String()),
			slog.String("error", evictErr.Error()))
	}
	return n, nil
}

func (c *CachedVictoryStore) evictParty(ctx context.Context, partyID uuid.UUID) error {
	indexKey := partyVictoriesKey(partyID)
	members, err := c.rdb.SMembers(ctx, indexKey).Result()
	if err != nil {
		return fmt.Errorf("read party index: %w", err)
	}

	keys := make([]string, 0, len(members)+1)
	for _, m := range members {
		keys = append(keys, victoryKeyPrefix+m)
	}
	keys = append(keys, indexKey)
	return c.rdb.Del(ctx, keys...).Err()
}
