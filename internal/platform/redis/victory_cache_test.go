package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/questparty/questparty-api/internal/domain"
	"github.com/questparty/questparty-api/internal/mocks"
	"github.com/questparty/questparty-api/internal/store"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unreachableClient returns a client whose every command fails fast.
func unreachableClient(t *testing.T) *goredis.Client {
	t.Helper()
	rdb := goredis.NewClient(&goredis.Options{
		Addr:         "127.0.0.1:1",
		DialTimeout:  50 * time.Millisecond,
		ReadTimeout:  50 * time.Millisecond,
		WriteTimeout: 50 * time.Millisecond,
		MaxRetries:   -1,
	})
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb
}

func testVictory() *domain.Victory {
	return &domain.Victory{
		ID:           uuid.New(),
		PartyID:      uuid.New(),
		MonsterName:  "Procrastination Drake",
		MonsterLevel: 7,
		XPReward:     420,
		DefeatedAt:   time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC),
		CreatedAt:    time.Date(2026, 3, 14, 18, 0, 1, 0, time.UTC),
	}
}

func TestCachedVictoryStore_FallsBackWhenRedisIsDown(t *testing.T) {
	t.Parallel()

	v := testVictory()
	next := mocks.NewMockVictoryStore(v)
	cached := NewCachedVictoryStore(next, unreachableClient(t), time.Minute, nil)

	got, err := cached.GetByID(context.Background(), v.ID)

	require.NoError(t, err)
	assert.Equal(t, v.MonsterName, got.MonsterName)
	assert.Equal(t, 1, next.GetByIDCalls())
}

func TestCachedVictoryStore_PassesThroughNotFound(t *testing.T) {
	t.Parallel()

	next := mocks.NewMockVictoryStore()
	cached := NewCachedVictoryStore(next, unreachableClient(t), time.Minute, nil)

	got, err := cached.GetByID(context.Background(), uuid.New())

	assert.Nil(t, got)
	assert.ErrorIs(t, err, store.ErrVictoryNotFound)
}

func TestCachedVictoryStore_DeleteByPartyIgnoresEvictionFailure(t *testing.T) {
	t.Parallel()

	v := testVictory()
	next := mocks.NewMockVictoryStore(v)
	cached := NewCachedVictoryStore(next, unreachableClient(t), time.Minute, nil)

	n, err := cached.DeleteByParty(context.Background(), v.PartyID)

	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.Empty(t, next.Victories)
}

func TestCachedVictoryStore_DeleteByPartyError(t *testing.T) {
	t.Parallel()

	boom := errors.New("database unavailable")
	next := &mocks.MockVictoryStore{
		DeleteByPartyFn: func(ctx context.Context, partyID uuid.UUID) (int64, error) {
			return 0, boom
		},
	}
	cached := NewCachedVictoryStore(next, unreachableClient(t), time.Minute, nil)

	_, err := cached.DeleteByParty(context.Background(), uuid.New())
	assert.ErrorIs(t, err, boom)
}

func TestVictoryCodec(t *testing.T) {
	t.Parallel()

	v := testVictory()
	data, err := encodeVictory(v)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"monster_name":"Procrastination Drake"`)

	decoded, err := decodeVictory(data)
	require.NoError(t, err)
	assert.Equal(t, v, decoded)

	_, err = decodeVictory([]byte(`{"monster_name":"ghost"}`))
	assert.Error(t, err, "entries without an id are rejected")

	_, err = decodeVictory([]byte(`not json`))
	assert.Error(t, err)
}

func TestNewCachedVictoryStore_DefaultTTL(t *testing.T) {
	t.Parallel()

	cached := NewCachedVictoryStore(mocks.NewMockVictoryStore(), unreachableClient(t), 0, nil)
	assert.Equal(t, defaultVictoryTTL, cached.ttl)
	assert.Equal(t, "questparty:victory:"+uuid.Nil.String(), victoryKey(uuid.Nil))
}

func TestNew_InvalidURL(t *testing.T) {
	t.Parallel()

	_, err := New(context.Background(), "not-a-redis-url")
	assert.Error(t, err)
}

func TestClient_PingUnreachable(t *testing.T) {
	t.Parallel()

	c := &Client{rdb: unreachableClient(t)}

	assert.Error(t, c.Ping(context.Background()))
	assert.NotNil(t, c.Cmdable())
}
