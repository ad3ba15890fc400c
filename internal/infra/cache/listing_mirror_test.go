package cache

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"testing"
	"time"

	"shopseva/config"
	"shopseva/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockCmdable struct {
	data      map[string]string
	ttls      map[string]time.Duration
	evalCalls int
	getErr    error
	// beforeEval runs ahead of each script, standing in for a concurrent client.
	beforeEval func()
}

func newMockCmdable() *mockCmdable {
	return &mockCmdable{
		data: make(map[string]string),
		ttls: make(map[string]time.Duration),
	}
}

func (m *mockCmdable) Ping(ctx context.Context) *redis.StatusCmd {
	return redis.NewStatusResult("PONG", nil)
}

func (m *mockCmdable) Get(ctx context.Context, key string) *redis.StringCmd {
	if m.getErr != nil {
		return redis.NewStringResult("", m.getErr)
	}
	v, ok := m.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}

	return redis.NewStringResult(v, nil)
}

func (m *mockCmdable) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	return redis.NewIntResult(m.del(keys...), nil)
}

func (m *mockCmdable) del(keys ...string) int64 {
	var removed int64
	for _, k := range keys {
		if _, ok := m.data[k]; ok {
			delete(m.data, k)
			removed++
		}
	}

	return removed
}

// Eval runs the two mirror scripts against the in-memory data.
func (m *mockCmdable) Eval(ctx context.Context, script string, keys []string, args ...any) *redis.Cmd {
	m.evalCalls++
	if m.beforeEval != nil {
		m.beforeEval()
	}

	switch script {
	case storeScript:
		current, ok := m.data[keys[0]]
		if !ok {
			current = "0"
		}
		if current != args[0].(string) {
			return redis.NewCmdResult(int64(0), nil)
		}
		m.data[keys[1]] = string(args[1].([]byte))
		m.ttls[keys[1]] = time.Duration(args[2].(int64)) * time.Millisecond

		return redis.NewCmdResult(int64(1), nil)
	case invalidateScript:
		m.bump(keys[0])

		return redis.NewCmdResult(m.del(keys[1]), nil)
	default:
		return redis.NewCmdResult(nil, errors.New("unknown script"))
	}
}

func (m *mockCmdable) bump(key string) {
	gen, _ := strconv.ParseInt(m.data[key], 10, 64)
	m.data[key] = strconv.FormatInt(gen+1, 10)
}

func newTestMirror(store cmdable) *redisListingMirror {
	return newRedisListingMirror(store, &config.RedisConfig{KeyPrefix: "test", MirrorTTL: time.Minute}, slog.New(slog.DiscardHandler))
}

func TestListingMirror_MissThenStoreThenHit(t *testing.T) {
	ctx := context.Background()
	store := newMockCmdable()
	mirror := newTestMirror(store)

	_, ok, err := mirror.Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	approved := &entity.Shop{ID: uuid.New(), Name: "Approved", IsApproved: true}
	pending := &entity.Shop{ID: uuid.New(), Name: "Pending"}
	syncedAt := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, mirror.Store(ctx, []*entity.Shop{approved, pending}, syncedAt, 0))
	assert.Equal(t, time.Minute, store.ttls["test:listings:approved"])

	snapshot, ok, err := mirror.Load(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, syncedAt, snapshot.SyncedAt)
	require.Len(t, snapshot.Shops, 1)
	assert.Equal(t, approved.ID, snapshot.Shops[0].ID)
}

func TestListingMirror_Invalidate(t *testing.T) {
	ctx := context.Background()
	store := newMockCmdable()
	mirror := newTestMirror(store)

	require.NoError(t, mirror.Store(ctx, []*entity.Shop{{ID: uuid.New(), IsApproved: true}}, time.Now(), 0))
	require.NoError(t, mirror.Invalidate(ctx))

	_, ok, err := mirror.Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	gen, err := mirror.Generation(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), gen)
}

func TestListingMirror_StoreAfterInvalidateIsDropped(t *testing.T) {
	ctx := context.Background()
	store := newMockCmdable()
	mirror := newTestMirror(store)

	gen, err := mirror.Generation(ctx)
	require.NoError(t, err)

	// A write commits and invalidates between the reader's store query and its fill.
	require.NoError(t, mirror.Invalidate(ctx))

	stale := &entity.Shop{ID: uuid.New(), Name: "Deleted", IsApproved: true}
	require.NoError(t, mirror.Store(ctx, []*entity.Shop{stale}, time.Now(), gen))

	_, ok, err := mirror.Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NotContains(t, store.data, "test:listings:approved")
}

func TestListingMirror_InvalidateDuringFillWins(t *testing.T) {
	ctx := context.Background()
	store := newMockCmdable()
	mirror := newTestMirror(store)

	gen, err := mirror.Generation(ctx)
	require.NoError(t, err)

	store.beforeEval = func() {
		store.beforeEval = nil
		store.bump("test:listings:generation")
	}
	require.NoError(t, mirror.Store(ctx, []*entity.Shop{{ID: uuid.New(), IsApproved: true}}, time.Now(), gen))

	_, ok, err := mirror.Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestListingMirror_StoresCardsOnly(t *testing.T) {
	ctx := context.Background()
	mirror := newTestMirror(newMockCmdable())
	shop := &entity.Shop{ID: uuid.New(), IsApproved: true, Images: []string{"cover", "second", "third"}}

	require.NoError(t, mirror.Store(ctx, []*entity.Shop{shop}, time.Now(), 0))

	snapshot, ok, err := mirror.Load(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, snapshot.Shops, 1)
	assert.Equal(t, []string{"cover"}, snapshot.Shops[0].Images)
	assert.Len(t, shop.Images, 3)
}

func TestListingMirror_CorruptEntryIsMiss(t *testing.T) {
	ctx := context.Background()
	store := newMockCmdable()
	store.data["test:listings:approved"] = "{not json"
	mirror := newTestMirror(store)

	_, ok, err := mirror.Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NotContains(t, store.data, "test:listings:approved")
}

func TestListingMirror_ReadError(t *testing.T) {
	store := newMockCmdable()
	store.getErr = assert.AnError
	mirror := newTestMirror(store)

	_, ok, err := mirror.Load(context.Background())
	require.ErrorIs(t, err, assert.AnError)
	assert.False(t, ok)
}

func TestListingMirror_Defaults(t *testing.T) {
	mirror := newRedisListingMirror(newMockCmdable(), nil, slog.New(slog.DiscardHandler))

	assert.Equal(t, "shopseva:listings:approved", mirror.key)
	assert.Equal(t, "shopseva:listings:generation", mirror.genKey)
	assert.Equal(t, defaultMirrorTTL, mirror.ttl)
}

func TestNewListingMirror_NilClientIsNoop(t *testing.T) {
	mirror := NewListingMirror(nil, &config.Config{}, slog.New(slog.DiscardHandler))

	require.NoError(t, mirror.Store(context.Background(), nil, time.Now(), 0))
	_, ok, err := mirror.Load(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mirror.Invalidate(context.Background()))
}

func TestOptionsFromConfig(t *testing.T) {
	opts, err := optionsFromConfig(&config.RedisConfig{Address: "localhost:6379", DB: 2, PoolSize: 5})
	require.NoError(t, err)
	assert.Equal(t, "localhost:6379", opts.Addr)
	assert.Equal(t, 2, opts.DB)
	assert.Equal(t, 5, opts.PoolSize)

	opts, err = optionsFromConfig(&config.RedisConfig{URL: "redis://:secret@cache:6380/1"})
	require.NoError(t, err)
	assert.Equal(t, "cache:6380", opts.Addr)
	assert.Equal(t, "secret", opts.Password)
	assert.Equal(t, 1, opts.DB)

	_, err = optionsFromConfig(&config.RedisConfig{URL: "://bad"})
	require.Error(t, err)
}
