package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"time"

	"shopseva/config"
	"shopseva/internal/domain/entity"
	"shopseva/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const (
	defaultKeyPrefix = "shopseva"
	defaultMirrorTTL = 10 * time.Minute
	approvedKey      = "listings:approved"
	generationKey    = "listings:generation"
)

// KEYS[1] generation, KEYS[2] snapshot; ARGV[1] expected generation,
// ARGV[2] payload, ARGV[3] ttl in milliseconds.
const storeScript = `
local current = redis.call('GET', KEYS[1]) or '0'
if current ~= ARGV[1] then
	return 0
end
redis.call('SET', KEYS[2], ARGV[2], 'PX', ARGV[3])
return 1
`

// KEYS[1] generation, KEYS[2] snapshot.
const invalidateScript = `
redis.call('INCR', KEYS[1])
return redis.call('DEL', KEYS[2])
`

// mirrorPayload is the JSON stored under the approved listings key.
type mirrorPayload struct {
	SyncedAt time.Time      `json:"syncedAt"`
	Shops    []*entity.Shop `json:"shops"`
}

type redisListingMirror struct {
	store  cmdable
	key    string
	genKey string
	ttl    time.Duration
	logger *slog.Logger
}

// NewListingMirror returns the Redis mirror, or a no-op mirror when client is nil.
func NewListingMirror(client *redis.Client, cfg *config.Config, logger *slog.Logger) service.ListingMirror {
	if client == nil {
		return NewNoopMirror()
	}

	return newRedisListingMirror(client, cfg.Redis, logger)
}

func newRedisListingMirror(store cmdable, cfg *config.RedisConfig, logger *slog.Logger) *redisListingMirror {
	prefix := defaultKeyPrefix
	ttl := defaultMirrorTTL
	if cfg != nil {
		if cfg.KeyPrefix != "" {
			prefix = cfg.KeyPrefix
		}
		if cfg.MirrorTTL > 0 {
			ttl = cfg.MirrorTTL
		}
	}

	return &redisListingMirror{
		store:  store,
		key:    prefix + ":" + approvedKey,
		genKey: prefix + ":" + generationKey,
		ttl:    ttl,
		logger: logger,
	}
}

func (m *redisListingMirror) Load(ctx context.Context) (*service.MirrorSnapshot, bool, error) {
	raw, err := m.store.Get(ctx, m.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(err, "read listing mirror")
	}

	var payload mirrorPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		// A corrupt entry is treated as a miss and dropped.
		m.logger.WarnContext(ctx, "Discarding unreadable listing mirror", slog.Any("error", err))
		_ = m.store.Del(ctx, m.key).Err()

		return nil, false, nil
	}

	return &service.MirrorSnapshot{Shops: payload.Shops, SyncedAt: payload.SyncedAt}, true, nil
}

func (m *redisListingMirror) Generation(ctx context.Context) (int64, error) {
	gen, err := m.store.Get(ctx, m.genKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, errors.Wrap(err, "read listing mirror generation")
	}

	return gen, nil
}

func (m *redisListingMirror) Store(ctx context.Context, shops []*entity.Shop, syncedAt time.Time, generation int64) error {
	cards := make([]*entity.Shop, 0, len(shops))
	for _, s := range shops {
		if s != nil && s.IsPubliclyVisible() {
			cards = append(cards, s.Card())
		}
	}

	data, err := json.Marshal(mirrorPayload{SyncedAt: syncedAt.UTC(), Shops: cards})
	if err != nil {
		return errors.WithStack(err)
	}

	stored, err := m.store.Eval(ctx, storeScript, []string{m.genKey, m.key},
		strconv.FormatInt(generation, 10), data, m.ttl.Milliseconds()).Int64()
	if err != nil {
		return errors.Wrap(err, "write listing mirror")
	}
	if stored == 0 {
		m.logger.DebugContext(ctx, "Listing mirror fill skipped after invalidation", slog.Int64("generation", generation))
	}

	return nil
}

func (m *redisListingMirror) Invalidate(ctx context.Context) error {
	return errors.Wrap(m.store.Eval(ctx, invalidateScript, []string{m.genKey, m.key}).Err(), "invalidate listing mirror")
}

type noopMirror struct{}

// NewNoopMirror returns a mirror that never holds anything.
func NewNoopMirror() service.ListingMirror {
	return noopMirror{}
}

func (noopMirror) Load(context.Context) (*service.MirrorSnapshot, bool, error) {
	return nil, false, nil
}

func (noopMirror) Generation(context.Context) (int64, error) {
	return 0, nil
}

func (noopMirror) Store(context.Context, []*entity.Shop, time.Time, int64) error {
	return nil
}

func (noopMirror) Invalidate(context.Context) error {
	return nil
}
