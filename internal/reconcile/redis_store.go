package reconcile

import (
	"context"
	"time"

	"github.com/fortuna/courtside/internal/cache"
)

// DefaultCacheKey is the single namespaced key holding the id-to-entry map.
const DefaultCacheKey = "courtside:completed_games"

// redisKeyTTL outlives the entry window so the lazy sweep, not key expiry,
// decides entry lifetime.
const redisKeyTTL = 48 * time.Hour

// RedisStore persists the cache map as one JSON value in Redis.
type RedisStore struct {
	cache *cache.RedisCache
	key   string
}

// NewRedisStore creates a Redis-backed store. An empty key uses
// DefaultCacheKey.
func NewRedisStore(rc *cache.RedisCache, key string) *RedisStore {
	if key == "" {
		key = DefaultCacheKey
	}
	return &RedisStore{cache: rc, key: key}
}

// Load fetches and decodes the cache map. A missing key is an empty cache,
// not an error.
func (r *RedisStore) Load(ctx context.Context) (map[string]CachedEvent, error) {
	entries := map[string]CachedEvent{}
	if err := r.cache.GetJSON(ctx, r.key, &entries); err != nil {
		if cache.IsMiss(err) {
			return map[string]CachedEvent{}, nil
		}
		return nil, err
	}
	return entries, nil
}

// Save encodes and stores the cache map.
func (r *RedisStore) Save(ctx context.Context, entries map[string]CachedEvent) error {
	return r.cache.SetJSON(ctx, r.key, entries, redisKeyTTL)
}
