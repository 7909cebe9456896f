package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/yourorg/starchart/internal/domain"
	"github.com/yourorg/starchart/internal/infrastructure/redis"
	"github.com/yourorg/starchart/pkg/cache"
)

// ByteCache is the read-through cache used by CachedStore. A miss is
// reported as ok=false; cache failures degrade to misses, never to errors.
type ByteCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
}

// CachedStore fronts constellation reads with a cache. The catalog is
// immutable after seeding, so entries never need invalidation; the TTL only
// bounds memory. User and favorite operations pass through untouched.
type CachedStore struct {
	domain.Store
	cache  ByteCache
	ttl    time.Duration
	logger *slog.Logger
}

const (
	catalogKey            = "catalog:all"
	constellationKeyPrefix = "constellation:"
)

// NewCachedStore wraps inner with a constellation read cache.
func NewCachedStore(inner domain.Store, c ByteCache, ttl time.Duration, logger *slog.Logger) *CachedStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &CachedStore{Store: inner, cache: c, ttl: ttl, logger: logger}
}

// GetAllConstellations serves the full catalog from cache when possible.
func (s *CachedStore) GetAllConstellations() ([]domain.Constellation, error) {
	ctx := context.Background()

	if data, ok := s.cache.Get(ctx, catalogKey); ok {
		var out []domain.Constellation
		if err := json.Unmarshal(data, &out); err == nil {
			return out, nil
		}
		s.logger.Warn("dropping undecodable catalog cache entry")
	}

	out, err := s.Store.GetAllConstellations()
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(out); err == nil {
		s.cache.Set(ctx, catalogKey, data, s.ttl)
	}
	return out, nil
}

// GetConstellation serves single records from cache when possible.
func (s *CachedStore) GetConstellation(id string) (*domain.Constellation, error) {
	ctx := context.Background()
	key := constellationKeyPrefix + id

	if data, ok := s.cache.Get(ctx, key); ok {
		c := &domain.Constellation{}
		if err := json.Unmarshal(data, c); err == nil {
			return c, nil
		}
		s.logger.Warn("dropping undecodable constellation cache entry", slog.String("id", id))
	}

	c, err := s.Store.GetConstellation(id)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(c); err == nil {
		s.cache.Set(ctx, key, data, s.ttl)
	}
	return c, nil
}

// LocalCache adapts pkg/cache to the ByteCache interface.
type LocalCache struct {
	c *cache.Cache[[]byte]
}

// NewLocalCache creates an in-process ByteCache.
func NewLocalCache() *LocalCache {
	return &LocalCache{c: cache.New[[]byte]()}
}

func (l *LocalCache) Get(_ context.Context, key string) ([]byte, bool) {
	return l.c.Get(key)
}

func (l *LocalCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) {
	l.c.Set(key, value, ttl)
}

// RedisCache adapts the Redis client to the ByteCache interface. Redis
// errors are logged and treated as misses so a cache outage never breaks
// catalog reads.
type RedisCache struct {
	client *redis.Client
	logger *slog.Logger
}

// NewRedisCache creates a Redis-backed ByteCache.
func NewRedisCache(client *redis.Client, logger *slog.Logger) *RedisCache {
	if logger == nil {
		logger = slog.Default()
	}
	return &RedisCache{client: client, logger: logger}
}

func (r *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	data, err := r.client.Get(ctx, key)
	if err != nil {
		if !redis.IsMiss(err) {
			r.logger.Warn("redis cache read failed", slog.String("key", key), slog.String("error", err.Error()))
		}
		return nil, false
	}
	return data, true
}

func (r *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if err := r.client.Set(ctx, key, value, ttl); err != nil {
		r.logger.Warn("redis cache write failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}
