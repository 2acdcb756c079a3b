package middleware

import (
	"context"
	"staybook/pkg/cache"
	"staybook/pkg/logger"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisIdempotencyStore shares replay entries between API instances.
// Expiry is left to Redis.
type RedisIdempotencyStore struct {
	cache *cache.JSONCache
	log   *logger.Logger
}

func NewRedisIdempotencyStore(client redis.Cmdable, ttl time.Duration, log *logger.Logger) *RedisIdempotencyStore {
	return &RedisIdempotencyStore{
		cache: cache.NewJSONCache(client, "idempotency", ttl),
		log:   log,
	}
}

func (s *RedisIdempotencyStore) Get(ctx context.Context, key string) (*CachedResponse, bool) {
	var resp CachedResponse
	found, err := s.cache.Get(ctx, key, &resp)
	if err != nil {
		s.log.Ctx(ctx).Warn("Idempotency lookup failed", "error", err)
		return nil, false
	}
	if !found {
		return nil, false
	}
	return &resp, true
}

func (s *RedisIdempotencyStore) Set(ctx context.Context, key string, response *CachedResponse) {
	response.CreatedAt = time.Now()
	if err := s.cache.Set(ctx, key, response); err != nil {
		s.log.Ctx(ctx).Warn("Idempotency store failed", "error", err)
	}
}

func (s *RedisIdempotencyStore) Stop() {}
