package cache

import (
	"context"
	"errors"
	"time"

	"console_comercial/internal/infrastructure/logging"
	"console_comercial/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "contract_view:"

// RedisCache shares public contract views between instances. Redis errors
// degrade to cache misses.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ interfaces.IContractViewCache = (*RedisCache)(nil)

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	b, err := c.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logging.For("cache.redis").WithError(err).Warn("get failed")
		}
		return nil, false
	}
	return b, true
}

func (c *RedisCache) Set(ctx context.Context, key string, value []byte) {
	if key == "" || c.ttl <= 0 {
		return
	}
	if err := c.client.Set(ctx, redisKeyPrefix+key, value, c.ttl).Err(); err != nil {
		logging.For("cache.redis").WithError(err).Warn("set failed")
	}
}

func (c *RedisCache) Invalidate(ctx context.Context, keys ...string) {
	full := make([]string, 0, len(keys))
	for _, k := range keys {
		if k != "" {
			full = append(full, redisKeyPrefix+k)
		}
	}
	if len(full) == 0 {
		return
	}
	if err := c.client.Del(ctx, full...).Err(); err != nil {
		logging.For("cache.redis").WithError(err).Warn("invalidate failed")
	}
}
