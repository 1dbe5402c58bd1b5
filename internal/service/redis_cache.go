package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/scan-track/fridge-service/internal/database"
)

// redisCache implements CacheInterface on top of the shared Redis
// connection
type redisCache struct {
	rdb *database.RedisDB
}

// NewRedisCache creates a new Redis cache implementation
func NewRedisCache(rdb *database.RedisDB) CacheInterface {
	return &redisCache{
		rdb: rdb,
	}
}

// Get retrieves a value from cache. Returns ErrCacheMiss when the key
// does not exist.
func (c *redisCache) Get(ctx context.Context, key string, value interface{}) error {
	result, err := c.rdb.Get(ctx, key)
	if err != nil {
		if err == redis.Nil {
			return ErrCacheMiss
		}
		return err
	}

	return json.Unmarshal([]byte(result), value)
}

// Set stores a value in cache
func (c *redisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return c.rdb.Set(ctx, key, data, ttl)
}

// Delete removes a value from cache
func (c *redisCache) Delete(ctx context.Context, key string) error {
	_, err := c.rdb.Del(ctx, key)
	return err
}

// DeletePattern removes all keys matching a pattern
func (c *redisCache) DeletePattern(ctx context.Context, pattern string) error {
	keys, err := c.rdb.Keys(ctx, pattern)
	if err != nil {
		return err
	}

	if len(keys) > 0 {
		_, err = c.rdb.Del(ctx, keys...)
		return err
	}

	return nil
}
