package cache

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/SongYerim/todak-BE-refactoring/config"

	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client *redis.Client
}

func New(cfg *config.Config) (*RedisCache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.RedisHost, cfg.RedisPort),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx := context.Background()
	_, err := rdb.Ping(ctx).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisCache{client: rdb}, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return c.client.Set(ctx, key, value, expiration).Err()
}

// SetWithRandomTTL jitters the TTL by ±10% so cached hall pages don't all
// expire in the same second.
func (c *RedisCache) SetWithRandomTTL(ctx context.Context, key string, value interface{}, baseTTL time.Duration) error {
	jitter := time.Duration(rand.Int63n(int64(baseTTL/5)) - int64(baseTTL/10))
	actualTTL := baseTTL + jitter

	if actualTTL < 0 {
		actualTTL = baseTTL
	}

	return c.client.Set(ctx, key, value, actualTTL).Err()
}

func (c *RedisCache) Get(ctx context.Context, key string) (string, error) {
	return c.client.Get(ctx, key).Result()
}

func (c *RedisCache) Del(ctx context.Context, keys ...string) error {
	return c.client.Del(ctx, keys...).Err()
}

func (c *RedisCache) ZIncrBy(ctx context.Context, key string, increment float64, member string) (float64, error) {
	return c.client.ZIncrBy(ctx, key, increment, member).Result()
}

func (c *RedisCache) ZRevRange(ctx context.Context, key string, start, stop int64) ([]string, error) {
	return c.client.ZRevRange(ctx, key, start, stop).Result()
}

func (c *RedisCache) Expire(ctx context.Context, key string, expiration time.Duration) (bool, error) {
	return c.client.Expire(ctx, key, expiration).Result()
}

// ClearCacheByPattern deletes keys matching a pattern with SCAN instead of
// KEYS, which would block redis.
func (c *RedisCache) ClearCacheByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	var keys []string
	var err error

	for {
		keys, cursor, err = c.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return err
		}

		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}

		if cursor == 0 {
			break
		}
	}
	return nil
}

// AllowRequest is a fixed-window rate limiter: INCR plus EXPIRE on the
// first hit, done atomically in Lua.
func (c *RedisCache) AllowRequest(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	const script = `
        local current = redis.call("INCR", KEYS[1])
        if tonumber(current) == 1 then
            redis.call("EXPIRE", KEYS[1], ARGV[1])
        end
        return current
    `

	count, err := c.client.Eval(ctx, script, []string{key}, int(window.Seconds())).Int()
	if err != nil {
		return true, err
	}

	return count <= limit, nil
}
