package rendercache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// keyPrefix namespaces cache entries so the instance can share a Redis
// database with other applications.
const keyPrefix = "bayform:render:"

// RedisCache stores artifacts in Redis with a TTL. Entries expire on
// their own, so there is no eviction logic here.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(ctx context.Context, addr string) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis at %s: %w", addr, err)
	}
	return &RedisCache{client: client, ttl: DefaultTTL}, nil
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	artifact, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}
	return artifact, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, artifact []byte) error {
	if err := c.client.Set(ctx, keyPrefix+key, artifact, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (c *RedisCache) Close() error { return c.client.Close() }

var _ Cache = (*RedisCache)(nil)
