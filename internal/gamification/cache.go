package gamification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache stores scored insights per chama. Get returns nil and no error on a
// miss. The empty chama ID stands for the all-chamas view.
type Cache interface {
	Get(ctx context.Context, chamaID string) (*Response, error)
	Set(ctx context.Context, chamaID string, resp *Response) error
	Delete(ctx context.Context, chamaIDs ...string) error
}

const keyPrefix = "chama:insights:"

// RedisCache is a Cache backed by Redis.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache creates a cache whose entries expire after ttl.
// A zero ttl keeps entries until they are invalidated.
func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func cacheKey(chamaID string) string {
	if chamaID == "" {
		return keyPrefix + "all"
	}
	return keyPrefix + chamaID
}

func (c *RedisCache) Get(ctx context.Context, chamaID string) (*Response, error) {
	data, err := c.client.Get(ctx, cacheKey(chamaID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var resp Response
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode cached insights: %w", err)
	}
	return &resp, nil
}

func (c *RedisCache) Set(ctx context.Context, chamaID string, resp *Response) error {
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to encode insights: %w", err)
	}
	if err := c.client.Set(ctx, cacheKey(chamaID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (c *RedisCache) Delete(ctx context.Context, chamaIDs ...string) error {
	keys := make([]string, len(chamaIDs))
	for i, id := range chamaIDs {
		keys[i] = cacheKey(id)
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("redis del failed: %w", err)
	}
	return nil
}
