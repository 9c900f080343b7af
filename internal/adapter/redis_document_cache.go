package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"drh-client/internal/domain"

	"github.com/redis/go-redis/v9"
)

// RedisDocumentCache stores DRH documents as plain Redis strings.
type RedisDocumentCache struct {
	client *redis.Client
}

// NewRedisDocumentCache expects a connected *redis.Client.
func NewRedisDocumentCache(client *redis.Client) domain.DocumentCache {
	return &RedisDocumentCache{client: client}
}

// Get translates redis.Nil to domain.ErrCacheMiss.
func (r *RedisDocumentCache) Get(ctx context.Context, key string) (json.RawMessage, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrCacheMiss
		}
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return json.RawMessage(val), nil
}

func (r *RedisDocumentCache) Set(ctx context.Context, key string, doc json.RawMessage, ttl time.Duration) error {
	if err := r.client.Set(ctx, key, []byte(doc), ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (r *RedisDocumentCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

func (r *RedisDocumentCache) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
