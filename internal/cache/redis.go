package cache

import (
	"context"
	"fmt"
	"time"

	"drh-client/internal/config"

	"github.com/redis/go-redis/v9"
)

// pingTimeout bounds the startup check so a dead cache never delays a run.
const pingTimeout = 3 * time.Second

// Connect opens the document cache. An empty address disables caching and
// yields a nil client with no error.
func Connect(ctx context.Context, redisCfg config.RedisConfig) (*redis.Client, error) {
	if redisCfg.Address == "" {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:        redisCfg.Address,
		Password:    redisCfg.Password,
		DB:          redisCfg.DB,
		DialTimeout: pingTimeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis at %s: %w", redisCfg.Address, err)
	}
	return client, nil
}
