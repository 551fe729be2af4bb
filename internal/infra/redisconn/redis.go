package redisconn

import (
	"context"
	"fmt"
	"time"

	"barberflow/internal/pkg/config"

	"github.com/redis/go-redis/v9"
)

// Connect opens the catalog cache connection. An empty address returns a nil
// client, which the cache treats as disabled.
func Connect(ctx context.Context, cfg config.RedisConfig) (*redis.Client, func(), error) {
	if cfg.Addr == "" {
		return nil, func() {}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
	})

	// Test the connection
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	cleanup := func() {
		if err := client.Close(); err != nil {
			fmt.Printf("Error closing redis: %v\n", err)
		}
	}

	return client, cleanup, nil
}
