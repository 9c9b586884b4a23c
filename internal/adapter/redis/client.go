// Package redis reads host settings cached in Redis.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/heartmarshall/boards-backend/internal/config"
)

// Client is the subset of go-redis used by Settings.
type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Ping(ctx context.Context) *redis.StatusCmd
}

// NewClient opens a go-redis client and checks the connection with PING.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}
	return client, nil
}

// Settings reads string values by key.
type Settings struct {
	client Client
}

// NewSettings wraps a redis client.
func NewSettings(client Client) *Settings {
	return &Settings{client: client}
}

// Get returns the value stored under key, or "" when the key is absent.
func (s *Settings) Get(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("redis get %q: %w", key, err)
	}
	return value, nil
}

// Ping reports whether the server answers.
func (s *Settings) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
