package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrMiss = errors.New("cache miss")

// Cache is a thin JSON layer over redis. A nil *Cache is valid and behaves
// as an always-miss cache, so callers need no reachability checks.
type Cache struct {
	client *redis.Client
}

func Connect(ctx context.Context, addr string) (*Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis at %s: %w", addr, err)
	}
	return &Cache{client: client}, nil
}

func (cache *Cache) Get(ctx context.Context, key string, dest any) error {
	if cache == nil {
		return ErrMiss
	}

	raw, err := cache.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return ErrMiss
	}
	if err != nil {
		return fmt.Errorf("cache get failed: %w", err)
	}

	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return fmt.Errorf("cache unmarshal failed: %w", err)
	}
	return nil
}

func (cache *Cache) Set(ctx context.Context, key string, value any, expiration time.Duration) error {
	if cache == nil {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache marshal failed: %w", err)
	}
	return cache.client.Set(ctx, key, data, expiration).Err()
}

func (cache *Cache) Close() error {
	if cache == nil {
		return nil
	}
	return cache.client.Close()
}
