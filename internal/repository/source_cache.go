package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/fatal_force/internal/dataset"
)

// SourceCache хранит сырое тело CSV в Redis
type SourceCache struct {
	redisClient *redis.Client
}

func NewSourceCache(redisClient *redis.Client) dataset.BlobCache {
	return &SourceCache{
		redisClient: redisClient,
	}
}

// Get возвращает тело из кеша; при промахе nil, nil
func (c *SourceCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get dataset from cache: %w", err)
	}
	return val, nil
}

// Set сохраняет тело в кеш с ограниченным сроком жизни
func (c *SourceCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.redisClient.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set dataset in cache: %w", err)
	}
	return nil
}
