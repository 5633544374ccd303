package redis

import (
	"context"
	"fmt"
	"time"

	"beatstream-go/internal/config"
	"beatstream-go/pkg/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var Client *redis.Client

// Init creates the redis client and verifies connectivity.
func Init(cfg *config.RedisConfig) error {
	Client = redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := Client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to ping redis: %w", err)
	}

	logger.Info("Redis connected",
		zap.String("addr", cfg.Addr()),
		zap.Int("db", cfg.DB),
	)

	return nil
}

// Close shuts the client down.
func Close() error {
	if Client == nil {
		return nil
	}
	logger.Info("Redis connection closed")
	return Client.Close()
}

// CountCache caches collection counts under a key prefix. Counts are
// derived data; every mutation must invalidate its key.
type CountCache struct {
	prefix string
	ttl    time.Duration
}

// NewCountCache returns a cache using the given prefix and ttl.
func NewCountCache(prefix string, ttl time.Duration) *CountCache {
	return &CountCache{prefix: prefix, ttl: ttl}
}

// Get returns the cached count, or ok=false on miss or error.
func (c *CountCache) Get(ctx context.Context, key string) (int64, bool) {
	if Client == nil {
		return 0, false
	}
	n, err := Client.Get(ctx, c.prefix+key).Int64()
	if err != nil {
		return 0, false
	}
	return n, true
}

// Set stores a count. Failures are ignored; the cache is advisory.
func (c *CountCache) Set(ctx context.Context, key string, count int64) {
	if Client == nil {
		return
	}
	_ = Client.Set(ctx, c.prefix+key, count, c.ttl).Err()
}

// Invalidate drops a cached count after a mutation.
func (c *CountCache) Invalidate(ctx context.Context, key string) {
	if Client == nil {
		return
	}
	_ = Client.Del(ctx, c.prefix+key).Err()
}
