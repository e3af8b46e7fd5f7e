package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

var _ Cache = (*RedisCache)(nil)

// RedisCache is the shared Cache backend used when several API replicas run.
type RedisCache struct {
	client      CacheClient
	config      *RedisConfig
	singleGroup singleflight.Group
}

type RedisConfig struct {
	Addr         string
	Password     string
	DB           int
	PoolSize     int
	MinIdleConns int
	MaxRetries   int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	PoolTimeout  time.Duration
}

func DefaultRedisConfig() *RedisConfig {
	return &RedisConfig{
		Addr:         "localhost:6379",
		DB:           0,
		PoolSize:     10,
		MinIdleConns: 2,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolTimeout:  4 * time.Second,
	}
}

func NewRedisCache(config *RedisConfig) (*RedisCache, error) {
	if config == nil {
		config = DefaultRedisConfig()
	}

	client := redis.NewClient(&redis.Options{
		Addr:         config.Addr,
		Password:     config.Password,
		DB:           config.DB,
		PoolSize:     config.PoolSize,
		MinIdleConns: config.MinIdleConns,
		MaxRetries:   config.MaxRetries,
		DialTimeout:  config.DialTimeout,
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
		PoolTimeout:  config.PoolTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), config.DialTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	slog.Info("redis cache initialized",
		slog.String("addr", config.Addr),
		slog.Int("db", config.DB),
		slog.Int("pool_size", config.PoolSize))

	return NewRedisCacheWithClient(client, config), nil
}

func NewRedisCacheWithClient(client CacheClient, config *RedisConfig) *RedisCache {
	return &RedisCache{
		client: client,
		config: config,
	}
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	result, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Error("failed to get value from redis cache",
				slog.String("key", key),
				slog.String("error", err.Error()))
		}
		return nil, false
	}

	return result, true
}

func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) bool {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		slog.Error("failed to set value in redis cache",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return false
	}

	return true
}

func (c *RedisCache) Delete(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		slog.Error("failed to delete value from redis cache",
			slog.Any("keys", keys),
			slog.String("error", err.Error()))
	}
}

func (c *RedisCache) GetOrSet(ctx context.Context, key string, ttl time.Duration, loader func() ([]byte, error)) ([]byte, error) {
	return getOrSet(ctx, c, &c.singleGroup, key, ttl, loader)
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
