package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

//go:generate mockgen -source=redis_interface.go -destination=../../../test/unit/doubles/infra/cache/cache_client_mock.go -package=cache

// CacheClient is the subset of the redis client used by RedisCache.
type CacheClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Ping(ctx context.Context) *redis.StatusCmd
}

var _ CacheClient = (*redis.Client)(nil)
