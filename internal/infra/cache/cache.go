package cache

import (
	"context"
	"time"

	"github.com/dgraph-io/ristretto"
	"golang.org/x/sync/singleflight"
)

//go:generate mockgen -source=cache.go -destination=../../../test/unit/doubles/infra/cache/cache_mock.go -package=cache -mock_names=Cache=MockCache

// Cache stores encoded values under string keys with a TTL. Values are
// usually produced by Encode so any backend can hold them.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) bool
	Delete(ctx context.Context, keys ...string)
	GetOrSet(ctx context.Context, key string, ttl time.Duration, loader func() ([]byte, error)) ([]byte, error)
}

var _ Cache = (*RistrettoCache)(nil)

// RistrettoCache is the in-process Cache backend.
type RistrettoCache struct {
	store       *ristretto.Cache
	singleGroup singleflight.Group
	config      *CacheConfig
}

type CacheConfig struct {
	// MaxCost is the maximum cost of the cache (in bytes)
	MaxCost int64
	// NumCounters is the number of counters for the cache
	NumCounters int64
	// BufferItems is the number of items to buffer
	BufferItems int64
}

func DefaultConfig() *CacheConfig {
	return &CacheConfig{
		MaxCost:     64 << 20,
		NumCounters: 1e6,
		BufferItems: 64,
	}
}

func New(config *CacheConfig) (*RistrettoCache, error) {
	if config == nil {
		config = DefaultConfig()
	}

	store, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: config.NumCounters,
		MaxCost:     config.MaxCost,
		BufferItems: config.BufferItems,
	})
	if err != nil {
		return nil, err
	}

	return &RistrettoCache{
		store:  store,
		config: config,
	}, nil
}

func (c *RistrettoCache) Get(ctx context.Context, key string) ([]byte, bool) {
	if ctx.Err() != nil {
		return nil, false
	}

	value, found := c.store.Get(key)
	if !found {
		return nil, false
	}
	data, ok := value.([]byte)
	return data, ok
}

// Set stores value and waits for ristretto to apply the write so a following
// Get observes it.
func (c *RistrettoCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) bool {
	if ctx.Err() != nil {
		return false
	}

	accepted := c.store.SetWithTTL(key, value, int64(len(value)), ttl)
	c.store.Wait()
	return accepted
}

func (c *RistrettoCache) Delete(ctx context.Context, keys ...string) {
	for _, key := range keys {
		c.store.Del(key)
	}
	c.store.Wait()
}

// GetOrSet uses singleflight so concurrent misses on a key load it once.
func (c *RistrettoCache) GetOrSet(ctx context.Context, key string, ttl time.Duration, loader func() ([]byte, error)) ([]byte, error) {
	return getOrSet(ctx, c, &c.singleGroup, key, ttl, loader)
}

func (c *RistrettoCache) Close() {
	c.store.Close()
}

func getOrSet(ctx context.Context, c Cache, group *singleflight.Group, key string, ttl time.Duration, loader func() ([]byte, error)) ([]byte, error) {
	if value, found := c.Get(ctx, key); found {
		return value, nil
	}

	value, err, _ := group.Do(key, func() (any, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if value, found := c.Get(ctx, key); found {
			return value, nil
		}

		value, err := loader()
		if err != nil {
			return nil, err
		}

		c.Set(ctx, key, value, ttl)
		return value, nil
	})
	if err != nil {
		return nil, err
	}

	return value.([]byte), nil
}
