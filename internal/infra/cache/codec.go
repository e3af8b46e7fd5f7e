package cache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

func Encode(value any) ([]byte, error) {
	data, err := msgpack.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("encoding cache value: %w", err)
	}
	return data, nil
}

func Decode[T any](data []byte) (T, error) {
	var value T
	if err := msgpack.Unmarshal(data, &value); err != nil {
		return value, fmt.Errorf("decoding cache value: %w", err)
	}
	return value, nil
}

// Load returns the cached value for key, or runs loader and caches its result.
// Undecodable entries are treated as misses.
func Load[T any](ctx context.Context, c Cache, key string, ttl time.Duration, loader func() (T, error)) (T, error) {
	if data, found := c.Get(ctx, key); found {
		value, err := Decode[T](data)
		if err == nil {
			return value, nil
		}
		slog.Warn("discarding cache entry", slog.String("key", key), slog.String("error", err.Error()))
		c.Delete(ctx, key)
	}

	data, err := c.GetOrSet(ctx, key, ttl, func() ([]byte, error) {
		value, err := loader()
		if err != nil {
			return nil, err
		}
		return Encode(value)
	})
	if err != nil {
		var zero T
		return zero, err
	}

	return Decode[T](data)
}
