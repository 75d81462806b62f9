package cache

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("key not found in cache")

type Cache interface {
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Get returns ErrNotFound on a miss.
	Get(ctx context.Context, key string) ([]byte, error)

	Delete(ctx context.Context, key string) error

	Close() error
}

type Options struct {
	DefaultTTL time.Duration

	RedisURL string

	RedisPassword string

	RedisDB int
}

func DefaultOptions() Options {
	return Options{
		DefaultTTL: 5 * time.Minute,
	}
}

// Noop is used when no cache backend is configured: every Get misses.
type Noop struct{}

func (Noop) Set(context.Context, string, []byte, time.Duration) error { return nil }

func (Noop) Get(context.Context, string) ([]byte, error) { return nil, ErrNotFound }

func (Noop) Delete(context.Context, string) error { return nil }

func (Noop) Close() error { return nil }
