package redis

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/salonejobs/jobmatch/internal/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheRoundTrip(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if testing.Short() || addr == "" {
		t.Skip("TEST_REDIS_ADDR not set")
	}

	c := New(cache.Options{RedisURL: addr, DefaultTTL: time.Minute})
	defer c.Close()
	ctx := context.Background()
	require.NoError(t, c.Ping(ctx))

	key := "jobmatch:test:" + t.Name()
	require.NoError(t, c.Set(ctx, key, []byte(`[]`), 0))

	got, err := c.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), got)

	require.NoError(t, c.Delete(ctx, key))
	_, err = c.Get(ctx, key)
	assert.ErrorIs(t, err, cache.ErrNotFound)
}
