package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/marble-mania/testing/suite"
)

func TestNewRedisStorage(t *testing.T) {
	t.Run("Selects the configured database", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: the result cache pointed at database 1 of the test server
		cache, err := NewRedisStorage(ctx, ResultCacheOptions{
			Addr:    st.Storage.Options().Addr,
			DB:      1,
			Timeout: time.Second,
		})
		require.NoError(t, err)
		t.Cleanup(func() {
			_ = cache.Connection.Del(context.Background(), "result:9:25").Err()
			_ = cache.Close()
		})

		// When: a result is written through it
		require.NoError(t, cache.Connection.Set(ctx, "result:9:25", "32", 0).Err())

		// Then: database 0 does not see it
		assert.Equal(t, 1, cache.Connection.Options().DB)

		exists, err := st.Storage.Exists(ctx, "result:9:25").Result()
		require.NoError(t, err)
		assert.Zero(t, exists)
	})

	t.Run("Gives up on an unreachable server within the timeout", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		// When: connecting to a port nothing listens on
		start := time.Now()
		_, err := NewRedisStorage(ctx, ResultCacheOptions{Addr: "127.0.0.1:1", Timeout: 200 * time.Millisecond})

		// Then: an error is returned instead of hanging
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to connect to Redis at 127.0.0.1:1 db 0")
		assert.Less(t, time.Since(start), 5*time.Second)
	})
}
