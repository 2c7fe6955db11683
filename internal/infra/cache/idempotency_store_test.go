package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	"photoverify/internal/domain/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisIdempotencyStore_FirstWriterWins(t *testing.T) {
	mr := miniredis.RunT(t)
	store := NewRedisIdempotencyStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}), "test:")
	t.Cleanup(func() { _ = store.Close() })
	ctx := context.Background()

	_, found, err := store.Lookup(ctx, "key-1")
	require.NoError(t, err)
	assert.False(t, found)

	stored, err := store.Remember(ctx, "key-1", "submission-a", time.Hour)
	require.NoError(t, err)
	assert.True(t, stored)

	stored, err = store.Remember(ctx, "key-1", "submission-b", time.Hour)
	require.NoError(t, err)
	assert.False(t, stored)

	value, found, err := store.Lookup(ctx, "key-1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "submission-a", value)
	assert.True(t, mr.Exists("test:key-1"))

	mr.FastForward(2 * time.Hour)

	_, found, err = store.Lookup(ctx, "key-1")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestInMemoryIdempotencyStore_Expiry(t *testing.T) {
	var mu sync.Mutex
	now := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	clock := func() time.Time {
		mu.Lock()
		defer mu.Unlock()

		return now
	}

	store := newInMemoryIdempotencyStore(clock)
	t.Cleanup(func() { _ = store.Close() })
	ctx := context.Background()

	stored, err := store.Remember(ctx, "key-1", "submission-a", time.Minute)
	require.NoError(t, err)
	assert.True(t, stored)

	stored, err = store.Remember(ctx, "key-1", "submission-b", time.Minute)
	require.NoError(t, err)
	assert.False(t, stored)

	value, found, err := store.Lookup(ctx, "key-1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "submission-a", value)

	mu.Lock()
	now = now.Add(2 * time.Minute)
	mu.Unlock()

	_, found, err = store.Lookup(ctx, "key-1")
	require.NoError(t, err)
	assert.False(t, found)

	store.cleanup()
	assert.Empty(t, store.entries)
}

func TestIdempotencyStore_ForgetFreesKey(t *testing.T) {
	mr := miniredis.RunT(t)
	stores := map[string]service.IdempotencyStore{
		"redis":    NewRedisIdempotencyStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}), "test:"),
		"inMemory": NewInMemoryIdempotencyStore(),
	}

	for name, store := range stores {
		t.Run(name, func(t *testing.T) {
			t.Cleanup(func() { _ = store.Close() })
			ctx := context.Background()

			stored, err := store.Remember(ctx, "key-1", "submission-a", time.Hour)
			require.NoError(t, err)
			require.True(t, stored)

			require.NoError(t, store.Forget(ctx, "key-1"))
			require.NoError(t, store.Forget(ctx, "missing"))

			stored, err = store.Remember(ctx, "key-1", "submission-b", time.Hour)
			require.NoError(t, err)
			assert.True(t, stored)
		})
	}
}
