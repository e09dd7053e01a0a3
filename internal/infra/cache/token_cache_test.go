package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenCache_StoreAndLookup(t *testing.T) {
	redis := miniredis.RunT(t)
	cache := NewTokenCache(redis.Addr(), "", time.Hour)
	t.Cleanup(func() { _ = cache.Close() })

	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, cache.Store(ctx, "some-token", userID))

	got, ok, err := cache.Lookup(ctx, "some-token")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, userID, got)
}

func TestTokenCache_Miss(t *testing.T) {
	redis := miniredis.RunT(t)
	cache := NewTokenCache(redis.Addr(), "", time.Hour)
	t.Cleanup(func() { _ = cache.Close() })

	_, ok, err := cache.Lookup(context.Background(), "unknown-token")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTokenCache_ExpiredEntryIsAMiss(t *testing.T) {
	redis := miniredis.RunT(t)
	cache := NewTokenCache(redis.Addr(), "", time.Minute)
	t.Cleanup(func() { _ = cache.Close() })

	ctx := context.Background()
	require.NoError(t, cache.Store(ctx, "some-token", uuid.New()))

	redis.FastForward(2 * time.Minute)

	_, ok, err := cache.Lookup(ctx, "some-token")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTokenCache_CorruptEntryIsAMiss(t *testing.T) {
	redis := miniredis.RunT(t)
	cache := NewTokenCache(redis.Addr(), "", time.Hour)
	t.Cleanup(func() { _ = cache.Close() })

	require.NoError(t, redis.Set("token:some-token", "not-a-uuid"))

	_, ok, err := cache.Lookup(context.Background(), "some-token")
	require.NoError(t, err)
	assert.False(t, ok)
}
