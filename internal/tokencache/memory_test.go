package tokencache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryGetMissesWhenEmpty(t *testing.T) {
	cache := NewMemory()

	_, ok, err := cache.Get(context.Background(), Key("some-token"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemorySetAndGet(t *testing.T) {
	cache := NewMemory()
	ctx := context.Background()
	key := Key("token-a")

	require.NoError(t, cache.Set(ctx, key, true, time.Minute))

	valid, ok, err := cache.Get(ctx, key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, valid)
}

func TestMemoryNegativeVerdict(t *testing.T) {
	cache := NewMemory()
	ctx := context.Background()
	key := Key("revoked-token")

	require.NoError(t, cache.Set(ctx, key, false, time.Minute))

	valid, ok, err := cache.Get(ctx, key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.False(t, valid)
}

func TestMemoryEntryExpires(t *testing.T) {
	cache := NewMemory()
	ctx := context.Background()
	key := Key("short-lived")

	require.NoError(t, cache.Set(ctx, key, true, 10*time.Millisecond))
	time.Sleep(25 * time.Millisecond)

	_, ok, err := cache.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok, "expired entry must read as a miss")
}

func TestMemoryOverwrite(t *testing.T) {
	cache := NewMemory()
	ctx := context.Background()
	key := Key("flip-flop")

	require.NoError(t, cache.Set(ctx, key, false, time.Minute))
	require.NoError(t, cache.Set(ctx, key, true, time.Minute))

	valid, ok, err := cache.Get(ctx, key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, valid)
}

func TestKeyIsStableAndOpaque(t *testing.T) {
	a := Key("bearer-token-value")
	b := Key("bearer-token-value")
	c := Key("other-token")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.NotContains(t, a, "bearer-token-value", "raw token must not appear in the key")
}
