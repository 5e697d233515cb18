package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryGetSet(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	_, ok := store.Get(ctx, "missing")
	assert.False(t, ok)

	store.Set(ctx, "plan:abc", []byte(`{"origin":"Pamplona"}`), time.Minute)
	value, ok := store.Get(ctx, "plan:abc")
	require.True(t, ok)
	assert.Equal(t, []byte(`{"origin":"Pamplona"}`), value)
}

func TestMemoryExpiry(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	store.Set(ctx, "short", []byte("x"), 10*time.Millisecond)
	time.Sleep(25 * time.Millisecond)

	_, ok := store.Get(ctx, "short")
	assert.False(t, ok, "entries must expire passively")
}

func TestMemoryOverwrite(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	store.Set(ctx, "k", []byte("old"), time.Minute)
	store.Set(ctx, "k", []byte("new"), time.Minute)

	value, ok := store.Get(ctx, "k")
	require.True(t, ok)
	assert.Equal(t, []byte("new"), value)
}

func TestMemoryReturnsCopy(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	store.Set(ctx, "k", []byte("abc"), time.Minute)
	value, ok := store.Get(ctx, "k")
	require.True(t, ok)
	value[0] = 'z'

	again, ok := store.Get(ctx, "k")
	require.True(t, ok)
	assert.Equal(t, []byte("abc"), again, "callers must not be able to mutate stored values")
}
