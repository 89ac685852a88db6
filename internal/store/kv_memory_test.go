package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryKV_SetOverwrites(t *testing.T) {
	kv := NewMemoryKeyValueStore()
	ctx := context.Background()

	_, found, err := kv.Get(ctx, "notes")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, kv.Set(ctx, "notes", []byte("a")))
	require.NoError(t, kv.Set(ctx, "notes", []byte("b")))

	v, found, err := kv.Get(ctx, "notes")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "b", string(v))
}

// TestMemoryKV_CopiesValues verifies that callers cannot mutate stored bytes.
func TestMemoryKV_CopiesValues(t *testing.T) {
	kv := NewMemoryKeyValueStore()
	ctx := context.Background()

	in := []byte("abc")
	require.NoError(t, kv.Set(ctx, "k", in))
	in[0] = 'x'

	out, _, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(out))

	out[1] = 'y'
	again, _, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(again))
}

func TestMemoryKV_EmptyKey(t *testing.T) {
	kv := NewMemoryKeyValueStore()
	assert.ErrorIs(t, kv.Set(context.Background(), "", []byte("x")), ErrEmptyKey)
}
