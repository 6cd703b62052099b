package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStorage(t *testing.T) (*RedisStorage, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	s := NewRedisStorage(mr.Addr(), "", 0, "limiter:")
	t.Cleanup(func() { _ = s.Close() })
	return s, mr
}

func TestRedisStorage_GetMissing(t *testing.T) {
	s, _ := newStorage(t)

	val, err := s.Get("nope")
	require.NoError(t, err)
	assert.Nil(t, val)
}

func TestRedisStorage_SetGetDelete(t *testing.T) {
	s, mr := newStorage(t)
	require.NoError(t, s.Ping(context.Background()))

	require.NoError(t, s.Set("10.0.0.1", []byte("3"), time.Minute))
	assert.True(t, mr.Exists("limiter:10.0.0.1"))

	val, err := s.Get("10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, []byte("3"), val)

	require.NoError(t, s.Delete("10.0.0.1"))
	val, err = s.Get("10.0.0.1")
	require.NoError(t, err)
	assert.Nil(t, val)
}

func TestRedisStorage_Expiry(t *testing.T) {
	s, mr := newStorage(t)

	require.NoError(t, s.Set("k", []byte("v"), time.Second))
	mr.FastForward(2 * time.Second)

	val, err := s.Get("k")
	require.NoError(t, err)
	assert.Nil(t, val)
}

func TestRedisStorage_ResetKeepsOtherPrefixes(t *testing.T) {
	s, mr := newStorage(t)
	require.NoError(t, mr.Set("session:abc", "keep"))

	require.NoError(t, s.Set("a", []byte("1"), 0))
	require.NoError(t, s.Set("b", []byte("2"), 0))
	require.NoError(t, s.Reset())

	assert.False(t, mr.Exists("limiter:a"))
	assert.False(t, mr.Exists("limiter:b"))
	assert.True(t, mr.Exists("session:abc"))
}
