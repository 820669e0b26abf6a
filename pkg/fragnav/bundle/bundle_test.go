package bundle

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T, ttl time.Duration) (*Redis, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	r, err := NewRedis(RedisOptions{URL: "redis://" + mr.Addr(), TTL: ttl})
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })
	return r, mr
}

func newTestSQLite(t *testing.T) *SQLite {
	t.Helper()
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "nav.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func bundles(t *testing.T) map[string]Bundle {
	r, _ := newTestRedis(t, 0)
	return map[string]Bundle{
		"memory": NewMemory(),
		"redis":  r,
		"sqlite": newTestSQLite(t),
	}
}

func TestBundleRoundTrip(t *testing.T) {
	ctx := context.Background()
	for name, b := range bundles(t) {
		t.Run(name, func(t *testing.T) {
			_, err := b.Load(ctx, "missing")
			assert.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, b.Save(ctx, "k", []byte(`{"tagCount":1}`)))
			got, err := b.Load(ctx, "k")
			require.NoError(t, err)
			assert.Equal(t, `{"tagCount":1}`, string(got))

			require.NoError(t, b.Save(ctx, "k", []byte("second")))
			got, err = b.Load(ctx, "k")
			require.NoError(t, err)
			assert.Equal(t, "second", string(got))

			require.NoError(t, b.Delete(ctx, "k"))
			_, err = b.Load(ctx, "k")
			assert.ErrorIs(t, err, ErrNotFound)

			assert.NoError(t, b.Delete(ctx, "k"))
		})
	}
}

func TestLoadOrNil(t *testing.T) {
	ctx := context.Background()
	b := NewMemory()

	blob, err := LoadOrNil(ctx, b, "nothing")
	require.NoError(t, err)
	assert.Nil(t, blob)

	require.NoError(t, b.Save(ctx, "k", []byte("x")))
	blob, err = LoadOrNil(ctx, b, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("x"), blob)
}

func TestMemoryCopiesBlobs(t *testing.T) {
	ctx := context.Background()
	b := NewMemory()

	in := []byte("abc")
	require.NoError(t, b.Save(ctx, "k", in))
	in[0] = 'z'

	out, err := b.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(out))

	out[1] = 'z'
	again, _ := b.Load(ctx, "k")
	assert.Equal(t, "abc", string(again))
}

func TestMemoryCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	b := NewMemory()
	assert.ErrorIs(t, b.Save(ctx, "k", nil), context.Canceled)
	_, err := b.Load(ctx, "k")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRedisTTL(t *testing.T) {
	ctx := context.Background()
	r, mr := newTestRedis(t, time.Minute)

	require.NoError(t, r.Save(ctx, "k", []byte("x")))
	assert.Equal(t, time.Minute, mr.TTL("k"))

	mr.FastForward(2 * time.Minute)
	_, err := r.Load(ctx, "k")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisBadURL(t *testing.T) {
	_, err := NewRedis(RedisOptions{URL: "not a url"})
	assert.Error(t, err)
}

func TestRedisUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := NewRedis(RedisOptions{URL: "redis://" + addr, ConnectTimeout: 200 * time.Millisecond})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect")
}

func TestSQLiteReopenKeepsState(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nav.db")

	s, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx, "k", []byte("kept")))
	require.NoError(t, s.Close())

	// Migrations already applied; reopening must not fail.
	s, err = OpenSQLite(path)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "kept", string(got))
}

func TestNewSessionKey(t *testing.T) {
	a, b := NewSessionKey(), NewSessionKey()
	assert.True(t, strings.HasPrefix(a, "fragnav:"))
	assert.NotEqual(t, a, b)
	assert.Len(t, strings.TrimPrefix(a, "fragnav:"), 36)
}
