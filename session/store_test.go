package session_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/jrsteele09/taskflow-client/session"
)

func exerciseKV(t *testing.T, kv session.KV) {
	t.Helper()
	ctx := context.Background()

	_, ok, err := kv.Get(ctx, "token")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, kv.Set(ctx, "token", "abc"))
	require.NoError(t, kv.Set(ctx, "user", `{"id":1}`))

	v, ok, err := kv.Get(ctx, "token")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "abc", v)

	require.NoError(t, kv.Delete(ctx, "token", "user", "missing"))
	_, ok, err = kv.Get(ctx, "user")
	require.NoError(t, err)
	require.False(t, ok)

	require.Error(t, kv.Set(ctx, "", "x"))
}

func TestMemoryStore(t *testing.T) {
	exerciseKV(t, session.NewMemoryStore())
}

func TestFileStore(t *testing.T) {
	t.Run("plain", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "session.json")
		fs, err := session.NewFileStore(path)
		require.NoError(t, err)
		exerciseKV(t, fs)

		require.NoError(t, fs.Set(context.Background(), "theme", "dark"))
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Contains(t, string(data), `"theme":"dark"`)
	})

	t.Run("encrypted", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "session.json")
		fs, err := session.NewFileStore(path, session.WithPassphrase("correct horse"))
		require.NoError(t, err)
		exerciseKV(t, fs)

		ctx := context.Background()
		require.NoError(t, fs.Set(ctx, "token", "secret-token"))
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		require.NotContains(t, string(data), "secret-token")

		reopened, err := session.NewFileStore(path, session.WithPassphrase("correct horse"))
		require.NoError(t, err)
		v, ok, err := reopened.Get(ctx, "token")
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, "secret-token", v)

		wrong, err := session.NewFileStore(path, session.WithPassphrase("battery staple"))
		require.NoError(t, err)
		_, _, err = wrong.Get(ctx, "token")
		require.Error(t, err)
		require.Contains(t, err.Error(), "could not be decrypted")

		noKey, err := session.NewFileStore(path)
		require.NoError(t, err)
		_, _, err = noKey.Get(ctx, "token")
		require.Error(t, err)
		require.Contains(t, err.Error(), "no passphrase")
	})

	t.Run("path required", func(t *testing.T) {
		_, err := session.NewFileStore("")
		require.Error(t, err)
	})
}

func TestRedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := session.NewRedisStoreWithClient(client, "test:")
	t.Cleanup(func() { _ = store.Close() })

	exerciseKV(t, store)

	require.NoError(t, store.Set(context.Background(), "theme", "dark"))
	v, err := mr.Get("test:theme")
	require.NoError(t, err)
	require.Equal(t, "dark", v)
}

func TestNewRedisStore_InvalidURL(t *testing.T) {
	_, err := session.NewRedisStore("not a url", "")
	require.Error(t, err)
}
