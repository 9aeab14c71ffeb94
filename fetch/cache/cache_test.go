package cache

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStore_RoundTrip(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "fetchcache"))
	require.NoError(t, err)
	defer store.Close()

	_, ok := store.Get(42)
	require.False(t, ok)

	payload := []byte("sac bytes")
	require.NoError(t, store.Put(42, payload))

	got, ok := store.Get(42)
	require.True(t, ok)
	require.Equal(t, payload, got)

	// The returned slice is a copy; mutating it must not corrupt the store.
	got[0] = 'x'
	again, ok := store.Get(42)
	require.True(t, ok)
	require.Equal(t, payload, again)
}

func TestStore_Overwrite(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "fetchcache"))
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Put(7, []byte("first")))
	require.NoError(t, store.Put(7, []byte("second")))

	got, ok := store.Get(7)
	require.True(t, ok)
	require.Equal(t, []byte("second"), got)
}

func TestStore_Delete(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "fetchcache"))
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Put(1, []byte("data")))
	require.NoError(t, store.Delete(1))

	_, ok := store.Get(1)
	require.False(t, ok)

	// Deleting a missing key is not an error.
	require.NoError(t, store.Delete(99))
}

func TestStore_Reopen(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "fetchcache")

	store, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, store.Put(5, []byte("persisted")))
	require.NoError(t, store.Close())

	store, err = Open(dir)
	require.NoError(t, err)
	defer store.Close()

	got, ok := store.Get(5)
	require.True(t, ok)
	require.Equal(t, []byte("persisted"), got)
}
