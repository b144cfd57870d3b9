package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoltKVStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	store, err := NewBoltKVStore(path, "profiles")
	require.NoError(t, err)

	data, err := store.ReadKey([]byte("missing"))
	require.NoError(t, err)
	assert.Nil(t, data)

	require.NoError(t, store.UpdateKey([]byte("profile/octocat"), []byte("first")))
	require.NoError(t, store.UpdateKey([]byte("profile/octocat"), []byte("second")))

	data, err = store.ReadKey([]byte("profile/octocat"))
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), data)

	require.NoError(t, store.Close())

	// Data survives reopening.
	store, err = NewBoltKVStore(path, "profiles")
	require.NoError(t, err)
	defer store.Close()

	data, err = store.ReadKey([]byte("profile/octocat"))
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), data)
}

func TestNewBoltKVStoreErrors(t *testing.T) {
	_, err := NewBoltKVStore(filepath.Join(t.TempDir(), "test.db"), "")
	assert.Error(t, err)

	_, err = NewBoltKVStore(filepath.Join(t.TempDir(), "missing", "dir", "test.db"), "profiles")
	assert.Error(t, err)
}
