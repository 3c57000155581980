package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	config "github.com/thirdweb-dev/blocklinks/configs"
)

func TestFileConnector(t *testing.T) {
	store, err := NewFileConnector(&config.FileConfig{Dir: filepath.Join(t.TempDir(), "data")})
	require.NoError(t, err)
	runBlockStoreContract(t, store)
}

func TestFileConnector_CreatesDirectoryLazily(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "data")

	store, err := NewFileConnector(&config.FileConfig{Dir: dir})
	require.NoError(t, err)

	_, err = os.Stat(dir)
	assert.True(t, os.IsNotExist(err), "directory must not exist before the first write")

	has, err := store.Has(ctx, 5)
	require.NoError(t, err)
	assert.False(t, has)

	require.NoError(t, store.Write(ctx, 5, testPayload))

	data, err := os.ReadFile(filepath.Join(dir, "5.json"))
	require.NoError(t, err)
	assert.Equal(t, []byte(testPayload), data)

	// no temp files left behind
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestFileConnector_ReadsExistingCache(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "22845771.json"), testPayload, 0o644))

	store, err := NewFileConnector(&config.FileConfig{Dir: dir})
	require.NoError(t, err)

	data, err := store.Read(context.Background(), 22845771)
	require.NoError(t, err)
	assert.Equal(t, testPayload, data)
}
