package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "blocklinks.env")
	require.NoError(t, os.WriteFile(file, []byte("BLOCKLINKS_TEST_KEY=from-file\nBLOCKLINKS_TEST_PORT=9000\n"), 0o644))

	t.Setenv("BLOCKLINKS_TEST_PORT", "8000")
	t.Cleanup(func() { os.Unsetenv("BLOCKLINKS_TEST_KEY") })

	require.NoError(t, Load(filepath.Join(dir, "missing.env"), file))

	assert.Equal(t, "from-file", os.Getenv("BLOCKLINKS_TEST_KEY"))
	assert.Equal(t, "8000", os.Getenv("BLOCKLINKS_TEST_PORT"))
}

func TestLoad_InvalidFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "env.d"), 0o755))

	assert.Error(t, Load(filepath.Join(dir, "env.d")))
}
