package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetConfig(t *testing.T) {
	t.Helper()
	viper.Reset()
	Cfg = Config{}
	t.Cleanup(func() {
		viper.Reset()
		Cfg = Config{}
	})
}

func TestRPCConfig_Endpoint(t *testing.T) {
	assert.Equal(t, "https://eth-mainnet.g.alchemy.com/v2/key", RPCConfig{APIKey: "key"}.Endpoint())
	assert.Equal(t, "http://localhost:8545/key", RPCConfig{URL: "http://localhost:8545/", APIKey: "key"}.Endpoint())
}

func TestAPIConfig_Addr(t *testing.T) {
	assert.Equal(t, "127.0.0.1:8000", APIConfig{}.Addr())
	assert.Equal(t, "0.0.0.0:9000", APIConfig{Host: "0.0.0.0", Port: 9000}.Addr())
}

func TestValidate(t *testing.T) {
	cfg := Config{}
	assert.Error(t, cfg.Validate())

	cfg.RPC.APIKey = "key"
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_LegacyEnv(t *testing.T) {
	resetConfig(t)
	t.Setenv("ALCHEMY_API_KEY", "legacy-key")
	t.Setenv("PORT", "9001")

	require.NoError(t, LoadConfig(""))

	assert.Equal(t, "legacy-key", Cfg.RPC.APIKey)
	assert.Equal(t, 9001, Cfg.API.Port)
}

func TestLoadConfig_File(t *testing.T) {
	resetConfig(t)
	path := filepath.Join(t.TempDir(), "config.yml")
	content := `
rpc:
  apiKey: file-key
  timeout: 5000
api:
  host: 0.0.0.0
storage:
  bolt:
    path: /tmp/blocks.db
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	require.NoError(t, LoadConfig(path))

	assert.Equal(t, "file-key", Cfg.RPC.APIKey)
	assert.Equal(t, 5000, Cfg.RPC.Timeout)
	assert.Equal(t, "0.0.0.0", Cfg.API.Host)
	require.NotNil(t, Cfg.Storage.Bolt)
	assert.Equal(t, "/tmp/blocks.db", Cfg.Storage.Bolt.Path)
	assert.Nil(t, Cfg.Storage.Redis)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	resetConfig(t)
	assert.Error(t, LoadConfig(filepath.Join(t.TempDir(), "missing.yml")))
}
