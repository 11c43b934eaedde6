package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cookbook/internal/adapters/config"
	"go.trai.ch/cookbook/internal/core/domain"
)

func TestDefaultSettings(t *testing.T) {
	s := config.DefaultSettings()

	assert.Equal(t, ":8080", s.Server.Address)
	assert.Equal(t, config.DriverMemory, s.Store.Driver)
	assert.Equal(t, 16, s.Store.Shards)
	assert.Equal(t, 64, s.Resolver.MaxDepth)
	assert.True(t, s.Cache.Enabled)
	assert.Equal(t, 10*time.Minute, s.Cache.TTL)
	assert.Equal(t, "cookbook", s.Telemetry.ServiceName)
	require.NoError(t, s.Validate())
}

func TestLoadSettings_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	content := `server:
  address: ":9090"
store:
  driver: redis
  redis:
    addr: "redis:6379"
    prefix: "test:"
resolver:
  max_depth: 8
cache:
  enabled: false
seed:
  path: kitchen.yaml
  watch: true
log:
  json: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	s, err := config.LoadSettings(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", s.Server.Address)
	assert.Equal(t, config.DriverRedis, s.Store.Driver)
	assert.Equal(t, "redis:6379", s.Store.Redis.Addr)
	assert.Equal(t, "test:", s.Store.Redis.Prefix)
	assert.Equal(t, 8, s.Resolver.MaxDepth)
	assert.False(t, s.Cache.Enabled)
	assert.Equal(t, "kitchen.yaml", s.Seed.Path)
	assert.True(t, s.Seed.Watch)
	assert.True(t, s.Log.JSON)
	// Untouched keys keep their defaults.
	assert.Equal(t, 16, s.Store.Shards)
}

func TestLoadSettings_Discovery(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	s, err := config.LoadSettings("")
	require.NoError(t, err)
	assert.Equal(t, ":8080", s.Server.Address)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "cookbook.yaml"), []byte("server:\n  address: \":7070\"\n"), 0o600))
	s, err = config.LoadSettings("")
	require.NoError(t, err)
	assert.Equal(t, ":7070", s.Server.Address)
}

func TestLoadSettings_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("COOKBOOK_SERVER_ADDRESS", ":6060")
	t.Setenv("COOKBOOK_RESOLVER_MAX_DEPTH", "12")

	s, err := config.LoadSettings("")
	require.NoError(t, err)
	assert.Equal(t, ":6060", s.Server.Address)
	assert.Equal(t, 12, s.Resolver.MaxDepth)
}

func TestLoadSettingsFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("store:\n  shards: 4\n"), 0o600))
	t.Setenv(config.EnvConfigPath, path)

	s, err := config.LoadSettingsFromEnv()
	require.NoError(t, err)
	assert.Equal(t, 4, s.Store.Shards)
}

func TestLoadSettings_Errors(t *testing.T) {
	t.Run("missing explicit file", func(t *testing.T) {
		_, err := config.LoadSettings(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), domain.ErrSettingsReadFailed.Error())
	})

	t.Run("invalid values", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("store:\n  driver: postgres\n"), 0o600))

		_, err := config.LoadSettings(path)
		assert.ErrorIs(t, err, domain.ErrInvalidSettings)
	})
}

func TestSettings_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Settings)
	}{
		{name: "unknown driver", mutate: func(s *config.Settings) { s.Store.Driver = "sqlite" }},
		{name: "no shards", mutate: func(s *config.Settings) { s.Store.Shards = 0 }},
		{name: "no depth", mutate: func(s *config.Settings) { s.Resolver.MaxDepth = 0 }},
		{name: "negative ttl", mutate: func(s *config.Settings) { s.Cache.TTL = -time.Second }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := config.DefaultSettings()
			tt.mutate(s)
			assert.ErrorIs(t, s.Validate(), domain.ErrInvalidSettings)
		})
	}
}
