package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()

	cfg, err := Load(viper.New(), home, "")
	require.NoError(t, err)

	assert.Equal(t, "https://dkmh.tdmu.edu.vn/public/api", cfg.API.BaseEndpoint)
	assert.Equal(t, "user@gw", cfg.API.IdentityUsername)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, time.Hour, cfg.Cache.Duration)
	assert.Equal(t, BackendChain, cfg.Store.Backend)
	assert.Equal(t, filepath.Join(home, ".local/share/tschedule/store"), cfg.Store.Path)
	assert.Equal(t, "https://accounts.google.com", cfg.OAuth.Issuer)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadReadsConfigFile(t *testing.T) {
	home := t.TempDir()
	dir := filepath.Join(home, ".config", "tschedule")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`
[api]
identity_username = "student@gw"

[cache]
enabled = false
duration = "15m"

[store]
backend = "toml"

[oauth]
client_id = "123.apps.googleusercontent.com"
`), 0o600))

	cfg, err := Load(viper.New(), home, "")
	require.NoError(t, err)

	assert.Equal(t, "student@gw", cfg.API.IdentityUsername)
	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, 15*time.Minute, cfg.Cache.Duration)
	assert.Equal(t, BackendTOML, cfg.Store.Backend)
	assert.Equal(t, filepath.Join(home, ".local/share/tschedule/store.toml"), cfg.Store.Path)
	assert.Equal(t, "123.apps.googleusercontent.com", cfg.OAuth.ClientID)
}

func TestLoadEnvironmentOverridesFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("TS_API_BASE_ENDPOINT", "http://127.0.0.1:9000/public/api")
	t.Setenv("TS_STORE_BACKEND", "memory")
	t.Setenv("TS_LOG_LEVEL", "debug")

	cfg, err := Load(viper.New(), home, "")
	require.NoError(t, err)

	assert.Equal(t, "http://127.0.0.1:9000/public/api", cfg.API.BaseEndpoint)
	assert.Equal(t, BackendMemory, cfg.Store.Backend)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadExplicitOverrideDrivesStorePath(t *testing.T) {
	home := t.TempDir()
	v := viper.New()
	v.Set("store.backend", BackendTOML)

	cfg, err := Load(v, home, "")
	require.NoError(t, err)

	assert.Equal(t, BackendTOML, cfg.Store.Backend)
	assert.Equal(t, filepath.Join(home, ".local/share/tschedule/store.toml"), cfg.Store.Path)
}

func TestLoadExplicitConfigFileMustExist(t *testing.T) {
	_, err := Load(viper.New(), t.TempDir(), filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}

func TestLoadExpandsHomeInStorePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("TS_STORE_PATH", "~/tdmu-cache")

	cfg, err := Load(viper.New(), home, "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "tdmu-cache"), cfg.Store.Path)
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "backend", mutate: func(c *Config) { c.Store.Backend = "redis" }},
		{name: "endpoint", mutate: func(c *Config) { c.API.BaseEndpoint = " " }},
		{name: "timeout", mutate: func(c *Config) { c.API.Timeout = 0 }},
		{name: "cache duration", mutate: func(c *Config) { c.Cache.Duration = -time.Second }},
		{name: "log level", mutate: func(c *Config) { c.Log.Level = "loud" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(viper.New(), t.TempDir(), "")
			require.NoError(t, err)

			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
