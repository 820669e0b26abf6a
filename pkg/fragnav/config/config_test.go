package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/fragnav/pkg/fragnav/bundle"
	"github.com/BrandonKowalski/fragnav/pkg/fragnav/constants"
	"github.com/BrandonKowalski/fragnav/pkg/fragnav/state"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(constants.ConfigEnvVar, "")
	return home
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	home := isolate(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultTabs, cfg.Tabs)
	assert.Equal(t, 0, cfg.StartIndex)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, constants.StateFormatJSON, cfg.State.Format)
	assert.Equal(t, constants.BundleBackendMemory, cfg.State.Backend)
	assert.Equal(t, constants.DefaultStateKey, cfg.State.Key)
	assert.Equal(t, filepath.Join(home, ".local", "share", "fragnav", "state.db"), cfg.State.SQLitePath)
	assert.Equal(t, state.JSON.Name(), cfg.Codec().Name())
}

func TestLoadFile(t *testing.T) {
	isolate(t)
	path := writeConfig(t, `
tabs = ["home", "search"]
start_index = 1

[log]
level = "debug"

[state]
format = "yaml"
backend = "redis"
redis_url = "redis://cache:6379/2"
redis_ttl = "90s"
`)
	t.Setenv(constants.ConfigEnvVar, path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"home", "search"}, cfg.Tabs)
	assert.Equal(t, 1, cfg.StartIndex)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, constants.BundleBackendRedis, cfg.State.Backend)
	assert.Equal(t, "redis://cache:6379/2", cfg.State.RedisURL)
	assert.Equal(t, 90*time.Second, cfg.State.RedisTTL)
	assert.Equal(t, state.YAML.Name(), cfg.Codec().Name())
}

func TestLoadEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("FRAGNAV_STATE_BACKEND", "sqlite")
	t.Setenv("FRAGNAV_STATE_SQLITE_PATH", "/tmp/nav.db")
	t.Setenv("FRAGNAV_LOG_LEVEL", "info")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, constants.BundleBackendSQLite, cfg.State.Backend)
	assert.Equal(t, "/tmp/nav.db", cfg.State.SQLitePath)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	isolate(t)
	t.Setenv(constants.ConfigEnvVar, filepath.Join(t.TempDir(), "nope.toml"))

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := Config{
		Tabs:  []string{"a", "b"},
		State: StateConfig{Format: "json", Backend: constants.BundleBackendMemory},
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no tabs", func(c *Config) { c.Tabs = nil }},
		{"start past end", func(c *Config) { c.StartIndex = 2 }},
		{"negative start", func(c *Config) { c.StartIndex = -1 }},
		{"bad format", func(c *Config) { c.State.Format = "xml" }},
		{"bad backend", func(c *Config) { c.State.Backend = "etcd" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}

func TestStateKey(t *testing.T) {
	c := Config{State: StateConfig{Key: "mine"}}
	assert.Equal(t, "mine", c.StateKey())

	c.State.Key = ""
	assert.Contains(t, c.StateKey(), constants.SessionKeyPrefix)
}

func TestOpenBundle(t *testing.T) {
	ctx := context.Background()

	b, err := OpenBundle(ctx, Config{State: StateConfig{Backend: constants.BundleBackendMemory}})
	require.NoError(t, err)
	assert.IsType(t, &bundle.Memory{}, b)

	path := filepath.Join(t.TempDir(), "nested", "state.db")
	b, err = OpenBundle(ctx, Config{State: StateConfig{Backend: constants.BundleBackendSQLite, SQLitePath: path}})
	require.NoError(t, err)
	defer b.Close()
	assert.IsType(t, &bundle.SQLite{}, b)
	assert.FileExists(t, path)

	_, err = OpenBundle(ctx, Config{State: StateConfig{Backend: "etcd"}})
	assert.Error(t, err)
}
