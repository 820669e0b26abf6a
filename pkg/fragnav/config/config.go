// Package config loads settings for programs built on fragnav.
package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/BrandonKowalski/fragnav/pkg/fragnav/bundle"
	"github.com/BrandonKowalski/fragnav/pkg/fragnav/constants"
	"github.com/BrandonKowalski/fragnav/pkg/fragnav/state"
)

// Config holds application configuration.
type Config struct {
	Tabs       []string `mapstructure:"tabs"`
	StartIndex int      `mapstructure:"start_index"`
	Log        LogConfig
	State      StateConfig
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string
	Path  string
}

// StateConfig holds where and how navigation state is saved.
type StateConfig struct {
	Format     constants.StateFormat   `mapstructure:"format"`
	Backend    constants.BundleBackend `mapstructure:"backend"`
	Key        string                  `mapstructure:"key"`
	RedisURL   string                  `mapstructure:"redis_url"`
	RedisTTL   time.Duration           `mapstructure:"redis_ttl"`
	SQLitePath string                  `mapstructure:"sqlite_path"`
}

// DefaultTabs are the tabs used when none are configured.
var DefaultTabs = []string{"recents", "favorites", "nearby", "friends", "food"}

// Load reads configuration from file and env. Env var overrides use prefix FRAGNAV_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("tabs", DefaultTabs)
	v.SetDefault("start_index", 0)
	v.SetDefault("log.level", "error")
	v.SetDefault("log.path", "")
	v.SetDefault("state.format", string(constants.StateFormatJSON))
	v.SetDefault("state.backend", string(constants.BundleBackendMemory))
	v.SetDefault("state.key", constants.DefaultStateKey)
	v.SetDefault("state.redis_url", "redis://localhost:6379")
	v.SetDefault("state.redis_ttl", time.Duration(0))
	v.SetDefault("state.sqlite_path", filepath.Join(os.Getenv("HOME"), ".local", "share", "fragnav", "state.db"))

	v.SetConfigType("toml")

	cfgPath := os.Getenv(constants.ConfigEnvVar)
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "fragnav"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(constants.EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		// A missing default config is fine; an explicit one must load.
		if cfgPath != "" {
			return Config{}, fmt.Errorf("read config %s: %w", cfgPath, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks values that viper cannot.
func (c Config) Validate() error {
	if len(c.Tabs) == 0 {
		return fmt.Errorf("config: no tabs configured")
	}
	if c.StartIndex < 0 || c.StartIndex >= len(c.Tabs) {
		return fmt.Errorf("config: start_index %d out of range for %d tabs", c.StartIndex, len(c.Tabs))
	}
	if _, err := state.CodecByName(string(c.State.Format)); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	switch c.State.Backend {
	case constants.BundleBackendMemory, constants.BundleBackendRedis, constants.BundleBackendSQLite:
	default:
		return fmt.Errorf("config: unknown state backend %q", c.State.Backend)
	}
	return nil
}

// Codec returns the codec for the configured state format.
func (c Config) Codec() state.Codec {
	codec, err := state.CodecByName(string(c.State.Format))
	if err != nil {
		return state.JSON
	}
	return codec
}

// StateKey returns the configured bundle key, or a fresh session key if it is empty.
func (c Config) StateKey() string {
	if c.State.Key == "" {
		return bundle.NewSessionKey()
	}
	return c.State.Key
}

// OpenBundle opens the configured state bundle.
func OpenBundle(ctx context.Context, c Config) (bundle.Bundle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch c.State.Backend {
	case constants.BundleBackendMemory, "":
		return bundle.NewMemory(), nil
	case constants.BundleBackendRedis:
		return bundle.NewRedis(bundle.RedisOptions{URL: c.State.RedisURL, TTL: c.State.RedisTTL})
	case constants.BundleBackendSQLite:
		if err := os.MkdirAll(filepath.Dir(c.State.SQLitePath), 0o755); err != nil {
			return nil, fmt.Errorf("mkdir state dir: %w", err)
		}
		return bundle.OpenSQLite(c.State.SQLitePath)
	default:
		return nil, fmt.Errorf("unknown state backend %q", c.State.Backend)
	}
}
