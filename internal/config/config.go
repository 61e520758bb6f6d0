// Package config wraps Viper behind a small accessor type so the rest of
// the application does not depend on Viper directly.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config provides typed access to application configuration.
type Config struct {
	v *viper.Viper
}

// New wraps an existing Viper instance. A nil instance yields a Config
// that returns zero values for every key.
func New(v *viper.Viper) *Config {
	if v == nil {
		v = viper.New()
	}
	return &Config{v: v}
}

// Load reads configuration from the given file path (optional), applies
// defaults, and enables KPIDEX_-prefixed environment overrides.
// With an empty path it searches for kpidex.yaml in the working
// directory and /etc/kpidex, falling back to defaults when no file is
// found.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.rate_limit", 50)
	v.SetDefault("server.rate_burst", 100)
	v.SetDefault("catalog.source", "embedded")
	v.SetDefault("catalog.path", "")

	v.SetEnvPrefix("KPIDEX")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %q: %w", path, err)
		}
		return New(v), nil
	}

	v.SetConfigName("kpidex")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/kpidex")
	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; defaults and env apply.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	return New(v), nil
}

// GetString returns the string value for key.
func (c *Config) GetString(key string) string { return c.v.GetString(key) }

// GetInt returns the int value for key.
func (c *Config) GetInt(key string) int { return c.v.GetInt(key) }

// GetBool returns the bool value for key.
func (c *Config) GetBool(key string) bool { return c.v.GetBool(key) }

// GetDuration returns the duration value for key.
func (c *Config) GetDuration(key string) time.Duration { return c.v.GetDuration(key) }

// IsSet reports whether key has a value.
func (c *Config) IsSet(key string) bool { return c.v.IsSet(key) }

// Sub returns the configuration subtree under key. It never returns nil;
// a missing subtree yields an empty Config.
func (c *Config) Sub(key string) *Config {
	sub := c.v.Sub(key)
	if sub == nil {
		sub = viper.New()
	}
	return New(sub)
}

// Unmarshal decodes the configuration into target using mapstructure tags.
func (c *Config) Unmarshal(target any) error {
	return c.v.Unmarshal(target)
}
