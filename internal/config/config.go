// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/jonathan/jobfit/internal/fetch"
	"github.com/jonathan/jobfit/internal/store"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable override, e.g. JOBFIT_STORE_BACKEND.
const EnvPrefix = "JOBFIT"

// Config is the application configuration. It is read from a JSON or YAML
// file, and JOBFIT_* environment variables override file values.
type Config struct {
	Store   StoreConfig   `mapstructure:"store" json:"store"`
	Server  ServerConfig  `mapstructure:"server" json:"server"`
	Digest  DigestConfig  `mapstructure:"digest" json:"digest"`
	Catalog CatalogConfig `mapstructure:"catalog" json:"catalog"`
	Log     LogConfig     `mapstructure:"log" json:"log"`
}

// StoreConfig selects the persistence backend.
type StoreConfig struct {
	Backend   string `mapstructure:"backend" json:"backend"`       // memory, file, sqlite, postgres or redis
	DSN       string `mapstructure:"dsn" json:"dsn"`               // file path or connection URL
	KeyPrefix string `mapstructure:"key_prefix" json:"key_prefix"` // redis only
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Port        int             `mapstructure:"port" json:"port"`
	CORSOrigins []string        `mapstructure:"cors_origins" json:"cors_origins"`
	RateLimit   RateLimitConfig `mapstructure:"rate_limit" json:"rate_limit"`
}

// RateLimitConfig is the per-client token bucket. Zero disables limiting.
type RateLimitConfig struct {
	RequestsPerMinute int `mapstructure:"requests_per_minute" json:"requests_per_minute"`
	Burst             int `mapstructure:"burst" json:"burst"`
}

// DigestConfig controls digest persistence.
type DigestConfig struct {
	// PersistEmpty stores digests that selected no jobs.
	PersistEmpty bool `mapstructure:"persist_empty" json:"persist_empty"`
}

// CatalogConfig lists the job catalog files, loaded in order.
type CatalogConfig struct {
	Paths []string `mapstructure:"paths" json:"paths"`
}

// LogConfig controls log output.
type LogConfig struct {
	JSON  bool `mapstructure:"json" json:"json"`
	Debug bool `mapstructure:"debug" json:"debug"`
}

// Defaults returns the configuration used when nothing is set.
func Defaults() Config {
	return Config{
		Store: StoreConfig{
			Backend:   store.BackendFile,
			DSN:       "jobfit-data.json",
			KeyPrefix: store.DefaultKeyPrefix,
		},
		Server: ServerConfig{
			Port:        8080,
			CORSOrigins: []string{"*"},
			RateLimit: RateLimitConfig{
				RequestsPerMinute: 120,
				Burst:             20,
			},
		},
		Catalog: CatalogConfig{
			Paths: []string{filepath.Join("data", "jobs.json")},
		},
	}
}

// newViper returns a viper instance with every key defaulted so that
// environment overrides apply even when the file omits a key.
func newViper() *viper.Viper {
	v := viper.New()
	d := Defaults()

	v.SetDefault("store.backend", d.Store.Backend)
	v.SetDefault("store.dsn", d.Store.DSN)
	v.SetDefault("store.key_prefix", d.Store.KeyPrefix)
	v.SetDefault("server.port", d.Server.Port)
	v.SetDefault("server.cors_origins", d.Server.CORSOrigins)
	v.SetDefault("server.rate_limit.requests_per_minute", d.Server.RateLimit.RequestsPerMinute)
	v.SetDefault("server.rate_limit.burst", d.Server.RateLimit.Burst)
	v.SetDefault("digest.persist_empty", d.Digest.PersistEmpty)
	v.SetDefault("catalog.paths", d.Catalog.Paths)
	v.SetDefault("log.json", d.Log.JSON)
	v.SetDefault("log.debug", d.Log.Debug)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// LoadConfig loads configuration from a JSON or YAML file, with environment
// overrides applied on top.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}
	return Load(path)
}

// Load is LoadConfig that also accepts an empty path, in which case only
// defaults and environment variables are used.
func Load(path string) (*Config, error) {
	v := newViper()

	if path != "" {
		if !filepath.IsAbs(path) {
			cwd, err := os.Getwd()
			if err != nil {
				return nil, fmt.Errorf("failed to get current directory: %w", err)
			}
			path = filepath.Join(cwd, path)
		}
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	backend := strings.ToLower(c.Store.Backend)
	if !slices.Contains(store.Backends, backend) {
		return fmt.Errorf("config error: unknown store backend %q (want one of %s)",
			c.Store.Backend, strings.Join(store.Backends, ", "))
	}
	if backend != store.BackendMemory && c.Store.DSN == "" {
		return fmt.Errorf("config error: 'store.dsn' is required for the %s backend", backend)
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("config error: 'server.port' must be 1..65535")
	}
	if c.Server.RateLimit.RequestsPerMinute < 0 {
		return fmt.Errorf("config error: 'server.rate_limit.requests_per_minute' must be non-negative")
	}
	if c.Server.RateLimit.Burst < 0 {
		return fmt.Errorf("config error: 'server.rate_limit.burst' must be non-negative")
	}

	var missing []error
	for _, p := range c.Catalog.Paths {
		if fetch.IsURL(p) {
			continue
		}
		if _, err := os.Stat(p); os.IsNotExist(err) {
			missing = append(missing, fmt.Errorf("config error: catalog file not found: %s", p))
		}
	}
	return errors.Join(missing...)
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from defaults.
// Bool fields cannot tell unset from false and are left alone.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Store.Backend == "" {
		result.Store.Backend = defaults.Store.Backend
	}
	if result.Store.DSN == "" {
		result.Store.DSN = defaults.Store.DSN
	}
	if result.Store.KeyPrefix == "" {
		result.Store.KeyPrefix = defaults.Store.KeyPrefix
	}

	if result.Server.Port == 0 {
		result.Server.Port = defaults.Server.Port
	}
	if len(result.Server.CORSOrigins) == 0 {
		result.Server.CORSOrigins = defaults.Server.CORSOrigins
	}
	if result.Server.RateLimit.RequestsPerMinute == 0 {
		result.Server.RateLimit.RequestsPerMinute = defaults.Server.RateLimit.RequestsPerMinute
	}
	if result.Server.RateLimit.Burst == 0 {
		result.Server.RateLimit.Burst = defaults.Server.RateLimit.Burst
	}

	if len(result.Catalog.Paths) == 0 {
		result.Catalog.Paths = defaults.Catalog.Paths
	}

	return result
}
