// Package config resolves settings from an optional YAML defaults file and
// the environment. Environment variables always win over file values.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/frankjstrike/restaurant-decider/internal/cache"
	"github.com/frankjstrike/restaurant-decider/internal/filter"
)

// DefaultRadiusMiles is used when neither the flag nor the config file sets
// a search radius.
const DefaultRadiusMiles = 5.0

// defaultConfigName is looked up in the user's home directory when no
// --config path is given.
const defaultConfigName = ".decider.yaml"

// Config holds the resolved settings for a run.
type Config struct {
	// APIKey authenticates against the Google Maps APIs. Env only.
	APIKey string `yaml:"-"`

	DefaultRadiusMiles float64  `yaml:"default_radius_miles"`
	ExcludedTypes      []string `yaml:"excluded_types"`

	Cache CacheConfig `yaml:"cache"`
}

// CacheConfig configures the optional response cache. Credentials come from
// the environment, never the file.
type CacheConfig struct {
	Bucket string `yaml:"bucket"`
}

// Load builds a Config from defaults, an optional YAML file, and the
// environment. If path is empty, ~/.decider.yaml is used when present; a
// missing default file is not an error, a missing explicit one is.
func Load(path string) (*Config, error) {
	cfg := &Config{
		DefaultRadiusMiles: DefaultRadiusMiles,
		ExcludedTypes:      filter.DefaultExcludedTypes,
		Cache:              CacheConfig{Bucket: "decider-cache"},
	}

	explicit := path != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, defaultConfigName)
		}
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config file %s: %w", path, err)
			}
		case os.IsNotExist(err) && !explicit:
			// No defaults file; carry on with built-in defaults.
		default:
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	if cfg.DefaultRadiusMiles <= 0 {
		return nil, fmt.Errorf("default_radius_miles must be positive, got %v", cfg.DefaultRadiusMiles)
	}

	cfg.APIKey = os.Getenv("GOOGLE_MAPS_API_KEY")
	return cfg, nil
}

// RequireAPIKey returns an error when no API key is configured.
func (c *Config) RequireAPIKey() error {
	if c.APIKey == "" {
		return fmt.Errorf("GOOGLE_MAPS_API_KEY is not set")
	}
	return nil
}

// CacheSettings assembles the S3 cache settings from the environment.
// The second return value is false when caching is not configured.
func (c *Config) CacheSettings() (cache.S3Config, bool) {
	endpoint := os.Getenv("MINIO_ENDPOINT")
	if endpoint == "" {
		return cache.S3Config{}, false
	}
	return cache.S3Config{
		Endpoint:  endpoint,
		AccessKey: os.Getenv("MINIO_ACCESS_KEY"),
		SecretKey: os.Getenv("MINIO_SECRET_KEY"),
		UseSSL:    os.Getenv("MINIO_USE_SSL") == "true",
		Bucket:    c.Cache.Bucket,
	}, true
}
