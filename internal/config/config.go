// Package config loads tool configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the tool's runtime configuration. Everything has a working
// default; the env vars exist for pointing at a wiki mirror or moving
// the data directory.
type Config struct {
	APIBase     string        `env:"RAIDKIT_API" envDefault:"https://arcraiders.wiki/w/api.php"`
	DataDir     string        `env:"RAIDKIT_DATA_DIR"`
	HTTPTimeout time.Duration `env:"RAIDKIT_HTTP_TIMEOUT" envDefault:"20s"`
	CacheTTL    time.Duration `env:"RAIDKIT_CACHE_TTL" envDefault:"10m"`
}

// Load parses the environment and fills in the default data directory.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.DataDir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve config dir: %w", err)
		}
		cfg.DataDir = filepath.Join(base, "raidkit")
	}
	return cfg, nil
}

// DBPath is the SQLite file inside the data directory.
func (c Config) DBPath() string {
	return filepath.Join(c.DataDir, "raidkit.db")
}
