// Package config loads tracker configuration from environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Store backends selectable via TRACKER_STORE.
const (
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

// Config is the full runtime configuration. Zero values carry the
// documented defaults; an empty RedisAddr disables the mirror.
type Config struct {
	StoreBackend string `env:"TRACKER_STORE" envDefault:"sqlite"`
	SQLitePath   string `env:"TRACKER_SQLITE_PATH" envDefault:"tracker.db"`
	PostgresDSN  string `env:"TRACKER_POSTGRES_DSN"`

	RedisAddr    string `env:"TRACKER_REDIS_ADDR"`
	MirrorBuffer int    `env:"TRACKER_MIRROR_BUFFER" envDefault:"1024"`

	MetricsAddr string `env:"TRACKER_METRICS_ADDR" envDefault:":9464"`

	DefaultTTL   time.Duration `env:"TRACKER_CACHE_DEFAULT_TTL" envDefault:"5m"`
	ProjectsTTL  time.Duration `env:"TRACKER_CACHE_PROJECTS_TTL" envDefault:"10m"`
	DashboardTTL time.Duration `env:"TRACKER_CACHE_DASHBOARD_TTL" envDefault:"2m"`
	ExpensesTTL  time.Duration `env:"TRACKER_CACHE_EXPENSES_TTL" envDefault:"3m"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	switch cfg.StoreBackend {
	case BackendMemory, BackendSQLite, BackendPostgres:
	default:
		return Config{}, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
	return cfg, nil
}
