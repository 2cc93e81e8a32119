package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int    `env:"PORT" envDefault:"8080" validate:"min=1,max=65535"`
	Environment string `env:"ENVIRONMENT" envDefault:"dev" validate:"oneof=dev staging prod test"`
	Version     string `env:"VERSION" envDefault:"dev"`

	LogLevel      string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn warning error DEBUG INFO WARN WARNING ERROR"`
	LogFormat     string `env:"LOG_FORMAT" envDefault:"text" validate:"oneof=text json"`
	LogDir        string `env:"LOG_DIR" envDefault:"logs" validate:"required"`
	LogMaxSizeMB  int    `env:"LOG_MAX_SIZE_MB" envDefault:"50" validate:"min=1"`
	LogMaxBackups int    `env:"LOG_MAX_BACKUPS" envDefault:"9" validate:"min=0"`

	DBPath         string        `env:"DB_PATH" envDefault:"data/inventories.db" validate:"required"`
	ReaderPoolSize int           `env:"DB_READER_POOL_SIZE" envDefault:"4" validate:"min=1,max=64"`
	BusyTimeout    time.Duration `env:"DB_BUSY_TIMEOUT" envDefault:"5s"`

	UserCacheSize int           `env:"USER_CACHE_SIZE" envDefault:"1024" validate:"min=0"`
	UserCacheTTL  time.Duration `env:"USER_CACHE_TTL" envDefault:"5m"`

	APIKey         string   `env:"API_KEY"`
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`
	RateLimitRPS   float64  `env:"RATE_LIMIT_RPS" envDefault:"20" validate:"gt=0"`
	RateLimitBurst int      `env:"RATE_LIMIT_BURST" envDefault:"40" validate:"min=1"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg, err := Parse()
	if err != nil {
		return nil, err
	}

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%s", ErrMsgAPIKeyMissing)
	}

	return cfg, nil
}

// Parse reads the process environment without loading .env or requiring an API key.
// Tools that only touch the store (migrate, lookups) use this.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgParseEnv, err)
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
