package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config aggregates application-wide configuration values.
type Config struct {
	Port          string        `env:"PORT, default=8080"`
	Env           string        `env:"ENV, default=development"`
	BaseURL       string        `env:"BASE_URL, default=http://localhost:8080"`
	DatabaseURL   string        `env:"DATABASE_URL"`
	// DatabaseMaxConns caps the pgx pool size.
	DatabaseMaxConns int32 `env:"DATABASE_MAX_CONNS, default=10"`
	SessionSecret string        `env:"SESSION_SECRET"`
	SessionTTL    time.Duration `env:"SESSION_TTL, default=720h"`
	LogLevel      string        `env:"LOG_LEVEL, default=info"`
	LogPretty     bool          `env:"LOG_PRETTY, default=false"`
	PhoneRegion   string        `env:"PHONE_REGION, default=US"`

	// Login attempts allowed per client IP within one minute.
	LoginRatePerMinute int `env:"LOGIN_RATE_PER_MINUTE, default=10"`
	LoginRateBurst     int `env:"LOGIN_RATE_BURST, default=5"`
}

// Load reads configuration from environment variables.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.SessionSecret == "" {
		if cfg.Env != "development" {
			return nil, fmt.Errorf("SESSION_SECRET is required outside development")
		}
		cfg.SessionSecret = "dev-secret"
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 720 * time.Hour
	}

	return &cfg, nil
}
