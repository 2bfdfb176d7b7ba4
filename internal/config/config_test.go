package config

import (
	"context"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/practice")
	t.Setenv("SESSION_SECRET", "")
	t.Setenv("ENV", "")
	t.Setenv("PORT", "")
	t.Setenv("SESSION_TTL", "")
	t.Setenv("PHONE_REGION", "")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Errorf("expected default env development, got %s", cfg.Env)
	}
	if cfg.SessionTTL != 720*time.Hour {
		t.Errorf("expected 720h session TTL, got %s", cfg.SessionTTL)
	}
	if cfg.SessionSecret != "dev-secret" {
		t.Errorf("expected development fallback secret, got %s", cfg.SessionSecret)
	}
	if cfg.PhoneRegion != "US" {
		t.Errorf("expected default phone region US, got %s", cfg.PhoneRegion)
	}
	if cfg.LoginRatePerMinute != 10 || cfg.LoginRateBurst != 5 {
		t.Errorf("unexpected login rate defaults: %d/%d", cfg.LoginRatePerMinute, cfg.LoginRateBurst)
	}
	if cfg.DatabaseMaxConns != 10 {
		t.Errorf("expected default pool cap 10, got %d", cfg.DatabaseMaxConns)
	}
}

func TestLoadRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	if _, err := Load(context.Background()); err == nil {
		t.Fatal("expected error when DATABASE_URL is missing")
	}
}

func TestLoadRequiresSecretOutsideDevelopment(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/practice")
	t.Setenv("ENV", "production")
	t.Setenv("SESSION_SECRET", "")

	if _, err := Load(context.Background()); err == nil {
		t.Fatal("expected error when SESSION_SECRET is missing in production")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://db.internal/practice")
	t.Setenv("ENV", "production")
	t.Setenv("SESSION_SECRET", "super-secret")
	t.Setenv("SESSION_TTL", "24h")
	t.Setenv("PORT", "9000")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Port != "9000" {
		t.Errorf("expected port 9000, got %s", cfg.Port)
	}
	if cfg.SessionTTL != 24*time.Hour {
		t.Errorf("expected 24h TTL, got %s", cfg.SessionTTL)
	}
	if cfg.SessionSecret != "super-secret" {
		t.Errorf("unexpected secret %s", cfg.SessionSecret)
	}
}
