package config_test

import (
	"testing"

	"BudgetBuddy/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Fatalf("expected default port 8080, got %s", cfg.Server.Port)
	}
	if cfg.App.Environment != "development" {
		t.Fatalf("expected default environment development, got %s", cfg.App.Environment)
	}
	if cfg.Database.DSN == "" {
		t.Fatalf("expected DSN to be assembled")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("APP_ENV", "production")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_MAX_OPEN_CONNS", "not-a-number")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != "9999" {
		t.Fatalf("expected port 9999, got %s", cfg.Server.Port)
	}
	if cfg.App.Environment != "production" {
		t.Fatalf("expected environment production, got %s", cfg.App.Environment)
	}
	if cfg.Database.Host != "db.internal" || cfg.Database.Port != 5433 {
		t.Fatalf("unexpected database config: %+v", cfg.Database)
	}
	// valores inválidos caem no padrão
	if cfg.Database.MaxOpenConns != 10 {
		t.Fatalf("expected fallback MaxOpenConns 10, got %d", cfg.Database.MaxOpenConns)
	}
}
