package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("DASHBOARD_CACHE_TTL", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("DB_DRIVER", "")

	cfg := Load()

	if cfg.UsesMemoryStore() {
		t.Fatalf("expected postgres driver by default")
	}

	if cfg.Addr() != ":3000" {
		t.Fatalf("expected :3000, got %s", cfg.Addr())
	}
	if cfg.DashboardCacheTTL != 30*time.Second {
		t.Fatalf("expected 30s ttl, got %s", cfg.DashboardCacheTTL)
	}
	if cfg.IsProduction() {
		t.Fatalf("expected development by default")
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "8088")
	t.Setenv("DASHBOARD_CACHE_TTL", "2m")
	t.Setenv("EMAIL_DOMAIN_CHECK", "true")
	t.Setenv("APP_ENV", "Production")
	t.Setenv("STORAGE_DRIVER", "s3")
	t.Setenv("DB_DRIVER", "Memory")
	t.Setenv("SEED_DEMO", "true")

	cfg := Load()

	if !cfg.UsesMemoryStore() {
		t.Fatalf("expected memory store")
	}
	if !cfg.SeedDemo {
		t.Fatalf("expected demo seed enabled")
	}

	if cfg.Addr() != ":8088" {
		t.Fatalf("expected :8088, got %s", cfg.Addr())
	}
	if cfg.DashboardCacheTTL != 2*time.Minute {
		t.Fatalf("expected 2m ttl, got %s", cfg.DashboardCacheTTL)
	}
	if !cfg.EmailDomainCheck {
		t.Fatalf("expected email domain check enabled")
	}
	if !cfg.IsProduction() {
		t.Fatalf("expected production")
	}
	if cfg.Storage.Driver != "s3" {
		t.Fatalf("expected s3 driver, got %s", cfg.Storage.Driver)
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("DASHBOARD_CACHE_TTL", "soon")
	t.Setenv("EMAIL_DOMAIN_CHECK", "maybe")

	cfg := Load()

	if cfg.DashboardCacheTTL != 30*time.Second {
		t.Fatalf("expected fallback ttl, got %s", cfg.DashboardCacheTTL)
	}
	if cfg.EmailDomainCheck {
		t.Fatalf("expected fallback false")
	}
}
