package config

import (
	"path/filepath"
	"testing"

	"github.com/caballebrios/nightboard/internal/platform/logging"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.AppEnv != EnvDev {
		t.Fatalf("AppEnv = %q, want %q", cfg.AppEnv, EnvDev)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("HTTPAddr = %q, want :8080", cfg.HTTPAddr)
	}
	if cfg.DatabaseURL != "" {
		t.Fatalf("DatabaseURL = %q, want empty", cfg.DatabaseURL)
	}
	if filepath.Base(cfg.SQLitePath) != "caballebrios.db" {
		t.Fatalf("SQLitePath = %q, want a caballebrios.db path", cfg.SQLitePath)
	}
	if cfg.SeedHistoryOnStart {
		t.Fatalf("SeedHistoryOnStart should default to false")
	}
	if cfg.SummaryWorkers != 4 {
		t.Fatalf("SummaryWorkers = %d, want 4", cfg.SummaryWorkers)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Fatalf("CORSAllowedOrigins = %v, want [*]", cfg.CORSAllowedOrigins)
	}
	if !cfg.UptraceLogsEnabled {
		t.Fatalf("UptraceLogsEnabled should default to true")
	}
	if cfg.BetterStackEnabled {
		t.Fatalf("BetterStackEnabled should default to false")
	}
	if cfg.BetterStackMinLevel != logging.LevelError {
		t.Fatalf("BetterStackMinLevel = %v, want error", cfg.BetterStackMinLevel)
	}
}

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_SummaryWorkersMustBePositive(t *testing.T) {
	t.Setenv("SUMMARY_WORKERS", "0")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for SUMMARY_WORKERS=0")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "uptrace-dsn=https://token@api.uptrace.dev/123")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev/123" {
		t.Fatalf("UptraceDSN = %q", cfg.UptraceDSN)
	}
}

func TestLoad_BetterStackRequiresEndpointWhenEnabled(t *testing.T) {
	t.Setenv("BETTERSTACK_ENABLED", "true")
	t.Setenv("BETTERSTACK_ENDPOINT", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when BETTERSTACK_ENABLED=true without BETTERSTACK_ENDPOINT")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("DATABASE_URL", "postgres://night:night@db:5432/nightboard?sslmode=disable")
	t.Setenv("SQLITE_PATH", "/var/lib/nightboard/board.db")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://board.example.com, https://admin.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.AppEnv != EnvProd {
		t.Fatalf("AppEnv = %q, want %q", cfg.AppEnv, EnvProd)
	}
	if cfg.DatabaseURL == "" {
		t.Fatalf("DatabaseURL should be set")
	}
	if cfg.SQLitePath != "/var/lib/nightboard/board.db" {
		t.Fatalf("SQLitePath = %q", cfg.SQLitePath)
	}
	if len(cfg.CORSAllowedOrigins) != 2 {
		t.Fatalf("CORSAllowedOrigins = %v, want 2 entries", cfg.CORSAllowedOrigins)
	}
}
