package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad_Success(t *testing.T) {
	setMinimalEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.App.Env != "production" {
		t.Fatalf("expected App.Env to be production, got %q", cfg.App.Env)
	}
	if !cfg.App.IsProd() || cfg.App.IsDev() {
		t.Fatalf("env helpers disagree with App.Env %q", cfg.App.Env)
	}
	if cfg.Storage.Backend != StorageBackendFile {
		t.Fatalf("expected default file backend, got %q", cfg.Storage.Backend)
	}
	if cfg.Storage.SettingsKey != "settings.json" || cfg.Storage.ProductsKey != "products.json" {
		t.Fatalf("unexpected document keys: %q / %q", cfg.Storage.SettingsKey, cfg.Storage.ProductsKey)
	}
	if got := cfg.Settings.CacheTTL; got != 30*time.Second {
		t.Fatalf("expected settings cache ttl 30s, got %v", got)
	}
	if got := cfg.JWT.TokenTTL(); got != 7*24*time.Hour {
		t.Fatalf("expected default 7d token ttl, got %v", got)
	}
	if cfg.Admin.CookieName != "gp_auth" {
		t.Fatalf("unexpected cookie name %q", cfg.Admin.CookieName)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	setMinimalEnv(t)
	if err := os.Unsetenv(EnvAppEnv); err != nil {
		t.Fatalf("failed to unset %s: %v", EnvAppEnv, err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("expected missing required env to return an error")
	}
}

func TestLoad_RejectsUnknownStorageBackend(t *testing.T) {
	setMinimalEnv(t)
	t.Setenv(EnvStorageBackend, "dynamo")

	if _, err := Load(); err == nil {
		t.Fatal("expected unknown storage backend to be rejected")
	}
}

func TestRedisConfigured(t *testing.T) {
	if (RedisConfig{}).Configured() {
		t.Fatal("empty redis config should not report configured")
	}
	if !(RedisConfig{URL: "redis://localhost:6379/0"}).Configured() {
		t.Fatal("redis url should report configured")
	}
	if !(RedisConfig{Address: "localhost:6379"}).Configured() {
		t.Fatal("redis address should report configured")
	}
}

func setMinimalEnv(t *testing.T) {
	t.Helper()

	t.Setenv(EnvAppEnv, "production")
	t.Setenv(EnvPort, "8081")
	t.Setenv(EnvJWTSecret, "secret")
	t.Setenv(EnvAdminEmail, "admin@example.com")
}
