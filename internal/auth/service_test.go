package auth

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	pkgauth "github.com/gurneepeptides/storefront-backend/pkg/auth"
	"github.com/gurneepeptides/storefront-backend/pkg/config"
	"github.com/gurneepeptides/storefront-backend/pkg/errors"
	"github.com/gurneepeptides/storefront-backend/pkg/logger"
	"github.com/gurneepeptides/storefront-backend/pkg/security"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{
		App: config.AppConfig{Env: config.AppEnvDev},
		JWT: config.JWTConfig{
			Secret:            "test-secret",
			Issuer:            "test",
			ExpirationMinutes: 60,
		},
		Admin: config.AdminConfig{
			Email:    "admin@example.com",
			Password: "correct horse battery staple",
		},
		Password: config.PasswordConfig{
			ArgonMemoryKB:    8,
			ArgonTime:        1,
			ArgonParallelism: 1,
			ArgonSaltLen:     16,
			ArgonKeyLen:      32,
		},
	}
	return cfg
}

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Level: zerolog.Disabled})
}

func TestLoginSuccess(t *testing.T) {
	t.Parallel()

	svc, err := NewService(testConfig(t), testLogger())
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	token, err := svc.Login(context.Background(), "admin@example.com", "correct horse battery staple")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	claims, err := pkgauth.ParseAdminToken(svc.jwtCfg, token)
	if err != nil {
		t.Fatalf("parsing minted token: %v", err)
	}
	if !claims.IsAdmin() {
		t.Fatal("minted token must carry the admin role")
	}
	if claims.Email != "admin@example.com" {
		t.Fatalf("claims email: %q", claims.Email)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	t.Parallel()

	svc, err := NewService(testConfig(t), testLogger())
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	cases := []struct {
		name     string
		email    string
		password string
	}{
		{name: "wrong email", email: "nobody@example.com", password: "correct horse battery staple"},
		{name: "wrong password", email: "admin@example.com", password: "guess"},
	}
	for _, tc := range cases {
		_, err := svc.Login(context.Background(), tc.email, tc.password)
		if err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
		if got := errors.As(err).Code(); got != errors.CodeUnauthorized {
			t.Fatalf("%s: code %s, want %s", tc.name, got, errors.CodeUnauthorized)
		}
	}
}

func TestNewServicePrefersConfiguredHash(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	hash, err := security.HashPassword("from-hash", cfg.Password)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	cfg.Admin.PasswordHash = hash
	cfg.Admin.Password = "ignored"

	svc, err := NewService(cfg, testLogger())
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	if _, err := svc.Login(context.Background(), "admin@example.com", "from-hash"); err != nil {
		t.Fatalf("hash-backed login: %v", err)
	}
	if _, err := svc.Login(context.Background(), "admin@example.com", "ignored"); err == nil {
		t.Fatal("plaintext password must be ignored when a hash is configured")
	}
}

func TestNewServiceProdRequiresCredential(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	cfg.App.Env = config.AppEnvProd
	cfg.Admin.Password = ""
	cfg.Admin.PasswordHash = ""

	if _, err := NewService(cfg, testLogger()); err == nil {
		t.Fatal("prod without a credential must refuse to start")
	}
}

func TestNewServiceDevFallback(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	cfg.Admin.Password = ""

	svc, err := NewService(cfg, testLogger())
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	if _, err := svc.Login(context.Background(), "admin@example.com", devFallbackPassword); err != nil {
		t.Fatalf("dev fallback login: %v", err)
	}
}
