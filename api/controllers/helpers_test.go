package controllers

import (
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/gurneepeptides/storefront-backend/internal/auth"
	"github.com/gurneepeptides/storefront-backend/internal/products"
	"github.com/gurneepeptides/storefront-backend/internal/settings"
	"github.com/gurneepeptides/storefront-backend/pkg/blob"
	"github.com/gurneepeptides/storefront-backend/pkg/config"
	"github.com/gurneepeptides/storefront-backend/pkg/logger"
)

type testEnv struct {
	cfg         *config.Config
	logg        *logger.Logger
	dataDir     string
	settingsSvc *settings.Service
	productSvc  *products.Service
	authSvc     *auth.Service
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := &config.Config{
		App: config.AppConfig{Env: config.AppEnvDev},
		Storage: config.StorageConfig{
			Backend:     config.StorageBackendFile,
			SettingsKey: "settings.json",
			ProductsKey: "products.json",
		},
		JWT: config.JWTConfig{
			Secret:            "test-secret",
			Issuer:            "test",
			ExpirationMinutes: 60,
		},
		Admin: config.AdminConfig{
			Email:      "admin@example.com",
			Password:   "hunter2hunter2",
			CookieName: "gp_auth",
		},
		Password: config.PasswordConfig{
			ArgonMemoryKB:    8,
			ArgonTime:        1,
			ArgonParallelism: 1,
			ArgonSaltLen:     16,
			ArgonKeyLen:      32,
		},
		Settings: config.SettingsConfig{CacheTTL: 30 * time.Second},
		Purchase: config.PurchaseConfig{
			Headline: "How to Purchase",
			Note:     "Message us on Facebook to purchase.",
		},
	}
	cfg.Storage.DataDir = t.TempDir()

	logg := logger.New(logger.Options{ServiceName: "test", Level: zerolog.Disabled})

	store, err := blob.NewFileStore(cfg.Storage.DataDir)
	if err != nil {
		t.Fatalf("creating file store: %v", err)
	}

	authSvc, err := auth.NewService(cfg, logg)
	if err != nil {
		t.Fatalf("creating auth service: %v", err)
	}

	return &testEnv{
		cfg:         cfg,
		logg:        logg,
		dataDir:     cfg.Storage.DataDir,
		settingsSvc: settings.NewService(store, cfg.Storage.SettingsKey, cfg.Settings.CacheTTL, logg),
		productSvc:  products.NewService(store, cfg.Storage.ProductsKey, logg),
		authSvc:     authSvc,
	}
}

func (e *testEnv) seed(t *testing.T, key, doc string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(e.dataDir, key), []byte(doc), 0o644); err != nil {
		t.Fatalf("seeding %s: %v", key, err)
	}
}

// decodeData unwraps the {"data": ...} success envelope into dest.
func decodeData(t *testing.T, rec *httptest.ResponseRecorder, dest any) {
	t.Helper()
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decoding envelope: %v (body %s)", err, rec.Body.String())
	}
	if err := json.Unmarshal(envelope.Data, dest); err != nil {
		t.Fatalf("decoding data: %v (body %s)", err, rec.Body.String())
	}
}
