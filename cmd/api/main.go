package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/gurneepeptides/storefront-backend/api/routes"
	"github.com/gurneepeptides/storefront-backend/internal/auth"
	"github.com/gurneepeptides/storefront-backend/internal/products"
	"github.com/gurneepeptides/storefront-backend/internal/settings"
	"github.com/gurneepeptides/storefront-backend/pkg/blob"
	"github.com/gurneepeptides/storefront-backend/pkg/config"
	"github.com/gurneepeptides/storefront-backend/pkg/logger"
	"github.com/gurneepeptides/storefront-backend/pkg/metrics"
	"github.com/gurneepeptides/storefront-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "storefront"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "storefront",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	var redisClient *redis.Client
	if cfg.Storage.UsesRedis() || cfg.Redis.Configured() {
		redisClient, err = redis.New(context.Background(), cfg.Redis)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()
	}

	var store blob.Store
	if cfg.Storage.UsesRedis() {
		store, err = blob.NewRedisStore(redisClient)
		if err != nil {
			logg.Error(context.Background(), "failed to create redis blob store", err)
			os.Exit(1)
		}
	} else {
		store, err = blob.NewFileStore(cfg.Storage.DataDir)
		if err != nil {
			logg.Error(context.Background(), "failed to open data directory", err)
			os.Exit(1)
		}
	}

	authService, err := auth.NewService(cfg, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	settingsService := settings.NewService(store, cfg.Storage.SettingsKey, cfg.Settings.CacheTTL, logg)
	productService := products.NewService(store, cfg.Storage.ProductsKey, logg)

	httpMetrics := metrics.NewHTTPMetrics(prometheus.DefaultRegisterer)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":     cfg.App.Env,
		"addr":    addr,
		"backend": cfg.Storage.Backend,
	})
	logg.Info(ctx, "starting storefront api")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg,
			logg,
			redisClient,
			httpMetrics,
			authService,
			settingsService,
			productService,
		),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
