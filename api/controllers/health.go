package controllers

import (
	"net/http"

	"github.com/gurneepeptides/storefront-backend/api/responses"
	"github.com/gurneepeptides/storefront-backend/pkg/config"
	pkgerrors "github.com/gurneepeptides/storefront-backend/pkg/errors"
	"github.com/gurneepeptides/storefront-backend/pkg/logger"
	"github.com/gurneepeptides/storefront-backend/pkg/redis"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-GP-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady verifies the dependencies a request actually needs. The redis
// pinger is nil on file-backend dev runs and then skipped.
func HealthReady(cfg *config.Config, logg *logger.Logger, redisPinger redis.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-GP-Env", cfg.App.Env)

		if redisPinger != nil {
			if err := redisPinger.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "redis unavailable"))
				return
			}
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
