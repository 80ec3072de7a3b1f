package controllers

import (
	"fmt"
	"net/http"

	"github.com/gurneepeptides/storefront-backend/api/responses"
	"github.com/gurneepeptides/storefront-backend/api/validators"
	"github.com/gurneepeptides/storefront-backend/internal/settings"
	"github.com/gurneepeptides/storefront-backend/pkg/config"
	pkgerrors "github.com/gurneepeptides/storefront-backend/pkg/errors"
	"github.com/gurneepeptides/storefront-backend/pkg/logger"
)

// SettingsGet serves the public settings document. The Cache-Control max-age
// mirrors the service's read cache so clients and the server age out together.
func SettingsGet(svc *settings.Service, cfg *config.Config, logg *logger.Logger) http.HandlerFunc {
	maxAge := int(cfg.Settings.CacheTTL.Seconds())
	return func(w http.ResponseWriter, r *http.Request) {
		doc, err := svc.Get(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", maxAge))
		responses.WriteSuccess(w, doc)
	}
}

// AdminSettingsUpdate merges a partial settings patch and returns the
// document as persisted.
func AdminSettingsUpdate(svc *settings.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "settings service unavailable"))
			return
		}

		var patch settings.Patch
		if err := validators.DecodeJSONBody(r, &patch); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		doc, err := svc.Update(r.Context(), patch)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, doc)
	}
}
