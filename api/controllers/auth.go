package controllers

import (
	"net/http"
	"time"

	"github.com/gurneepeptides/storefront-backend/api/middleware"
	"github.com/gurneepeptides/storefront-backend/api/responses"
	"github.com/gurneepeptides/storefront-backend/api/validators"
	"github.com/gurneepeptides/storefront-backend/internal/auth"
	"github.com/gurneepeptides/storefront-backend/pkg/config"
	pkgerrors "github.com/gurneepeptides/storefront-backend/pkg/errors"
	"github.com/gurneepeptides/storefront-backend/pkg/logger"
)

// AdminLogin verifies credentials and sets the session cookie.
func AdminLogin(svc *auth.Service, cfg *config.Config, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		var body auth.LoginRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		token, err := svc.Login(r.Context(), body.Email, body.Password)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		setAuthCookie(w, cfg, token, svc.TokenTTL())
		responses.WriteSuccess(w, auth.LoginResponse{Email: body.Email})
	}
}

// AdminLogout clears the session cookie. Always succeeds; there is no
// server-side session state to revoke.
func AdminLogout(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clearAuthCookie(w, cfg)
		responses.WriteSuccess(w, map[string]bool{"ok": true})
	}
}

// AdminMe returns the authenticated admin identity. Sits behind AdminAuth.
func AdminMe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, auth.LoginResponse{
			Email: middleware.AdminEmailFromContext(r.Context()),
		})
	}
}

func setAuthCookie(w http.ResponseWriter, cfg *config.Config, token string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     cfg.Admin.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   cfg.App.IsProd(),
		SameSite: http.SameSiteLaxMode,
	})
}

func clearAuthCookie(w http.ResponseWriter, cfg *config.Config) {
	http.SetCookie(w, &http.Cookie{
		Name:     cfg.Admin.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   cfg.App.IsProd(),
		SameSite: http.SameSiteLaxMode,
	})
}
