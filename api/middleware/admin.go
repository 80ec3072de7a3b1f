package middleware

import (
	"net/http"

	"github.com/gurneepeptides/storefront-backend/api/responses"
	pkgauth "github.com/gurneepeptides/storefront-backend/pkg/auth"
	"github.com/gurneepeptides/storefront-backend/pkg/config"
	pkgerrors "github.com/gurneepeptides/storefront-backend/pkg/errors"
	"github.com/gurneepeptides/storefront-backend/pkg/logger"
)

// AdminAuth validates the admin session cookie and seeds the request context
// with the admin identity. The admin console is same-site, so the token rides
// an HttpOnly cookie rather than an Authorization header.
func AdminAuth(jwtCfg config.JWTConfig, cookieName string, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "not authenticated"))
				return
			}

			claims, err := pkgauth.ParseAdminToken(jwtCfg, cookie.Value)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid or expired token"))
				return
			}
			if !claims.IsAdmin() {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeForbidden, "admin role required"))
				return
			}

			ctx := WithAdminEmail(r.Context(), claims.Email)
			if logg != nil {
				ctx = logg.WithAdminEmail(ctx, claims.Email)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
