package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gurneepeptides/storefront-backend/api/controllers"
	"github.com/gurneepeptides/storefront-backend/api/middleware"
	"github.com/gurneepeptides/storefront-backend/internal/auth"
	"github.com/gurneepeptides/storefront-backend/internal/catalog"
	"github.com/gurneepeptides/storefront-backend/internal/products"
	"github.com/gurneepeptides/storefront-backend/internal/settings"
	"github.com/gurneepeptides/storefront-backend/pkg/config"
	"github.com/gurneepeptides/storefront-backend/pkg/logger"
	"github.com/gurneepeptides/storefront-backend/pkg/metrics"
	"github.com/gurneepeptides/storefront-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	redisClient *redis.Client,
	httpMetrics *metrics.HTTPMetrics,
	authService *auth.Service,
	settingsService *settings.Service,
	productService *products.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)

	boilerplate := catalog.BoilerplateFromConfig(cfg.Purchase)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, readyPinger(redisClient)))
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/settings", controllers.SettingsGet(settingsService, cfg, logg))
		r.Get("/products", controllers.ProductsList(productService, settingsService, boilerplate, logg))
		r.Get("/products/{productId}", controllers.ProductDetail(productService, settingsService, boilerplate, logg))
	})

	loginLimiter := func(next http.Handler) http.Handler { return next }
	if redisClient != nil {
		loginLimiter = middleware.AuthRateLimit(loginPolicy, redisClient, logg)
	}

	r.Route("/api/admin", func(r chi.Router) {
		r.With(loginLimiter).
			Post("/login", controllers.AdminLogin(authService, cfg, logg))
		r.Post("/logout", controllers.AdminLogout(cfg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.AdminAuth(cfg.JWT, cfg.Admin.CookieName, logg))
			r.Get("/me", controllers.AdminMe())
			r.Post("/settings", controllers.AdminSettingsUpdate(settingsService, logg))
			r.Post("/products/bulk", controllers.AdminProductsBulk(productService, logg))
			r.Post("/product-prices", controllers.AdminProductPrices(productService, logg))
			r.Get("/debug-products-shape", controllers.AdminProductsShape(productService, logg))
		})
	})

	return r
}

// readyPinger exists because a nil *redis.Client stuffed straight into an
// interface value would no longer compare equal to nil.
func readyPinger(client *redis.Client) redis.Pinger {
	if client == nil {
		return nil
	}
	return client
}
