// internal/routes/routes.go
package routes

import (
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"marketing-asset-backend/internal/handlers"
	"marketing-asset-backend/internal/middleware"
	"marketing-asset-backend/internal/models"
)

type Handlers struct {
	Health *handlers.HealthHandler
	User   *handlers.UserHandler
	Asset  *handlers.AssetHandler
	Usage  *handlers.UsageHandler
}

// Options carries the router-level settings taken from config.
type Options struct {
	Logger         *zap.Logger
	RequestTimeout time.Duration
	AllowedOrigins []string
	Identity       models.Identity
}

func SetupRoutes(h *Handlers, opts Options) *chi.Mux {
	if opts.Logger == nil {
		opts.Logger = zap.L()
	}
	if len(opts.AllowedOrigins) == 0 {
		opts.AllowedOrigins = []string{"*"}
	}

	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.RealIP())
	r.Use(middleware.Logger(opts.Logger))
	r.Use(middleware.Recoverer())
	if opts.RequestTimeout > 0 {
		r.Use(middleware.Timeout(opts.RequestTimeout))
	}
	r.Use(middleware.CORS(opts.AllowedOrigins))

	r.Get("/health", h.Health.HealthCheck)

	r.Route("/api", func(r chi.Router) {
		// Every request acts as the configured demo identity.
		r.Use(middleware.Identity(opts.Identity))

		r.Get("/", h.Health.Root)
		r.Get("/user/profile", h.User.GetProfile)

		r.Route("/assets", func(r chi.Router) {
			r.Post("/generate", h.Asset.GenerateAsset)
			r.Get("/", h.Asset.ListAssets)
			r.Get("/{assetId}", h.Asset.GetAsset)
			r.Delete("/{assetId}", h.Asset.DeleteAsset)
		})

		r.Get("/dashboard/stats", h.Usage.GetDashboardStats)
	})

	return r
}
