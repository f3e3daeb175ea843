package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"naccost-lab/internal/api/handlers"
	apimiddleware "naccost-lab/internal/api/middleware"
	"naccost-lab/internal/config"
	"naccost-lab/internal/infrastructure/cache"
	"naccost-lab/pkg/logger"
)

// Router holds dependencies for the API router
type Router struct {
	config   config.Config
	handlers *handlers.Handlers
	cache    *cache.RedisCache
	logger   *logger.Logger
}

// NewRouter creates a new Router instance
func NewRouter(cfg config.Config, h *handlers.Handlers, c *cache.RedisCache, log *logger.Logger) *Router {
	return &Router{
		config:   cfg,
		handlers: h,
		cache:    c,
		logger:   log.WithComponent("router"),
	}
}

// Setup sets up the Chi router with all routes and middleware
func (r *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Core middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(apimiddleware.Logger(r.logger))
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(60 * time.Second))

	// CORS
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   r.config.CORS.AllowedOrigins,
		AllowedMethods:   r.config.CORS.AllowedMethods,
		AllowedHeaders:   r.config.CORS.AllowedHeaders,
		AllowCredentials: r.config.CORS.AllowCredentials,
		MaxAge:           r.config.CORS.MaxAge,
	}))

	// Rate limiting
	if r.config.RateLimit.Enabled && r.cache != nil {
		router.Use(apimiddleware.RateLimiter(r.cache, r.config.RateLimit))
	}

	// Health checks
	router.Get("/health", r.handlers.Health.Check)
	router.Get("/ready", r.handlers.Health.Ready)

	// WebSocket stream of analysis events
	router.Get("/ws/analysis", r.handlers.Streaming.ServeAnalysisEvents)

	// API v1 routes
	router.Route("/api/v1", func(api chi.Router) {
		// Reference data
		api.Route("/catalog", func(cat chi.Router) {
			cat.Get("/vendors", r.handlers.Catalog.ListVendors)
			cat.Get("/vendors/{id}", r.handlers.Catalog.GetVendor)
			cat.Get("/industries", r.handlers.Catalog.ListIndustries)
			cat.Get("/industries/{id}", r.handlers.Catalog.GetIndustry)
			cat.Get("/frameworks", r.handlers.Catalog.ListFrameworks)
			cat.Get("/frameworks/{id}", r.handlers.Catalog.GetFramework)
		})

		// Analysis endpoints
		api.Route("/analysis", func(analysis chi.Router) {
			analysis.Post("/tco", r.handlers.Analysis.ComputeTco)
			analysis.Post("/compare", r.handlers.Analysis.Compare)
			analysis.Post("/roi", r.handlers.Analysis.ComputeRoi)
			analysis.Post("/compliance-score", r.handlers.Analysis.ScoreCompliance)
			analysis.Post("/risk-score", r.handlers.Analysis.ScoreRiskReduction)
		})

		// Saved reports
		api.Route("/reports", func(reports chi.Router) {
			reports.Get("/", r.handlers.Reports.List)
			reports.Get("/{id}", r.handlers.Reports.Get)
		})

		// Service stats
		api.Get("/stats", r.handlers.Stats.Get)

		// Admin endpoints
		api.Route("/admin", func(admin chi.Router) {
			admin.Use(apimiddleware.AdminAuth(r.config.Auth.AdminToken))
			admin.Post("/catalog/reload", r.handlers.Admin.ReloadCatalog)
		})
	})

	return router
}
