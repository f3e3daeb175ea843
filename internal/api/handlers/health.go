package handlers

import (
	"context"
	"net/http"
	"time"

	"naccost-lab/internal/domain/catalog"
	"naccost-lab/internal/infrastructure/cache"
	"naccost-lab/internal/infrastructure/database/repository"
	"naccost-lab/pkg/logger"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	cache     *cache.RedisCache
	repos     *repository.Repositories
	store     *catalog.Store
	logger    *logger.Logger
	startTime time.Time
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(c *cache.RedisCache, repos *repository.Repositories, store *catalog.Store, log *logger.Logger) *HealthHandler {
	return &HealthHandler{
		cache:     c,
		repos:     repos,
		store:     store,
		logger:    log.WithComponent("health"),
		startTime: time.Now(),
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status         string            `json:"status"`
	Version        string            `json:"version"`
	CatalogVersion string            `json:"catalog_version"`
	Uptime         string            `json:"uptime"`
	Timestamp      string            `json:"timestamp"`
	Checks         map[string]string `json:"checks,omitempty"`
}

// Check handles GET /health
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:         "healthy",
		Version:        "1.0.0",
		CatalogVersion: h.store.Get().Version(),
		Uptime:         time.Since(h.startTime).String(),
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
	})
}

// Ready handles GET /ready - checks all dependencies
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	checks := make(map[string]string)
	status := http.StatusOK
	overallStatus := "ready"

	if h.cache != nil {
		if err := h.cache.Client().Ping(r.Context()).Err(); err != nil {
			checks["redis"] = "unhealthy: " + err.Error()
			status = http.StatusServiceUnavailable
			overallStatus = "not ready"
		} else {
			checks["redis"] = "healthy"
		}
	} else {
		checks["redis"] = "not configured"
	}

	if h.repos != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if _, err := h.repos.Reports.Count(ctx); err != nil {
			checks["postgres"] = "unhealthy: " + err.Error()
			status = http.StatusServiceUnavailable
			overallStatus = "not ready"
		} else {
			checks["postgres"] = "healthy"
		}
	} else {
		checks["postgres"] = "not configured"
	}

	checks["catalog"] = "healthy"

	writeJSON(w, status, HealthResponse{
		Status:         overallStatus,
		Version:        "1.0.0",
		CatalogVersion: h.store.Get().Version(),
		Uptime:         time.Since(h.startTime).String(),
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
		Checks:         checks,
	})
}
