package handlers

import (
	"naccost-lab/internal/config"
	"naccost-lab/internal/domain/catalog"
	"naccost-lab/internal/domain/services"
	"naccost-lab/internal/infrastructure/cache"
	"naccost-lab/internal/infrastructure/database/repository"
	"naccost-lab/internal/streaming"
	"naccost-lab/pkg/logger"
)

// Handlers holds all API handlers
type Handlers struct {
	Health    *HealthHandler
	Catalog   *CatalogHandler
	Analysis  *AnalysisHandler
	Reports   *ReportsHandler
	Stats     *StatsHandler
	Admin     *AdminHandler
	Streaming *StreamingHandler
}

// Dependencies holds dependencies for handlers. Cache, Repos, Bus, and
// Hub may be nil; handlers degrade to compute-only behavior without them.
type Dependencies struct {
	Config *config.Config
	Engine *services.Engine
	Store  *catalog.Store
	Cache  *cache.RedisCache
	Repos  *repository.Repositories
	Bus    *streaming.EventBus
	Hub    *streaming.WebSocketHub
	Logger *logger.Logger
}

// NewHandlers creates all handlers
func NewHandlers(deps Dependencies) *Handlers {
	return &Handlers{
		Health:    NewHealthHandler(deps.Cache, deps.Repos, deps.Store, deps.Logger),
		Catalog:   NewCatalogHandler(deps.Store, deps.Logger),
		Analysis:  NewAnalysisHandler(deps.Engine, deps.Cache, deps.Repos, deps.Bus, deps.Logger),
		Reports:   NewReportsHandler(deps.Repos, deps.Logger),
		Stats:     NewStatsHandler(deps.Store, deps.Repos, deps.Hub, deps.Logger),
		Admin:     NewAdminHandler(deps.Config.Catalog, deps.Store, deps.Cache, deps.Bus, deps.Logger),
		Streaming: NewStreamingHandler(deps.Hub, deps.Logger),
	}
}
