package handlers

import (
	"net/http"
	"time"

	"naccost-lab/internal/config"
	"naccost-lab/internal/domain/catalog"
	"naccost-lab/internal/infrastructure/cache"
	"naccost-lab/internal/streaming"
	"naccost-lab/pkg/logger"
)

// reloadLockTTL bounds how long a reload lock can be held if the holder
// dies mid-reload.
const reloadLockTTL = 30 * time.Second

// AdminHandler serves administrative operations.
type AdminHandler struct {
	catalogCfg config.CatalogConfig
	store      *catalog.Store
	cache      *cache.RedisCache
	bus        *streaming.EventBus
	logger     *logger.Logger
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(cfg config.CatalogConfig, store *catalog.Store, c *cache.RedisCache, bus *streaming.EventBus, log *logger.Logger) *AdminHandler {
	return &AdminHandler{
		catalogCfg: cfg,
		store:      store,
		cache:      c,
		bus:        bus,
		logger:     log.WithComponent("admin-handler"),
	}
}

type reloadResponse struct {
	Status         string `json:"status"`
	CatalogVersion string `json:"catalog_version"`
	TotalVendors   int    `json:"total_vendors"`
}

// ReloadCatalog handles POST /api/v1/admin/catalog/reload. The new
// snapshot is fully validated before it replaces the current one; a bad
// data file leaves the running catalog untouched.
func (h *AdminHandler) ReloadCatalog(w http.ResponseWriter, r *http.Request) {
	if h.cache != nil {
		acquired, err := h.cache.AcquireLock(r.Context(), "catalog-reload", reloadLockTTL)
		if err == nil && !acquired {
			writeError(w, http.StatusConflict, "catalog reload already in progress")
			return
		}
		if err == nil {
			defer func() {
				if err := h.cache.ReleaseLock(r.Context(), "catalog-reload"); err != nil {
					h.logger.Warn().Err(err).Msg("failed to release reload lock")
				}
			}()
		}
	}

	snapshot, err := catalog.Load(h.catalogCfg.DataDir, h.logger)
	if err != nil {
		h.logger.Error().Err(err).Msg("catalog reload failed")
		writeError(w, http.StatusUnprocessableEntity, "catalog reload failed: "+err.Error())
		return
	}

	h.store.Swap(snapshot)
	stats := snapshot.Stats()

	h.logger.Info().
		Str("version", snapshot.Version()).
		Int("vendors", stats.TotalVendors).
		Msg("catalog reloaded")

	if h.bus != nil {
		h.bus.Publish(streaming.NewCatalogReloadedEvent(snapshot.Version(), stats.TotalVendors))
	}

	writeJSON(w, http.StatusOK, reloadResponse{
		Status:         "reloaded",
		CatalogVersion: snapshot.Version(),
		TotalVendors:   stats.TotalVendors,
	})
}
