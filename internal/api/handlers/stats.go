package handlers

import (
	"net/http"

	"naccost-lab/internal/domain/catalog"
	"naccost-lab/internal/domain/models"
	"naccost-lab/internal/infrastructure/database/repository"
	"naccost-lab/internal/streaming"
	"naccost-lab/pkg/logger"
)

// StatsHandler serves service statistics.
type StatsHandler struct {
	store  *catalog.Store
	repos  *repository.Repositories
	hub    *streaming.WebSocketHub
	logger *logger.Logger
}

// NewStatsHandler creates a new StatsHandler
func NewStatsHandler(store *catalog.Store, repos *repository.Repositories, hub *streaming.WebSocketHub, log *logger.Logger) *StatsHandler {
	return &StatsHandler{
		store:  store,
		repos:  repos,
		hub:    hub,
		logger: log.WithComponent("stats-handler"),
	}
}

// StatsResponse aggregates catalog and service statistics
type StatsResponse struct {
	Catalog          models.CatalogStats `json:"catalog"`
	TotalReports     int64               `json:"total_reports"`
	ConnectedClients int                 `json:"connected_clients"`
}

// Get handles GET /api/v1/stats
func (h *StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	resp := StatsResponse{
		Catalog: h.store.Get().Stats(),
	}

	if h.repos != nil {
		count, err := h.repos.Reports.Count(r.Context())
		if err != nil {
			h.logger.Warn().Err(err).Msg("failed to count reports")
		} else {
			resp.TotalReports = count
		}
	}
	if h.hub != nil {
		resp.ConnectedClients = h.hub.ClientCount()
	}

	writeJSON(w, http.StatusOK, resp)
}
