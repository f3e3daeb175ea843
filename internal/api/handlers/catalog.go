package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"naccost-lab/internal/domain/catalog"
	"naccost-lab/internal/domain/models"
	"naccost-lab/pkg/logger"
)

// CatalogHandler serves the reference data: vendors, industries, and
// compliance frameworks.
type CatalogHandler struct {
	store  *catalog.Store
	logger *logger.Logger
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(store *catalog.Store, log *logger.Logger) *CatalogHandler {
	return &CatalogHandler{
		store:  store,
		logger: log.WithComponent("catalog-handler"),
	}
}

// ListVendors handles GET /api/v1/catalog/vendors
func (h *CatalogHandler) ListVendors(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Get().Vendors())
}

// GetVendor handles GET /api/v1/catalog/vendors/{id}
func (h *CatalogHandler) GetVendor(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	vendor, ok := h.store.Get().Vendor(id)
	if !ok {
		writeDomainError(w, &models.UnknownVendorError{ID: id})
		return
	}
	writeJSON(w, http.StatusOK, vendor)
}

// ListIndustries handles GET /api/v1/catalog/industries
func (h *CatalogHandler) ListIndustries(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Get().Industries())
}

// GetIndustry handles GET /api/v1/catalog/industries/{id}
func (h *CatalogHandler) GetIndustry(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	industry, ok := h.store.Get().Industry(id)
	if !ok {
		writeDomainError(w, &models.UnknownIndustryError{ID: id})
		return
	}
	writeJSON(w, http.StatusOK, industry)
}

// ListFrameworks handles GET /api/v1/catalog/frameworks
func (h *CatalogHandler) ListFrameworks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Get().Frameworks())
}

// GetFramework handles GET /api/v1/catalog/frameworks/{id}
func (h *CatalogHandler) GetFramework(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	framework, ok := h.store.Get().Framework(id)
	if !ok {
		writeDomainError(w, &models.UnknownFrameworkError{ID: id})
		return
	}
	writeJSON(w, http.StatusOK, framework)
}
