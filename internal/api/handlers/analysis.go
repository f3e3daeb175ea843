package handlers

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"time"

	"naccost-lab/internal/domain/models"
	"naccost-lab/internal/domain/services"
	"naccost-lab/internal/infrastructure/cache"
	"naccost-lab/internal/infrastructure/database/repository"
	"naccost-lab/internal/streaming"
	"naccost-lab/pkg/logger"
)

// comparisonCacheTTL bounds how long an identical comparison request is
// served from cache before being recomputed.
const comparisonCacheTTL = 5 * time.Minute

// AnalysisHandler serves the cost and risk analysis endpoints.
type AnalysisHandler struct {
	engine *services.Engine
	cache  *cache.RedisCache
	repos  *repository.Repositories
	bus    *streaming.EventBus
	logger *logger.Logger
}

// NewAnalysisHandler creates a new AnalysisHandler
func NewAnalysisHandler(engine *services.Engine, c *cache.RedisCache, repos *repository.Repositories, bus *streaming.EventBus, log *logger.Logger) *AnalysisHandler {
	return &AnalysisHandler{
		engine: engine,
		cache:  c,
		repos:  repos,
		bus:    bus,
		logger: log.WithComponent("analysis-handler"),
	}
}

type tcoRequest struct {
	VendorID     string                     `json:"vendor_id"`
	Organization models.OrganizationProfile `json:"organization"`
}

// ComputeTco handles POST /api/v1/analysis/tco
func (h *AnalysisHandler) ComputeTco(w http.ResponseWriter, r *http.Request) {
	var req tcoRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.engine.ComputeTco(req.VendorID, req.Organization)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

type compareRequest struct {
	VendorIDs    []string                   `json:"vendor_ids"`
	SubjectID    string                     `json:"subject_id"`
	Organization models.OrganizationProfile `json:"organization"`
}

// Compare handles POST /api/v1/analysis/compare. Identical requests are
// served from Redis within the cache window; fresh results are persisted
// as reports when a database is configured and announced on the event bus.
func (h *AnalysisHandler) Compare(w http.ResponseWriter, r *http.Request) {
	var req compareRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	digest := requestDigest(req)
	if h.cache != nil {
		var cached models.ComparisonResult
		if err := h.cache.GetCachedComparison(r.Context(), digest, &cached); err == nil {
			writeJSON(w, http.StatusOK, &cached)
			return
		}
	}

	result, err := h.engine.Compare(req.VendorIDs, req.SubjectID, req.Organization)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	if h.cache != nil {
		if err := h.cache.CacheComparison(r.Context(), digest, result, comparisonCacheTTL); err != nil {
			h.logger.Warn().Err(err).Msg("failed to cache comparison result")
		}
	}

	report := &models.Report{
		ID:        result.ID,
		SubjectID: req.SubjectID,
		Org:       req.Organization,
		VendorIDs: req.VendorIDs,
		Result:    *result,
		CreatedAt: result.GeneratedAt,
	}
	if h.repos != nil {
		if err := h.repos.Reports.Save(r.Context(), report); err != nil {
			h.logger.Error().Err(err).Msg("failed to persist comparison report")
		}
	}
	if h.bus != nil {
		h.bus.Publish(streaming.NewReportCompletedEvent(report))
	}

	writeJSON(w, http.StatusOK, result)
}

type roiRequest struct {
	SubjectID    string                     `json:"subject_id"`
	BaselineID   string                     `json:"baseline_id,omitempty"`
	Organization models.OrganizationProfile `json:"organization"`
}

// ComputeRoi handles POST /api/v1/analysis/roi
func (h *AnalysisHandler) ComputeRoi(w http.ResponseWriter, r *http.Request) {
	var req roiRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.engine.ComputeRoi(req.SubjectID, req.BaselineID, req.Organization)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

type complianceScoreRequest struct {
	VendorID     string   `json:"vendor_id"`
	FrameworkIDs []string `json:"framework_ids"`
}

type scoreResponse struct {
	VendorID string  `json:"vendor_id"`
	Score    float64 `json:"score"`
}

// ScoreCompliance handles POST /api/v1/analysis/compliance-score
func (h *AnalysisHandler) ScoreCompliance(w http.ResponseWriter, r *http.Request) {
	var req complianceScoreRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	score, err := h.engine.ScoreCompliance(req.VendorID, req.FrameworkIDs)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, scoreResponse{VendorID: req.VendorID, Score: score})
}

type riskScoreRequest struct {
	VendorID   string `json:"vendor_id"`
	IndustryID string `json:"industry_id"`
}

// ScoreRiskReduction handles POST /api/v1/analysis/risk-score
func (h *AnalysisHandler) ScoreRiskReduction(w http.ResponseWriter, r *http.Request) {
	var req riskScoreRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	score, err := h.engine.ScoreRiskReduction(req.VendorID, req.IndustryID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, scoreResponse{VendorID: req.VendorID, Score: score})
}

// requestDigest derives a stable cache key from the request payload
func requestDigest(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
