package services

import (
	"naccost-lab/internal/config"
	"naccost-lab/internal/domain/catalog"
	"naccost-lab/internal/domain/models"
	"naccost-lab/pkg/logger"
)

// Engine is the facade over the analysis services. It resolves catalog
// ids to records, turning misses into typed errors, and delegates the
// math to the individual calculators. Every call reads one consistent
// catalog snapshot.
type Engine struct {
	store      *catalog.Store
	calculator *CostCalculator
	ranker     *Ranker
	roi        *RoiCalculator
	scorer     *Scorer
	logger     *logger.Logger
}

// NewEngine creates a new Engine
func NewEngine(cfg config.EngineConfig, store *catalog.Store, log *logger.Logger) *Engine {
	calc := NewCostCalculator(cfg, log)
	return &Engine{
		store:      store,
		calculator: calc,
		ranker:     NewRanker(calc, log),
		roi:        NewRoiCalculator(cfg, log),
		scorer:     NewScorer(cfg.Scoring, log),
		logger:     log.WithComponent("engine"),
	}
}

// Catalog returns the current catalog snapshot.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.store.Get()
}

// ComputeTco calculates the TCO for one vendor against the scenario.
func (e *Engine) ComputeTco(vendorID string, org models.OrganizationProfile) (*models.TcoResult, error) {
	snap := e.store.Get()
	vendor, ok := snap.Vendor(vendorID)
	if !ok {
		return nil, &models.UnknownVendorError{ID: vendorID}
	}
	if org.IndustryID != "" {
		if _, ok := snap.Industry(org.IndustryID); !ok {
			return nil, &models.UnknownIndustryError{ID: org.IndustryID}
		}
	}
	return e.calculator.ComputeTco(vendor, org)
}

// Compare evaluates a vendor set against the scenario and ranks it.
// Duplicate ids in the request collapse to one entry.
func (e *Engine) Compare(vendorIDs []string, subjectID string, org models.OrganizationProfile) (*models.ComparisonResult, error) {
	snap := e.store.Get()
	if org.IndustryID != "" {
		if _, ok := snap.Industry(org.IndustryID); !ok {
			return nil, &models.UnknownIndustryError{ID: org.IndustryID}
		}
	}

	seen := make(map[string]struct{}, len(vendorIDs))
	vendors := make([]*models.VendorProfile, 0, len(vendorIDs))
	for _, id := range vendorIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		v, ok := snap.Vendor(id)
		if !ok {
			return nil, &models.UnknownVendorError{ID: id}
		}
		vendors = append(vendors, v)
	}

	return e.ranker.Compare(vendors, subjectID, org)
}

// ComputeRoi calculates ROI for the subject against the baseline vendor.
// An empty baseline id defaults to the no-NAC baseline. The scenario's
// industry is required for the avoided breach exposure figures.
func (e *Engine) ComputeRoi(subjectID, baselineID string, org models.OrganizationProfile) (*models.RoiResult, error) {
	if baselineID == "" {
		baselineID = models.BaselineVendorID
	}
	if org.IndustryID == "" {
		return nil, &models.InvalidInputError{Field: "industry_id", Reason: "required for roi analysis"}
	}

	snap := e.store.Get()
	subject, ok := snap.Vendor(subjectID)
	if !ok {
		return nil, &models.UnknownVendorError{ID: subjectID}
	}
	baseline, ok := snap.Vendor(baselineID)
	if !ok {
		return nil, &models.UnknownVendorError{ID: baselineID}
	}
	industry, ok := snap.Industry(org.IndustryID)
	if !ok {
		return nil, &models.UnknownIndustryError{ID: org.IndustryID}
	}

	subjectTco, err := e.calculator.ComputeTco(subject, org)
	if err != nil {
		return nil, err
	}
	baselineTco, err := e.calculator.ComputeTco(baseline, org)
	if err != nil {
		return nil, err
	}

	return e.roi.ComputeRoi(subject, subjectTco, baselineTco, industry)
}

// ScoreCompliance averages the vendor's coverage over the requested
// frameworks.
func (e *Engine) ScoreCompliance(vendorID string, frameworkIDs []string) (float64, error) {
	if len(frameworkIDs) == 0 {
		return 0, &models.InvalidInputError{Field: "framework_ids", Reason: "at least one framework is required"}
	}

	snap := e.store.Get()
	vendor, ok := snap.Vendor(vendorID)
	if !ok {
		return 0, &models.UnknownVendorError{ID: vendorID}
	}

	frameworks := make([]*models.ComplianceFramework, 0, len(frameworkIDs))
	for _, id := range frameworkIDs {
		f, ok := snap.Framework(id)
		if !ok {
			return 0, &models.UnknownFrameworkError{ID: id}
		}
		frameworks = append(frameworks, f)
	}

	return e.scorer.ScoreCompliance(vendor, frameworks), nil
}

// ScoreRiskReduction returns the vendor's industry-adjusted risk
// reduction score.
func (e *Engine) ScoreRiskReduction(vendorID, industryID string) (float64, error) {
	snap := e.store.Get()
	vendor, ok := snap.Vendor(vendorID)
	if !ok {
		return 0, &models.UnknownVendorError{ID: vendorID}
	}
	industry, ok := snap.Industry(industryID)
	if !ok {
		return 0, &models.UnknownIndustryError{ID: industryID}
	}
	return e.scorer.ScoreRiskReduction(vendor, industry), nil
}
