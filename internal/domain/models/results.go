package models

import (
	"time"

	"github.com/google/uuid"
)

// CostBreakdown partitions a TCO into its cost categories. The categories
// always sum to the total; the total is defined as their sum.
type CostBreakdown struct {
	Hardware       float64 `json:"hardware"`
	Software       float64 `json:"software"`
	Implementation float64 `json:"implementation"`
	Maintenance    float64 `json:"maintenance"`
	Personnel      float64 `json:"personnel"`
	Training       float64 `json:"training"`
}

// Total returns the sum of all categories.
func (b CostBreakdown) Total() float64 {
	return b.Hardware + b.Software + b.Implementation + b.Maintenance + b.Personnel + b.Training
}

// TcoResult is the outcome of one vendor TCO calculation.
type TcoResult struct {
	VendorID   string `json:"vendor_id"`
	VendorName string `json:"vendor_name,omitempty"`
	Years      int    `json:"years"`

	TotalTco            float64       `json:"total_tco"`
	CostBreakdown       CostBreakdown `json:"cost_breakdown"`
	OneTimeCost         float64       `json:"one_time_cost"`
	AnnualRecurringCost float64       `json:"annual_recurring_cost"`

	ImplementationDays int     `json:"implementation_days"`
	FteRequired        float64 `json:"fte_required"`
}

// Comparison criteria identifiers used in best-in-class maps.
const (
	CriterionTco                = "tco"
	CriterionImplementationDays = "implementation_days"
	CriterionFteRequired        = "fte_required"
	CriterionRoi                = "roi"
	CriterionRiskReduction      = "risk_reduction"
	CriterionComplianceCoverage = "compliance_coverage"
	CriterionZeroTrust          = "zero_trust"
)

// ComparisonResult holds the comparative metrics for a vendor set.
type ComparisonResult struct {
	ID        uuid.UUID `json:"id"`
	SubjectID string    `json:"subject_id"`

	// Savings is the subject's advantage over the most expensive
	// non-baseline competitor. Negative when the subject costs more.
	Savings        float64 `json:"savings"`
	SavingsPercent int     `json:"savings_percent"`

	// Ranking is sorted by ascending TCO; ties break on vendor id.
	Ranking []TcoResult `json:"ranking"`

	// BestInClass maps each criterion to the vendor id(s) achieving the
	// optimal value. Ties yield multiple winners.
	BestInClass map[string][]string `json:"best_in_class"`

	GeneratedAt time.Time `json:"generated_at"`
}

// RoiResult holds return-on-investment metrics for a subject vendor
// against an explicit baseline TCO. The benefit is the cost delta between
// baseline and subject; it may be negative when the subject costs more.
// RoiPercent is nil for a zero-cost subject and PaybackMonths is nil when
// the benefit is not positive; both are normal business outcomes, not
// errors.
type RoiResult struct {
	SubjectID  string `json:"subject_id,omitempty"`
	BaselineID string `json:"baseline_id,omitempty"`
	Years      int    `json:"years"`

	TotalBenefit  float64  `json:"total_benefit"`
	RoiPercent    *float64 `json:"roi_percent"`
	PaybackMonths *float64 `json:"payback_months"`
	Npv           float64  `json:"npv"`
	DiscountRate  float64  `json:"discount_rate"`

	// Breach exposure avoided by the subject's risk reduction, reported
	// alongside the cost delta metrics.
	AnnualRiskBenefit float64 `json:"annual_risk_benefit"`
	TotalRiskBenefit  float64 `json:"total_risk_benefit"`
}

// CatalogStats summarizes the loaded catalog for the stats endpoint.
type CatalogStats struct {
	Version             string         `json:"version"`
	TotalVendors        int            `json:"total_vendors"`
	VendorsByDeployment map[string]int `json:"vendors_by_deployment"`
	VendorsByPricing    map[string]int `json:"vendors_by_pricing"`
	TotalIndustries     int            `json:"total_industries"`
	TotalFrameworks     int            `json:"total_frameworks"`
	LoadedAt            time.Time      `json:"loaded_at"`
}
