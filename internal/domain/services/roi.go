package services

import (
	"math"

	"naccost-lab/internal/config"
	"naccost-lab/internal/domain/models"
	"naccost-lab/pkg/logger"
)

// RoiCalculator derives return-on-investment metrics for a subject vendor
// against an explicit baseline TCO. The benefit is the TCO delta between
// baseline and subject; the avoided breach exposure (incident probability
// times average breach cost, scaled by the subject's risk reduction
// effectiveness) is reported alongside it.
type RoiCalculator struct {
	config config.EngineConfig
	logger *logger.Logger
}

// NewRoiCalculator creates a new RoiCalculator
func NewRoiCalculator(cfg config.EngineConfig, log *logger.Logger) *RoiCalculator {
	return &RoiCalculator{
		config: cfg,
		logger: log.WithComponent("roi-calculator"),
	}
}

// ComputeRoi calculates ROI, payback period, and NPV for choosing the
// subject over the baseline. The total benefit is the baseline TCO minus
// the subject TCO and stays negative when the subject costs more.
// RoiPercent is nil for a zero-cost subject and PaybackMonths is nil when
// the monthly benefit is not positive; both are legitimate outcomes, not
// errors. NPV spreads the benefit evenly across the horizon and discounts
// it at the configured rate.
func (r *RoiCalculator) ComputeRoi(subject *models.VendorProfile, subjectTco, baselineTco *models.TcoResult, industry *models.IndustryProfile) (*models.RoiResult, error) {
	if subjectTco.Years != baselineTco.Years {
		return nil, &models.InvalidInputError{Field: "years", Reason: "subject and baseline horizons must match"}
	}
	years := subjectTco.Years

	totalBenefit := baselineTco.TotalTco - subjectTco.TotalTco

	var roiPercent *float64
	if subjectTco.TotalTco > 0 {
		v := roundCents(totalBenefit / subjectTco.TotalTco * 100)
		roiPercent = &v
	}

	monthlyBenefit := totalBenefit / (float64(years) * 12)
	var paybackMonths *float64
	if monthlyBenefit > 0 {
		v := math.Round(subjectTco.OneTimeCost/monthlyBenefit*10) / 10
		paybackMonths = &v
	}

	annualBenefit := totalBenefit / float64(years)
	npv := 0.0
	for t := 1; t <= years; t++ {
		npv += annualBenefit / math.Pow(1+r.config.DiscountRate, float64(t))
	}

	annualRiskBenefit := industry.IncidentProbability * industry.AverageBreachCost *
		float64(subject.Pricing.RiskReductionEffectiveness) / 100

	result := &models.RoiResult{
		SubjectID:         subjectTco.VendorID,
		BaselineID:        baselineTco.VendorID,
		Years:             years,
		TotalBenefit:      roundCents(totalBenefit),
		RoiPercent:        roiPercent,
		PaybackMonths:     paybackMonths,
		Npv:               roundCents(npv),
		DiscountRate:      r.config.DiscountRate,
		AnnualRiskBenefit: roundCents(annualRiskBenefit),
		TotalRiskBenefit:  roundCents(annualRiskBenefit * float64(years)),
	}

	r.logger.Debug().
		Str("subject_id", result.SubjectID).
		Str("baseline_id", result.BaselineID).
		Float64("npv", result.Npv).
		Msg("Computed ROI")

	return result, nil
}
