package services

import (
	"math"

	"naccost-lab/internal/config"
	"naccost-lab/internal/domain/models"
	"naccost-lab/pkg/logger"
)

// CostCalculator computes total cost of ownership for one vendor against
// one organization scenario. All policy knobs (FTE cost default, training
// cost, multipliers) come from configuration.
type CostCalculator struct {
	config config.EngineConfig
	logger *logger.Logger
}

// NewCostCalculator creates a new CostCalculator
func NewCostCalculator(cfg config.EngineConfig, log *logger.Logger) *CostCalculator {
	return &CostCalculator{
		config: cfg,
		logger: log.WithComponent("cost-calculator"),
	}
}

// ComputeTco calculates the full TCO for a vendor over the scenario's
// analysis horizon. Band values are step functions of the device count;
// no interpolation happens between bands. The breakdown categories sum
// to the total by construction.
func (c *CostCalculator) ComputeTco(vendor *models.VendorProfile, org models.OrganizationProfile) (*models.TcoResult, error) {
	if err := org.Validate(); err != nil {
		return nil, err
	}

	band := vendor.Pricing.BandFor(org.DeviceCount)
	years := float64(org.Years)
	devices := float64(org.DeviceCount)

	// Multi-site deployments scale hardware and implementation; the
	// factor is additive per site beyond the first.
	siteFactor := 1 + float64(org.EffectiveLocations()-1)*c.config.Multipliers.LocationFactor

	// Legacy fleets and BYOD raise rollout complexity, not run cost.
	complexity := 1.0
	if org.HasLegacyDevices {
		complexity += c.config.Multipliers.LegacyFactor
	}
	if org.HasBYOD {
		complexity += c.config.Multipliers.ByodFactor
	}

	fteCost := org.FteAnnualCost
	if fteCost == 0 {
		fteCost = c.config.DefaultFteAnnualCost
	}

	var (
		licenseCost       float64 // one-time
		annualSoftware    float64
		annualMaintenance float64
	)
	switch vendor.Pricing.Model {
	case models.PricingSubscription:
		// Subscription base prices are per device per month.
		annualSoftware = devices * vendor.Pricing.BasePrice * 12
	default:
		// Perpetual and hybrid licenses are a one-time per device cost
		// with annual maintenance as a percentage of the license.
		licenseCost = devices * vendor.Pricing.BasePrice
		annualMaintenance = licenseCost * vendor.Pricing.MaintenancePercentage / 100
	}

	hardware := band.HardwareCost * siteFactor
	implementation := float64(band.ImplementationDays) * vendor.Pricing.ImplementationDailyRate * siteFactor * complexity
	annualPersonnel := band.FteRequired * fteCost

	// The baseline deploys nothing, so there is nobody to train.
	training := 0.0
	if !vendor.IsBaseline() {
		training = float64(org.UsersToTrain) * c.config.TrainingCostPerUser
	}

	breakdown := models.CostBreakdown{
		Hardware:       roundCents(hardware),
		Software:       roundCents(licenseCost + annualSoftware*years),
		Implementation: roundCents(implementation),
		Maintenance:    roundCents(annualMaintenance * years),
		Personnel:      roundCents(annualPersonnel * years),
		Training:       roundCents(training),
	}

	result := &models.TcoResult{
		VendorID:            vendor.ID,
		VendorName:          vendor.Name,
		Years:               org.Years,
		TotalTco:            breakdown.Total(),
		CostBreakdown:       breakdown,
		OneTimeCost:         roundCents(hardware + licenseCost + implementation + training),
		AnnualRecurringCost: roundCents(annualSoftware + annualMaintenance + annualPersonnel),
		ImplementationDays:  band.ImplementationDays,
		FteRequired:         band.FteRequired,
	}

	c.logger.Debug().
		Str("vendor_id", vendor.ID).
		Int("device_count", org.DeviceCount).
		Int("years", org.Years).
		Float64("total_tco", result.TotalTco).
		Msg("Computed TCO")

	return result, nil
}

// roundCents rounds a currency amount to two decimal places.
func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
