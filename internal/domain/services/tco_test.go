package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"naccost-lab/internal/config"
	"naccost-lab/internal/domain/models"
	"naccost-lab/pkg/logger"
)

func testEngineConfig() config.EngineConfig {
	return config.EngineConfig{
		DefaultFteAnnualCost: 100000,
		DiscountRate:         0.09,
		Multipliers: config.MultiplierConfig{
			LocationFactor: 0.10,
		},
		Scoring: config.ScoringConfig{
			HighRiskMultiplier: 1.0,
		},
	}
}

func subscriptionVendor() *models.VendorProfile {
	return &models.VendorProfile{
		ID:         "portnox",
		Name:       "Portnox Cloud",
		Deployment: models.DeploymentCloud,
		Pricing: models.Pricing{
			Model:                   models.PricingSubscription,
			BasePrice:               3.00,
			ImplementationDailyRate: 1500,
			Bands: []models.PriceBand{
				{UpTo: 1000, ImplementationDays: 14, FteRequired: 0.15},
				{UpTo: 5000, ImplementationDays: 21, FteRequired: 0.25},
				{UpTo: 10000, ImplementationDays: 30, FteRequired: 0.5},
				{ImplementationDays: 45, FteRequired: 0.75},
			},
			RiskReductionEffectiveness: 85,
		},
	}
}

func perpetualVendor() *models.VendorProfile {
	return &models.VendorProfile{
		ID:         "cisco",
		Name:       "Cisco ISE",
		Deployment: models.DeploymentOnPremises,
		Pricing: models.Pricing{
			Model:                   models.PricingPerpetual,
			BasePrice:               85.00,
			MaintenancePercentage:   20,
			ImplementationDailyRate: 2000,
			Bands: []models.PriceBand{
				{UpTo: 1000, ImplementationDays: 45, FteRequired: 0.5, HardwareCost: 50000},
				{UpTo: 5000, ImplementationDays: 90, FteRequired: 1.0, HardwareCost: 120000},
				{UpTo: 10000, ImplementationDays: 120, FteRequired: 1.5, HardwareCost: 200000},
				{ImplementationDays: 180, FteRequired: 2.0, HardwareCost: 350000},
			},
			RiskReductionEffectiveness: 75,
		},
	}
}

func baselineVendor() *models.VendorProfile {
	return &models.VendorProfile{
		ID:         models.BaselineVendorID,
		Name:       "No NAC",
		Deployment: models.DeploymentOnPremises,
		Pricing: models.Pricing{
			Model: models.PricingPerpetual,
			Bands: []models.PriceBand{{UpTo: 1000}, {}},
		},
	}
}

func TestComputeTcoSubscription(t *testing.T) {
	calc := NewCostCalculator(testEngineConfig(), logger.NewDefault())

	org := models.OrganizationProfile{
		DeviceCount:   1000,
		Years:         3,
		FteAnnualCost: 150000,
	}

	result, err := calc.ComputeTco(subscriptionVendor(), org)
	require.NoError(t, err)

	// 1000 devices at $3.00/device/month plus 0.25 FTE at $150k
	assert.Equal(t, 73500.0, result.AnnualRecurringCost)
	// 21 implementation days at $1500/day
	assert.Equal(t, 31500.0, result.OneTimeCost)
	assert.Equal(t, 252000.0, result.TotalTco)

	assert.Equal(t, 21, result.ImplementationDays)
	assert.Equal(t, 0.25, result.FteRequired)
	assert.Equal(t, 0.0, result.CostBreakdown.Hardware)
	assert.Equal(t, 0.0, result.CostBreakdown.Maintenance)
	assert.Equal(t, 108000.0, result.CostBreakdown.Software)
	assert.Equal(t, 112500.0, result.CostBreakdown.Personnel)
}

func TestComputeTcoPerpetual(t *testing.T) {
	calc := NewCostCalculator(testEngineConfig(), logger.NewDefault())

	org := models.OrganizationProfile{
		DeviceCount: 500,
		Years:       3,
	}

	result, err := calc.ComputeTco(perpetualVendor(), org)
	require.NoError(t, err)

	// 500 devices at $85 one-time license
	assert.Equal(t, 42500.0, result.CostBreakdown.Software)
	// 20% annual maintenance on the license over 3 years
	assert.Equal(t, 25500.0, result.CostBreakdown.Maintenance)
	assert.Equal(t, 50000.0, result.CostBreakdown.Hardware)
	// 45 days at $2000/day
	assert.Equal(t, 90000.0, result.CostBreakdown.Implementation)
	// 0.5 FTE at the configured default of $100k
	assert.Equal(t, 150000.0, result.CostBreakdown.Personnel)
}

func TestComputeTcoBandBoundary(t *testing.T) {
	calc := NewCostCalculator(testEngineConfig(), logger.NewDefault())
	vendor := subscriptionVendor()

	below, err := calc.ComputeTco(vendor, models.OrganizationProfile{DeviceCount: 999, Years: 1})
	require.NoError(t, err)
	assert.Equal(t, 14, below.ImplementationDays)
	assert.Equal(t, 0.15, below.FteRequired)

	// The boundary itself belongs to the next band
	at, err := calc.ComputeTco(vendor, models.OrganizationProfile{DeviceCount: 1000, Years: 1})
	require.NoError(t, err)
	assert.Equal(t, 21, at.ImplementationDays)
	assert.Equal(t, 0.25, at.FteRequired)

	// Device counts beyond the last bound use the open-ended band
	top, err := calc.ComputeTco(vendor, models.OrganizationProfile{DeviceCount: 50000, Years: 1})
	require.NoError(t, err)
	assert.Equal(t, 45, top.ImplementationDays)
	assert.Equal(t, 0.75, top.FteRequired)
}

func TestComputeTcoBaselineIsFree(t *testing.T) {
	calc := NewCostCalculator(testEngineConfig(), logger.NewDefault())

	result, err := calc.ComputeTco(baselineVendor(), models.OrganizationProfile{DeviceCount: 5000, Years: 5})
	require.NoError(t, err)

	assert.Equal(t, 0.0, result.TotalTco)
	assert.Equal(t, 0.0, result.OneTimeCost)
	assert.Equal(t, 0.0, result.AnnualRecurringCost)
	assert.Equal(t, 0.0, result.FteRequired)
	assert.Equal(t, models.CostBreakdown{}, result.CostBreakdown)
}

func TestComputeTcoTrainingCost(t *testing.T) {
	cfg := testEngineConfig()
	cfg.TrainingCostPerUser = 100
	calc := NewCostCalculator(cfg, logger.NewDefault())

	org := models.OrganizationProfile{DeviceCount: 500, Years: 1, UsersToTrain: 10}

	result, err := calc.ComputeTco(subscriptionVendor(), org)
	require.NoError(t, err)
	assert.Equal(t, 1000.0, result.CostBreakdown.Training)

	// The baseline stays free even with a configured training rate
	baseline, err := calc.ComputeTco(baselineVendor(), org)
	require.NoError(t, err)
	assert.Equal(t, 0.0, baseline.CostBreakdown.Training)
	assert.Equal(t, 0.0, baseline.TotalTco)
}

func TestComputeTcoBreakdownSumsToTotal(t *testing.T) {
	calc := NewCostCalculator(testEngineConfig(), logger.NewDefault())

	orgs := []models.OrganizationProfile{
		{DeviceCount: 50, Years: 1},
		{DeviceCount: 2500, Years: 3, Locations: 4, UsersToTrain: 100},
		{DeviceCount: 12000, Years: 5, HasBYOD: true, HasLegacyDevices: true},
	}
	vendors := []*models.VendorProfile{subscriptionVendor(), perpetualVendor(), baselineVendor()}

	for _, org := range orgs {
		for _, vendor := range vendors {
			result, err := calc.ComputeTco(vendor, org)
			require.NoError(t, err)
			assert.Equal(t, result.CostBreakdown.Total(), result.TotalTco,
				"breakdown must sum to total for %s", vendor.ID)
		}
	}
}

func TestComputeTcoLocationMultiplier(t *testing.T) {
	calc := NewCostCalculator(testEngineConfig(), logger.NewDefault())
	vendor := perpetualVendor()

	single, err := calc.ComputeTco(vendor, models.OrganizationProfile{DeviceCount: 500, Years: 1})
	require.NoError(t, err)

	// Three locations scale hardware and implementation by 1.2
	multi, err := calc.ComputeTco(vendor, models.OrganizationProfile{DeviceCount: 500, Years: 1, Locations: 3})
	require.NoError(t, err)

	assert.Equal(t, single.CostBreakdown.Hardware*1.2, multi.CostBreakdown.Hardware)
	assert.Equal(t, single.CostBreakdown.Implementation*1.2, multi.CostBreakdown.Implementation)
	// Run costs are unaffected by site count
	assert.Equal(t, single.CostBreakdown.Software, multi.CostBreakdown.Software)
	assert.Equal(t, single.CostBreakdown.Personnel, multi.CostBreakdown.Personnel)
}

func TestComputeTcoDeterministic(t *testing.T) {
	calc := NewCostCalculator(testEngineConfig(), logger.NewDefault())
	org := models.OrganizationProfile{DeviceCount: 3000, Years: 4, Locations: 2}

	first, err := calc.ComputeTco(perpetualVendor(), org)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := calc.ComputeTco(perpetualVendor(), org)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestComputeTcoInvalidInput(t *testing.T) {
	calc := NewCostCalculator(testEngineConfig(), logger.NewDefault())

	cases := []struct {
		name string
		org  models.OrganizationProfile
	}{
		{"zero devices", models.OrganizationProfile{DeviceCount: 0, Years: 3}},
		{"negative devices", models.OrganizationProfile{DeviceCount: -5, Years: 3}},
		{"zero years", models.OrganizationProfile{DeviceCount: 100, Years: 0}},
		{"negative training", models.OrganizationProfile{DeviceCount: 100, Years: 1, UsersToTrain: -1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := calc.ComputeTco(subscriptionVendor(), tc.org)
			var invalid *models.InvalidInputError
			require.ErrorAs(t, err, &invalid)
		})
	}
}
