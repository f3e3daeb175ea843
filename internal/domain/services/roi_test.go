package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"naccost-lab/internal/domain/models"
	"naccost-lab/pkg/logger"
)

func testIndustry() *models.IndustryProfile {
	return &models.IndustryProfile{
		ID:                  "retail",
		Name:                "Retail",
		RiskLevel:           models.RiskElevated,
		AverageBreachCost:   1_000_000,
		IncidentProbability: 0.2,
	}
}

func TestComputeRoi(t *testing.T) {
	cfg := testEngineConfig()
	cfg.DiscountRate = 0 // keep cash flows undiscounted for exact math
	calc := NewRoiCalculator(cfg, logger.NewDefault())

	subject := &models.VendorProfile{
		ID:      "portnox",
		Pricing: models.Pricing{RiskReductionEffectiveness: 50},
	}
	subjectTco := &models.TcoResult{
		VendorID:    "portnox",
		Years:       3,
		TotalTco:    100000,
		OneTimeCost: 40000,
	}
	baselineTco := &models.TcoResult{VendorID: "cisco", Years: 3, TotalTco: 250000}

	result, err := calc.ComputeRoi(subject, subjectTco, baselineTco, testIndustry())
	require.NoError(t, err)

	// Benefit is the cost delta: 250000 - 100000
	assert.Equal(t, 150000.0, result.TotalBenefit)

	require.NotNil(t, result.RoiPercent)
	assert.Equal(t, 150.0, *result.RoiPercent)

	// 40000 one-time cost against a 150000/36 monthly benefit
	require.NotNil(t, result.PaybackMonths)
	assert.Equal(t, 9.6, *result.PaybackMonths)

	// At a 0% rate the NPV is the undiscounted benefit
	assert.Equal(t, 150000.0, result.Npv)
	assert.Equal(t, 0.0, result.DiscountRate)

	// Avoided exposure: 0.2 * $1M * 50%
	assert.Equal(t, 100000.0, result.AnnualRiskBenefit)
	assert.Equal(t, 300000.0, result.TotalRiskBenefit)
}

func TestComputeRoiDiscounted(t *testing.T) {
	calc := NewRoiCalculator(testEngineConfig(), logger.NewDefault())

	subject := &models.VendorProfile{ID: "portnox"}
	subjectTco := &models.TcoResult{VendorID: "portnox", Years: 3, TotalTco: 100000, OneTimeCost: 40000}
	baselineTco := &models.TcoResult{VendorID: "cisco", Years: 3, TotalTco: 250000}

	result, err := calc.ComputeRoi(subject, subjectTco, baselineTco, testIndustry())
	require.NoError(t, err)

	// Discounting shrinks the evenly spread 3x50000 stream below 150k
	assert.Less(t, result.Npv, 150000.0)
	assert.Greater(t, result.Npv, 0.0)
	assert.InDelta(t, 126564.73, result.Npv, 1.0)
	assert.Equal(t, 0.09, result.DiscountRate)
}

func TestComputeRoiNegativeBenefit(t *testing.T) {
	cfg := testEngineConfig()
	cfg.DiscountRate = 0
	calc := NewRoiCalculator(cfg, logger.NewDefault())

	// The subject costs more than the baseline; the benefit stays
	// negative, it is never clamped to zero.
	subject := &models.VendorProfile{ID: "cisco"}
	subjectTco := &models.TcoResult{VendorID: "cisco", Years: 3, TotalTco: 250000, OneTimeCost: 90000}
	baselineTco := &models.TcoResult{VendorID: "portnox", Years: 3, TotalTco: 100000}

	result, err := calc.ComputeRoi(subject, subjectTco, baselineTco, testIndustry())
	require.NoError(t, err)

	assert.Equal(t, -150000.0, result.TotalBenefit)
	require.NotNil(t, result.RoiPercent)
	assert.Equal(t, -60.0, *result.RoiPercent)
	// Payback is undefined when there is nothing to recoup
	assert.Nil(t, result.PaybackMonths)
	assert.Equal(t, -150000.0, result.Npv)
}

func TestComputeRoiZeroCostSubject(t *testing.T) {
	calc := NewRoiCalculator(testEngineConfig(), logger.NewDefault())

	// Comparing the baseline against itself: ROI divides by the subject
	// TCO, so it is undefined here, not zero.
	subject := &models.VendorProfile{ID: models.BaselineVendorID}
	zero := &models.TcoResult{VendorID: models.BaselineVendorID, Years: 3}

	result, err := calc.ComputeRoi(subject, zero, zero, testIndustry())
	require.NoError(t, err)

	assert.Nil(t, result.RoiPercent)
	assert.Nil(t, result.PaybackMonths)
	assert.Equal(t, 0.0, result.TotalBenefit)
	assert.Equal(t, 0.0, result.Npv)
}

func TestComputeRoiHorizonMismatch(t *testing.T) {
	calc := NewRoiCalculator(testEngineConfig(), logger.NewDefault())

	subject := &models.VendorProfile{ID: "portnox"}
	subjectTco := &models.TcoResult{VendorID: "portnox", Years: 3}
	baselineTco := &models.TcoResult{VendorID: models.BaselineVendorID, Years: 5}

	_, err := calc.ComputeRoi(subject, subjectTco, baselineTco, testIndustry())
	var invalid *models.InvalidInputError
	require.ErrorAs(t, err, &invalid)
}
