package services

import (
	"math"

	"naccost-lab/internal/config"
	"naccost-lab/internal/domain/models"
	"naccost-lab/pkg/logger"
)

// Scorer calculates compliance coverage and risk reduction scores for
// vendors. Coverage is read from the vendor's static per-framework scores;
// it is never derived from framework requirement lists.
type Scorer struct {
	config config.ScoringConfig
	logger *logger.Logger
}

// NewScorer creates a new Scorer
func NewScorer(cfg config.ScoringConfig, log *logger.Logger) *Scorer {
	return &Scorer{
		config: cfg,
		logger: log.WithComponent("scorer"),
	}
}

// ScoreCompliance averages the vendor's coverage over the requested
// frameworks on a 0-100 scale, rounded to the nearest integer. A
// framework the vendor does not score counts as zero coverage, it is not
// skipped. The default is an unweighted mean; with relevance weighting
// enabled each framework contributes proportionally to its NAC relevance.
func (s *Scorer) ScoreCompliance(vendor *models.VendorProfile, frameworks []*models.ComplianceFramework) float64 {
	if len(frameworks) == 0 {
		return 0
	}

	if s.config.WeightByRelevance {
		var weightedSum, totalWeight float64
		for _, f := range frameworks {
			w := float64(f.NACRelevance)
			weightedSum += float64(vendor.ComplianceScores[f.ID]) * w
			totalWeight += w
		}
		if totalWeight == 0 {
			return 0
		}
		return math.Round(weightedSum / totalWeight)
	}

	sum := 0
	for _, f := range frameworks {
		sum += vendor.ComplianceScores[f.ID]
	}
	return math.Round(float64(sum) / float64(len(frameworks)))
}

// ScoreRiskReduction returns the vendor's risk reduction effectiveness on
// a 0-100 scale, adjusted by the configured multiplier for high-risk and
// regulated industries and clamped to the scale.
func (s *Scorer) ScoreRiskReduction(vendor *models.VendorProfile, industry *models.IndustryProfile) float64 {
	score := float64(vendor.Pricing.RiskReductionEffectiveness)
	if industry != nil && industry.RiskLevel.IsHigh() {
		score *= s.config.HighRiskMultiplier
	}
	return clamp(score, 0, 100)
}

// clamp limits a value to the [min, max] range.
func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
