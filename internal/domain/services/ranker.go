package services

import (
	"math"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"naccost-lab/internal/domain/models"
	"naccost-lab/pkg/logger"
)

// Ranker produces comparative metrics across a vendor set: savings for a
// subject vendor, an ascending TCO ranking, and per-criterion best-in-class
// winners.
type Ranker struct {
	calculator *CostCalculator
	logger     *logger.Logger
}

// NewRanker creates a new Ranker
func NewRanker(calc *CostCalculator, log *logger.Logger) *Ranker {
	return &Ranker{
		calculator: calc,
		logger:     log.WithComponent("ranker"),
	}
}

// Compare evaluates every vendor in the set against the same scenario and
// derives the comparative metrics. The subject must be part of the set and
// the set must contain at least two non-baseline vendors; savings against
// nothing is undefined, not zero. Vendor TCOs are independent, so they are
// computed concurrently.
func (r *Ranker) Compare(vendors []*models.VendorProfile, subjectID string, org models.OrganizationProfile) (*models.ComparisonResult, error) {
	if err := org.Validate(); err != nil {
		return nil, err
	}

	nonBaseline := 0
	subjectInSet := false
	for _, v := range vendors {
		if !v.IsBaseline() {
			nonBaseline++
		}
		if v.ID == subjectID {
			subjectInSet = true
		}
	}
	if nonBaseline < 2 {
		return nil, &models.InsufficientComparisonSetError{NonBaseline: nonBaseline}
	}
	if !subjectInSet {
		return nil, &models.InvalidInputError{Field: "subject_id", Reason: "subject must be part of the compared vendor set"}
	}

	results := make([]models.TcoResult, len(vendors))
	errs := make([]error, len(vendors))

	var wg sync.WaitGroup
	for i, v := range vendors {
		wg.Add(1)
		go func(i int, v *models.VendorProfile) {
			defer wg.Done()
			res, err := r.calculator.ComputeTco(v, org)
			if err != nil {
				errs[i] = err
				return
			}
			results[i] = *res
		}(i, v)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	// Ascending TCO, ties broken on vendor id for a deterministic order.
	sort.Slice(results, func(i, j int) bool {
		if results[i].TotalTco != results[j].TotalTco {
			return results[i].TotalTco < results[j].TotalTco
		}
		return results[i].VendorID < results[j].VendorID
	})

	savings, savingsPercent := r.subjectSavings(results, subjectID)

	comparison := &models.ComparisonResult{
		ID:             uuid.New(),
		SubjectID:      subjectID,
		Savings:        savings,
		SavingsPercent: savingsPercent,
		Ranking:        results,
		BestInClass:    r.bestInClass(vendors, results),
		GeneratedAt:    time.Now().UTC(),
	}

	r.logger.Info().
		Str("subject_id", subjectID).
		Int("vendors", len(vendors)).
		Float64("savings", savings).
		Msg("Comparison completed")

	return comparison, nil
}

// subjectSavings measures the subject's advantage over the most expensive
// non-baseline competitor. Negative savings mean the subject costs more.
func (r *Ranker) subjectSavings(results []models.TcoResult, subjectID string) (float64, int) {
	var subjectTco float64
	maxCompetitor := math.Inf(-1)
	for _, res := range results {
		if res.VendorID == subjectID {
			subjectTco = res.TotalTco
			continue
		}
		if res.VendorID == models.BaselineVendorID {
			continue
		}
		if res.TotalTco > maxCompetitor {
			maxCompetitor = res.TotalTco
		}
	}
	if math.IsInf(maxCompetitor, -1) {
		return 0, 0
	}
	savings := roundCents(maxCompetitor - subjectTco)
	percent := 0
	if maxCompetitor > 0 {
		percent = int(math.Round(savings / maxCompetitor * 100))
	}
	return savings, percent
}

// bestInClass finds the optimal vendor(s) per criterion. Cost criteria
// exclude the baseline, which would win them vacuously; capability
// criteria include everything. Ties yield multiple winners, sorted.
func (r *Ranker) bestInClass(vendors []*models.VendorProfile, results []models.TcoResult) map[string][]string {
	// Coverage is the unweighted mean over the union of framework ids
	// scored by any compared vendor; unscored frameworks count as zero.
	union := make(map[string]struct{})
	for _, v := range vendors {
		for fw := range v.ComplianceScores {
			union[fw] = struct{}{}
		}
	}
	coverage := func(v *models.VendorProfile) float64 {
		if len(union) == 0 {
			return 0
		}
		sum := 0
		for fw := range union {
			sum += v.ComplianceScores[fw]
		}
		return float64(sum) / float64(len(union))
	}

	best := make(map[string][]string)
	best[models.CriterionTco] = minimize(results, func(t models.TcoResult) float64 { return t.TotalTco })
	best[models.CriterionImplementationDays] = minimize(results, func(t models.TcoResult) float64 { return float64(t.ImplementationDays) })
	best[models.CriterionFteRequired] = minimize(results, func(t models.TcoResult) float64 { return t.FteRequired })
	best[models.CriterionRoi] = bestRoi(results)

	best[models.CriterionRiskReduction] = maximize(vendors, func(v *models.VendorProfile) float64 {
		return float64(v.Pricing.RiskReductionEffectiveness)
	})
	best[models.CriterionComplianceCoverage] = maximize(vendors, coverage)
	best[models.CriterionZeroTrust] = maximize(vendors, func(v *models.VendorProfile) float64 {
		return float64(v.ZeroTrustScore)
	})

	return best
}

// bestRoi finds the vendor(s) with the highest return on investment,
// where each vendor's benefit is measured against its most expensive
// non-baseline competitor, mirroring the savings definition. Zero-cost
// vendors have no defined ROI and are skipped.
func bestRoi(results []models.TcoResult) []string {
	roiFor := func(subject models.TcoResult) (float64, bool) {
		if subject.VendorID == models.BaselineVendorID || subject.TotalTco <= 0 {
			return 0, false
		}
		maxOther := math.Inf(-1)
		for _, res := range results {
			if res.VendorID == subject.VendorID || res.VendorID == models.BaselineVendorID {
				continue
			}
			if res.TotalTco > maxOther {
				maxOther = res.TotalTco
			}
		}
		if math.IsInf(maxOther, -1) {
			return 0, false
		}
		return (maxOther - subject.TotalTco) / subject.TotalTco * 100, true
	}

	bestVal := math.Inf(-1)
	var winners []string
	for _, res := range results {
		v, ok := roiFor(res)
		if !ok {
			continue
		}
		switch {
		case v > bestVal:
			bestVal = v
			winners = []string{res.VendorID}
		case v == bestVal:
			winners = append(winners, res.VendorID)
		}
	}
	sort.Strings(winners)
	return winners
}

// minimize returns the id(s) of the non-baseline results with the lowest
// value, sorted for determinism.
func minimize(results []models.TcoResult, value func(models.TcoResult) float64) []string {
	bestVal := math.Inf(1)
	var winners []string
	for _, res := range results {
		if res.VendorID == models.BaselineVendorID {
			continue
		}
		v := value(res)
		switch {
		case v < bestVal:
			bestVal = v
			winners = []string{res.VendorID}
		case v == bestVal:
			winners = append(winners, res.VendorID)
		}
	}
	sort.Strings(winners)
	return winners
}

// maximize returns the id(s) of the vendors with the highest value,
// sorted for determinism.
func maximize(vendors []*models.VendorProfile, value func(*models.VendorProfile) float64) []string {
	bestVal := math.Inf(-1)
	var winners []string
	for _, v := range vendors {
		val := value(v)
		switch {
		case val > bestVal:
			bestVal = val
			winners = []string{v.ID}
		case val == bestVal:
			winners = append(winners, v.ID)
		}
	}
	sort.Strings(winners)
	return winners
}
