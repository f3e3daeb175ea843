package models

import "fmt"

// DeploymentModel represents how a NAC solution is deployed
type DeploymentModel string

const (
	DeploymentCloud      DeploymentModel = "cloud"
	DeploymentOnPremises DeploymentModel = "on-premises"
	DeploymentHybrid     DeploymentModel = "hybrid"
)

// PricingModel represents how a vendor licenses its product
type PricingModel string

const (
	PricingSubscription PricingModel = "subscription"
	PricingPerpetual    PricingModel = "perpetual"
	PricingHybrid       PricingModel = "hybrid"
)

// BaselineVendorID is the distinguished zero-cost, zero-protection record
// that every catalog must contain.
const BaselineVendorID = "no-nac"

// PriceBand holds the size-dependent pricing values for one device-count
// band. UpTo is the exclusive upper bound; 0 marks the open-ended top band.
type PriceBand struct {
	UpTo               int     `json:"up_to"`
	ImplementationDays int     `json:"implementation_days"`
	FteRequired        float64 `json:"fte_required"`
	HardwareCost       float64 `json:"hardware_cost"`
}

// Pricing holds a vendor's cost model. Subscription base prices are per
// device per month; perpetual and hybrid base prices are a one-time per
// device license.
type Pricing struct {
	Model                      PricingModel `json:"model"`
	BasePrice                  float64      `json:"base_price"`
	MaintenancePercentage      float64      `json:"maintenance_percentage,omitempty"`
	ImplementationDailyRate    float64      `json:"implementation_daily_rate"`
	Bands                      []PriceBand  `json:"bands"`
	RiskReductionEffectiveness int          `json:"risk_reduction_effectiveness"`
	MeanTimeToRespondMinutes   int          `json:"mean_time_to_respond_minutes"`
}

// BandFor returns the price band covering the given device count. Bands are
// step functions: no interpolation, the boundary belongs to the next band.
func (p Pricing) BandFor(deviceCount int) PriceBand {
	for _, b := range p.Bands {
		if b.UpTo > 0 && deviceCount < b.UpTo {
			return b
		}
	}
	if len(p.Bands) == 0 {
		return PriceBand{}
	}
	return p.Bands[len(p.Bands)-1]
}

// VendorProfile is one NAC vendor's static catalog record. Feature and
// compliance scores use a 0-100 scale; legacy 0-10 entries are normalized
// at catalog load time.
type VendorProfile struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Deployment  DeploymentModel `json:"deployment"`
	Pricing     Pricing         `json:"pricing"`

	// Reference-deployment cost amounts, used for presentation-layer
	// breakdown charts at a fixed size.
	CostBreakdown CostBreakdown `json:"cost_breakdown"`

	Features         map[string]int `json:"features"`
	ComplianceScores map[string]int `json:"compliance_scores"`
	ZeroTrustScore   int            `json:"zero_trust_score"`

	MarketShare          float64 `json:"market_share,omitempty"`
	CustomerSatisfaction float64 `json:"customer_satisfaction,omitempty"`
	AnalystRating        float64 `json:"analyst_rating,omitempty"`
}

// IsBaseline reports whether this is the no-NAC baseline record.
func (v *VendorProfile) IsBaseline() bool {
	return v.ID == BaselineVendorID
}

// Validate checks that a vendor record is well-formed. Malformed entries
// fail at catalog load time, not deep inside a calculation.
func (v *VendorProfile) Validate() error {
	if v.ID == "" {
		return fmt.Errorf("vendor id is required")
	}
	if v.Name == "" {
		return fmt.Errorf("vendor %s: name is required", v.ID)
	}
	switch v.Deployment {
	case DeploymentCloud, DeploymentOnPremises, DeploymentHybrid:
	default:
		return fmt.Errorf("vendor %s: invalid deployment model %q", v.ID, v.Deployment)
	}
	switch v.Pricing.Model {
	case PricingSubscription, PricingPerpetual, PricingHybrid:
	default:
		return fmt.Errorf("vendor %s: invalid pricing model %q", v.ID, v.Pricing.Model)
	}
	if v.Pricing.BasePrice < 0 {
		return fmt.Errorf("vendor %s: negative base price", v.ID)
	}
	if len(v.Pricing.Bands) == 0 {
		return fmt.Errorf("vendor %s: at least one price band is required", v.ID)
	}
	prev := 0
	for i, b := range v.Pricing.Bands {
		open := b.UpTo == 0
		if open && i != len(v.Pricing.Bands)-1 {
			return fmt.Errorf("vendor %s: open-ended band must be last", v.ID)
		}
		if !open && b.UpTo <= prev {
			return fmt.Errorf("vendor %s: bands must be ascending", v.ID)
		}
		if b.ImplementationDays < 0 || b.FteRequired < 0 || b.HardwareCost < 0 {
			return fmt.Errorf("vendor %s: negative band values", v.ID)
		}
		prev = b.UpTo
	}
	if v.Pricing.Bands[len(v.Pricing.Bands)-1].UpTo != 0 {
		return fmt.Errorf("vendor %s: last band must be open-ended", v.ID)
	}
	if v.Pricing.RiskReductionEffectiveness < 0 || v.Pricing.RiskReductionEffectiveness > 100 {
		return fmt.Errorf("vendor %s: risk reduction out of range", v.ID)
	}
	for name, score := range v.Features {
		if score < 0 || score > 100 {
			return fmt.Errorf("vendor %s: feature %s score out of range", v.ID, name)
		}
	}
	for fw, score := range v.ComplianceScores {
		if score < 0 || score > 100 {
			return fmt.Errorf("vendor %s: compliance score for %s out of range", v.ID, fw)
		}
	}
	if v.ZeroTrustScore < 0 || v.ZeroTrustScore > 100 {
		return fmt.Errorf("vendor %s: zero trust score out of range", v.ID)
	}
	if v.IsBaseline() {
		if err := v.validateBaseline(); err != nil {
			return err
		}
	}
	return nil
}

// validateBaseline enforces the all-zero invariant on the no-nac record.
func (v *VendorProfile) validateBaseline() error {
	p := v.Pricing
	if p.BasePrice != 0 || p.ImplementationDailyRate != 0 || p.MaintenancePercentage != 0 {
		return fmt.Errorf("baseline vendor must have zero pricing")
	}
	if p.RiskReductionEffectiveness != 0 {
		return fmt.Errorf("baseline vendor must have zero risk reduction")
	}
	for _, b := range p.Bands {
		if b.ImplementationDays != 0 || b.FteRequired != 0 || b.HardwareCost != 0 {
			return fmt.Errorf("baseline vendor must have all-zero price bands")
		}
	}
	return nil
}

// String returns the string representation of DeploymentModel
func (d DeploymentModel) String() string {
	return string(d)
}

// String returns the string representation of PricingModel
func (p PricingModel) String() string {
	return string(p)
}
