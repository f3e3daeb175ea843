package models

import "fmt"

// RiskLevel represents an industry's qualitative risk profile
type RiskLevel string

const (
	RiskStandard  RiskLevel = "standard"
	RiskElevated  RiskLevel = "elevated"
	RiskHigh      RiskLevel = "high"
	RiskRegulated RiskLevel = "regulated"
)

// IsHigh reports whether the level qualifies for the high-risk scoring
// adjustment (regulated industries count as high).
func (r RiskLevel) IsHigh() bool {
	return r == RiskHigh || r == RiskRegulated
}

// IndustryProfile is one vertical's static catalog record.
type IndustryProfile struct {
	ID                   string    `json:"id"`
	Name                 string    `json:"name"`
	RiskLevel            RiskLevel `json:"risk_level"`
	ComplianceFrameworks []string  `json:"compliance_frameworks"`
	BreachCostPerRecord  float64   `json:"breach_cost_per_record"`
	AverageBreachCost    float64   `json:"average_breach_cost"`
	IncidentProbability  float64   `json:"incident_probability"`
	RecommendedControls  []string  `json:"recommended_controls,omitempty"`
}

// Validate checks that an industry record is well-formed.
func (i *IndustryProfile) Validate() error {
	if i.ID == "" {
		return fmt.Errorf("industry id is required")
	}
	if i.Name == "" {
		return fmt.Errorf("industry %s: name is required", i.ID)
	}
	switch i.RiskLevel {
	case RiskStandard, RiskElevated, RiskHigh, RiskRegulated:
	default:
		return fmt.Errorf("industry %s: invalid risk level %q", i.ID, i.RiskLevel)
	}
	if i.IncidentProbability < 0 || i.IncidentProbability > 1 {
		return fmt.Errorf("industry %s: incident probability out of range", i.ID)
	}
	if i.AverageBreachCost < 0 || i.BreachCostPerRecord < 0 {
		return fmt.Errorf("industry %s: negative breach cost", i.ID)
	}
	return nil
}
