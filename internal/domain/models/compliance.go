package models

import "fmt"

// ComplianceFramework is one regulation or standard's static catalog record.
// A vendor's coverage of a framework is supplied as static data on the
// vendor record; it is never derived from the requirements list.
type ComplianceFramework struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	FullName      string   `json:"full_name"`
	Description   string   `json:"description,omitempty"`
	Requirements  []string `json:"requirements"`
	ControlAreas  []string `json:"control_areas,omitempty"`
	Applicability []string `json:"applicability,omitempty"`
	Penalties     string   `json:"penalties,omitempty"`
	// NACRelevance rates how central network access control is to the
	// framework on a 1-10 scale.
	NACRelevance int `json:"nac_relevance"`
}

// Validate checks that a framework record is well-formed.
func (f *ComplianceFramework) Validate() error {
	if f.ID == "" {
		return fmt.Errorf("framework id is required")
	}
	if f.Name == "" {
		return fmt.Errorf("framework %s: name is required", f.ID)
	}
	if f.NACRelevance < 1 || f.NACRelevance > 10 {
		return fmt.Errorf("framework %s: nac relevance out of range", f.ID)
	}
	return nil
}
