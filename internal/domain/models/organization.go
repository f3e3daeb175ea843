package models

// OrganizationProfile is the scenario input for one calculation request.
// It is constructed per request and never persisted by the engine.
type OrganizationProfile struct {
	DeviceCount int    `json:"device_count"`
	IndustryID  string `json:"industry_id,omitempty"`
	Years       int    `json:"years"`
	Locations   int    `json:"locations,omitempty"`

	HasBYOD          bool `json:"has_byod,omitempty"`
	HasLegacyDevices bool `json:"has_legacy_devices,omitempty"`

	// UsersToTrain drives the one-time training cost. Zero means no
	// formal training line item.
	UsersToTrain int `json:"users_to_train,omitempty"`

	// FteAnnualCost is the fully-loaded annual cost of one FTE. Zero
	// falls back to the engine's configured default.
	FteAnnualCost float64 `json:"fte_annual_cost,omitempty"`
}

// Validate checks the positivity invariants. Upper bounds on the analysis
// horizon are the caller's concern.
func (o OrganizationProfile) Validate() error {
	if o.DeviceCount <= 0 {
		return &InvalidInputError{Field: "device_count", Reason: "must be a positive integer"}
	}
	if o.Years <= 0 {
		return &InvalidInputError{Field: "years", Reason: "must be a positive integer"}
	}
	if o.Locations < 0 {
		return &InvalidInputError{Field: "locations", Reason: "must not be negative"}
	}
	if o.UsersToTrain < 0 {
		return &InvalidInputError{Field: "users_to_train", Reason: "must not be negative"}
	}
	if o.FteAnnualCost < 0 {
		return &InvalidInputError{Field: "fte_annual_cost", Reason: "must not be negative"}
	}
	return nil
}

// EffectiveLocations treats an unset location count as a single site.
func (o OrganizationProfile) EffectiveLocations() int {
	if o.Locations < 1 {
		return 1
	}
	return o.Locations
}
