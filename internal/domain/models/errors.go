package models

import "fmt"

// UnknownVendorError indicates a vendor id that is not in the catalog.
// Lookups never silently default.
type UnknownVendorError struct {
	ID string
}

func (e *UnknownVendorError) Error() string {
	return fmt.Sprintf("unknown vendor: %s", e.ID)
}

// UnknownIndustryError indicates an industry id that is not in the catalog.
type UnknownIndustryError struct {
	ID string
}

func (e *UnknownIndustryError) Error() string {
	return fmt.Sprintf("unknown industry: %s", e.ID)
}

// UnknownFrameworkError indicates a compliance framework id that is not in
// the catalog.
type UnknownFrameworkError struct {
	ID string
}

func (e *UnknownFrameworkError) Error() string {
	return fmt.Sprintf("unknown compliance framework: %s", e.ID)
}

// InvalidInputError indicates a scenario input that fails validation. The
// computation is aborted; there is no partial result.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input %s: %s", e.Field, e.Reason)
}

// InsufficientComparisonSetError indicates a comparison request with fewer
// than two non-baseline vendors. Savings against nothing is undefined, not
// zero.
type InsufficientComparisonSetError struct {
	NonBaseline int
}

func (e *InsufficientComparisonSetError) Error() string {
	return fmt.Sprintf("comparison requires at least two non-baseline vendors, got %d", e.NonBaseline)
}
