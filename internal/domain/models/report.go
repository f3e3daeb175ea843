package models

import (
	"time"

	"github.com/google/uuid"
)

// Report is a persisted comparison run: the scenario inputs plus the
// computed result, stored for later retrieval by the presentation layer.
type Report struct {
	ID        uuid.UUID           `json:"id" db:"id"`
	SubjectID string              `json:"subject_id" db:"subject_id"`
	Org       OrganizationProfile `json:"org" db:"org"`
	VendorIDs []string            `json:"vendor_ids" db:"vendor_ids"`
	Result    ComparisonResult    `json:"result" db:"result"`
	CreatedAt time.Time           `json:"created_at" db:"created_at"`
}
