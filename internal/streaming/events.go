package streaming

import (
	"time"

	"github.com/google/uuid"

	"naccost-lab/internal/domain/models"
)

// EventType represents the type of analysis event
type EventType string

const (
	EventTypeReportCompleted EventType = "report_completed"
	EventTypeCatalogReloaded EventType = "catalog_reloaded"
)

// AnalysisEvent is a real-time notification about engine activity, fanned
// out to WebSocket clients and NATS.
type AnalysisEvent struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`

	// Report details, set for report_completed events
	ReportID       string  `json:"report_id,omitempty"`
	SubjectID      string  `json:"subject_id,omitempty"`
	VendorCount    int     `json:"vendor_count,omitempty"`
	Savings        float64 `json:"savings,omitempty"`
	SavingsPercent int     `json:"savings_percent,omitempty"`

	// Catalog details, set for catalog_reloaded events
	CatalogVersion string `json:"catalog_version,omitempty"`
	TotalVendors   int    `json:"total_vendors,omitempty"`
}

// NewReportCompletedEvent creates an event for a finished comparison run
func NewReportCompletedEvent(report *models.Report) *AnalysisEvent {
	return &AnalysisEvent{
		ID:             uuid.New().String(),
		Type:           EventTypeReportCompleted,
		Timestamp:      time.Now().UTC(),
		ReportID:       report.ID.String(),
		SubjectID:      report.SubjectID,
		VendorCount:    len(report.VendorIDs),
		Savings:        report.Result.Savings,
		SavingsPercent: report.Result.SavingsPercent,
	}
}

// NewCatalogReloadedEvent creates an event for a catalog snapshot swap
func NewCatalogReloadedEvent(version string, totalVendors int) *AnalysisEvent {
	return &AnalysisEvent{
		ID:             uuid.New().String(),
		Type:           EventTypeCatalogReloaded,
		Timestamp:      time.Now().UTC(),
		CatalogVersion: version,
		TotalVendors:   totalVendors,
	}
}

// Subscription represents a client's event type filter. Empty means all.
type Subscription struct {
	Types []EventType `json:"types,omitempty"`
}

// Matches checks if an event passes the subscription filter
func (s *Subscription) Matches(event *AnalysisEvent) bool {
	if len(s.Types) == 0 {
		return true
	}
	for _, t := range s.Types {
		if t == event.Type {
			return true
		}
	}
	return false
}
