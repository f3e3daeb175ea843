package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"naccost-lab/internal/domain/models"
	"naccost-lab/internal/infrastructure/database"
	"naccost-lab/pkg/logger"
)

// ErrReportNotFound indicates the requested report id does not exist.
var ErrReportNotFound = errors.New("report not found")

// ReportRepository persists comparison reports.
type ReportRepository struct {
	db     *database.PostgresDB
	logger *logger.Logger
}

// NewReportRepository creates a new ReportRepository
func NewReportRepository(db *database.PostgresDB, log *logger.Logger) *ReportRepository {
	return &ReportRepository{
		db:     db,
		logger: log.WithComponent("report-repository"),
	}
}

// Save stores a report. The scenario inputs and the computed result are
// stored as JSONB documents.
func (r *ReportRepository) Save(ctx context.Context, report *models.Report) error {
	orgJSON, err := json.Marshal(report.Org)
	if err != nil {
		return fmt.Errorf("failed to marshal organization profile: %w", err)
	}
	resultJSON, err := json.Marshal(report.Result)
	if err != nil {
		return fmt.Errorf("failed to marshal comparison result: %w", err)
	}

	query := `
		INSERT INTO reports (id, subject_id, org, vendor_ids, result, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	if err := r.db.Exec(ctx, query,
		report.ID, report.SubjectID, orgJSON, report.VendorIDs, resultJSON, report.CreatedAt,
	); err != nil {
		return fmt.Errorf("failed to insert report: %w", err)
	}

	r.logger.Debug().Str("report_id", report.ID.String()).Msg("report saved")
	return nil
}

// GetByID retrieves a report by its id.
func (r *ReportRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Report, error) {
	query := `
		SELECT id, subject_id, org, vendor_ids, result, created_at
		FROM reports
		WHERE id = $1`

	report, err := scanReport(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}
	return report, nil
}

// List returns reports ordered newest first.
func (r *ReportRepository) List(ctx context.Context, limit, offset int) ([]*models.Report, error) {
	query := `
		SELECT id, subject_id, org, vendor_ids, result, created_at
		FROM reports
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	var reports []*models.Report
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report: %w", err)
		}
		reports = append(reports, report)
	}
	return reports, rows.Err()
}

// Count returns the total number of stored reports.
func (r *ReportRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM reports`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count reports: %w", err)
	}
	return count, nil
}

func scanReport(row pgx.Row) (*models.Report, error) {
	var (
		report     models.Report
		orgJSON    []byte
		resultJSON []byte
	)
	if err := row.Scan(
		&report.ID, &report.SubjectID, &orgJSON, &report.VendorIDs, &resultJSON, &report.CreatedAt,
	); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(orgJSON, &report.Org); err != nil {
		return nil, fmt.Errorf("failed to unmarshal organization profile: %w", err)
	}
	if err := json.Unmarshal(resultJSON, &report.Result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal comparison result: %w", err)
	}
	return &report, nil
}
