package repository

import (
	"context"
	"fmt"

	"naccost-lab/internal/infrastructure/database"
	"naccost-lab/pkg/logger"
)

// Repositories bundles the data access layer.
type Repositories struct {
	Reports *ReportRepository
}

// New creates the repository set
func New(db *database.PostgresDB, log *logger.Logger) *Repositories {
	return &Repositories{
		Reports: NewReportRepository(db, log),
	}
}

// InitSchema creates the tables this service owns. Idempotent, runs at
// startup when a database is configured.
func InitSchema(ctx context.Context, db *database.PostgresDB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS reports (
		id          UUID PRIMARY KEY,
		subject_id  TEXT NOT NULL,
		org         JSONB NOT NULL,
		vendor_ids  TEXT[] NOT NULL,
		result      JSONB NOT NULL,
		created_at  TIMESTAMPTZ NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_reports_created_at ON reports (created_at DESC);
	CREATE INDEX IF NOT EXISTS idx_reports_subject_id ON reports (subject_id);`

	if err := db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}
	return nil
}
