package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "naccost-lab", cfg.App.Name)
	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)

	assert.False(t, cfg.Database.Enabled)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr())
	assert.Equal(t, "naccost:", cfg.Redis.KeyPrefix)
	assert.False(t, cfg.NATS.Enabled)
	assert.Equal(t, "naccost.reports.completed", cfg.NATS.Subjects.ReportCompleted)

	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 120, cfg.RateLimit.RequestsPerMinute)

	assert.Equal(t, 100000.0, cfg.Engine.DefaultFteAnnualCost)
	assert.Equal(t, 0.09, cfg.Engine.DiscountRate)
	assert.Equal(t, 0.10, cfg.Engine.Multipliers.LocationFactor)
	assert.Equal(t, 1.0, cfg.Engine.Scoring.HighRiskMultiplier)
	assert.False(t, cfg.Engine.Scoring.WeightByRelevance)

	assert.Empty(t, cfg.Auth.AdminToken)
	assert.Empty(t, cfg.Catalog.DataDir)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("NACCOST_REDIS_HOST", "cache.internal")
	t.Setenv("NACCOST_DATABASE_ENABLED", "true")
	t.Setenv("NACCOST_AUTH_ADMIN_TOKEN", "secret-token")
	t.Setenv("NACCOST_SERVER_HTTP_PORT", "9090")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "cache.internal:6379", cfg.Redis.Addr())
	assert.True(t, cfg.Database.Enabled)
	assert.Equal(t, "secret-token", cfg.Auth.AdminToken)
	assert.Equal(t, 9090, cfg.Server.HTTPPort)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  http_port: 9999
engine:
  default_fte_annual_cost: 150000
  scoring:
    high_risk_multiplier: 1.1
    weight_by_relevance: true
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.Server.HTTPPort)
	assert.Equal(t, 150000.0, cfg.Engine.DefaultFteAnnualCost)
	assert.Equal(t, 1.1, cfg.Engine.Scoring.HighRiskMultiplier)
	assert.True(t, cfg.Engine.Scoring.WeightByRelevance)
	// Untouched keys keep their defaults
	assert.Equal(t, 0.09, cfg.Engine.DiscountRate)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestDatabaseDSN(t *testing.T) {
	c := DatabaseConfig{
		Host: "db.internal", Port: 5432,
		User: "naccost", Password: "pw",
		DBName: "naccost", SSLMode: "disable",
	}
	assert.Equal(t, "postgres://naccost:pw@db.internal:5432/naccost?sslmode=disable", c.DSN())
}
