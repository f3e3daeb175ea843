package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"naccost-lab/internal/api/handlers"
	"naccost-lab/internal/config"
	"naccost-lab/internal/domain/catalog"
	"naccost-lab/internal/domain/services"
	"naccost-lab/pkg/logger"
)

// newTestServer wires the router with the embedded catalog and no
// infrastructure. Handlers degrade to compute-only behavior.
func newTestServer(t *testing.T, adminToken string) *httptest.Server {
	t.Helper()

	cfg := &config.Config{
		Auth: config.AuthConfig{AdminToken: adminToken},
		Engine: config.EngineConfig{
			DefaultFteAnnualCost: 100000,
			DiscountRate:         0.09,
			Multipliers:          config.MultiplierConfig{LocationFactor: 0.10},
			Scoring:              config.ScoringConfig{HighRiskMultiplier: 1.0},
		},
	}
	log := logger.NewDefault()
	store := catalog.NewStore(catalog.Builtin())
	engine := services.NewEngine(cfg.Engine, store, log)

	h := handlers.NewHandlers(handlers.Dependencies{
		Config: cfg,
		Engine: engine,
		Store:  store,
		Logger: log,
	})

	srv := httptest.NewServer(NewRouter(*cfg, h, nil, log).Setup())
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t, "")

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	decodeBody(t, resp, &body)
	assert.Equal(t, "healthy", body["status"])
}

func TestCatalogEndpoints(t *testing.T) {
	srv := newTestServer(t, "")

	var vendors []map[string]any
	resp, err := http.Get(srv.URL + "/api/v1/catalog/vendors")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &vendors)
	assert.Len(t, vendors, 12)

	resp, err = http.Get(srv.URL + "/api/v1/catalog/vendors/portnox")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var vendor map[string]any
	decodeBody(t, resp, &vendor)
	assert.Equal(t, "Portnox Cloud", vendor["name"])

	resp, err = http.Get(srv.URL + "/api/v1/catalog/vendors/nonexistent")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/api/v1/catalog/industries/healthcare")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/api/v1/catalog/frameworks/pci")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestTcoEndpoint(t *testing.T) {
	srv := newTestServer(t, "")

	resp := postJSON(t, srv.URL+"/api/v1/analysis/tco",
		`{"vendor_id":"portnox","organization":{"device_count":1000,"years":3}}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result map[string]any
	decodeBody(t, resp, &result)

	// 1000 devices land in the second band: $3/dev/mo software plus 21
	// days at $1500 plus 0.25 FTE at the default $100k over 3 years.
	assert.Equal(t, 214500.0, result["total_tco"])
	assert.Equal(t, float64(21), result["implementation_days"])
}

func TestTcoEndpointErrors(t *testing.T) {
	srv := newTestServer(t, "")

	resp := postJSON(t, srv.URL+"/api/v1/analysis/tco",
		`{"vendor_id":"nonexistent","organization":{"device_count":1000,"years":3}}`)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = postJSON(t, srv.URL+"/api/v1/analysis/tco",
		`{"vendor_id":"portnox","organization":{"device_count":0,"years":3}}`)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = postJSON(t, srv.URL+"/api/v1/analysis/tco", `{not json`)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCompareEndpoint(t *testing.T) {
	srv := newTestServer(t, "")

	resp := postJSON(t, srv.URL+"/api/v1/analysis/compare",
		`{"vendor_ids":["portnox","cisco","no-nac"],"subject_id":"portnox","organization":{"device_count":1000,"years":3}}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result struct {
		SubjectID string `json:"subject_id"`
		Savings   float64
		Ranking   []struct {
			VendorID string  `json:"vendor_id"`
			TotalTco float64 `json:"total_tco"`
		} `json:"ranking"`
		BestInClass map[string][]string `json:"best_in_class"`
	}
	decodeBody(t, resp, &result)

	assert.Equal(t, "portnox", result.SubjectID)
	require.Len(t, result.Ranking, 3)
	// The free baseline always ranks first
	assert.Equal(t, "no-nac", result.Ranking[0].VendorID)
	assert.Equal(t, 0.0, result.Ranking[0].TotalTco)
	assert.Equal(t, []string{"portnox"}, result.BestInClass["tco"])
	assert.Equal(t, []string{"portnox"}, result.BestInClass["roi"])
	assert.Equal(t, []string{"portnox"}, result.BestInClass["risk_reduction"])
}

func TestCompareEndpointInsufficientSet(t *testing.T) {
	srv := newTestServer(t, "")

	resp := postJSON(t, srv.URL+"/api/v1/analysis/compare",
		`{"vendor_ids":["portnox","no-nac"],"subject_id":"portnox","organization":{"device_count":1000,"years":3}}`)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestRoiEndpoint(t *testing.T) {
	srv := newTestServer(t, "")

	resp := postJSON(t, srv.URL+"/api/v1/analysis/roi",
		`{"subject_id":"portnox","baseline_id":"cisco","organization":{"device_count":1000,"years":3,"industry_id":"healthcare"}}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result map[string]any
	decodeBody(t, resp, &result)
	assert.Equal(t, "portnox", result["subject_id"])
	assert.Equal(t, "cisco", result["baseline_id"])
	assert.Greater(t, result["total_benefit"].(float64), 0.0)
	assert.Greater(t, result["roi_percent"].(float64), 0.0)
	assert.Greater(t, result["total_risk_benefit"].(float64), 0.0)

	// The default baseline is the free no-nac record, so the cost
	// benefit of buying anything is negative there
	resp = postJSON(t, srv.URL+"/api/v1/analysis/roi",
		`{"subject_id":"portnox","organization":{"device_count":1000,"years":3,"industry_id":"healthcare"}}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &result)
	assert.Equal(t, "no-nac", result["baseline_id"])
	assert.Less(t, result["total_benefit"].(float64), 0.0)
}

func TestRoiEndpointRequiresIndustry(t *testing.T) {
	srv := newTestServer(t, "")

	resp := postJSON(t, srv.URL+"/api/v1/analysis/roi",
		`{"subject_id":"portnox","organization":{"device_count":1000,"years":3}}`)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestScoringEndpoints(t *testing.T) {
	srv := newTestServer(t, "")

	resp := postJSON(t, srv.URL+"/api/v1/analysis/compliance-score",
		`{"vendor_id":"portnox","framework_ids":["pci","hipaa"]}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var score map[string]any
	decodeBody(t, resp, &score)
	// (95 + 92) / 2, rounded to the nearest integer
	assert.Equal(t, 94.0, score["score"])

	resp = postJSON(t, srv.URL+"/api/v1/analysis/risk-score",
		`{"vendor_id":"portnox","industry_id":"healthcare"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &score)
	assert.Equal(t, 85.0, score["score"])

	resp = postJSON(t, srv.URL+"/api/v1/analysis/risk-score",
		`{"vendor_id":"portnox","industry_id":"nonexistent"}`)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestReportsWithoutDatabase(t *testing.T) {
	srv := newTestServer(t, "")

	resp, err := http.Get(srv.URL + "/api/v1/reports")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestStatsEndpoint(t *testing.T) {
	srv := newTestServer(t, "")

	resp, err := http.Get(srv.URL + "/api/v1/stats")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var stats struct {
		Catalog struct {
			TotalVendors int    `json:"total_vendors"`
			Version      string `json:"version"`
		} `json:"catalog"`
	}
	decodeBody(t, resp, &stats)
	assert.Equal(t, 12, stats.Catalog.TotalVendors)
	assert.Equal(t, catalog.BuiltinVersion, stats.Catalog.Version)
}

func TestAdminAuth(t *testing.T) {
	// Unconfigured token disables the admin surface entirely
	srv := newTestServer(t, "")
	resp := postJSON(t, srv.URL+"/api/v1/admin/catalog/reload", `{}`)
	resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	srv = newTestServer(t, "test-token")

	resp = postJSON(t, srv.URL+"/api/v1/admin/catalog/reload", `{}`)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/v1/admin/catalog/reload", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer wrong-token")
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	req, err = http.NewRequest(http.MethodPost, srv.URL+"/api/v1/admin/catalog/reload", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer test-token")
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var reload map[string]any
	decodeBody(t, resp, &reload)
	assert.Equal(t, "reloaded", reload["status"])
	assert.Equal(t, catalog.BuiltinVersion, reload["catalog_version"])
}

func TestWebSocketWithoutHub(t *testing.T) {
	srv := newTestServer(t, "")

	resp, err := http.Get(srv.URL + "/ws/analysis")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}
