package httpadapter_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/wrench-attack-stats/internal/adapter/httpadapter"
	"github.com/couchcryptid/wrench-attack-stats/internal/aggregate"
	"github.com/couchcryptid/wrench-attack-stats/internal/dashboard"
	"github.com/couchcryptid/wrench-attack-stats/internal/domain"
	"github.com/couchcryptid/wrench-attack-stats/internal/observability"
)

type mockReadiness struct {
	err error
}

func (m *mockReadiness) CheckReadiness(_ context.Context) error { return m.err }

type failingDashboard struct{}

func (failingDashboard) Snapshot() (*dashboard.Snapshot, error) {
	return nil, errors.New("build failed")
}

func (failingDashboard) RecordsForPeriod(string) ([]domain.AttackRecord, error) {
	return nil, errors.New("boom")
}

func (failingDashboard) RecordsForRegion(domain.Region) ([]domain.AttackRecord, error) {
	return nil, errors.New("boom")
}

func (failingDashboard) RecordsForCity(string) []domain.AttackRecord { return nil }

func (failingDashboard) MarketCapAt(string) (float64, bool) { return 0, false }

func newTestServer(t *testing.T, readyErr error) *httpadapter.Server {
	t.Helper()
	ds, err := domain.LoadDataset()
	require.NoError(t, err)
	metrics := observability.NewMetricsForTesting()
	svc := dashboard.NewService(ds, clockwork.NewRealClock(), slog.Default(), metrics)
	return httpadapter.NewServer(":0", svc, &mockReadiness{err: readyErr}, metrics, slog.Default())
}

func get(t *testing.T, srv http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	srv.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestHealthzReturns200(t *testing.T) {
	rec := get(t, newTestServer(t, nil), "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestReadyzReturns200WhenReady(t *testing.T) {
	rec := get(t, newTestServer(t, nil), "/readyz")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestReadyzReturns503WhenNotReady(t *testing.T) {
	rec := get(t, newTestServer(t, fmt.Errorf("not ready yet")), "/readyz")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	rec := get(t, newTestServer(t, nil), "/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestSummary(t *testing.T) {
	rec := get(t, newTestServer(t, nil), "/api/v1/summary")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	body := decode[aggregate.Summary](t, rec)
	assert.Equal(t, 269, body.Total)
	assert.Equal(t, 26, body.AvgSevereOrWorse)
}

func TestSnapshotViews(t *testing.T) {
	srv := newTestServer(t, nil)
	paths := []string{
		"/api/v1/snapshot",
		"/api/v1/severity-levels",
		"/api/v1/years",
		"/api/v1/years/percentages",
		"/api/v1/years/cumulative",
		"/api/v1/months",
		"/api/v1/regions",
		"/api/v1/regions/percentages",
		"/api/v1/pies",
		"/api/v1/market-cap",
		"/api/v1/regression",
		"/api/v1/rates",
		"/api/v1/cities",
	}
	for _, p := range paths {
		t.Run(p, func(t *testing.T) {
			rec := get(t, srv, p)
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.True(t, json.Valid(rec.Body.Bytes()))
		})
	}
}

func TestYears(t *testing.T) {
	rec := get(t, newTestServer(t, nil), "/api/v1/years")
	years := decode[[]aggregate.Bucket](t, rec)
	require.Len(t, years, 12)
	assert.Equal(t, aggregate.Bucket{Key: "2014", S1: 1, Total: 1}, years[0])
}

func TestMarketCap(t *testing.T) {
	rec := get(t, newTestServer(t, nil), "/api/v1/market-cap")
	body := decode[struct {
		Monthly []map[string]any `json:"monthly"`
		Yearly  []map[string]any `json:"yearly"`
	}](t, rec)
	assert.Len(t, body.Monthly, 144)
	assert.Len(t, body.Yearly, 12)
	assert.Equal(t, "2014-01", body.Monthly[0]["month"])
}

func TestPeriodRecords(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := get(t, srv, "/api/v1/periods/2024-03/records")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[struct {
		Key     string                `json:"key"`
		Count   int                   `json:"count"`
		Records []domain.AttackRecord `json:"records"`
	}](t, rec)
	assert.Equal(t, "2024-03", body.Key)
	assert.Equal(t, 3, body.Count)
	assert.Equal(t, domain.SeveritySerious, body.Records[0].Severity)

	withCap := decode[struct {
		Records []struct {
			Date      string   `json:"date"`
			MarketCap *float64 `json:"marketCap"`
		} `json:"records"`
	}](t, rec)
	require.Len(t, withCap.Records, 3)
	for _, r := range withCap.Records {
		require.NotNil(t, r.MarketCap, r.Date)
		assert.Equal(t, 2700.0, *r.MarketCap, "2024 Q1 quarter-end value")
	}

	rec = get(t, srv, "/api/v1/periods/2024-3/records")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode[map[string]string](t, rec)["error"], "invalid period")
}

func TestRegionRecords(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := get(t, srv, "/api/v1/regions/"+url.PathEscape("Middle East")+"/records")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 13, decode[map[string]any](t, rec)["count"])

	rec = get(t, srv, "/api/v1/regions/Atlantis/records")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCityRecords(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := get(t, srv, "/api/v1/cities/"+url.PathEscape("Dubai, UAE")+"/records")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = get(t, srv, "/api/v1/cities/Atlantis/records")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSnapshotUnavailable(t *testing.T) {
	metrics := observability.NewMetricsForTesting()
	srv := httpadapter.NewServer(":0", failingDashboard{}, &mockReadiness{}, metrics, slog.Default())

	rec := get(t, srv, "/api/v1/summary")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "build failed", decode[map[string]string](t, rec)["error"])

	rec = get(t, srv, "/api/v1/periods/2024/records")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
