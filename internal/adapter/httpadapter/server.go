package httpadapter

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/couchcryptid/wrench-attack-stats/internal/dashboard"
	"github.com/couchcryptid/wrench-attack-stats/internal/domain"
	"github.com/couchcryptid/wrench-attack-stats/internal/observability"
)

// Dashboard is the read side the API serves from.
type Dashboard interface {
	Snapshot() (*dashboard.Snapshot, error)
	RecordsForPeriod(key string) ([]domain.AttackRecord, error)
	RecordsForRegion(region domain.Region) ([]domain.AttackRecord, error)
	RecordsForCity(city string) []domain.AttackRecord
	MarketCapAt(date string) (float64, bool)
}

// Server exposes the dashboard JSON API plus health, readiness, and metrics
// endpoints.
type Server struct {
	httpServer *http.Server
	dashboard  Dashboard
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewServer creates an HTTP server with /healthz, /readyz, /metrics and the
// /api/v1 routes.
func NewServer(addr string, d Dashboard, ready sharedobs.ReadinessChecker, metrics *observability.Metrics, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		dashboard: d,
		metrics:   metrics,
		logger:    logger,
	}

	mux.HandleFunc("GET /healthz", sharedobs.LivenessHandler())
	mux.HandleFunc("GET /readyz", sharedobs.ReadinessHandler(ready))
	mux.Handle("GET /metrics", promhttp.Handler())

	s.route(mux, "GET /api/v1/snapshot", s.snapshotView(func(snap *dashboard.Snapshot) any { return snap }))
	s.route(mux, "GET /api/v1/summary", s.snapshotView(func(snap *dashboard.Snapshot) any { return snap.Summary }))
	s.route(mux, "GET /api/v1/severity-levels", s.handleSeverityLevels)
	s.route(mux, "GET /api/v1/years", s.snapshotView(func(snap *dashboard.Snapshot) any { return snap.Years }))
	s.route(mux, "GET /api/v1/years/percentages", s.snapshotView(func(snap *dashboard.Snapshot) any { return snap.YearRows }))
	s.route(mux, "GET /api/v1/years/cumulative", s.snapshotView(func(snap *dashboard.Snapshot) any { return snap.Cumulative }))
	s.route(mux, "GET /api/v1/months", s.snapshotView(func(snap *dashboard.Snapshot) any { return snap.Months }))
	s.route(mux, "GET /api/v1/regions", s.snapshotView(regionsView))
	s.route(mux, "GET /api/v1/regions/percentages", s.snapshotView(func(snap *dashboard.Snapshot) any { return snap.RegionRows }))
	s.route(mux, "GET /api/v1/pies", s.snapshotView(piesView))
	s.route(mux, "GET /api/v1/market-cap", s.snapshotView(marketCapView))
	s.route(mux, "GET /api/v1/regression", s.snapshotView(regressionView))
	s.route(mux, "GET /api/v1/rates", s.snapshotView(func(snap *dashboard.Snapshot) any { return snap.Rates }))
	s.route(mux, "GET /api/v1/cities", s.snapshotView(func(snap *dashboard.Snapshot) any { return snap.Cities }))

	s.route(mux, "GET /api/v1/periods/{key}/records", s.handlePeriodRecords)
	s.route(mux, "GET /api/v1/regions/{region}/records", s.handleRegionRecords)
	s.route(mux, "GET /api/v1/cities/{city}/records", s.handleCityRecords)

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}
