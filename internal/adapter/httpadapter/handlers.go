package httpadapter

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	sharedobs "github.com/couchcryptid/storm-data-shared/observability"

	"github.com/couchcryptid/wrench-attack-stats/internal/aggregate"
	"github.com/couchcryptid/wrench-attack-stats/internal/dashboard"
	"github.com/couchcryptid/wrench-attack-stats/internal/domain"
)

// route registers h under pattern with request metrics labelled by pattern.
func (s *Server) route(mux *http.ServeMux, pattern string, h http.HandlerFunc) {
	mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		h(sw, r)
		s.metrics.APIRequests.WithLabelValues(pattern, strconv.Itoa(sw.status)).Inc()
		s.metrics.APIRequestDuration.WithLabelValues(pattern).Observe(time.Since(start).Seconds())
	})
}

// snapshotView serves one projection of the memoized snapshot.
func (s *Server) snapshotView(view func(*dashboard.Snapshot) any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, err := s.dashboard.Snapshot()
		if err != nil {
			s.logger.Error("snapshot unavailable", "error", err, "path", r.URL.Path)
			writeError(w, http.StatusServiceUnavailable, err)
			return
		}
		sharedobs.WriteJSON(w, http.StatusOK, view(snap))
	}
}

func (s *Server) handleSeverityLevels(w http.ResponseWriter, _ *http.Request) {
	sharedobs.WriteJSON(w, http.StatusOK, domain.SeverityLevels())
}

func (s *Server) handlePeriodRecords(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")
	recs, err := s.dashboard.RecordsForPeriod(key)
	if errors.Is(err, aggregate.ErrInvalidPeriod) {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	sharedobs.WriteJSON(w, http.StatusOK, s.recordsResponse(key, recs))
}

func (s *Server) handleRegionRecords(w http.ResponseWriter, r *http.Request) {
	region := r.PathValue("region")
	recs, err := s.dashboard.RecordsForRegion(domain.Region(region))
	if errors.Is(err, dashboard.ErrUnknownRegion) {
		writeError(w, http.StatusNotFound, err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	sharedobs.WriteJSON(w, http.StatusOK, s.recordsResponse(region, recs))
}

func (s *Server) handleCityRecords(w http.ResponseWriter, r *http.Request) {
	city := r.PathValue("city")
	recs := s.dashboard.RecordsForCity(city)
	if len(recs) == 0 {
		writeError(w, http.StatusNotFound, errors.New("no records for city"))
		return
	}
	sharedobs.WriteJSON(w, http.StatusOK, s.recordsResponse(city, recs))
}

type recordsResponse struct {
	Key     string       `json:"key"`
	Count   int          `json:"count"`
	Records []recordView `json:"records"`
}

// recordView is an attack record with the market cap of its quarter, when
// the table has one.
type recordView struct {
	domain.AttackRecord
	MarketCap *float64 `json:"marketCap,omitempty"`
}

func (s *Server) recordsResponse(key string, recs []domain.AttackRecord) recordsResponse {
	views := make([]recordView, len(recs))
	for i, r := range recs {
		views[i] = recordView{AttackRecord: r}
		if v, ok := s.dashboard.MarketCapAt(r.Date); ok {
			views[i].MarketCap = &v
		}
	}
	return recordsResponse{Key: key, Count: len(recs), Records: views}
}

func regionsView(snap *dashboard.Snapshot) any {
	return struct {
		Regions []domain.RegionInfo      `json:"regions"`
		Totals  aggregate.RegionBucket   `json:"totals"`
		Years   []aggregate.RegionBucket `json:"years"`
		Unknown int                      `json:"unknown"`
	}{snap.Regions, snap.RegionTotals, snap.RegionYears, snap.UnknownRegion}
}

func piesView(snap *dashboard.Snapshot) any {
	return struct {
		Severity []aggregate.Slice `json:"severity"`
		Region   []aggregate.Slice `json:"region"`
	}{snap.SeverityPie, snap.RegionPie}
}

func marketCapView(snap *dashboard.Snapshot) any {
	return struct {
		Monthly any `json:"monthly"`
		Yearly  any `json:"yearly"`
	}{snap.MarketCap, snap.YearlyMarketCap}
}

func regressionView(snap *dashboard.Snapshot) any {
	return struct {
		Monthly any `json:"monthly"`
		Yearly  any `json:"yearly"`
	}{snap.MonthlyRegression, snap.YearlyRegression}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func writeError(w http.ResponseWriter, status int, err error) {
	sharedobs.WriteJSON(w, status, map[string]string{"error": err.Error()})
}
