package dashboard

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/wrench-attack-stats/internal/aggregate"
	"github.com/couchcryptid/wrench-attack-stats/internal/domain"
	"github.com/couchcryptid/wrench-attack-stats/internal/marketcap"
	"github.com/couchcryptid/wrench-attack-stats/internal/observability"
)

// Service owns the dataset and serves its snapshot. The snapshot is built
// once on first use and never invalidated.
type Service struct {
	dataset domain.Dataset
	clock   clockwork.Clock
	logger  *slog.Logger
	metrics *observability.Metrics

	once  sync.Once
	snap  *Snapshot
	err   error
	ready atomic.Bool
}

// NewService creates a Service over ds. clock stamps the snapshot and times
// its build.
func NewService(ds domain.Dataset, clock clockwork.Clock, logger *slog.Logger, metrics *observability.Metrics) *Service {
	return &Service{
		dataset: ds,
		clock:   clock,
		logger:  logger,
		metrics: metrics,
	}
}

// CheckReadiness returns nil once a snapshot has been built successfully.
func (s *Service) CheckReadiness(_ context.Context) error {
	if !s.ready.Load() {
		return errors.New("snapshot has not been built yet")
	}
	return nil
}

// Warm builds the snapshot if it has not been built yet.
func (s *Service) Warm() error {
	_, err := s.Snapshot()
	return err
}

// Snapshot returns the memoized snapshot, building it on the first call.
// A failed build is memoized as well; the dataset cannot change afterwards.
// Every caller receives the same read-only *Snapshot.
func (s *Service) Snapshot() (*Snapshot, error) {
	s.once.Do(s.build)
	return s.snap, s.err
}

func (s *Service) build() {
	start := s.clock.Now()
	s.metrics.SnapshotBuilds.Inc()

	snap, err := Build(s.dataset, s.clock)
	if err != nil {
		s.metrics.SnapshotBuildErrors.Inc()
		s.logger.Error("snapshot build failed", "error", err)
		s.err = err
		return
	}

	s.metrics.SnapshotBuildDuration.Observe(s.clock.Since(start).Seconds())
	s.metrics.RecordsLoaded.Set(float64(snap.Summary.Total))
	s.metrics.UnknownRegionRecords.Set(float64(snap.UnknownRegion))
	s.metrics.MarketCapCorrelation.WithLabelValues("monthly").Set(snap.MonthlyRegression.Correlation)
	s.metrics.MarketCapCorrelation.WithLabelValues("yearly").Set(snap.YearlyRegression.Correlation)

	if snap.UnknownRegion > 0 {
		s.logger.Warn("records without a region", "count", snap.UnknownRegion)
	}
	s.logger.Info("snapshot built",
		"version", snap.Version,
		"records", snap.Summary.Total,
		"years", len(snap.Years),
		"months", len(snap.Months),
		"monthly_correlation", snap.MonthlyRegression.Correlation,
		"duration", s.clock.Since(start),
	)

	s.snap = snap
	s.ready.Store(true)
}

// Dataset returns the dataset the service was built over.
func (s *Service) Dataset() domain.Dataset {
	return s.dataset
}

// RecordsForPeriod returns the records of a "YYYY" or "YYYY-MM" period, most
// severe first.
func (s *Service) RecordsForPeriod(key string) ([]domain.AttackRecord, error) {
	return aggregate.RecordsForPeriod(s.dataset.Records, key)
}

// RecordsForRegion returns the records of one region, newest first.
func (s *Service) RecordsForRegion(region domain.Region) ([]domain.AttackRecord, error) {
	if region.Index() < 0 {
		return nil, ErrUnknownRegion
	}
	return aggregate.RecordsForRegion(s.dataset.Records, region), nil
}

// RecordsForCity returns the records mapped to one coordinate table city,
// newest first.
func (s *Service) RecordsForCity(city string) []domain.AttackRecord {
	return aggregate.RecordsForCity(s.dataset.Records, city)
}

// MarketCapAt returns the quarter-end market cap, in billions of USD, for the
// quarter containing date ("YYYY-MM-DD").
func (s *Service) MarketCapAt(date string) (float64, bool) {
	return marketcap.QuarterFor(s.dataset.MarketCap, date)
}

// ErrUnknownRegion is returned for a region name outside domain.Regions.
var ErrUnknownRegion = errors.New("unknown region")
