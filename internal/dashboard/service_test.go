package dashboard

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/wrench-attack-stats/internal/aggregate"
	"github.com/couchcryptid/wrench-attack-stats/internal/domain"
	"github.com/couchcryptid/wrench-attack-stats/internal/observability"
)

func newTestService(t *testing.T, ds domain.Dataset) *Service {
	t.Helper()
	return NewService(ds, fixedClock(), slog.Default(), observability.NewMetricsForTesting())
}

func TestService_NotReadyUntilBuilt(t *testing.T) {
	svc := newTestService(t, loadDataset(t))

	require.Error(t, svc.CheckReadiness(context.Background()))
	require.NoError(t, svc.Warm())
	assert.NoError(t, svc.CheckReadiness(context.Background()))
}

func TestService_StampsSnapshotWithInjectedClock(t *testing.T) {
	clock := clockwork.NewFakeClockAt(fixedNow)
	svc := NewService(loadDataset(t), clock, slog.Default(), observability.NewMetricsForTesting())

	snap, err := svc.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, fixedNow, snap.GeneratedAt)

	clock.Advance(time.Hour)
	again, err := svc.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, fixedNow, again.GeneratedAt, "memoized snapshot keeps its build time")
}

func TestService_SnapshotIsMemoized(t *testing.T) {
	svc := newTestService(t, loadDataset(t))

	var wg sync.WaitGroup
	snaps := make([]*Snapshot, 8)
	for i := range snaps {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s, err := svc.Snapshot()
			assert.NoError(t, err)
			snaps[i] = s
		}()
	}
	wg.Wait()

	for _, s := range snaps {
		assert.Same(t, snaps[0], s)
	}
}

func TestService_BuildFailureIsSticky(t *testing.T) {
	svc := newTestService(t, domain.Dataset{
		Records: []domain.AttackRecord{{Date: "2020-01-01", Severity: 0}},
	})

	_, err := svc.Snapshot()
	require.Error(t, err)
	_, err2 := svc.Snapshot()
	assert.Equal(t, err, err2)
	assert.Error(t, svc.CheckReadiness(context.Background()))
}

func TestService_Lookups(t *testing.T) {
	svc := newTestService(t, loadDataset(t))

	recs, err := svc.RecordsForPeriod("2024-03")
	require.NoError(t, err)
	assert.Len(t, recs, 3)

	_, err = svc.RecordsForPeriod("March")
	assert.True(t, errors.Is(err, aggregate.ErrInvalidPeriod))

	africa, err := svc.RecordsForRegion(domain.RegionAfrica)
	require.NoError(t, err)
	assert.Len(t, africa, 6)

	_, err = svc.RecordsForRegion("Atlantis")
	assert.True(t, errors.Is(err, ErrUnknownRegion))

	assert.Len(t, svc.RecordsForCity("New York, New York"), 10)

	v, ok := svc.MarketCapAt("2021-05-10")
	require.True(t, ok)
	assert.Equal(t, 1400.0, v)
	_, ok = svc.MarketCapAt("2013-05-10")
	assert.False(t, ok)
	assert.Len(t, svc.Dataset().Records, 269)
}
