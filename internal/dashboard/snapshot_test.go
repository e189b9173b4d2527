package dashboard

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/wrench-attack-stats/internal/aggregate"
	"github.com/couchcryptid/wrench-attack-stats/internal/domain"
	"github.com/couchcryptid/wrench-attack-stats/internal/marketcap"
	"github.com/couchcryptid/wrench-attack-stats/internal/stats"
)

var fixedNow = time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() clockwork.Clock {
	return clockwork.NewFakeClockAt(fixedNow)
}

func loadDataset(t *testing.T) domain.Dataset {
	t.Helper()
	ds, err := domain.LoadDataset()
	require.NoError(t, err)
	return ds
}

func TestBuild_Dataset(t *testing.T) {
	ds := loadDataset(t)

	snap, err := Build(ds, fixedClock())
	require.NoError(t, err)

	assert.Equal(t, ds.Fingerprint(), snap.Version)
	assert.Equal(t, fixedNow, snap.GeneratedAt)

	assert.Equal(t, 269, snap.Summary.Total)
	assert.Len(t, snap.Years, 12)
	assert.Len(t, snap.Months, 94)
	assert.Len(t, snap.Cumulative, 12)
	assert.Equal(t, 269, snap.Cumulative[11].Total)
	assert.Len(t, snap.YearRows, 12)

	assert.Len(t, snap.Regions, len(domain.Regions))
	assert.Equal(t, 269, snap.RegionTotals.Total)
	assert.Len(t, snap.RegionYears, 12)
	assert.Len(t, snap.RegionRows, 12)
	assert.Equal(t, 0, snap.UnknownRegion)

	assert.Len(t, snap.SeverityPie, 5)
	assert.Len(t, snap.RegionPie, 8)

	assert.Len(t, snap.MarketCap, 144)
	assert.Len(t, snap.YearlyMarketCap, 12)
	assert.Len(t, snap.Rates, 12)

	assert.Equal(t, 144, snap.MonthlyRegression.N)
	assert.InDelta(t, 0.6719754, snap.MonthlyRegression.Correlation, 1e-6)
	assert.InDelta(t, 0.0013967, snap.MonthlyRegression.Slope, 1e-6)
	assert.Equal(t, 12, snap.YearlyRegression.N)
	assert.InDelta(t, 0.9215789, snap.YearlyRegression.Correlation, 1e-6)

	assert.Len(t, snap.Cities, 34)
	assert.Len(t, snap.Unlocated, 159)
}

func TestBuild_IsDeterministic(t *testing.T) {
	ds := loadDataset(t)

	a, err := Build(ds, fixedClock())
	require.NoError(t, err)
	b, err := Build(ds, fixedClock())
	require.NoError(t, err)

	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("snapshots differ (-first +second):\n%s", diff)
	}
}

func TestBuild_SectionsDoNotShareMaps(t *testing.T) {
	ds := loadDataset(t)

	a, err := Build(ds, fixedClock())
	require.NoError(t, err)
	b, err := Build(ds, fixedClock())
	require.NoError(t, err)

	a.RegionTotals.Counts[domain.RegionAfrica] = 1000
	a.RegionYears[0].Counts[domain.RegionAfrica] = 1000
	a.RegionRows[0].Counts[domain.RegionAfrica] = 2000
	a.RegionRows[0].Percentages[domain.RegionAfrica] = 3000

	assert.Equal(t, 6, b.RegionTotals.Counts[domain.RegionAfrica], "separate builds must not alias")
	assert.Equal(t, 1000, a.RegionYears[0].Counts[domain.RegionAfrica], "row counts must not alias year buckets")
	assert.Equal(t, b.RegionYears[0].Counts[domain.RegionAfrica], b.RegionRows[0].Counts[domain.RegionAfrica])
	assert.Equal(t, 2000, a.RegionRows[0].Counts[domain.RegionAfrica])
	assert.NotEqual(t, 3000, b.RegionRows[0].Percentages[domain.RegionAfrica])
}

func TestBuild_InvalidSeverity(t *testing.T) {
	ds := domain.Dataset{
		Records: []domain.AttackRecord{{Date: "2020-01-01", Severity: 9, Location: "Paris, France"}},
		MarketCap: []domain.MarketCapPoint{
			{Date: "2020-03-31", MarketCap: 100},
		},
	}
	_, err := Build(ds, fixedClock())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidSeverity))
}

func TestBuild_NoMarketCap(t *testing.T) {
	ds := domain.Dataset{
		Records: []domain.AttackRecord{{Date: "2020-01-01", Severity: 2, Location: "Paris, France"}},
	}
	_, err := Build(ds, fixedClock())
	require.Error(t, err)
	assert.True(t, errors.Is(err, marketcap.ErrNoPoints))
}

func TestMonthlyPoints_ZeroFillsMissingMonths(t *testing.T) {
	series := []marketcap.MonthlyPoint{
		{Month: "2020-01", MarketCap: 100},
		{Month: "2020-02", MarketCap: 110},
		{Month: "2020-03", MarketCap: 120},
	}
	months := map[string]aggregate.Bucket{
		"2020-02": {Key: "2020-02", S3: 2, Total: 2},
		"2019-12": {Key: "2019-12", S1: 5, Total: 5},
	}

	got := MonthlyPoints(series, months)
	assert.Equal(t, []stats.Point{{X: 100, Y: 0}, {X: 110, Y: 2}, {X: 120, Y: 0}}, got)
}

func TestYearlyPoints_SkipsYearsWithoutMarketCap(t *testing.T) {
	years := []aggregate.Bucket{
		{Key: "2013", Total: 1},
		{Key: "2014", Total: 3},
	}
	got := YearlyPoints(years, map[string]float64{"2014": 7})
	assert.Equal(t, []stats.Point{{X: 7, Y: 3}}, got)
}
