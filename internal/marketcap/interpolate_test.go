package marketcap

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/wrench-attack-stats/internal/domain"
)

func newDatasetInterpolator(t *testing.T) *Interpolator {
	t.Helper()
	ip, err := New(domain.QuarterlyMarketCap())
	require.NoError(t, err)
	return ip
}

func utc(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// atLinear walks every control point, tracking the latest at or before t and
// the earliest at or after t.
func atLinear(ip *Interpolator, t time.Time) float64 {
	before, after := -1, len(ip.points)
	for i, p := range ip.points {
		if !p.ts.After(t) {
			before = i
		}
		if !p.ts.Before(t) && after == len(ip.points) {
			after = i
		}
	}
	return round1(ip.valueBetween(before, after, t))
}

func TestSeries_CoversEveryMonth(t *testing.T) {
	series := newDatasetInterpolator(t).Series()
	require.Len(t, series, 144)

	assert.Equal(t, "2014-01", series[0].Month)
	assert.Equal(t, "2025-12", series[len(series)-1].Month)

	for i, p := range series {
		want := utc(FirstYear, time.January, 1).AddDate(0, i, 0)
		assert.Equal(t, want.Format("2006-01"), p.Month)
		assert.Equal(t, want.Year(), p.Year)
		assert.Equal(t, int(want.Month()), p.MonthNum)
		assert.Positive(t, p.MarketCap, p.Month)
	}
}

func TestSeries_KnownMonths(t *testing.T) {
	byMonth := make(map[string]float64)
	for _, p := range newDatasetInterpolator(t).Series() {
		byMonth[p.Month] = p.MarketCap
	}

	tests := []struct {
		month string
		want  float64
	}{
		{"2014-01", 7.5}, // before the first control point
		{"2014-03", 7.5},
		{"2014-04", 7.5},
		{"2018-01", 609.1},
		{"2021-04", 1944.0}, // one day after 2021-03-31 on the way to 2021-06-30
		{"2024-07", 2348.4},
		{"2025-12", 3230.4},
	}
	for _, tt := range tests {
		t.Run(tt.month, func(t *testing.T) {
			assert.Equal(t, tt.want, byMonth[tt.month])
		})
	}
}

func TestAt_ControlPointReturnsItsValue(t *testing.T) {
	ip := newDatasetInterpolator(t)
	for _, p := range domain.QuarterlyMarketCap() {
		ts, err := time.Parse("2006-01-02", p.Date)
		require.NoError(t, err)
		assert.Equal(t, p.MarketCap, ip.At(ts), p.Date)
	}
}

func TestAt_FlatExtrapolation(t *testing.T) {
	ip := newDatasetInterpolator(t)
	assert.Equal(t, 7.5, ip.At(utc(2010, time.June, 1)))
	assert.Equal(t, 3100.0, ip.At(utc(2030, time.June, 1)))
}

func TestAt_MatchesLinearScan(t *testing.T) {
	ip := newDatasetInterpolator(t)
	for ts := utc(2013, time.January, 1); ts.Before(utc(2027, time.January, 1)); ts = ts.AddDate(0, 0, 1) {
		if got, want := ip.At(ts), atLinear(ip, ts); got != want {
			t.Fatalf("At(%s) = %v, linear scan = %v", ts.Format("2006-01-02"), got, want)
		}
	}
}

func TestNew_SortsPoints(t *testing.T) {
	ip, err := New([]domain.MarketCapPoint{
		{Date: "2020-12-31", MarketCap: 200},
		{Date: "2020-06-30", MarketCap: 100},
	})
	require.NoError(t, err)
	assert.Equal(t, 100.0, ip.At(utc(2020, time.January, 1)))
	assert.Equal(t, 200.0, ip.At(utc(2021, time.January, 1)))
}

func TestNew_Errors(t *testing.T) {
	_, err := New(nil)
	assert.True(t, errors.Is(err, ErrNoPoints))

	_, err = New([]domain.MarketCapPoint{{Date: "2020-13-01", MarketCap: 1}})
	assert.Error(t, err)
}

func TestMonthly_EmptyRange(t *testing.T) {
	assert.Empty(t, newDatasetInterpolator(t).Monthly(2025, 2024))
}

func TestMonthly_SinglePoint(t *testing.T) {
	ip, err := New([]domain.MarketCapPoint{{Date: "2020-06-30", MarketCap: 42}})
	require.NoError(t, err)
	for _, p := range ip.Monthly(2020, 2020) {
		assert.Equal(t, 42.0, p.MarketCap, p.Month)
	}
}
