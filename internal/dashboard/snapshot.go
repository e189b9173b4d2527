package dashboard

import (
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/wrench-attack-stats/internal/aggregate"
	"github.com/couchcryptid/wrench-attack-stats/internal/domain"
	"github.com/couchcryptid/wrench-attack-stats/internal/marketcap"
	"github.com/couchcryptid/wrench-attack-stats/internal/stats"
)

// Snapshot is every chart-ready structure derived from one dataset. It is
// read-only once built: a memoized snapshot is shared by every caller, so
// callers must not modify its slices or maps. Each Build allocates fresh
// ones, and no two sections share a map.
type Snapshot struct {
	Version     string    `json:"version"`
	GeneratedAt time.Time `json:"generatedAt"`

	Summary    aggregate.Summary         `json:"summary"`
	Years      []aggregate.Bucket        `json:"years"`
	Months     []aggregate.Bucket        `json:"months"`
	Cumulative []aggregate.Bucket        `json:"cumulative"`
	YearRows   []aggregate.PercentageRow `json:"yearPercentages"`

	Regions       []domain.RegionInfo             `json:"regions"`
	RegionTotals  aggregate.RegionBucket          `json:"regionTotals"`
	RegionYears   []aggregate.RegionBucket        `json:"regionYears"`
	RegionRows    []aggregate.RegionPercentageRow `json:"regionPercentages"`
	UnknownRegion int                             `json:"unknownRegion"`

	SeverityPie []aggregate.Slice `json:"severityPie"`
	RegionPie   []aggregate.Slice `json:"regionPie"`

	MarketCap         []marketcap.MonthlyPoint `json:"marketCap"`
	YearlyMarketCap   []marketcap.YearAverage  `json:"yearlyMarketCap"`
	Rates             []aggregate.YearRate     `json:"rates"`
	MonthlyRegression stats.Result             `json:"monthlyRegression"`
	YearlyRegression  stats.Result             `json:"yearlyRegression"`

	Cities    []aggregate.CityGroup `json:"cities"`
	Unlocated []string              `json:"unlocated"`
}

// Build runs every aggregation stage over ds and stamps the result with
// clock's current time. It fails only when a record cannot be bucketed or the
// market cap table cannot be interpolated.
func Build(ds domain.Dataset, clock clockwork.Clock) (*Snapshot, error) {
	summary, err := aggregate.Summarize(ds.Records)
	if err != nil {
		return nil, fmt.Errorf("summarize: %w", err)
	}
	years, err := aggregate.ByYear(ds.Records)
	if err != nil {
		return nil, fmt.Errorf("aggregate by year: %w", err)
	}
	months, err := aggregate.ByMonth(ds.Records)
	if err != nil {
		return nil, fmt.Errorf("aggregate by month: %w", err)
	}
	monthList, err := aggregate.ByMonthSorted(ds.Records)
	if err != nil {
		return nil, fmt.Errorf("aggregate by month: %w", err)
	}

	ip, err := marketcap.New(ds.MarketCap)
	if err != nil {
		return nil, fmt.Errorf("interpolate market cap: %w", err)
	}
	series := ip.Series()
	yearlyCap := marketcap.YearlyAverage(ds.MarketCap)

	regionTotals, err := aggregate.RegionTotals(ds.Records)
	if err != nil {
		return nil, fmt.Errorf("aggregate by region: %w", err)
	}
	regionYears, err := aggregate.RegionsByYear(ds.Records)
	if err != nil {
		return nil, fmt.Errorf("aggregate regions by year: %w", err)
	}

	return &Snapshot{
		Version:     ds.Fingerprint(),
		GeneratedAt: clock.Now().UTC(),

		Summary:    summary,
		Years:      years,
		Months:     monthList,
		Cumulative: aggregate.Cumulative(years),
		YearRows:   aggregate.PercentageRows(years),

		Regions:       domain.RegionInfos(),
		RegionTotals:  regionTotals,
		RegionYears:   regionYears,
		RegionRows:    aggregate.RegionPercentageRows(regionYears),
		UnknownRegion: regionTotals.Counts[domain.RegionUnknown],

		SeverityPie: aggregate.SeverityPie(summary.Counts),
		RegionPie:   aggregate.RegionPie(regionTotals),

		MarketCap:         series,
		YearlyMarketCap:   marketcap.YearlyAverages(ds.MarketCap),
		Rates:             aggregate.YearlyRates(years, yearlyCap, ds.Users),
		MonthlyRegression: stats.LinearRegression(MonthlyPoints(series, months)),
		YearlyRegression:  stats.LinearRegression(YearlyPoints(years, yearlyCap)),

		Cities:    aggregate.CityGroups(ds.Records),
		Unlocated: aggregate.Unlocated(ds.Records),
	}, nil
}

// MonthlyPoints pairs every month of series (x, market cap in billions) with
// that month's attack count (y). Months without a bucket count as 0.
func MonthlyPoints(series []marketcap.MonthlyPoint, months map[string]aggregate.Bucket) []stats.Point {
	out := make([]stats.Point, len(series))
	for i, m := range series {
		out[i] = stats.Point{X: m.MarketCap, Y: float64(months[m.Month].Total)}
	}
	return out
}

// YearlyPoints pairs each year's average market cap (x) with its attack total
// (y). Years without a market cap average are skipped.
func YearlyPoints(years []aggregate.Bucket, avgCap map[string]float64) []stats.Point {
	out := make([]stats.Point, 0, len(years))
	for _, b := range years {
		mc, ok := avgCap[b.Key]
		if !ok {
			continue
		}
		out = append(out, stats.Point{X: mc, Y: float64(b.Total)})
	}
	return out
}
