package marketcap

import (
	"math"
	"sort"
	"time"

	"github.com/couchcryptid/wrench-attack-stats/internal/domain"
)

// YearAverage is the mean of one year's quarter-end values, rounded to the
// nearest billion.
type YearAverage struct {
	Year         string  `json:"year"`
	AvgMarketCap float64 `json:"avgMarketCap"`
}

// YearlyAverages groups points by the year of their date and averages them.
// The result is sorted by year.
func YearlyAverages(points []domain.MarketCapPoint) []YearAverage {
	type acc struct {
		total float64
		count int
	}
	byYear := make(map[string]*acc)
	for _, p := range points {
		if len(p.Date) < 4 {
			continue
		}
		y := p.Date[:4]
		a, ok := byYear[y]
		if !ok {
			a = &acc{}
			byYear[y] = a
		}
		a.total += p.MarketCap
		a.count++
	}

	out := make([]YearAverage, 0, len(byYear))
	for y, a := range byYear {
		out = append(out, YearAverage{Year: y, AvgMarketCap: math.Round(a.total / float64(a.count))})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

// YearlyAverage is YearlyAverages keyed by year.
func YearlyAverage(points []domain.MarketCapPoint) map[string]float64 {
	avgs := YearlyAverages(points)
	out := make(map[string]float64, len(avgs))
	for _, a := range avgs {
		out[a.Year] = a.AvgMarketCap
	}
	return out
}

// QuarterEnd returns the last day of the calendar quarter containing t.
func QuarterEnd(t time.Time) time.Time {
	q := (int(t.Month()) - 1) / 3
	// Day 0 of the month after the quarter is the quarter's last day.
	return time.Date(t.Year(), time.Month(q*3+4), 0, 0, 0, 0, 0, time.UTC)
}

// QuarterFor returns the quarter-end value recorded for the quarter that
// contains date ("YYYY-MM-DD"). It reports false when the date does not
// parse or the table has no entry for that quarter.
func QuarterFor(points []domain.MarketCapPoint, date string) (float64, bool) {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return 0, false
	}
	key := QuarterEnd(t).Format(dateLayout)
	for _, p := range points {
		if p.Date == key {
			return p.MarketCap, true
		}
	}
	return 0, false
}
