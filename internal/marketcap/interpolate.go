// Package marketcap densifies the quarterly crypto market cap table into a
// monthly series and provides yearly and per-quarter views of it.
package marketcap

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/couchcryptid/wrench-attack-stats/internal/domain"
)

// Bounds of the monthly series produced by Series.
const (
	FirstYear = 2014
	LastYear  = 2025
)

const dateLayout = "2006-01-02"

// ErrNoPoints is returned when an Interpolator is built from an empty table.
var ErrNoPoints = errors.New("no market cap points")

// MonthlyPoint is the interpolated market cap at the start of one month.
type MonthlyPoint struct {
	Month     string  `json:"month"`
	Year      int     `json:"year"`
	MonthNum  int     `json:"monthNum"`
	MarketCap float64 `json:"marketCap"`
}

type controlPoint struct {
	ts    time.Time
	value float64
}

// Interpolator evaluates the piecewise-linear curve through a set of
// control points. Outside the covered range it extrapolates flat.
type Interpolator struct {
	points []controlPoint
}

// New builds an Interpolator from quarter-end points. Each point is placed at
// UTC midnight of its date. Points need not be sorted.
func New(points []domain.MarketCapPoint) (*Interpolator, error) {
	if len(points) == 0 {
		return nil, ErrNoPoints
	}
	cps := make([]controlPoint, 0, len(points))
	for _, p := range points {
		ts, err := time.Parse(dateLayout, p.Date)
		if err != nil {
			return nil, fmt.Errorf("parse market cap date %q: %w", p.Date, err)
		}
		cps = append(cps, controlPoint{ts: ts, value: p.MarketCap})
	}
	sort.SliceStable(cps, func(i, j int) bool { return cps[i].ts.Before(cps[j].ts) })
	return &Interpolator{points: cps}, nil
}

// At returns the market cap at t rounded to one decimal.
func (ip *Interpolator) At(t time.Time) float64 {
	// First index strictly after t; everything before it is <= t.
	idx := sort.Search(len(ip.points), func(i int) bool { return ip.points[i].ts.After(t) })
	before, after := idx-1, idx
	if before >= 0 && ip.points[before].ts.Equal(t) {
		after = before
	}
	return round1(ip.valueBetween(before, after, t))
}

// valueBetween resolves t given the index of the latest point at or before t
// and the earliest point at or after t. Either index may be out of range.
func (ip *Interpolator) valueBetween(before, after int, t time.Time) float64 {
	switch {
	case before < 0:
		return ip.points[after].value
	case after >= len(ip.points):
		return ip.points[before].value
	case before == after:
		return ip.points[before].value
	}
	b, a := ip.points[before], ip.points[after]
	ratio := float64(t.UnixMilli()-b.ts.UnixMilli()) / float64(a.ts.UnixMilli()-b.ts.UnixMilli())
	return b.value + ratio*(a.value-b.value)
}

// Monthly evaluates the curve at the first instant (UTC) of every month from
// January of firstYear through December of lastYear.
func (ip *Interpolator) Monthly(firstYear, lastYear int) []MonthlyPoint {
	if lastYear < firstYear {
		return nil
	}
	out := make([]MonthlyPoint, 0, (lastYear-firstYear+1)*12)
	for y := firstYear; y <= lastYear; y++ {
		for m := time.January; m <= time.December; m++ {
			t := time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
			out = append(out, MonthlyPoint{
				Month:     t.Format("2006-01"),
				Year:      y,
				MonthNum:  int(m),
				MarketCap: ip.At(t),
			})
		}
	}
	return out
}

// Series is Monthly over FirstYear..LastYear.
func (ip *Interpolator) Series() []MonthlyPoint {
	return ip.Monthly(FirstYear, LastYear)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
