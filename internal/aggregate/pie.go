package aggregate

import "github.com/couchcryptid/wrench-attack-stats/internal/domain"

// Slice is one wedge of a pie chart.
type Slice struct {
	Name    string `json:"name"`
	Value   int    `json:"value"`
	Percent int    `json:"percent"`
	Color   string `json:"color"`
}

// SeverityPie returns one slice per severity level, in ascending severity
// order, including empty levels.
func SeverityPie(totals Bucket) []Slice {
	counts := totals.Counts()
	p := Normalize(counts[:])
	out := make([]Slice, len(domain.Severities))
	for i, s := range domain.Severities {
		level := s.Level()
		out[i] = Slice{
			Name:    level.Label,
			Value:   counts[i],
			Percent: p[i],
			Color:   level.Color,
		}
	}
	return out
}

// RegionPie returns one slice per region with at least one record, in
// domain.Regions order.
func RegionPie(totals RegionBucket) []Slice {
	row := RegionPercentageRowFor(totals)
	out := make([]Slice, 0, len(domain.Regions))
	for _, r := range domain.Regions {
		n := row.Counts[r]
		if n == 0 {
			continue
		}
		out = append(out, Slice{
			Name:    string(r),
			Value:   n,
			Percent: row.Percentages[r],
			Color:   r.Color(),
		})
	}
	return out
}
