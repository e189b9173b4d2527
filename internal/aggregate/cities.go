package aggregate

import "github.com/couchcryptid/wrench-attack-stats/internal/domain"

// CityGroup is a map marker: every record that resolves to one city.
type CityGroup struct {
	City        string          `json:"city"`
	Geo         domain.Geo      `json:"geo"`
	Region      domain.Region   `json:"region"`
	Count       int             `json:"count"`
	MaxSeverity domain.Severity `json:"maxSeverity"`
	Latest      string          `json:"latest"`
}

// CityGroups groups records by the coordinate table entry their location
// resolves to. Records without coordinates are skipped. Groups are returned
// in coordinate table order.
func CityGroups(records []domain.AttackRecord) []CityGroup {
	byCity := make(map[string]*CityGroup)
	for _, r := range records {
		c, ok := domain.LookupCity(r.Location)
		if !ok {
			continue
		}
		g, ok := byCity[c.City]
		if !ok {
			g = &CityGroup{City: c.City, Geo: c.Geo, Region: r.Region()}
			byCity[c.City] = g
		}
		g.Count++
		if r.Severity > g.MaxSeverity {
			g.MaxSeverity = r.Severity
		}
		if r.Date > g.Latest {
			g.Latest = r.Date
		}
	}

	out := make([]CityGroup, 0, len(byCity))
	for _, c := range domain.CityCoordinates() {
		if g, ok := byCity[c.City]; ok {
			out = append(out, *g)
		}
	}
	return out
}

// Unlocated returns the distinct locations, in first-seen order, that have
// no entry in the coordinate table.
func Unlocated(records []domain.AttackRecord) []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range records {
		if seen[r.Location] {
			continue
		}
		seen[r.Location] = true
		if _, ok := domain.LookupCity(r.Location); !ok {
			out = append(out, r.Location)
		}
	}
	return out
}
