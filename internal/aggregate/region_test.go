package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/wrench-attack-stats/internal/domain"
)

func regionPercents(row RegionPercentageRow) []int {
	out := make([]int, len(domain.Regions))
	for i, r := range domain.Regions {
		out[i] = row.Percentages[r]
	}
	return out
}

// mustRegionTotals is RegionTotals for inputs known to be valid.
func mustRegionTotals(t *testing.T, records []domain.AttackRecord) RegionBucket {
	t.Helper()
	totals, err := RegionTotals(records)
	require.NoError(t, err)
	return totals
}

func TestRegionTotals_Dataset(t *testing.T) {
	totals := mustRegionTotals(t, domain.Attacks())
	assert.Equal(t, 269, totals.Total)
	assert.Equal(t, map[domain.Region]int{
		domain.RegionNorthAmerica:  64,
		domain.RegionWesternEurope: 73,
		domain.RegionEasternEurope: 29,
		domain.RegionAsiaPacific:   53,
		domain.RegionSouthAsia:     17,
		domain.RegionLatinAmerica:  14,
		domain.RegionMiddleEast:    13,
		domain.RegionAfrica:        6,
		domain.RegionUnknown:       0,
	}, totals.Counts)
}

func TestRegionsByYear_Dataset(t *testing.T) {
	buckets, err := RegionsByYear(domain.Attacks())
	require.NoError(t, err)
	require.Len(t, buckets, 12)

	for i, b := range buckets {
		if i > 0 {
			assert.Less(t, buckets[i-1].Key, b.Key)
		}
		n := 0
		for _, c := range b.Counts {
			n += c
		}
		assert.Equal(t, b.Total, n, b.Key)
		assert.Len(t, b.Counts, len(domain.Regions))
	}

	rows := RegionPercentageRows(buckets)
	want := map[string][]int{
		"2018": {35, 15, 19, 19, 4, 0, 4, 4, 0},
		"2021": {14, 25, 19, 22, 3, 11, 3, 3, 0},
		"2025": {11, 39, 3, 23, 9, 9, 3, 3, 0},
	}
	for _, row := range rows {
		p := regionPercents(row)
		assert.Equal(t, 100, sum(p), row.Key)
		if w, ok := want[row.Key]; ok {
			assert.Equal(t, w, p, row.Key)
		}
	}
}

func TestRegionPercentageRowFor_TieBreakFollowsDisplayOrder(t *testing.T) {
	records := []domain.AttackRecord{
		{Date: "2022-01-01", Severity: 3, Location: "Lagos, Nigeria"},
		{Date: "2022-01-02", Severity: 3, Location: "Paris, France"},
		{Date: "2022-01-03", Severity: 3, Location: "Austin, Texas, United States"},
	}
	row := RegionPercentageRowFor(mustRegionTotals(t, records))

	assert.Equal(t, 34, row.Percentages[domain.RegionNorthAmerica])
	assert.Equal(t, 33, row.Percentages[domain.RegionWesternEurope])
	assert.Equal(t, 33, row.Percentages[domain.RegionAfrica])
	assert.Equal(t, 0, row.Percentages[domain.RegionUnknown])
}

func TestRegionPercentageRowFor_Empty(t *testing.T) {
	row := RegionPercentageRowFor(mustRegionTotals(t, nil))
	assert.Equal(t, make([]int, len(domain.Regions)), regionPercents(row))
}

func TestSeverityPie(t *testing.T) {
	totals, err := Totals(domain.Attacks())
	require.NoError(t, err)

	pie := SeverityPie(totals)
	require.Len(t, pie, 5)
	assert.Equal(t, Slice{Name: "Minor", Value: 23, Percent: 9, Color: "#22c55e"}, pie[0])
	assert.Equal(t, Slice{Name: "Fatal", Value: 13, Percent: 5, Color: "#7c3aed"}, pie[4])

	pct := 0
	for _, s := range pie {
		pct += s.Percent
	}
	assert.Equal(t, 100, pct)
}

func TestSeverityPie_KeepsEmptyLevels(t *testing.T) {
	pie := SeverityPie(Bucket{S3: 2, Total: 2})
	require.Len(t, pie, 5)
	assert.Equal(t, 0, pie[0].Value)
	assert.Equal(t, 100, pie[2].Percent)
}

func TestRegionPie(t *testing.T) {
	pie := RegionPie(mustRegionTotals(t, domain.Attacks()))
	require.Len(t, pie, 8, "Unknown has no records and is omitted")

	names := make([]string, len(pie))
	pcts := make([]int, len(pie))
	for i, s := range pie {
		names[i] = s.Name
		pcts[i] = s.Percent
		assert.Equal(t, domain.Region(s.Name).Color(), s.Color)
	}
	assert.Equal(t, []string{
		"North America", "Western Europe", "Eastern Europe", "Asia-Pacific",
		"South Asia", "Latin America", "Middle East", "Africa",
	}, names)
	assert.Equal(t, []int{24, 27, 11, 20, 6, 5, 5, 2}, pcts)
}

func TestRegionPie_IncludesUnknown(t *testing.T) {
	pie := RegionPie(mustRegionTotals(t, []domain.AttackRecord{
		{Date: "2022-01-01", Severity: 1, Location: "Atlantis"},
	}))
	require.Len(t, pie, 1)
	assert.Equal(t, Slice{Name: "Unknown", Value: 1, Percent: 100, Color: "#6b7280"}, pie[0])
}
