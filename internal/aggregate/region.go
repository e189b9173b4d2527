package aggregate

import (
	"sort"

	"github.com/couchcryptid/wrench-attack-stats/internal/domain"
)

// RegionBucket counts records per region for one key. Counts always holds an
// entry for every member of domain.Regions, zero or not.
type RegionBucket struct {
	Key    string                `json:"key"`
	Counts map[domain.Region]int `json:"counts"`
	Total  int                   `json:"total"`
}

func newRegionBucket(key string) *RegionBucket {
	counts := make(map[domain.Region]int, len(domain.Regions))
	for _, r := range domain.Regions {
		counts[r] = 0
	}
	return &RegionBucket{Key: key, Counts: counts}
}

// RegionsByYear classifies every record and groups the regions by year,
// sorted ascending by year. It fails on the same records ByYear rejects.
func RegionsByYear(records []domain.AttackRecord) ([]RegionBucket, error) {
	byKey := make(map[string]*RegionBucket)
	for i, r := range records {
		if err := checkRecord(i, r); err != nil {
			return nil, err
		}
		key := r.YearKey()
		b, ok := byKey[key]
		if !ok {
			b = newRegionBucket(key)
			byKey[key] = b
		}
		b.Counts[r.Region()]++
		b.Total++
	}

	out := make([]RegionBucket, 0, len(byKey))
	for _, b := range byKey {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}

// RegionTotals counts every record by region.
func RegionTotals(records []domain.AttackRecord) (RegionBucket, error) {
	b := newRegionBucket(TotalKey)
	for i, r := range records {
		if err := checkRecord(i, r); err != nil {
			return RegionBucket{}, err
		}
		b.Counts[r.Region()]++
		b.Total++
	}
	return *b, nil
}

// RegionPercentageRow is a region bucket expressed as normalized
// percentages.
type RegionPercentageRow struct {
	Key         string                `json:"key"`
	Percentages map[domain.Region]int `json:"percentages"`
	Counts      map[domain.Region]int `json:"counts"`
	Total       int                   `json:"total"`
}

// RegionPercentageRowFor normalizes one region bucket. Categories are ranked
// in domain.Regions order for the tie-break.
func RegionPercentageRowFor(b RegionBucket) RegionPercentageRow {
	counts := make([]int, len(domain.Regions))
	for i, r := range domain.Regions {
		counts[i] = b.Counts[r]
	}
	p := Normalize(counts)

	row := RegionPercentageRow{
		Key:         b.Key,
		Percentages: make(map[domain.Region]int, len(domain.Regions)),
		Counts:      make(map[domain.Region]int, len(domain.Regions)),
		Total:       b.Total,
	}
	for i, r := range domain.Regions {
		row.Percentages[r] = p[i]
		row.Counts[r] = counts[i]
	}
	return row
}

// RegionPercentageRows normalizes every region bucket, preserving order.
func RegionPercentageRows(buckets []RegionBucket) []RegionPercentageRow {
	out := make([]RegionPercentageRow, len(buckets))
	for i, b := range buckets {
		out[i] = RegionPercentageRowFor(b)
	}
	return out
}
