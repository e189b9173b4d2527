package aggregate

import (
	"fmt"
	"sort"

	"github.com/couchcryptid/wrench-attack-stats/internal/domain"
)

// TotalKey is the bucket key used by Totals.
const TotalKey = "all"

// ByYear groups records into yearly buckets sorted ascending by year. Only
// years with at least one record appear.
func ByYear(records []domain.AttackRecord) ([]Bucket, error) {
	byKey, err := group(records, domain.AttackRecord.YearKey)
	if err != nil {
		return nil, err
	}
	return sortedBuckets(byKey), nil
}

// ByMonth groups records into monthly buckets keyed "YYYY-MM".
func ByMonth(records []domain.AttackRecord) (map[string]Bucket, error) {
	return group(records, domain.AttackRecord.MonthKey)
}

// ByMonthSorted is ByMonth as a slice sorted ascending by month.
func ByMonthSorted(records []domain.AttackRecord) ([]Bucket, error) {
	byKey, err := ByMonth(records)
	if err != nil {
		return nil, err
	}
	return sortedBuckets(byKey), nil
}

// Totals counts every record into a single bucket keyed TotalKey.
func Totals(records []domain.AttackRecord) (Bucket, error) {
	byKey, err := group(records, func(domain.AttackRecord) string { return TotalKey })
	if err != nil {
		return Bucket{}, err
	}
	if b, ok := byKey[TotalKey]; ok {
		return b, nil
	}
	return Bucket{Key: TotalKey}, nil
}

// Cumulative returns running totals over buckets, which must already be in
// chronological order.
func Cumulative(buckets []Bucket) []Bucket {
	out := make([]Bucket, len(buckets))
	var running Bucket
	for i, b := range buckets {
		running = running.plus(b)
		running.Key = b.Key
		out[i] = running
	}
	return out
}

// group buckets records by keyFn. A record that fails checkRecord aborts the
// whole aggregation.
func group(records []domain.AttackRecord, keyFn func(domain.AttackRecord) string) (map[string]Bucket, error) {
	byKey := make(map[string]*Bucket)
	for i, r := range records {
		if err := checkRecord(i, r); err != nil {
			return nil, err
		}
		key := keyFn(r)
		b, ok := byKey[key]
		if !ok {
			b = &Bucket{Key: key}
			byKey[key] = b
		}
		b.add(r.Severity)
	}

	out := make(map[string]Bucket, len(byKey))
	for k, b := range byKey {
		out[k] = *b
	}
	return out, nil
}

// checkRecord rejects a record whose severity is outside 1..5 or whose date
// is too short to yield year and month keys.
func checkRecord(i int, r domain.AttackRecord) error {
	if !r.Severity.Valid() {
		return &domain.RecordError{
			Index: i,
			Field: "severity",
			Err:   fmt.Errorf("%w: %d", domain.ErrInvalidSeverity, int(r.Severity)),
		}
	}
	if len(r.Date) < 7 {
		return &domain.RecordError{
			Index: i,
			Field: "date",
			Err:   fmt.Errorf("%w: %q", domain.ErrInvalidDate, r.Date),
		}
	}
	return nil
}

func sortedBuckets(byKey map[string]Bucket) []Bucket {
	out := make([]Bucket, 0, len(byKey))
	for _, b := range byKey {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
