package aggregate

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/couchcryptid/wrench-attack-stats/internal/domain"
)

// ErrInvalidPeriod is returned for a period key that is neither "YYYY" nor
// "YYYY-MM".
var ErrInvalidPeriod = errors.New("invalid period key")

// ValidatePeriod reports whether key has the shape "YYYY" or "YYYY-MM".
func ValidatePeriod(key string) error {
	digits := func(s string) bool {
		for _, c := range s {
			if c < '0' || c > '9' {
				return false
			}
		}
		return s != ""
	}

	switch {
	case len(key) == 4 && digits(key):
		return nil
	case len(key) == 7 && digits(key[:4]) && key[4] == '-' && digits(key[5:]):
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidPeriod, key)
}

// RecordsForPeriod returns the records whose date starts with key, most
// severe first. Records of equal severity keep dataset order.
func RecordsForPeriod(records []domain.AttackRecord, key string) ([]domain.AttackRecord, error) {
	if err := ValidatePeriod(key); err != nil {
		return nil, err
	}
	out := filter(records, func(r domain.AttackRecord) bool {
		return strings.HasPrefix(r.Date, key)
	})
	sort.SliceStable(out, func(i, j int) bool { return out[i].Severity > out[j].Severity })
	return out, nil
}

// RecordsForRegion returns the records classified into region, newest first.
func RecordsForRegion(records []domain.AttackRecord, region domain.Region) []domain.AttackRecord {
	out := filter(records, func(r domain.AttackRecord) bool {
		return r.Region() == region
	})
	sortNewestFirst(out)
	return out
}

// RecordsForCity returns the records whose location resolves to city in the
// coordinate table, newest first.
func RecordsForCity(records []domain.AttackRecord, city string) []domain.AttackRecord {
	out := filter(records, func(r domain.AttackRecord) bool {
		c, ok := domain.LookupCity(r.Location)
		return ok && c.City == city
	})
	sortNewestFirst(out)
	return out
}

func filter(records []domain.AttackRecord, keep func(domain.AttackRecord) bool) []domain.AttackRecord {
	out := make([]domain.AttackRecord, 0)
	for _, r := range records {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

func sortNewestFirst(records []domain.AttackRecord) {
	sort.SliceStable(records, func(i, j int) bool { return records[i].Date > records[j].Date })
}
