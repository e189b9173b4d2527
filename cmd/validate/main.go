// Command validate performs end-to-end integrity checks on the compiled-in
// wrench attack dataset and the aggregations derived from it: record fields,
// reference tables, region coverage, percentage sums, coordinate ranges and
// snapshot determinism.
//
// Usage:
//
//	go run ./cmd/validate [-max-unlocated N]
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/wrench-attack-stats/internal/aggregate"
	"github.com/couchcryptid/wrench-attack-stats/internal/dashboard"
	"github.com/couchcryptid/wrench-attack-stats/internal/domain"
	"github.com/couchcryptid/wrench-attack-stats/internal/marketcap"
)

// phase tracks pass/fail for a validation phase. Notes are informational and
// never fail the phase.
type phase struct {
	name   string
	errors []string
	notes  []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) notef(format string, args ...any) {
	p.notes = append(p.notes, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	maxUnlocated := flag.Int("max-unlocated", -1, "fail when more locations than this lack coordinates (-1 disables)")
	flag.Parse()

	if code := run(*maxUnlocated); code != 0 {
		os.Exit(code)
	}
}

func run(maxUnlocated int) int {
	fmt.Println("=== Wrench Attack Dataset Validation ===")
	fmt.Println()

	records := domain.Attacks()
	marketCap := domain.QuarterlyMarketCap()
	users := domain.AnnualUsers()

	phases := []*phase{
		validateRecords(records),
		validateReferenceTables(records, marketCap, users),
		validateRegionCoverage(records),
		validatePercentages(records),
		validateCoordinates(records, maxUnlocated),
		validateSnapshot(records, marketCap, users),
	}

	allPassed := true
	for _, p := range phases {
		status := "\033[32mPASS\033[0m"
		if !p.passed() {
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.errors))
			allPassed = false
		}
		fmt.Printf("  %-42s %s\n", p.name, status)
	}

	fmt.Println()
	fmt.Printf("Records: %d attacks, %d market cap points, %d user years, version %s\n",
		len(records), len(marketCap), len(users), domain.Fingerprint(records))

	for _, p := range phases {
		if len(p.notes) == 0 && p.passed() {
			continue
		}
		fmt.Printf("\n--- %s ---\n", p.name)
		for _, n := range p.notes {
			fmt.Printf("  note: %s\n", n)
		}
		for i, e := range p.errors {
			fmt.Printf("  [%d] %s\n", i+1, e)
		}
	}

	if allPassed {
		fmt.Println("\nAll validations passed.")
		return 0
	}
	fmt.Println("\nValidation FAILED.")
	return 1
}

// validateRecords checks every record's fields and reports, without failing,
// records that break oldest-first ordering.
func validateRecords(records []domain.AttackRecord) *phase {
	p := &phase{name: "Record integrity"}
	for i, r := range records {
		if err := domain.ValidateRecord(i, r); err != nil {
			p.errorf("%v", err)
		}
	}

	if n := chronologyBreaks(records); n > 0 {
		p.notef("%d records are older than their predecessor", n)
	}
	return p
}

// chronologyBreaks counts records dated before the record preceding them.
func chronologyBreaks(records []domain.AttackRecord) int {
	n := 0
	for i := 1; i < len(records); i++ {
		if records[i].Date < records[i-1].Date {
			n++
		}
	}
	return n
}

// validateReferenceTables checks the market cap and user tables and that they
// cover every year the records span.
func validateReferenceTables(records []domain.AttackRecord, marketCap []domain.MarketCapPoint, users []domain.UserCount) *phase {
	p := &phase{name: "Reference tables"}
	if err := domain.ValidateMarketCap(marketCap); err != nil {
		p.errorf("market cap: %v", err)
	}
	if err := domain.ValidateUsers(users); err != nil {
		p.errorf("users: %v", err)
	}

	capYears := marketcap.YearlyAverage(marketCap)
	userYears := make(map[string]bool, len(users))
	for _, u := range users {
		userYears[u.Year] = true
	}

	seen := make(map[string]bool)
	for _, r := range records {
		y := r.YearKey()
		if seen[y] {
			continue
		}
		seen[y] = true
		if _, ok := capYears[y]; !ok {
			p.errorf("year %s has attacks but no market cap points", y)
		}
		if !userYears[y] {
			p.errorf("year %s has attacks but no user count", y)
		}
	}

	ip, err := marketcap.New(marketCap)
	if err != nil {
		p.errorf("interpolate: %v", err)
		return p
	}
	want := (marketcap.LastYear - marketcap.FirstYear + 1) * 12
	if got := len(ip.Series()); got != want {
		p.errorf("monthly series has %d points, want %d", got, want)
	}
	return p
}

func validateRegionCoverage(records []domain.AttackRecord) *phase {
	p := &phase{name: "Region coverage"}
	for i, r := range records {
		if r.Region() == domain.RegionUnknown {
			p.errorf("record %d: location %q matches no region", i, r.Location)
		}
	}
	return p
}

// validatePercentages checks that every non-empty percentage row sums to 100
// and that bucket totals add back up to the record count.
func validatePercentages(records []domain.AttackRecord) *phase {
	p := &phase{name: "Percentage sums"}

	years, err := aggregate.ByYear(records)
	if err != nil {
		p.errorf("aggregate by year: %v", err)
		return p
	}
	total := 0
	for _, b := range years {
		total += b.Total
	}
	if total != len(records) {
		p.errorf("year buckets total %d, want %d", total, len(records))
	}

	for _, row := range aggregate.PercentageRows(years) {
		sum := 0
		for _, v := range row.Percentages() {
			sum += v
		}
		if sum != 100 {
			p.errorf("severity row %s sums to %d", row.Key, sum)
		}
	}

	regionYears, err := aggregate.RegionsByYear(records)
	if err != nil {
		p.errorf("aggregate regions by year: %v", err)
		return p
	}
	for _, row := range aggregate.RegionPercentageRows(regionYears) {
		sum := 0
		for _, v := range row.Percentages {
			sum += v
		}
		if row.Total > 0 && sum != 100 {
			p.errorf("region row %s sums to %d", row.Key, sum)
		}
	}
	return p
}

func validateCoordinates(records []domain.AttackRecord, maxUnlocated int) *phase {
	p := &phase{name: "Coordinates"}
	for _, c := range domain.CityCoordinates() {
		if c.Geo.Lat < -90 || c.Geo.Lat > 90 || c.Geo.Lon < -180 || c.Geo.Lon > 180 {
			p.errorf("%s: coordinates out of range (%v, %v)", c.City, c.Geo.Lat, c.Geo.Lon)
		}
	}

	unlocated := aggregate.Unlocated(records)
	p.notef("%d distinct locations have no coordinates", len(unlocated))
	if maxUnlocated >= 0 && len(unlocated) > maxUnlocated {
		p.errorf("%d unlocated locations exceeds limit %d", len(unlocated), maxUnlocated)
	}
	return p
}

// validateSnapshot builds the dashboard snapshot twice and requires identical
// output.
func validateSnapshot(records []domain.AttackRecord, marketCap []domain.MarketCapPoint, users []domain.UserCount) *phase {
	p := &phase{name: "Snapshot determinism"}
	ds, err := domain.NewDataset(records, marketCap, users)
	if err != nil {
		p.errorf("dataset: %v", err)
		return p
	}

	// Fixed clock so two builds of the same dataset compare equal.
	clock := clockwork.NewFakeClockAt(time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC))

	first, err := dashboard.Build(ds, clock)
	if err != nil {
		p.errorf("build: %v", err)
		return p
	}
	second, err := dashboard.Build(ds, clock)
	if err != nil {
		p.errorf("rebuild: %v", err)
		return p
	}
	if diff := cmp.Diff(first, second); diff != "" {
		p.errorf("snapshot differs between builds (-first +second):\n%s", diff)
	}
	if first.Summary.Total != len(records) {
		p.errorf("summary total %d, want %d", first.Summary.Total, len(records))
	}
	return p
}
