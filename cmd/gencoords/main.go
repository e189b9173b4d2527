// Command gencoords lists attack locations missing from the city coordinate
// table and, when Mapbox geocoding is enabled, resolves them and prints
// table entries ready to paste into internal/domain/cities.go.
//
// Usage:
//
//	MAPBOX_ENABLED=true MAPBOX_TOKEN=... go run ./cmd/gencoords \
//	  -json-out data/resolved_locations.json
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"sort"

	"github.com/couchcryptid/wrench-attack-stats/internal/adapter/mapbox"
	"github.com/couchcryptid/wrench-attack-stats/internal/aggregate"
	"github.com/couchcryptid/wrench-attack-stats/internal/config"
	"github.com/couchcryptid/wrench-attack-stats/internal/domain"
	"github.com/couchcryptid/wrench-attack-stats/internal/observability"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	jsonOut := flag.String("json-out", "", "optional output path for the full resolution report")
	minConfidence := flag.Float64("min-confidence", 0.8, "skip geocoder results below this relevance")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	// Initialize geocoder (feature-flagged via MAPBOX_ENABLED / MAPBOX_TOKEN).
	var geocoder domain.Geocoder
	if cfg.MapboxEnabled {
		client := mapbox.NewClient(cfg.MapboxToken, cfg.MapboxTimeout, metrics, logger)
		geocoder = mapbox.NewCachedGeocoder(client, cfg.MapboxCacheSize, metrics)
		metrics.GeocodeEnabled.Set(1)
		logger.Info("mapbox geocoding enabled", "cache_size", cfg.MapboxCacheSize, "timeout", cfg.MapboxTimeout)
	} else {
		logger.Info("mapbox geocoding disabled, listing unlocated locations only")
	}

	unlocated := aggregate.Unlocated(domain.Attacks())
	log.Printf("unlocated: %d distinct locations", len(unlocated))

	ctx := context.Background()
	resolved := make([]domain.ResolvedLocation, 0, len(unlocated))
	for _, loc := range unlocated {
		resolved = append(resolved, domain.ResolveCoordinates(ctx, loc, geocoder, logger))
	}

	entries := tableEntries(resolved, *minConfidence)
	for _, e := range entries {
		fmt.Printf("\t{City: %q, Geo: Geo{Lat: %.1f, Lon: %.1f}},\n", e.City, e.Geo.Lat, e.Geo.Lon)
	}

	printStats(resolved)

	if *jsonOut != "" {
		if err := writeJSON(*jsonOut, resolved); err != nil {
			return fmt.Errorf("writing resolution report: %w", err)
		}
		log.Printf("wrote resolution report: %s", *jsonOut)
	}
	return nil
}

// tableEntries keeps one confident forward-geocoded result per city key,
// rounded to the table's one-decimal precision and sorted by city.
func tableEntries(resolved []domain.ResolvedLocation, minConfidence float64) []domain.CityCoordinate {
	seen := make(map[string]bool)
	var out []domain.CityCoordinate
	for _, r := range resolved {
		if r.Source != domain.GeoSourceForward || r.Confidence < minConfidence || seen[r.City] {
			continue
		}
		seen[r.City] = true
		out = append(out, domain.CityCoordinate{
			City: r.City,
			Geo:  domain.Geo{Lat: round1(r.Geo.Lat), Lon: round1(r.Geo.Lon)},
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].City < out[j].City })
	return out
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func printStats(resolved []domain.ResolvedLocation) {
	bySource := make(map[string]int)
	for _, r := range resolved {
		bySource[r.Source]++
	}
	sources := make([]string, 0, len(bySource))
	for s := range bySource {
		sources = append(sources, s)
	}
	sort.Strings(sources)

	fmt.Fprintln(os.Stderr, "\n=== Resolution ===")
	for _, s := range sources {
		fmt.Fprintf(os.Stderr, "  %-10s %d\n", s, bySource[s])
	}
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o600)
}
