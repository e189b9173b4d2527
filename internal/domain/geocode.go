package domain

import (
	"context"
	"log/slog"
	"strings"
)

// Coordinate sources reported by ResolveCoordinates.
const (
	GeoSourceTable   = "table"
	GeoSourceForward = "forward"
	GeoSourceFailed  = "failed"
	GeoSourceNone    = "none"
)

// ResolvedLocation is the outcome of resolving one location string.
type ResolvedLocation struct {
	Location         string
	City             string // table key, "City, Region" or "City, Country"
	Geo              Geo
	FormattedAddress string
	Confidence       float64
	Source           string
}

// ResolveCoordinates looks location up in the coordinate table and falls back
// to the geocoder when the table has no entry. A nil geocoder or a failed
// request degrades to GeoSourceNone or GeoSourceFailed.
func ResolveCoordinates(ctx context.Context, location string, geocoder Geocoder, logger *slog.Logger) ResolvedLocation {
	res := ResolvedLocation{Location: location, City: CityKey(location)}

	if c, ok := LookupCity(location); ok {
		res.City = c.City
		res.Geo = c.Geo
		res.Source = GeoSourceTable
		return res
	}

	if geocoder == nil {
		res.Source = GeoSourceNone
		return res
	}

	result, err := geocoder.ForwardGeocode(ctx, location)
	if err != nil {
		logger.Warn("forward geocoding failed",
			"location", location,
			"error", err,
		)
		res.Source = GeoSourceFailed
		return res
	}
	if result.Lat == 0 && result.Lon == 0 {
		res.Source = GeoSourceNone
		return res
	}

	res.Geo = Geo{Lat: result.Lat, Lon: result.Lon}
	res.FormattedAddress = result.FormattedAddress
	res.Confidence = result.Confidence
	res.Source = GeoSourceForward
	return res
}

// CityKey derives a coordinate table key from a location by keeping its first
// two comma-separated parts.
func CityKey(location string) string {
	parts := strings.Split(location, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if len(parts) > 2 {
		parts = parts[:2]
	}
	return strings.Join(parts, ", ")
}
