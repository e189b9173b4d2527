package domain

import "strings"

// Geo represents a WGS-84 latitude/longitude coordinate pair.
type Geo struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// CityCoordinate is an approximate map position for a city.
type CityCoordinate struct {
	City string `json:"city"`
	Geo  Geo    `json:"geo"`
}

// Name returns the city name without its region or country suffix.
func (c CityCoordinate) Name() string {
	name, _, _ := strings.Cut(c.City, ",")
	return name
}

// CityCoordinates returns a copy of the coordinate table.
func CityCoordinates() []CityCoordinate {
	out := make([]CityCoordinate, len(cityCoordinates))
	copy(out, cityCoordinates)
	return out
}

// LookupCity returns the first table entry whose city name is a substring of
// location. Entries are tried in table order.
func LookupCity(location string) (CityCoordinate, bool) {
	for _, c := range cityCoordinates {
		if strings.Contains(location, c.Name()) {
			return c, true
		}
	}
	return CityCoordinate{}, false
}

// Coordinates returns the approximate position of location, if known.
func Coordinates(location string) (Geo, bool) {
	c, ok := LookupCity(location)
	return c.Geo, ok
}

// cityCoordinates is grouped by region; regenerate missing entries with
// cmd/gencoords.
var cityCoordinates = []CityCoordinate{
	{City: "Santa Barbara, California", Geo: Geo{Lat: 34.4, Lon: -119.7}},
	{City: "Atlanta, Georgia", Geo: Geo{Lat: 33.7, Lon: -84.4}},
	{City: "New York, New York", Geo: Geo{Lat: 40.7, Lon: -74.0}},
	{City: "Los Angeles, California", Geo: Geo{Lat: 34.1, Lon: -118.2}},
	{City: "Miami, Florida", Geo: Geo{Lat: 25.8, Lon: -80.2}},
	{City: "Durham, North Carolina", Geo: Geo{Lat: 36.0, Lon: -78.9}},
	{City: "Milwaukee, Wisconsin", Geo: Geo{Lat: 43.0, Lon: -87.9}},
	{City: "Cumming, Georgia", Geo: Geo{Lat: 34.2, Lon: -84.1}},
	{City: "West Palm Beach, Florida", Geo: Geo{Lat: 26.7, Lon: -80.1}},
	{City: "Ottawa, Canada", Geo: Geo{Lat: 45.4, Lon: -75.7}},
	{City: "Toronto, Ontario, Canada", Geo: Geo{Lat: 43.7, Lon: -79.4}},
	{City: "Amsterdam, Netherlands", Geo: Geo{Lat: 52.4, Lon: 4.9}},
	{City: "London, England", Geo: Geo{Lat: 51.5, Lon: -0.1}},
	{City: "Paris, France", Geo: Geo{Lat: 48.9, Lon: 2.4}},
	{City: "Toulouse, France", Geo: Geo{Lat: 43.6, Lon: 1.4}},
	{City: "Milan, Italy", Geo: Geo{Lat: 45.5, Lon: 9.2}},
	{City: "Wels, Austria", Geo: Geo{Lat: 48.2, Lon: 14.0}},
	{City: "Oslo, Norway", Geo: Geo{Lat: 59.9, Lon: 10.8}},
	{City: "Reykjavik, Iceland", Geo: Geo{Lat: 64.1, Lon: -22.0}},
	{City: "Manchester, England", Geo: Geo{Lat: 53.5, Lon: -2.2}},
	{City: "Delft, Netherlands", Geo: Geo{Lat: 52.0, Lon: 4.4}},
	{City: "Drouwenerveen, Netherlands", Geo: Geo{Lat: 52.9, Lon: 6.8}},
	{City: "Kyiv, Ukraine", Geo: Geo{Lat: 50.5, Lon: 30.5}},
	{City: "Moscow, Russia", Geo: Geo{Lat: 55.8, Lon: 37.6}},
	{City: "Kaunas, Lithuania", Geo: Geo{Lat: 54.9, Lon: 23.9}},
	{City: "Odessa, Ukraine", Geo: Geo{Lat: 46.5, Lon: 30.7}},
	{City: "Hong Kong", Geo: Geo{Lat: 22.3, Lon: 114.2}},
	{City: "Singapore", Geo: Geo{Lat: 1.4, Lon: 103.8}},
	{City: "Tokyo, Japan", Geo: Geo{Lat: 35.7, Lon: 139.7}},
	{City: "Phuket, Thailand", Geo: Geo{Lat: 7.9, Lon: 98.4}},
	{City: "Sydney, Australia", Geo: Geo{Lat: -33.9, Lon: 151.2}},
	{City: "Mumbai, India", Geo: Geo{Lat: 19.1, Lon: 72.9}},
	{City: "Delhi, India", Geo: Geo{Lat: 28.6, Lon: 77.2}},
	{City: "Sao Paulo, Brazil", Geo: Geo{Lat: -23.6, Lon: -46.6}},
	{City: "Florianopolis, Brazil", Geo: Geo{Lat: -27.6, Lon: -48.5}},
	{City: "Buenos Aires, Argentina", Geo: Geo{Lat: -34.6, Lon: -58.4}},
	{City: "Dubai, UAE", Geo: Geo{Lat: 25.3, Lon: 55.3}},
	{City: "Istanbul, Turkey", Geo: Geo{Lat: 41.0, Lon: 29.0}},
	{City: "Johannesburg, South Africa", Geo: Geo{Lat: -26.2, Lon: 28.0}},
	{City: "Cape Town, South Africa", Geo: Geo{Lat: -33.9, Lon: 18.4}},
}
