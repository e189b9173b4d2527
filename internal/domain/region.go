package domain

import "strings"

// Region is a macro-geographic classification bucket.
type Region string

const (
	RegionNorthAmerica  Region = "North America"
	RegionWesternEurope Region = "Western Europe"
	RegionEasternEurope Region = "Eastern Europe"
	RegionAsiaPacific   Region = "Asia-Pacific"
	RegionSouthAsia     Region = "South Asia"
	RegionLatinAmerica  Region = "Latin America"
	RegionMiddleEast    Region = "Middle East"
	RegionAfrica        Region = "Africa"
	RegionUnknown       Region = "Unknown"
)

// Regions lists the eight named regions in display order followed by
// RegionUnknown. Percentage rows and pie slices use this order.
var Regions = [...]Region{
	RegionNorthAmerica,
	RegionWesternEurope,
	RegionEasternEurope,
	RegionAsiaPacific,
	RegionSouthAsia,
	RegionLatinAmerica,
	RegionMiddleEast,
	RegionAfrica,
	RegionUnknown,
}

var regionColors = map[Region]string{
	RegionNorthAmerica:  "#3b82f6",
	RegionWesternEurope: "#8b5cf6",
	RegionEasternEurope: "#ec4899",
	RegionAsiaPacific:   "#14b8a6",
	RegionSouthAsia:     "#f59e0b",
	RegionLatinAmerica:  "#10b981",
	RegionMiddleEast:    "#ef4444",
	RegionAfrica:        "#6366f1",
	RegionUnknown:       "#6b7280",
}

// Color returns the display color of r.
func (r Region) Color() string {
	if c, ok := regionColors[r]; ok {
		return c
	}
	return regionColors[RegionUnknown]
}

// Index returns the position of r in [Regions], or -1.
func (r Region) Index() int {
	for i, reg := range Regions {
		if reg == r {
			return i
		}
	}
	return -1
}

// RegionInfo is the display metadata for one region.
type RegionInfo struct {
	Region Region `json:"region"`
	Label  string `json:"label"`
	Color  string `json:"color"`
}

// RegionInfos returns display metadata for every entry of [Regions].
func RegionInfos() []RegionInfo {
	out := make([]RegionInfo, 0, len(Regions))
	for _, r := range Regions {
		out = append(out, RegionInfo{Region: r, Label: string(r), Color: r.Color()})
	}
	return out
}

type regionPattern struct {
	region   Region
	patterns []string
}

// regionPatterns is evaluated top to bottom. The order is load-bearing:
// "Georgia" (Eastern Europe) also appears in US locations, which are caught
// earlier by "United States".
var regionPatterns = []regionPattern{
	{RegionNorthAmerica, []string{"United States", "Canada"}},
	{RegionWesternEurope, []string{"England", "Netherlands", "France", "Germany", "Austria", "Italy", "Spain", "Belgium", "Switzerland", "Ireland", "Norway", "Sweden", "Denmark", "Finland", "Iceland", "Portugal", "Scotland", "Wales", "UK", "Malta", "Greece", "Cyprus"}},
	{RegionEasternEurope, []string{"Russia", "Ukraine", "Lithuania", "Poland", "Czech Republic", "Romania", "Bulgaria", "Hungary", "Slovakia", "Belarus", "Moldova", "Latvia", "Estonia", "Georgia", "Montenegro", "Abkhazia"}},
	{RegionLatinAmerica, []string{"Brazil", "Mexico", "Argentina", "Colombia", "Venezuela", "Chile", "Peru", "Ecuador", "Costa Rica", "Panama", "Dominican Republic", "Puerto Rico", "Honduras", "El Salvador", "Guatemala", "Trinidad", "Paraguay"}},
	{RegionAsiaPacific, []string{"China", "Japan", "South Korea", "Taiwan", "Hong Kong", "Singapore", "Thailand", "Vietnam", "Philippines", "Malaysia", "Indonesia", "Australia", "New Zealand"}},
	{RegionSouthAsia, []string{"India", "Pakistan", "Bangladesh", "Sri Lanka", "Nepal"}},
	{RegionMiddleEast, []string{"UAE", "Turkey", "Israel", "Saudi Arabia", "Lebanon", "Jordan", "Iran", "Dubai"}},
	{RegionAfrica, []string{"South Africa", "Nigeria", "Kenya", "Ghana", "Egypt", "Morocco", "Uganda", "Lagos"}},
}

// Classify maps a free-text location to the first region whose pattern set
// contains a case-sensitive substring of it, or RegionUnknown.
func Classify(location string) Region {
	for _, rp := range regionPatterns {
		for _, p := range rp.patterns {
			if strings.Contains(location, p) {
				return rp.region
			}
		}
	}
	return RegionUnknown
}
