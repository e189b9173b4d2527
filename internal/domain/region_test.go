package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		location string
		expected Region
	}{
		{"Hong Kong", RegionAsiaPacific},
		{"Atlanta, Georgia, United States", RegionNorthAmerica},
		{"Mars Colony", RegionUnknown},
		{"Tbilisi, Georgia", RegionEasternEurope},
		{"Toronto, Ontario, Canada", RegionNorthAmerica},
		{"Oxford, England", RegionWesternEurope},
		{"Kahna, Pakistan", RegionSouthAsia},
		{"Dubai, UAE", RegionMiddleEast},
		{"Lagos, Nigeria", RegionAfrica},
		{"Sao Paulo, Brazil", RegionLatinAmerica},
		{"Kyiv, Ukraine", RegionEasternEurope},
		{"hong kong", RegionUnknown},
		{"", RegionUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.location, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.location))
		})
	}
}

func TestClassify_FirstMatchWins(t *testing.T) {
	// Contains tokens from Western Europe ("France") and Middle East
	// ("Dubai"); Western Europe is earlier in the table.
	assert.Equal(t, RegionWesternEurope, Classify("Dubai Street, Nice, France"))
	// "South Africa" contains no earlier token, so Africa wins.
	assert.Equal(t, RegionAfrica, Classify("Cape Town, South Africa"))
}

func TestClassify_Deterministic(t *testing.T) {
	for _, r := range Attacks() {
		first := Classify(r.Location)
		assert.Equal(t, first, Classify(r.Location))
		assert.NotEqual(t, -1, first.Index(), "region %q must be a known category", first)
	}
}

func TestRegions_Metadata(t *testing.T) {
	assert.Len(t, Regions, 9)
	assert.Equal(t, RegionUnknown, Regions[len(Regions)-1])

	infos := RegionInfos()
	assert.Len(t, infos, len(Regions))
	for i, info := range infos {
		assert.Equal(t, Regions[i], info.Region)
		assert.NotEmpty(t, info.Color)
		assert.Equal(t, i, info.Region.Index())
	}

	assert.Equal(t, "#3b82f6", RegionNorthAmerica.Color())
	assert.Equal(t, RegionUnknown.Color(), Region("Atlantis").Color())
	assert.Equal(t, -1, Region("Atlantis").Index())
}

func TestRegionPatterns_CoverNamedRegions(t *testing.T) {
	seen := make(map[Region]bool)
	for _, rp := range regionPatterns {
		assert.NotEmpty(t, rp.patterns)
		assert.False(t, seen[rp.region], "region %q listed twice", rp.region)
		seen[rp.region] = true
	}
	for _, r := range Regions {
		if r == RegionUnknown {
			assert.False(t, seen[r])
			continue
		}
		assert.True(t, seen[r], "region %q has no patterns", r)
	}
}
