package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinearRegression_SinglePoint(t *testing.T) {
	got := LinearRegression([]Point{{X: 3, Y: 7}})
	assert.Equal(t, Result{N: 1}, got)
	assert.Equal(t, 0.0, got.Slope)
	assert.Equal(t, 0.0, got.Intercept)
	assert.Equal(t, 0.0, got.Correlation)
	assert.Equal(t, 0.0, got.RSquared)
}

func TestLinearRegression_Empty(t *testing.T) {
	assert.Equal(t, Result{}, LinearRegression(nil))
}

func TestLinearRegression_PerfectLine(t *testing.T) {
	points := []Point{{1, 3}, {2, 5}, {3, 7}, {4, 9}, {5, 11}}
	got := LinearRegression(points)

	assert.InDelta(t, 2.0, got.Slope, 1e-12)
	assert.InDelta(t, 1.0, got.Intercept, 1e-12)
	assert.InDelta(t, 1.0, got.Correlation, 1e-12)
	assert.InDelta(t, 1.0, got.RSquared, 1e-12)
	assert.Equal(t, 5, got.N)
}

func TestLinearRegression_NegativeLine(t *testing.T) {
	got := LinearRegression([]Point{{0, 10}, {1, 8}, {2, 6}})
	assert.InDelta(t, -2.0, got.Slope, 1e-12)
	assert.InDelta(t, 10.0, got.Intercept, 1e-12)
	assert.InDelta(t, -1.0, got.Correlation, 1e-12)
}

func TestLinearRegression_KnownFit(t *testing.T) {
	// mean x = 2.5, mean y = 3.5, Sxy = 4, Sxx = 5, Syy = 5.
	got := LinearRegression([]Point{{1, 2}, {2, 3}, {3, 5}, {4, 4}})

	assert.InDelta(t, 0.8, got.Slope, 1e-9)
	assert.InDelta(t, 1.5, got.Intercept, 1e-9)
	assert.InDelta(t, 0.8, got.Correlation, 1e-9)
	assert.InDelta(t, 0.64, got.RSquared, 1e-9)
}

func TestLinearRegression_ZeroVariance(t *testing.T) {
	tests := []struct {
		name          string
		points        []Point
		wantSlope     float64
		wantIntercept float64
	}{
		{"constant x", []Point{{2, 1}, {2, 5}, {2, 9}}, 0, 5},
		{"constant y", []Point{{1, 4}, {2, 4}, {3, 4}}, 0, 4},
		{"constant both", []Point{{1, 1}, {1, 1}}, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LinearRegression(tt.points)
			assert.InDelta(t, tt.wantSlope, got.Slope, 1e-12)
			assert.InDelta(t, tt.wantIntercept, got.Intercept, 1e-12)
			assert.Equal(t, 0.0, got.Correlation)
			assert.Equal(t, 0.0, got.RSquared)
		})
	}
}

func TestLinearRegression_RSquaredIsCorrelationSquared(t *testing.T) {
	samples := [][]Point{
		{{1, 2}, {2, 1}, {3, 4}, {4, 3}, {5, 6}},
		{{10, 1}, {20, 0}, {30, 1}},
		{{0.5, 100}, {1.5, 80}, {9, 12}, {3, 40}},
	}
	for _, s := range samples {
		got := LinearRegression(s)
		assert.Equal(t, got.Correlation*got.Correlation, got.RSquared)
		assert.LessOrEqual(t, got.Correlation, 1.0)
		assert.GreaterOrEqual(t, got.Correlation, -1.0)
	}
}
