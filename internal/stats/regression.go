// Package stats fits least-squares lines and Pearson correlations over
// paired samples.
//
// Degenerate inputs are values, not errors: fewer than two points, or a
// sample with no variance, yield a zero correlation rather than NaN.
package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Point is one paired observation.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Result describes the least-squares line y = Intercept + Slope*x and the
// strength of the linear relationship. RSquared is always Correlation².
type Result struct {
	Slope       float64 `json:"slope"`
	Intercept   float64 `json:"intercept"`
	Correlation float64 `json:"correlation"`
	RSquared    float64 `json:"rSquared"`
	N           int     `json:"n"`
}

// LinearRegression fits points by ordinary least squares.
//
// With n < 2 the zero Result is returned. When x has no variance the slope is
// 0 and the intercept is the mean of y. When either x or y has no variance
// the correlation is 0.
func LinearRegression(points []Point) Result {
	n := len(points)
	if n < 2 {
		return Result{N: n}
	}

	xs := make([]float64, n)
	ys := make([]float64, n)
	for i, p := range points {
		xs[i] = p.X
		ys[i] = p.Y
	}

	res := Result{N: n}
	varX := stat.Variance(xs, nil)
	varY := stat.Variance(ys, nil)

	if varX == 0 {
		res.Intercept = stat.Mean(ys, nil)
	} else {
		res.Intercept, res.Slope = stat.LinearRegression(xs, ys, nil, false)
	}

	if varX != 0 && varY != 0 {
		r := stat.Correlation(xs, ys, nil)
		if !math.IsNaN(r) {
			res.Correlation = clamp(r, -1, 1)
		}
	}
	res.RSquared = res.Correlation * res.Correlation
	return res
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
