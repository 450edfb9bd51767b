package regression

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// XY is one observation.
type XY struct {
	X, Y float64
}

// Line is a fitted y = Intercept + Slope*x.
type Line struct {
	Slope     float64
	Intercept float64
	// RSquared is the coefficient of determination; 0 for degenerate fits.
	RSquared float64
	// N is the number of points the line was fitted on.
	N int
	// Degenerate is set when x has no spread (fewer than two points or all
	// x equal). The line is then flat through the mean of y.
	Degenerate bool
}

// Fit computes an ordinary least squares line over points.
// Degenerate input never divides by zero: slope is 0 and the intercept is the
// mean of y (0 when there are no points).
func Fit(points []XY) Line {
	n := len(points)
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i, p := range points {
		xs[i] = p.X
		ys[i] = p.Y
	}
	if n == 0 {
		return Line{Degenerate: true}
	}
	if n < 2 || stat.Variance(xs, nil) == 0 {
		return Line{Intercept: stat.Mean(ys, nil), N: n, Degenerate: true}
	}
	alpha, beta := stat.LinearRegression(xs, ys, nil, false)
	if math.IsNaN(alpha) || math.IsNaN(beta) {
		return Line{Intercept: stat.Mean(ys, nil), N: n, Degenerate: true}
	}
	r2 := stat.RSquared(xs, ys, nil, alpha, beta)
	if math.IsNaN(r2) {
		// constant y is fitted exactly
		r2 = 1
	}
	return Line{Slope: beta, Intercept: alpha, RSquared: r2, N: n}
}

// Predict evaluates the line at x.
func (l Line) Predict(x float64) float64 {
	return l.Intercept + l.Slope*x
}
