package regression_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KaramelBytes/boxoffice-cli/internal/regression"
)

func TestFitExactLine(t *testing.T) {
	l := regression.Fit([]regression.XY{{1, 2}, {2, 4}, {3, 6}})
	assert.False(t, l.Degenerate)
	assert.InDelta(t, 2.0, l.Slope, 1e-9)
	assert.InDelta(t, 0.0, l.Intercept, 1e-9)
	assert.InDelta(t, 8.0, l.Predict(4), 1e-9)
	assert.InDelta(t, 1.0, l.RSquared, 1e-9)
	assert.Equal(t, 3, l.N)
}

func TestFitNoisyLine(t *testing.T) {
	l := regression.Fit([]regression.XY{{0, 1}, {1, 3.1}, {2, 4.9}, {3, 7.2}, {4, 8.8}})
	assert.InDelta(t, 1.97, l.Slope, 0.05)
	assert.InDelta(t, 1.08, l.Intercept, 0.1)
	assert.Greater(t, l.RSquared, 0.99)
}

func TestFitSinglePointFallsBackToFlatLine(t *testing.T) {
	var l regression.Line
	assert.NotPanics(t, func() { l = regression.Fit([]regression.XY{{5, 5}}) })
	assert.True(t, l.Degenerate)
	assert.Zero(t, l.Slope)
	assert.Equal(t, 5.0, l.Intercept)
	assert.Equal(t, 5.0, l.Predict(100))
}

func TestFitDegenerateInputs(t *testing.T) {
	empty := regression.Fit(nil)
	assert.True(t, empty.Degenerate)
	assert.Zero(t, empty.Predict(42))

	vertical := regression.Fit([]regression.XY{{2, 1}, {2, 3}, {2, 8}})
	assert.True(t, vertical.Degenerate)
	assert.Zero(t, vertical.Slope)
	assert.InDelta(t, 4.0, vertical.Intercept, 1e-12)

	flat := regression.Fit([]regression.XY{{1, 3}, {2, 3}, {3, 3}})
	assert.False(t, flat.Degenerate)
	assert.InDelta(t, 0.0, flat.Slope, 1e-12)
	assert.InDelta(t, 3.0, flat.Predict(10), 1e-12)
}
