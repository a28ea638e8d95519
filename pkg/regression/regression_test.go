package regression

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitExactLine(t *testing.T) {
	x := []float64{10, 20, 30, 40}
	y := []float64{25, 45, 65, 85}

	m, err := Fit(x, y)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, m.Slope, 1e-9)
	assert.InDelta(t, 5.0, m.Intercept, 1e-9)
	assert.InDelta(t, 1.0, m.R2, 1e-9)
	assert.InDelta(t, 105.0, m.Predict(50), 1e-9)
}

func TestFitNoisy(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	y := []float64{1.1, 1.9, 3.2, 3.8, 5.0}

	m, err := Fit(x, y)
	require.NoError(t, err)
	assert.InDelta(t, 0.97, m.Slope, 1e-9)
	assert.InDelta(t, 0.09, m.Intercept, 1e-9)
	assert.Greater(t, m.R2, 0.98)
	assert.Less(t, m.R2, 1.0)
}

func TestFitErrors(t *testing.T) {
	_, err := Fit([]float64{1, 2}, []float64{1})
	assert.ErrorIs(t, err, ErrLengthMismatch)

	_, err = Fit([]float64{1}, []float64{1})
	assert.ErrorIs(t, err, ErrTooFewPoints)

	_, err = Fit([]float64{3, 3, 3}, []float64{1, 2, 3})
	assert.ErrorIs(t, err, ErrDegenerate)
}

func TestFlat(t *testing.T) {
	m := Flat([]float64{10, 20, 30})
	assert.Equal(t, 0.0, m.Slope)
	assert.InDelta(t, 20.0, m.Intercept, 1e-12)
	assert.Equal(t, 0.0, m.R2)
	assert.InDelta(t, 20.0, m.Predict(1e9), 1e-12)

	assert.Equal(t, Model{}, Flat(nil))
}
