package regression

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

var (
	ErrLengthMismatch = errors.New("x and y lengths differ")
	ErrTooFewPoints   = errors.New("at least two points are required")
	ErrDegenerate     = errors.New("all x values are equal")
)

// Model is a fitted line y = Intercept + Slope*x
type Model struct {
	Slope     float64
	Intercept float64
	R2        float64 // coefficient of determination
}

// Fit computes the ordinary least squares line through (x[i], y[i])
func Fit(x, y []float64) (Model, error) {
	if len(x) != len(y) {
		return Model{}, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(x), len(y))
	}
	if len(x) < 2 {
		return Model{}, ErrTooFewPoints
	}

	alpha, beta := stat.LinearRegression(x, y, nil, false)
	if math.IsNaN(beta) || math.IsInf(beta, 0) {
		return Model{}, ErrDegenerate
	}

	return Model{
		Slope:     beta,
		Intercept: alpha,
		R2:        stat.RSquared(x, y, nil, alpha, beta),
	}, nil
}

// Predict evaluates the line at x
func (m Model) Predict(x float64) float64 {
	return m.Intercept + m.Slope*x
}

// Flat returns the horizontal line through the mean of y, which is what an
// ordinary least squares fit degrades to when x carries no information
// (a single point, or every x equal).
func Flat(y []float64) Model {
	if len(y) == 0 {
		return Model{}
	}
	return Model{Intercept: stat.Mean(y, nil)}
}
