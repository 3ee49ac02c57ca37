// Package linalg provides the closed-form least-squares solver and the domain
// predicates used by the complexity fitter.
package linalg

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

var (
	// ErrEmpty is returned when there are no targets to fit.
	ErrEmpty = errors.New("linalg: no observations")
	// ErrDegenerate is returned when the design matrix is singular or the
	// solution is not finite.
	ErrDegenerate = errors.New("linalg: degenerate regression")
)

// MaxRegressors is the largest number of feature columns OLS accepts.
const MaxRegressors = 2

const collinearTolerance = 1e-12

// Solution holds the coefficients of an ordinary least-squares fit.
//
// The fitted model is target = Intercept + Slopes[0]*f0 + Slopes[1]*f1.
// SSR is the sum of squared residuals in the space the fit was computed in.
type Solution struct {
	Intercept float64
	Slopes    []float64
	SSR       float64
}

// Slope returns the i-th slope, or 0 when the solution has fewer regressors.
func (s Solution) Slope(i int) float64 {
	if i < 0 || i >= len(s.Slopes) {
		return 0
	}

	return s.Slopes[i]
}

// Predict evaluates the fitted linear model for one feature vector.
func (s Solution) Predict(features ...float64) float64 {
	v := s.Intercept
	for i, f := range features {
		v += s.Slope(i) * f
	}

	return v
}

// OLS solves the ordinary least-squares problem for the given feature columns
// and targets. An intercept is always fitted.
//
// With zero columns the solution is the mean of the targets. A single column
// is solved by mean-centering (covariance over variance); two columns are
// solved through a QR factorisation of the design matrix [1 | f0 | f1].
//
// Parameters:
//   - features: feature columns, each of len(targets)
//   - targets: regression targets
//
// Returns:
//   - Solution: intercept, slopes and residual sum of squares
//   - error: ErrEmpty, ErrDegenerate, or a shape error
func OLS(features [][]float64, targets []float64) (Solution, error) {
	n := len(targets)
	if n == 0 {
		return Solution{}, ErrEmpty
	}
	if len(features) > MaxRegressors {
		return Solution{}, fmt.Errorf("linalg: %d regressors requested, at most %d supported", len(features), MaxRegressors)
	}
	if !AllFinite(targets) {
		return Solution{}, fmt.Errorf("%w: non-finite target", ErrDegenerate)
	}
	for i, col := range features {
		if len(col) != n {
			return Solution{}, fmt.Errorf("linalg: feature %d has %d values, want %d", i, len(col), n)
		}
		if !AllFinite(col) {
			return Solution{}, fmt.Errorf("%w: feature %d is not finite", ErrDegenerate, i)
		}
		if !hasVariance(col) {
			return Solution{}, fmt.Errorf("%w: feature %d has no variance", ErrDegenerate, i)
		}
	}

	var sol Solution
	switch len(features) {
	case 0:
		sol = Solution{Intercept: stat.Mean(targets, nil)}
	case 1:
		alpha, beta := stat.LinearRegression(features[0], targets, nil, false)
		sol = Solution{Intercept: alpha, Slopes: []float64{beta}}
	default:
		if r := stat.Correlation(features[0], features[1], nil); !(1-math.Abs(r) > collinearTolerance) {
			return Solution{}, fmt.Errorf("%w: features are collinear (r=%g)", ErrDegenerate, r)
		}
		s, err := solveQR(features, targets)
		if err != nil {
			return Solution{}, err
		}
		sol = s
	}

	if !isFinite(sol.Intercept) {
		return Solution{}, fmt.Errorf("%w: non-finite intercept", ErrDegenerate)
	}
	for _, b := range sol.Slopes {
		if !isFinite(b) {
			return Solution{}, fmt.Errorf("%w: non-finite slope", ErrDegenerate)
		}
	}

	row := make([]float64, len(features))
	for i, t := range targets {
		for j, col := range features {
			row[j] = col[i]
		}
		r := t - sol.Predict(row...)
		sol.SSR += r * r
	}

	return sol, nil
}

// solveQR fits target = b0 + b1*f0 + ... through gonum's least-squares solve.
func solveQR(features [][]float64, targets []float64) (Solution, error) {
	n := len(targets)
	cols := len(features) + 1
	if n < cols {
		return Solution{}, fmt.Errorf("%w: %d observations for %d coefficients", ErrDegenerate, n, cols)
	}

	design := mat.NewDense(n, cols, nil)
	for i := range n {
		design.Set(i, 0, 1)
		for j, col := range features {
			design.Set(i, j+1, col[i])
		}
	}
	y := mat.NewVecDense(n, append([]float64(nil), targets...))

	var coef mat.VecDense
	if err := coef.SolveVec(design, y); err != nil {
		// mat.Condition signals a rank-deficient or ill-conditioned design.
		return Solution{}, fmt.Errorf("%w: %v", ErrDegenerate, err)
	}

	slopes := make([]float64, len(features))
	for j := range slopes {
		slopes[j] = coef.AtVec(j + 1)
	}

	return Solution{Intercept: coef.AtVec(0), Slopes: slopes}, nil
}

func hasVariance(values []float64) bool {
	if len(values) < 2 {
		return false
	}
	first := values[0]
	for _, v := range values[1:] {
		if v != first {
			return stat.Variance(values, nil) > 0
		}
	}

	return false
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
