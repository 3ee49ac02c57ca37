package complexity

import (
	"fmt"
	"math"

	"github.com/arloliu/bigo/internal/linalg"
)

// check inspects the observation columns and returns a non-empty reason when
// a model cannot be applied to them.
type check func(xs, ys []float64) string

func minPoints(n int) check {
	return func(xs, _ []float64) string {
		if !linalg.AtLeast(n, len(xs)) {
			return fmt.Sprintf("need at least %d observations, got %d", n, len(xs))
		}

		return ""
	}
}

func positiveX(xs, _ []float64) string {
	if !linalg.AllPositive(xs) {
		return "all x must be > 0"
	}

	return ""
}

func positiveY(_, ys []float64) string {
	if !linalg.AllPositive(ys) {
		return "all y must be > 0"
	}

	return ""
}

// model is one catalog entry: how to linearise the data, how to map the
// regression coefficients back, and how to evaluate the fitted curve.
type model struct {
	name Name
	// regressors is 0 for a mean-only fit and 1 for a slope plus intercept.
	regressors int
	paramNames string
	checks     []check
	transform  func(x, y float64) (feature, target float64)
	recover    func(sol linalg.Solution) Params
	predict    func(p Params, x float64) float64
}

func (m *model) precondition(xs, ys []float64) string {
	for _, c := range m.checks {
		if reason := c(xs, ys); reason != "" {
			return reason
		}
	}

	return ""
}

func (m *model) hasParams(p Params) bool {
	switch m.name {
	case Constant:
		return p.Offset != nil
	case Polynomial:
		return p.Gain != nil && p.Power != nil
	case Exponential:
		return p.Gain != nil && p.Base != nil
	default:
		return p.Gain != nil && p.Offset != nil
	}
}

// linearModel builds the y = gain*shape(x) + offset family, fitted directly in y.
func linearModel(name Name, shape func(x float64) float64, checks ...check) model {
	return model{
		name:       name,
		regressors: 1,
		paramNames: "gain and offset",
		checks:     append([]check{minPoints(2)}, checks...),
		transform: func(x, y float64) (float64, float64) {
			return shape(x), y
		},
		recover: func(sol linalg.Solution) Params {
			return NewParams().WithGain(sol.Slope(0)).WithOffset(sol.Intercept)
		},
		predict: func(p Params, x float64) float64 {
			return *p.Gain*shape(x) + *p.Offset
		},
	}
}

func identity(x float64) float64 { return x }
func xlogx(x float64) float64    { return x * math.Log(x) }
func square(x float64) float64   { return x * x }
func cube(x float64) float64     { return x * x * x }

// catalog is indexed by Name and never modified.
var catalog = [numNames]model{
	Constant: {
		name:       Constant,
		regressors: 0,
		paramNames: "offset",
		checks:     []check{minPoints(1)},
		transform: func(_, y float64) (float64, float64) {
			return 0, y
		},
		recover: func(sol linalg.Solution) Params {
			return NewParams().WithOffset(sol.Intercept)
		},
		predict: func(p Params, _ float64) float64 {
			return *p.Offset
		},
	},
	Logarithmic:  linearModel(Logarithmic, math.Log, positiveX),
	Linear:       linearModel(Linear, identity),
	Linearithmic: linearModel(Linearithmic, xlogx, positiveX),
	Quadratic:    linearModel(Quadratic, square),
	Cubic:        linearModel(Cubic, cube),
	Polynomial: {
		// ln(y) = ln(gain) + power*ln(x)
		name:       Polynomial,
		regressors: 1,
		paramNames: "gain and power",
		checks:     []check{minPoints(2), positiveX, positiveY},
		transform: func(x, y float64) (float64, float64) {
			return math.Log(x), math.Log(y)
		},
		recover: func(sol linalg.Solution) Params {
			return NewParams().WithGain(math.Exp(sol.Intercept)).WithPower(sol.Slope(0))
		},
		predict: func(p Params, x float64) float64 {
			return *p.Gain * math.Pow(x, *p.Power)
		},
	},
	Exponential: {
		// ln(y) = ln(gain) + x*ln(base)
		name:       Exponential,
		regressors: 1,
		paramNames: "gain and base",
		checks:     []check{minPoints(2), positiveY},
		transform: func(x, y float64) (float64, float64) {
			return x, math.Log(y)
		},
		recover: func(sol linalg.Solution) Params {
			return NewParams().WithGain(math.Exp(sol.Intercept)).WithBase(math.Exp(sol.Slope(0)))
		},
		predict: func(p Params, x float64) float64 {
			return *p.Gain * math.Pow(*p.Base, x)
		},
	},
}
