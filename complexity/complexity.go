package complexity

import (
	"fmt"
	"math"
)

// Point is a single (x, y) observation, e.g. input size and measured runtime.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Complexity is the outcome of one successful fit.
//
// Fields:
//   - Name: complexity class
//   - Notation: canonical Big-O notation from the registry
//   - Params: recovered model parameters
//   - Score: normalised RMSE in the original y-space (lower is better, 0 is exact)
//   - Rank: growth-order rank from the registry
type Complexity struct {
	Name     Name    `json:"name"`
	Notation string  `json:"notation"`
	Params   Params  `json:"params"`
	Score    float64 `json:"score"`
	Rank     int     `json:"rank"`
}

// New returns an unfitted Complexity carrying only registry data and params.
// It is mostly useful to compare against fitted results or to evaluate a
// known model with Predict.
func New(name Name, params Params) (Complexity, error) {
	e, ok := EntryOf(name)
	if !ok {
		return Complexity{}, &UnknownComplexityError{Notation: name.String()}
	}

	return Complexity{Name: e.Name, Notation: e.Notation, Params: params, Rank: e.Rank}, nil
}

// Entry returns the registry entry of c.
func (c Complexity) Entry() Entry {
	return Entry{Name: c.Name, Notation: c.Notation, Rank: c.Rank}
}

// Predict evaluates the model at x.
// It fails with ErrMissingParams when a parameter required by the model is absent.
func (c Complexity) Predict(x float64) (float64, error) {
	if !c.Name.Valid() {
		return math.NaN(), &UnknownComplexityError{Notation: c.Name.String()}
	}
	m := &catalog[c.Name]
	if !m.hasParams(c.Params) {
		return math.NaN(), fmt.Errorf("%w: %s needs %s", ErrMissingParams, c.Name, m.paramNames)
	}

	return m.predict(c.Params, x), nil
}

// Degree approximates the class as a polynomial degree k of f(x) = x^k.
//
// Logarithmic and Linearithmic use 0.13 and 1.13, the exponent that ln(x)
// behaves like around x = 10^6. Polynomial returns its fitted power (NaN when
// unset) and Exponential returns +Inf.
func (c Complexity) Degree() float64 {
	switch c.Name {
	case Constant:
		return 0
	case Logarithmic:
		return 0.13
	case Linear:
		return 1
	case Linearithmic:
		return 1.13
	case Quadratic:
		return 2
	case Cubic:
		return 3
	case Polynomial:
		if p, ok := c.Params.PowerValue(); ok {
			return p
		}

		return math.NaN()
	case Exponential:
		return math.Inf(1)
	default:
		return math.NaN()
	}
}

// Less reports whether c is a strictly slower-growing class than other.
func (c Complexity) Less(other Complexity) bool {
	return c.Rank < other.Rank
}

// Clone returns a deep copy of c.
func (c Complexity) Clone() Complexity {
	c.Params = c.Params.Clone()
	return c
}

func (c Complexity) String() string {
	return fmt.Sprintf("%s %s [%s] score=%.4g", c.Name, c.Notation, c.Params, c.Score)
}
