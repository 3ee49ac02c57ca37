package complexity

import "math"

// degenerateEpsilon is the absolute tolerance used by strict validation.
const degenerateEpsilon = 1e-5

type degradeCase struct {
	value float64
	to    Name
}

var (
	polynomialDegrades = []degradeCase{
		{0, Constant},  // gain * x^0 = gain
		{1, Linear},    // gain * x
		{2, Quadratic}, // gain * x^2
		{3, Cubic},     // gain * x^3
	}
	exponentialDegrades = []degradeCase{
		{0, Constant}, // gain * 0^x = 0
		{1, Constant}, // gain * 1^x = gain
	}
)

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) <= degenerateEpsilon
}

// degradesTo reports the simpler class a fitted model collapses into, if any.
func degradesTo(name Name, p Params) (Name, bool) {
	if name != Constant {
		if g, ok := p.GainValue(); ok && approxEqual(g, 0) {
			return Constant, true
		}
	}

	var cases []degradeCase
	var v float64
	var ok bool
	switch name {
	case Polynomial:
		v, ok = p.PowerValue()
		cases = polynomialDegrades
	case Exponential:
		v, ok = p.BaseValue()
		cases = exponentialDegrades
	}
	if !ok {
		return 0, false
	}
	for _, c := range cases {
		if approxEqual(v, c.value) {
			return c.to, true
		}
	}

	return 0, false
}

// validate reports why c should be dropped under strict validation, or "".
func validate(c Complexity) string {
	if g, ok := c.Params.GainValue(); ok && g < 0 {
		return "negative gain"
	}
	if to, ok := degradesTo(c.Name, c.Params); ok {
		return "degrades to " + to.String()
	}

	return ""
}
