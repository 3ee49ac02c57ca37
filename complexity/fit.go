package complexity

import (
	"errors"
	"math"

	"github.com/arloliu/bigo/internal/linalg"
	"github.com/arloliu/bigo/internal/pool"
)

var errNonFiniteScore = errors.New("non-finite prediction or score")

// Fit fits a single catalog model to the observations.
//
// The model's precondition is checked first and reported as
// *UnsupportedDomainError. The data is then linearised, solved by ordinary
// least squares and mapped back to the model's parameters; a singular or
// non-finite regression is reported as *DegenerateInputError. The returned
// score is computed in the original y-space.
//
// Parameters:
//   - name: catalog model to fit
//   - points: observations, not modified
//
// Returns:
//   - Complexity: fitted result with registry notation and rank
//   - error: *UnsupportedDomainError, *DegenerateInputError or *UnknownComplexityError
func Fit(name Name, points []Point) (Complexity, error) {
	if !name.Valid() {
		return Complexity{}, &UnknownComplexityError{Notation: name.String()}
	}
	m := &catalog[name]
	n := len(points)

	cols, release := pool.GetFloat64Columns(4, n)
	defer release()
	xs, ys, features, targets := cols[0], cols[1], cols[2], cols[3]

	for i, p := range points {
		xs[i], ys[i] = p.X, p.Y
	}

	if reason := m.precondition(xs, ys); reason != "" {
		return Complexity{}, &UnsupportedDomainError{Name: name, Reason: reason}
	}

	for i := range n {
		features[i], targets[i] = m.transform(xs[i], ys[i])
	}

	var design [][]float64
	if m.regressors == 1 {
		design = [][]float64{features}
	}

	sol, err := linalg.OLS(design, targets)
	if err != nil {
		return Complexity{}, &DegenerateInputError{Name: name, Err: err}
	}

	params := m.recover(sol)
	score := originalSpaceScore(m, params, xs, ys)
	if math.IsNaN(score) || math.IsInf(score, 0) {
		return Complexity{}, &DegenerateInputError{Name: name, Err: errNonFiniteScore}
	}

	e := registry[name]

	return Complexity{
		Name:     e.Name,
		Notation: e.Notation,
		Params:   params,
		Score:    score,
		Rank:     e.Rank,
	}, nil
}

// originalSpaceScore returns RMSE(y, ŷ) / mean(|y|), with ŷ recomputed from
// the recovered parameters. When every y is zero the plain RMSE is returned.
func originalSpaceScore(m *model, p Params, xs, ys []float64) float64 {
	var ssr, sumAbs float64
	for i, x := range xs {
		r := ys[i] - m.predict(p, x)
		ssr += r * r
		sumAbs += math.Abs(ys[i])
	}
	n := float64(len(xs))
	rmse := math.Sqrt(ssr / n)

	scale := sumAbs / n
	if !(scale > 0) {
		scale = 1
	}

	return rmse / scale
}
