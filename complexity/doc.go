// Package complexity infers the asymptotic growth class of a numeric relationship.
//
// Given a set of (x, y) observations, typically input size against measured
// runtime, the package fits every model of a fixed catalog and ranks the fits by
// how well each one explains the data.
//
// # Model Catalog
//
//   - Constant:     y = offset
//   - Logarithmic:  y = gain * ln(x) + offset
//   - Linear:       y = gain * x + offset
//   - Linearithmic: y = gain * x * ln(x) + offset
//   - Quadratic:    y = gain * x² + offset
//   - Cubic:        y = gain * x³ + offset
//   - Polynomial:   y = gain * x^power
//   - Exponential:  y = gain * base^x
//
// Every model reduces to closed-form linear least squares after a variable
// transform. Polynomial is fitted in log-log space and Exponential in
// log-linear space; both report gain and power/base but never an offset.
//
// # Scoring
//
// Each fit is scored in the original y-space, regardless of the space it was
// fitted in: predictions are recomputed from the recovered parameters and the
// score is the root mean squared error divided by the mean absolute y. Lower is
// better and zero is an exact fit. Scores from log-space and linear-space fits
// are therefore directly comparable.
//
// # Selection
//
// Infer fits every candidate whose precondition holds (for example, Logarithmic
// needs all x > 0), silently drops candidates that cannot apply or whose
// regression is degenerate, and sorts the survivors by score. Scores within the
// tie tolerance (DefaultTieTolerance) are ordered by rank, so the simpler class
// wins a tie.
//
// # Usage
//
//	points := []complexity.Point{{X: 1, Y: 1}, {X: 2, Y: 4}, {X: 3, Y: 9}, {X: 4, Y: 16}}
//	best, all, err := complexity.Infer(points)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(best.Notation) // O(n^2)
//	for _, c := range all {
//	    fmt.Println(c)
//	}
//
// # Registry
//
// The registry maps names to canonical notations and growth ranks and can be
// queried without running inference:
//
//	linear, _ := complexity.Lookup("O(n)")
//	cubic, _ := complexity.Lookup("O(n^3)")
//	fmt.Println(linear.Less(cubic)) // true
//
// The catalog and the registry are immutable package-level values; Infer and
// Fit are safe for concurrent use.
package complexity
