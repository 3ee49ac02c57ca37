package complexity

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"math"
	"slices"
)

// Infer fits every candidate model to points and returns the best fit along
// with all successful fits, best first.
//
// Candidates whose precondition fails or whose regression is degenerate are
// excluded without error. Fits are ordered by score; fits whose scores lie
// within the tie tolerance of the first fit of their group are ordered by
// rank, so the simpler class comes first.
//
// Parameters:
//   - points: observations, at least MinObservations; not modified
//   - opts: optional InferOption values
//
// Returns:
//   - Complexity: the best fit (equal to all[0])
//   - []Complexity: every successful fit, best first
//   - error: ErrInsufficientData, ErrInvalidObservation, ErrNoApplicableModel or an option error
func Infer(points []Point, opts ...InferOption) (Complexity, []Complexity, error) {
	cfg, err := NewInferConfig(opts...)
	if err != nil {
		return Complexity{}, nil, err
	}

	return InferWithConfig(points, cfg)
}

// InferWithConfig is Infer with an already resolved configuration.
func InferWithConfig(points []Point, cfg InferConfig) (Complexity, []Complexity, error) {
	if len(points) < MinObservations {
		return Complexity{}, nil, fmt.Errorf("%w: got %d observations, need at least %d",
			ErrInsufficientData, len(points), MinObservations)
	}
	for i, p := range points {
		if !isFinite(p.X) || !isFinite(p.Y) {
			return Complexity{}, nil, fmt.Errorf("%w: point %d is (%v, %v)", ErrInvalidObservation, i, p.X, p.Y)
		}
	}

	candidates := cfg.Candidates
	if len(candidates) == 0 {
		candidates = Names()
	}

	fits := make([]Complexity, 0, len(candidates))
	for _, name := range candidates {
		c, err := Fit(name, points)
		if err != nil {
			logExcluded(cfg.Logger, name, err.Error())
			continue
		}
		if cfg.Strict {
			if reason := validate(c); reason != "" {
				logExcluded(cfg.Logger, name, reason)
				continue
			}
		}
		fits = append(fits, c)
	}

	if len(fits) == 0 {
		return Complexity{}, nil, fmt.Errorf("%w: all %d candidates excluded", ErrNoApplicableModel, len(candidates))
	}

	rankFits(fits, cfg.TieTolerance)

	return fits[0], fits, nil
}

// rankFits sorts by score, then reorders each run of tied scores by rank.
// A run starts at the lowest remaining score and extends over every score
// within tol of it, which keeps the grouping deterministic.
func rankFits(fits []Complexity, tol float64) {
	slices.SortStableFunc(fits, func(a, b Complexity) int {
		if c := cmp.Compare(a.Score, b.Score); c != 0 {
			return c
		}

		return cmp.Compare(a.Rank, b.Rank)
	})

	for i := 0; i < len(fits); {
		j := i + 1
		for j < len(fits) && fits[j].Score-fits[i].Score <= tol {
			j++
		}
		slices.SortStableFunc(fits[i:j], func(a, b Complexity) int {
			return cmp.Compare(a.Rank, b.Rank)
		})
		i = j
	}
}

func logExcluded(logger *slog.Logger, name Name, reason string) {
	if logger == nil {
		return
	}
	logger.LogAttrs(context.Background(), slog.LevelDebug, "candidate excluded",
		slog.String("model", name.String()),
		slog.String("reason", reason),
	)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
