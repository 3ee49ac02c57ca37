package complexity

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"slices"

	"github.com/arloliu/bigo/internal/options"
)

// DefaultTieTolerance is the score difference under which two fits are
// treated as equally good and the lower rank wins.
const DefaultTieTolerance = 1e-9

// MinObservations is the smallest observation count Infer accepts.
const MinObservations = 2

// InferConfig holds the settings Infer runs with.
type InferConfig struct {
	// TieTolerance is the absolute score difference treated as a tie.
	TieTolerance float64
	// Candidates lists the models to try, in rank order.
	Candidates []Name
	// Strict drops fits with a negative gain or that collapse into a simpler class.
	Strict bool
	// Logger receives a debug record per excluded candidate; nil disables logging.
	Logger *slog.Logger
}

// DefaultInferConfig returns the whole catalog with the default tie tolerance.
func DefaultInferConfig() InferConfig {
	return InferConfig{
		TieTolerance: DefaultTieTolerance,
		Candidates:   Names(),
	}
}

// InferOption is a functional option for InferConfig.
type InferOption = options.Option[*InferConfig]

// WithTieTolerance sets the tie tolerance. It must be finite and non-negative.
func WithTieTolerance(tol float64) InferOption {
	return options.New(func(cfg *InferConfig) error {
		if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
			return fmt.Errorf("invalid tie tolerance: %v", tol)
		}
		cfg.TieTolerance = tol

		return nil
	})
}

// WithCandidates restricts inference to the given models.
// Duplicates are ignored; at least one valid name is required.
func WithCandidates(names ...Name) InferOption {
	return options.New(func(cfg *InferConfig) error {
		if len(names) == 0 {
			return errors.New("no candidate models given")
		}
		out := make([]Name, 0, len(names))
		for _, n := range names {
			if !n.Valid() {
				return &UnknownComplexityError{Notation: n.String()}
			}
			if !slices.Contains(out, n) {
				out = append(out, n)
			}
		}
		slices.SortFunc(out, func(a, b Name) int { return a.Rank() - b.Rank() })
		cfg.Candidates = out

		return nil
	})
}

// WithStrictValidation drops fits that are not meaningful growth estimates:
// a negative gain, or parameters that collapse the model into a simpler
// class (gain ≈ 0, polynomial power ≈ 0/1/2/3, exponential base ≈ 0/1).
func WithStrictValidation() InferOption {
	return options.NoError(func(cfg *InferConfig) {
		cfg.Strict = true
	})
}

// WithLogger sets the logger used to report excluded candidates at debug level.
func WithLogger(logger *slog.Logger) InferOption {
	return options.NoError(func(cfg *InferConfig) {
		cfg.Logger = logger
	})
}

// NewInferConfig applies opts on top of DefaultInferConfig.
func NewInferConfig(opts ...InferOption) (InferConfig, error) {
	cfg := DefaultInferConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return InferConfig{}, err
	}

	return cfg, nil
}
