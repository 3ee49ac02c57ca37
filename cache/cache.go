// Package cache memoizes complexity inference.
//
// Callers that classify the same observation sets repeatedly, such as a CLI
// re-reading benchmark files or a service answering identical requests, can
// share one Inferrer. Results are keyed by an xxHash64 fingerprint of the
// observations and the inference settings; a hit is confirmed against the
// stored observations so a fingerprint collision never returns a wrong answer.
package cache

import (
	"container/list"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"sync"

	"github.com/arloliu/bigo/complexity"
	"github.com/arloliu/bigo/internal/hash"
	"github.com/arloliu/bigo/internal/options"
)

// DefaultSize is the number of observation sets an Inferrer remembers by default.
const DefaultSize = 256

// Stats reports cache effectiveness.
type Stats struct {
	Hits       uint64
	Misses     uint64
	Collisions uint64
	Evictions  uint64
	Entries    int
}

type config struct {
	size      int
	logger    *slog.Logger
	inferOpts []complexity.InferOption
}

// Option configures an Inferrer.
type Option = options.Option[*config]

// WithSize bounds the number of remembered observation sets. It must be positive.
func WithSize(n int) Option {
	return options.New(func(c *config) error {
		if n <= 0 {
			return fmt.Errorf("cache: invalid size %d", n)
		}
		c.size = n

		return nil
	})
}

// WithLogger sets the logger used for cache and inference debug records.
func WithLogger(logger *slog.Logger) Option {
	return options.NoError(func(c *config) {
		c.logger = logger
	})
}

// WithInferOptions sets the options every inference runs with.
func WithInferOptions(opts ...complexity.InferOption) Option {
	return options.NoError(func(c *config) {
		c.inferOpts = append(c.inferOpts, opts...)
	})
}

type result struct {
	best complexity.Complexity
	all  []complexity.Complexity
	err  error
}

type entry struct {
	key    uint64
	points []complexity.Point
	res    result
}

// Inferrer is a concurrency-safe memoizing wrapper around complexity inference.
// Entries are evicted first-in first-out once the size bound is reached.
type Inferrer struct {
	cfg      complexity.InferConfig
	size     int
	logger   *slog.Logger
	settings uint64

	mu      sync.RWMutex
	entries map[uint64]*list.Element
	order   *list.List
	stats   Stats
}

// New creates an Inferrer.
//
// Parameters:
//   - opts: WithSize, WithLogger and WithInferOptions values
//
// Returns:
//   - *Inferrer: ready to use
//   - error: an invalid option
func New(opts ...Option) (*Inferrer, error) {
	c := config{size: DefaultSize}
	if err := options.Apply(&c, opts...); err != nil {
		return nil, err
	}

	inferOpts := c.inferOpts
	if c.logger != nil {
		inferOpts = append(slices.Clip(inferOpts), complexity.WithLogger(c.logger))
	}
	cfg, err := complexity.NewInferConfig(inferOpts...)
	if err != nil {
		return nil, fmt.Errorf("cache: %w", err)
	}

	return &Inferrer{
		cfg:      cfg,
		size:     c.size,
		logger:   c.logger,
		settings: settingsKey(cfg),
		entries:  make(map[uint64]*list.Element, c.size),
		order:    list.New(),
	}, nil
}

// Config returns the inference settings in effect.
func (in *Inferrer) Config() complexity.InferConfig {
	cfg := in.cfg
	cfg.Candidates = slices.Clone(cfg.Candidates)

	return cfg
}

// Infer behaves like complexity.Infer but answers repeated observation sets
// from memory. Failed inferences are remembered too. Returned values are
// copies the caller may modify.
func (in *Inferrer) Infer(points []complexity.Point) (complexity.Complexity, []complexity.Complexity, error) {
	key := in.key(points)

	if res, ok := in.lookup(key, points); ok {
		return res.best.Clone(), cloneAll(res.all), res.err
	}

	best, all, err := complexity.InferWithConfig(points, in.cfg)
	res := result{best: best.Clone(), all: cloneAll(all), err: err}
	in.store(key, points, res)

	return best, all, err
}

// Stats returns a snapshot of the cache counters.
func (in *Inferrer) Stats() Stats {
	in.mu.RLock()
	defer in.mu.RUnlock()

	s := in.stats
	s.Entries = in.order.Len()

	return s
}

// Reset forgets every remembered result and zeroes the counters.
func (in *Inferrer) Reset() {
	in.mu.Lock()
	defer in.mu.Unlock()

	clear(in.entries)
	in.order.Init()
	in.stats = Stats{}
}

func (in *Inferrer) key(points []complexity.Point) uint64 {
	fp := hash.NewFingerprint("bigo/points").Uint64(in.settings).Uint64(uint64(len(points)))
	for _, p := range points {
		fp.Float64s([]float64{p.X, p.Y})
	}

	return fp.Sum()
}

func (in *Inferrer) lookup(key uint64, points []complexity.Point) (result, bool) {
	in.mu.Lock()
	defer in.mu.Unlock()

	elem, ok := in.entries[key]
	if !ok {
		in.stats.Misses++
		return result{}, false
	}

	e := elem.Value.(*entry)
	if !samePoints(e.points, points) {
		in.stats.Collisions++
		in.stats.Misses++
		if in.logger != nil {
			in.logger.Debug("fingerprint collision", slog.Uint64("key", key), slog.Int("points", len(points)))
		}

		return result{}, false
	}
	in.stats.Hits++

	return e.res, true
}

func (in *Inferrer) store(key uint64, points []complexity.Point, res result) {
	in.mu.Lock()
	defer in.mu.Unlock()

	if elem, ok := in.entries[key]; ok {
		// A concurrent miss or a collision already filled the slot; keep the newest.
		e := elem.Value.(*entry)
		e.points = slices.Clone(points)
		e.res = res

		return
	}

	for in.order.Len() >= in.size {
		oldest := in.order.Front()
		delete(in.entries, oldest.Value.(*entry).key)
		in.order.Remove(oldest)
		in.stats.Evictions++
	}

	in.entries[key] = in.order.PushBack(&entry{key: key, points: slices.Clone(points), res: res})
}

// settingsKey fingerprints everything in cfg that changes inference results.
func settingsKey(cfg complexity.InferConfig) uint64 {
	fp := hash.NewFingerprint("bigo/settings").
		Float64s([]float64{cfg.TieTolerance}).
		Uint64(uint64(len(cfg.Candidates)))
	for _, n := range cfg.Candidates {
		fp.Text(n.Notation())
	}
	if cfg.Strict {
		fp.Uint64(1)
	} else {
		fp.Uint64(0)
	}

	return fp.Sum()
}

func samePoints(a, b []complexity.Point) bool {
	// Compare bit patterns so NaN observations (an invalid-input result) still match.
	return slices.EqualFunc(a, b, func(p, q complexity.Point) bool {
		return sameFloat(p.X, q.X) && sameFloat(p.Y, q.Y)
	})
}

func cloneAll(all []complexity.Complexity) []complexity.Complexity {
	if all == nil {
		return nil
	}
	out := make([]complexity.Complexity, len(all))
	for i, c := range all {
		out[i] = c.Clone()
	}

	return out
}

func sameFloat(a, b float64) bool {
	return math.Float64bits(a) == math.Float64bits(b)
}
