package cache

import (
	"bytes"
	"log/slog"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/bigo/complexity"
)

func series(n int, f func(x float64) float64) []complexity.Point {
	points := make([]complexity.Point, n)
	for i := range points {
		x := float64(i + 1)
		points[i] = complexity.Point{X: x, Y: f(x)}
	}

	return points
}

func TestNewOptions(t *testing.T) {
	in, err := New()
	require.NoError(t, err)
	require.Equal(t, DefaultSize, in.size)
	require.Equal(t, complexity.DefaultTieTolerance, in.Config().TieTolerance)

	_, err = New(WithSize(0))
	require.Error(t, err)

	_, err = New(WithInferOptions(complexity.WithTieTolerance(-1)))
	require.Error(t, err)

	in, err = New(WithSize(3), WithInferOptions(complexity.WithStrictValidation(), complexity.WithCandidates(complexity.Linear)))
	require.NoError(t, err)
	require.Equal(t, 3, in.size)
	require.True(t, in.Config().Strict)
	require.Equal(t, []complexity.Name{complexity.Linear}, in.Config().Candidates)
}

func TestInferMatchesUncached(t *testing.T) {
	in, err := New()
	require.NoError(t, err)

	points := series(30, func(x float64) float64 { return 3*x*x + 2 })
	wantBest, wantAll, err := complexity.Infer(points)
	require.NoError(t, err)

	for range 3 {
		best, all, err := in.Infer(points)
		require.NoError(t, err)
		require.Equal(t, wantBest, best)
		require.Equal(t, wantAll, all)
	}

	s := in.Stats()
	require.Equal(t, uint64(1), s.Misses)
	require.Equal(t, uint64(2), s.Hits)
	require.Equal(t, 1, s.Entries)
}

func TestInferRemembersErrors(t *testing.T) {
	in, err := New()
	require.NoError(t, err)

	points := []complexity.Point{{X: 1, Y: math.NaN()}, {X: 2, Y: 3}}
	for range 2 {
		_, all, err := in.Infer(points)
		require.ErrorIs(t, err, complexity.ErrInvalidObservation)
		require.Nil(t, all)
	}
	require.Equal(t, uint64(1), in.Stats().Hits)

	_, _, err = in.Infer(points[:1])
	require.ErrorIs(t, err, complexity.ErrInsufficientData)
}

func TestInferReturnsCopies(t *testing.T) {
	in, err := New()
	require.NoError(t, err)

	points := series(10, func(x float64) float64 { return 5*x + 1 })
	best, all, err := in.Infer(points)
	require.NoError(t, err)

	*best.Params.Gain = 1000
	all[0].Score = 42
	all = all[:0]
	points[0].Y = -1

	again, againAll, err := in.Infer(series(10, func(x float64) float64 { return 5*x + 1 }))
	require.NoError(t, err)
	gain, ok := again.Params.GainValue()
	require.True(t, ok)
	require.InDelta(t, 5, gain, 1e-9)
	require.NotEqual(t, float64(42), againAll[0].Score)
	require.Equal(t, uint64(1), in.Stats().Hits)
}

func TestInferDistinguishesInputs(t *testing.T) {
	in, err := New()
	require.NoError(t, err)

	linear := series(20, func(x float64) float64 { return 2*x + 1 })
	cubic := series(20, func(x float64) float64 { return x * x * x })

	best, _, err := in.Infer(linear)
	require.NoError(t, err)
	require.Equal(t, complexity.Linear, best.Name)

	best, _, err = in.Infer(cubic)
	require.NoError(t, err)
	require.Equal(t, complexity.Cubic, best.Name)

	require.Equal(t, uint64(2), in.Stats().Misses)
	require.Equal(t, uint64(0), in.Stats().Hits)
}

func TestInferSettingsChangeKey(t *testing.T) {
	points := series(20, func(x float64) float64 { return 2*x + 1 })

	loose, err := New()
	require.NoError(t, err)
	strict, err := New(WithInferOptions(complexity.WithStrictValidation()))
	require.NoError(t, err)

	require.NotEqual(t, loose.settings, strict.settings)
	require.NotEqual(t, loose.key(points), strict.key(points))
}

func TestEvictionFIFO(t *testing.T) {
	in, err := New(WithSize(2))
	require.NoError(t, err)

	a := series(10, func(x float64) float64 { return x })
	b := series(10, func(x float64) float64 { return x * x })
	c := series(10, func(x float64) float64 { return x * x * x })

	for _, p := range [][]complexity.Point{a, b, c} {
		_, _, err := in.Infer(p)
		require.NoError(t, err)
	}

	s := in.Stats()
	require.Equal(t, 2, s.Entries)
	require.Equal(t, uint64(1), s.Evictions)

	// a was first in, so it was evicted.
	_, _, err = in.Infer(a)
	require.NoError(t, err)
	require.Equal(t, uint64(4), in.Stats().Misses)

	_, _, err = in.Infer(c)
	require.NoError(t, err)
	require.Equal(t, uint64(1), in.Stats().Hits)
}

func TestCollisionIsDetected(t *testing.T) {
	in, err := New()
	require.NoError(t, err)

	a := series(10, func(x float64) float64 { return x })
	b := series(10, func(x float64) float64 { return x * x })

	_, _, err = in.Infer(a)
	require.NoError(t, err)

	// Force b onto a's slot.
	res, ok := in.lookup(in.key(a), b)
	require.False(t, ok)
	require.Equal(t, result{}, res)
	require.Equal(t, uint64(1), in.Stats().Collisions)
}

func TestReset(t *testing.T) {
	in, err := New()
	require.NoError(t, err)

	_, _, err = in.Infer(series(5, func(x float64) float64 { return x }))
	require.NoError(t, err)
	in.Reset()

	require.Equal(t, Stats{}, in.Stats())
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	in, err := New(WithLogger(logger))
	require.NoError(t, err)
	require.NotNil(t, in.Config().Logger)

	_, _, err = in.Infer([]complexity.Point{{X: 0, Y: 1}, {X: 1, Y: 3}, {X: 2, Y: 5}})
	require.NoError(t, err)
	require.Contains(t, buf.String(), "candidate excluded")
}

func TestConcurrentInfer(t *testing.T) {
	in, err := New(WithSize(4))
	require.NoError(t, err)

	sets := [][]complexity.Point{
		series(25, func(x float64) float64 { return 4*x + 2 }),
		series(25, func(x float64) float64 { return 7 }),
		series(25, func(x float64) float64 { return x * x }),
		series(25, func(x float64) float64 { return 2 * x * math.Log(x) }),
	}
	want := []complexity.Name{complexity.Linear, complexity.Constant, complexity.Quadratic, complexity.Linearithmic}

	var wg sync.WaitGroup
	got := make([]complexity.Name, 128)
	for i := range got {
		wg.Add(1)
		go func() {
			defer wg.Done()
			best, _, err := in.Infer(sets[i%len(sets)])
			if err == nil {
				got[i] = best.Name
			}
		}()
	}
	wg.Wait()

	for i, name := range got {
		require.Equal(t, want[i%len(want)], name)
	}
	s := in.Stats()
	require.Equal(t, uint64(len(got)), s.Hits+s.Misses)
	require.Equal(t, 4, s.Entries)
}

func BenchmarkInferHit(b *testing.B) {
	in, _ := New()
	points := series(200, func(x float64) float64 { return x * math.Log(x) })
	_, _, _ = in.Infer(points)

	for b.Loop() {
		_, _, _ = in.Infer(points)
	}
}
