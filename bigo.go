// Package bigo infers the asymptotic growth class of measured observations.
//
// Given (x, y) pairs, typically input size against running time or memory,
// bigo fits eight candidate models with closed-form least squares, scores
// each fit in the original y-space and reports the best one:
//
//	O(1) < O(log n) < O(n) < O(n log n) < O(n^2) < O(n^3) < O(n^m) < O(c^n)
//
// # Basic Usage
//
//	points := []bigo.Point{{X: 1, Y: 17}, {X: 2, Y: 27}, {X: 3, Y: 37}, {X: 4, Y: 47}}
//	best, all, err := bigo.Infer(points)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(best.Notation) // O(n)
//	for _, c := range all {
//	    fmt.Println(c.Name, c.Score)
//	}
//
// Comparing growth classes:
//
//	a := bigo.MustLookup("O(n log n)")
//	b := bigo.MustLookup("O(n^2)")
//	fmt.Println(a.Less(b)) // true
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the complexity
// package. Observation files are read with the dataset package, and repeated
// inference over the same observations can be memoized with the cache package.
package bigo

import (
	"github.com/arloliu/bigo/complexity"
	"github.com/arloliu/bigo/dataset"
)

type (
	// Point is one (x, y) observation.
	Point = complexity.Point
	// Complexity is the result of fitting one model.
	Complexity = complexity.Complexity
	// Entry is one row of the complexity registry.
	Entry = complexity.Entry
)

// Infer fits every model in the catalog to points and returns the best fit
// and all successful fits, best first.
//
// Available options:
//   - complexity.WithTieTolerance(tol)
//   - complexity.WithCandidates(names...)
//   - complexity.WithStrictValidation()
//   - complexity.WithLogger(logger)
//
// Example:
//
//	best, _, err := bigo.Infer(points, complexity.WithStrictValidation())
func Infer(points []Point, opts ...complexity.InferOption) (Complexity, []Complexity, error) {
	return complexity.Infer(points, opts...)
}

// InferFile loads the observation file at path and infers its complexity.
// The encoding and compression are detected from the file extensions.
func InferFile(path string, opts ...complexity.InferOption) (Complexity, []Complexity, error) {
	points, err := dataset.LoadFile(path)
	if err != nil {
		return Complexity{}, nil, err
	}

	return complexity.Infer(points, opts...)
}

// Lookup returns the registry entry for a canonical notation such as "O(n^2)".
func Lookup(notation string) (Entry, error) {
	return complexity.Lookup(notation)
}

// MustLookup is like Lookup but panics if the notation is unknown.
// It is intended for notations written as literals in source code.
func MustLookup(notation string) Entry {
	e, err := complexity.Lookup(notation)
	if err != nil {
		panic(err)
	}

	return e
}
