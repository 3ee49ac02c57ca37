// Package hash computes xxHash64 fingerprints.
package hash

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint hashes a labelled sequence of float64 columns.
//
// Each value is hashed by its IEEE-754 bit pattern, so -0 and +0 differ and
// every NaN payload hashes distinctly. Column lengths are mixed in to keep
// ([1,2],[3]) and ([1],[2,3]) apart.
type Fingerprint struct {
	d   *xxhash.Digest
	buf [8]byte
}

// NewFingerprint starts a fingerprint seeded with label.
func NewFingerprint(label string) *Fingerprint {
	f := &Fingerprint{d: xxhash.New()}
	_, _ = f.d.WriteString(label)

	return f
}

// Uint64 mixes a raw integer into the fingerprint.
func (f *Fingerprint) Uint64(v uint64) *Fingerprint {
	binary.LittleEndian.PutUint64(f.buf[:], v)
	_, _ = f.d.Write(f.buf[:])

	return f
}

// Float64s mixes a column of floats into the fingerprint.
func (f *Fingerprint) Float64s(values []float64) *Fingerprint {
	f.Uint64(uint64(len(values)))
	for _, v := range values {
		f.Uint64(math.Float64bits(v))
	}

	return f
}

// Text mixes a string into the fingerprint.
func (f *Fingerprint) Text(s string) *Fingerprint {
	f.Uint64(uint64(len(s)))
	_, _ = f.d.WriteString(s)

	return f
}

// Sum returns the current 64-bit digest.
func (f *Fingerprint) Sum() uint64 {
	return f.d.Sum64()
}
