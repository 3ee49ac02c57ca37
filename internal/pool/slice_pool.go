package pool

import "sync"

// float64SlicePool holds scratch buffers for transformed regression columns.
var float64SlicePool = sync.Pool{
	New: func() any { return &[]float64{} },
}

// GetFloat64Slice retrieves a float64 slice of exactly size elements from the pool.
//
// The contents of the returned slice are unspecified; callers overwrite every
// element before reading. The caller must invoke the returned cleanup function
// (typically with defer) once the slice is no longer referenced. Values derived
// from the slice must be copied out before cleanup runs.
//
// Example:
//
//	features, release := pool.GetFloat64Slice(len(points))
//	defer release()
func GetFloat64Slice(size int) ([]float64, func()) {
	ptr, _ := float64SlicePool.Get().(*[]float64)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]float64, size)
	} else {
		slice = slice[:size]
	}
	*ptr = slice

	return slice, func() { float64SlicePool.Put(ptr) }
}

// GetFloat64Columns retrieves count pooled slices of length size each.
// A single cleanup function releases all of them.
func GetFloat64Columns(count, size int) ([][]float64, func()) {
	cols := make([][]float64, count)
	releases := make([]func(), count)
	for i := range count {
		cols[i], releases[i] = GetFloat64Slice(size)
	}

	return cols, func() {
		for _, release := range releases {
			release()
		}
	}
}
