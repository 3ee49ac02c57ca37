package linalg

// AllPositive reports whether every value is strictly greater than zero.
// An empty slice is vacuously positive.
func AllPositive(values []float64) bool {
	for _, v := range values {
		if !(v > 0) {
			return false
		}
	}

	return true
}

// AllFinite reports whether no value is NaN or infinite.
func AllFinite(values []float64) bool {
	for _, v := range values {
		if !isFinite(v) {
			return false
		}
	}

	return true
}

// AtLeast reports whether count reaches the minimum n.
func AtLeast(n, count int) bool {
	return count >= n
}
