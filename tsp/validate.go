// Package tsp - validation utilities shared by the exact solvers.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - O(n²) worst-case where n is the table order.
package tsp

// validateWeights verifies a distance table for the exact solvers.
// It returns n (table order) on success.
//
// Contract:
//   - w must be non-nil with n ≥ 2.
//   - every present edge must be non-negative.
//
// Complexity: O(n²).
func validateWeights(w Weights) (int, error) {
	if w == nil {
		return 0, ErrDimensionMismatch
	}
	n := w.Len()
	if n < 2 {
		return 0, ErrDimensionMismatch
	}

	var (
		i, j int
		c    int
		ok   bool
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			if c, ok = w.Weight(i, j); ok && c < 0 {
				return 0, ErrNegativeWeight
			}
		}
	}

	return n, nil
}

// isSymmetric reports whether presence and value of u→v equal those of v→u
// for every pair.
//
// Complexity: O(n²).
func isSymmetric(w Weights) bool {
	var (
		n        = w.Len()
		i, j     int
		a, b     int
		oka, okb bool
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			a, oka = w.Weight(i, j)
			b, okb = w.Weight(j, i)
			if oka != okb || (oka && a != b) {
				return false
			}
		}
	}

	return true
}

// validateStartVertex verifies that start∈[0..n-1].
func validateStartVertex(n int, start int) error {
	if start < 0 || start >= n {
		return ErrStartOutOfRange
	}

	return nil
}
