// Package tsp - cost utilities shared by the exact solvers and the GA.
//
// Design:
//   - Missing edges surface as ErrUnreachable; the sentinel value of the
//     underlying table is never added into a sum.
//   - Integer arithmetic only; costs compare exactly.
//
// Complexity:
//   - O(n) time for a tour of length n+1, O(1) extra space.
package tsp

// TourCost sums w(tour[i], tour[i+1]) along the closed tour.
//
// Contract:
//   - len(tour) ≥ 2 and every id lies in [0..w.Len()-1], else ErrDimensionMismatch.
//   - Any missing edge ⇒ ErrUnreachable.
//
// TourCost does not check the permutation invariant; use ValidateTour for that.
//
// Complexity: O(n).
func TourCost(w Weights, tour Tour) (int, error) {
	if w == nil || len(tour) < 2 {
		return 0, ErrDimensionMismatch
	}

	var (
		sum, c int
		i      int
		err    error
		last   = len(tour) - 1
	)
	for i = 0; i < last; i++ {
		c, err = edgeCost(w, tour[i], tour[i+1])
		if err != nil {
			return 0, err
		}
		sum += c
	}

	return sum, nil
}

// edgeCost fetches the weight of u→v with strict validation.
//
// Complexity: O(1).
func edgeCost(w Weights, u, v int) (int, error) {
	n := w.Len()
	if u < 0 || u >= n || v < 0 || v >= n {
		return 0, ErrDimensionMismatch
	}
	c, ok := w.Weight(u, v)
	if !ok {
		return 0, ErrUnreachable
	}
	if c < 0 {
		return 0, ErrNegativeWeight
	}

	return c, nil
}
