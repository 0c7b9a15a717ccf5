package tsp

// BestTwo returns the indices of the smallest and the second smallest value in
// one linear scan. Ties go to the earliest index, so equal values keep their
// population order.
//
// Errors: ErrDimensionMismatch if fewer than two values are given.
//
// Complexity: O(P) time, O(1) space; no sorting.
func BestTwo(fitness []int) (Ranking, error) {
	if len(fitness) < 2 {
		return Ranking{}, ErrDimensionMismatch
	}

	var (
		best   = 0
		second = -1
		i      int
	)
	for i = 1; i < len(fitness); i++ {
		switch {
		case fitness[i] < fitness[best]:
			second, best = best, i
		case second == -1 || fitness[i] < fitness[second]:
			second = i
		}
	}

	return Ranking{Best: best, Second: second}, nil
}
