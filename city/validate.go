package city

import "fmt"

const methodValidate = "Validate"

// Validate checks the structural invariants every consumer relies on:
// ids match indices, neighbour ids are in range, no self adjacency, no
// duplicates and symmetric adjacency.
//
// Complexity: O(n + E) time, O(n) extra space per city scan.
func (t Town) Validate() error {
	n := len(t)
	if n == 0 {
		return fmt.Errorf("%s: %w", methodValidate, ErrEmptyTown)
	}

	var (
		u, v int
		seen = make([]int, n) // seen[v] == u+1 marks v as listed by u
	)
	for u = 0; u < n; u++ {
		if t[u].ID != u {
			return fmt.Errorf("%s: city[%d].ID=%d: %w", methodValidate, u, t[u].ID, ErrIDMismatch)
		}
		for _, v = range t[u].Neighbors {
			if v < 0 || v >= n {
				return fmt.Errorf("%s: city %d lists %d: %w", methodValidate, u, v, ErrUnknownCity)
			}
			if v == u {
				return fmt.Errorf("%s: city %d: %w", methodValidate, u, ErrSelfAdjacency)
			}
			if seen[v] == u+1 {
				return fmt.Errorf("%s: city %d lists %d twice: %w", methodValidate, u, v, ErrDuplicateNeighbor)
			}
			seen[v] = u + 1
		}
	}

	for u = 0; u < n; u++ {
		for _, v = range t[u].Neighbors {
			if !listed(t[v].Neighbors, u) {
				return fmt.Errorf("%s: %d→%d without %d→%d: %w", methodValidate, u, v, v, u, ErrAsymmetricAdjacency)
			}
		}
	}

	return nil
}

// listed is a linear membership test; Validate must not assume sorted input.
func listed(nb []int, x int) bool {
	for _, v := range nb {
		if v == x {
			return true
		}
	}

	return false
}
