package genetic

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/pathfinding/tsp"
)

// emptySlot marks a child position not yet filled during crossover.
const emptySlot = -1

// Crossover draws a copy window start ∈ [0,n), finish ∈ [start,n) and returns
// CrossoverWindow(p1, p2, start, finish).
//
// Complexity: O(n²) worst case (see CrossoverWindow).
func Crossover(p1, p2 tsp.Tour, rng *rand.Rand) (tsp.Tour, error) {
	if rng == nil {
		return nil, fmt.Errorf("Crossover: %w", ErrInvalidConfig)
	}
	n := len(p1) - 1
	if n < 1 || len(p2) != len(p1) {
		return nil, fmt.Errorf("Crossover: parents of length %d and %d: %w", len(p1), len(p2), ErrParentMismatch)
	}
	start := rng.Intn(n)
	finish := start + rng.Intn(n-start)

	return CrossoverWindow(p1, p2, start, finish)
}

// CrossoverWindow is an order crossover with a fixed window:
//
//  1. the child starts as n+1 empty slots;
//  2. positions [start, finish) are copied from p1;
//  3. every still-empty position j<n takes the first city of p2, scanned
//     cyclically from index j, that is not yet in the child;
//  4. the closing slot repeats the first city.
//
// The child is a valid closed tour whenever both parents are.
//
// Errors: ErrParentMismatch if the parents differ in length, are not valid
// closed tours, or the window is outside 0 ≤ start ≤ finish ≤ n.
//
// Complexity: O(n²) time worst case for the cyclic fills, O(n) space.
func CrossoverWindow(p1, p2 tsp.Tour, start, finish int) (tsp.Tour, error) {
	const method = "CrossoverWindow"
	n := len(p1) - 1
	if n < 1 || len(p2) != len(p1) {
		return nil, fmt.Errorf("%s: parents of length %d and %d: %w", method, len(p1), len(p2), ErrParentMismatch)
	}
	if start < 0 || finish < start || finish > n {
		return nil, fmt.Errorf("%s: window [%d,%d) for n=%d: %w", method, start, finish, n, ErrParentMismatch)
	}
	if tsp.ValidateTour(p1, n) != nil || tsp.ValidateTour(p2, n) != nil {
		return nil, fmt.Errorf("%s: %w", method, ErrParentMismatch)
	}

	var (
		child   = make(tsp.Tour, n+1)
		present = make([]bool, n)
		j, k    int
	)
	for j = range child {
		child[j] = emptySlot
	}
	for j = start; j < finish; j++ {
		child[j] = p1[j]
		present[p1[j]] = true
	}

	for j = 0; j < n; j++ {
		if child[j] != emptySlot {
			continue
		}
		for k = 0; k < n; k++ {
			c := p2[(j+k)%n]
			if !present[c] {
				child[j] = c
				present[c] = true
				break
			}
		}
	}
	child[n] = child[0]

	return child, nil
}
