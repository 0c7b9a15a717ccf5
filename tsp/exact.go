package tsp

import (
	"fmt"
	"math"
)

// heldKarpMaxCities bounds the O(n·2ⁿ) table to a few hundred MiB at most.
const heldKarpMaxCities = 20

// HeldKarp solves the TSP exactly with the Held–Karp dynamic program and
// returns a cycle that starts and ends at start. It shares no code with
// BranchAndBound, which makes it a useful independent cross-check.
//
// dp[mask][j] = minimum cost to leave start, visit exactly the cities in
// mask (start ∈ mask) and end at j. After filling dp, the tour is closed by
// returning from j to start.
//
// Errors: ErrDimensionMismatch, ErrNegativeWeight, ErrStartOutOfRange,
// ErrTooLarge (n > 20), ErrIncompleteGraph if no Hamiltonian cycle exists.
//
// Time complexity:  O(n² · 2ⁿ)
// Memory complexity: O(n · 2ⁿ)
func HeldKarp(w Weights, start int) (Result, error) {
	n, err := validateWeights(w)
	if err != nil {
		return Result{}, err
	}
	if err = validateStartVertex(n, start); err != nil {
		return Result{}, err
	}
	if n > heldKarpMaxCities {
		return Result{}, fmt.Errorf("HeldKarp: n=%d > max=%d: %w", n, heldKarpMaxCities, ErrTooLarge)
	}

	const inf = math.MaxInt
	var (
		allMask   = (1 << n) - 1
		startMask = 1 << start
		dp        = make([][]int, 1<<n)
		parent    = make([][]int, 1<<n)
		mask, j   int
		k         int
	)
	for mask = 0; mask <= allMask; mask++ {
		dp[mask] = make([]int, n)
		parent[mask] = make([]int, n)
		for j = 0; j < n; j++ {
			dp[mask][j] = inf
			parent[mask][j] = -1
		}
	}
	dp[startMask][start] = 0

	// Fill dp for every subset that contains start.
	for mask = 0; mask <= allMask; mask++ {
		if mask&startMask == 0 {
			continue
		}
		for j = 0; j < n; j++ {
			if j == start || mask&(1<<j) == 0 {
				continue
			}
			prevMask := mask ^ (1 << j)
			for k = 0; k < n; k++ {
				if prevMask&(1<<k) == 0 || dp[prevMask][k] == inf {
					continue
				}
				c, ok := w.Weight(k, j)
				if !ok {
					continue
				}
				if cand := dp[prevMask][k] + c; cand < dp[mask][j] {
					dp[mask][j] = cand
					parent[mask][j] = k
				}
			}
		}
	}

	// Close the tour by returning to start.
	var (
		bestCost = inf
		last     = -1
	)
	for j = 0; j < n; j++ {
		if j == start || dp[allMask][j] == inf {
			continue
		}
		c, ok := w.Weight(j, start)
		if !ok {
			continue
		}
		if total := dp[allMask][j] + c; total < bestCost {
			bestCost = total
			last = j
		}
	}
	if last < 0 {
		return Result{}, ErrIncompleteGraph
	}

	// Reconstruct from the parent table, back to front.
	tour := make(Tour, n+1)
	tour[0], tour[n] = start, start
	mask = allMask
	j = last
	for i := n - 1; i >= 1; i-- {
		tour[i] = j
		p := parent[mask][j]
		mask ^= 1 << j
		j = p
	}

	return Result{Tour: tour, Cost: bestCost}, nil
}
