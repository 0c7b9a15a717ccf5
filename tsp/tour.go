// Package tsp - tour utilities shared by the exact solvers and the GA.
//
// This file contains compact utilities that operate purely on tour structure
// (index sequences), without depending on distances:
//   - ValidatePermutation: verify a permutation over {0..n-1}.
//   - ValidateTour: enforce closed Hamiltonian cycle invariants.
//   - CloseTour: build a closed tour from a permutation.
//   - RotateTourToStart: cyclic shift so the tour starts/ends at a given city.
//   - reverseArcInPlace: in-place segment reversal (2-opt core).
//   - CopyTour.
//
// Design:
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - O(n) time for every helper.
package tsp

// ValidatePermutation checks that perm is a permutation of {0..n-1}.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(perm []int, n int) error {
	if n <= 0 || len(perm) != n {
		return ErrDimensionMismatch
	}
	seen := make([]bool, n)

	var v int
	for _, v = range perm {
		if v < 0 || v >= n || seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}

	return nil
}

// ValidateTour enforces the closed-cycle invariants:
//
//	len(tour) == n+1, tour[n] == tour[0],
//	each city v∈[0..n-1] appears exactly once in positions [0..n-1].
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour Tour, n int) error {
	if n <= 0 || len(tour) != n+1 {
		return ErrDimensionMismatch
	}
	if tour[n] != tour[0] {
		return ErrDimensionMismatch
	}

	return ValidatePermutation(tour[:n], n)
}

// CloseTour returns a fresh tour: perm followed by perm[0].
func CloseTour(perm []int) Tour {
	if len(perm) == 0 {
		return nil
	}
	out := make(Tour, len(perm)+1)
	copy(out, perm)
	out[len(perm)] = perm[0]

	return out
}

// RotateTourToStart returns a fresh closed copy shifted so that out[0] == start.
// The input may be closed (len n+1) or open (len n).
//
// Complexity: O(n) time, O(n) space.
func RotateTourToStart(tour Tour, start int) (Tour, error) {
	if len(tour) == 0 {
		return nil, ErrDimensionMismatch
	}
	n := len(tour)
	if n > 1 && tour[0] == tour[n-1] {
		n--
	}

	var (
		i     int
		pivot = -1
	)
	for i = 0; i < n; i++ {
		if tour[i] == start {
			pivot = i
			break
		}
	}
	if pivot == -1 {
		return nil, ErrStartOutOfRange
	}

	out := make(Tour, n+1)
	for i = 0; i < n; i++ {
		out[i] = tour[(pivot+i)%n]
	}
	out[n] = start

	return out, nil
}

// reverseArcInPlace reverses the inclusive segment tour[i..k] in place,
// keeping both ends of the closed tour intact.
//
// Contracts: 1 ≤ i < k ≤ n-1.
func reverseArcInPlace(tour Tour, i, k int) error {
	n := len(tour) - 1
	if n < 2 || tour[0] != tour[n] {
		return ErrDimensionMismatch
	}
	if i < 1 || k > n-1 || i >= k {
		return ErrDimensionMismatch
	}
	for i < k {
		tour[i], tour[k] = tour[k], tour[i]
		i++
		k--
	}

	return nil
}

// CopyTour returns an independent copy of the tour.
func CopyTour(tour Tour) Tour {
	if tour == nil {
		return nil
	}
	out := make(Tour, len(tour))
	copy(out, tour)

	return out
}
