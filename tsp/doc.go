// Package tsp provides tour representation, fitness and exact Travelling
// Salesman solvers over integer distance tables.
//
// All routines read distances through the Weights interface, where a missing
// edge (self pair or non-adjacent cities) is reported with ok == false and
// never enters a sum:
//
//   - TourCost: total cycle cost including the closing edge; ErrUnreachable
//     if any edge is missing.
//   - BestTwo: single-pass selection of the two cheapest tours, O(P).
//   - BranchAndBound: recursive depth-first exact search with backtracking
//     and a selectable lower bound (NoBound, PartialBound, MinOutBound).
//     O((n-1)!) worst case, O(n²) precomputes plus O(n) search state.
//   - HeldKarp: dynamic-programming exact solver used as an independent
//     cross-check. O(n²·2ⁿ) time, O(n·2ⁿ) memory.
//   - TwoOpt: first-improvement 2-opt polish for symmetric instances.
//   - OneTreeBound: Held–Karp 1-tree lower bound, a quality yardstick for
//     instances too large for exact search.
//
// A Tour has n+1 entries: a permutation of 0..n-1 followed by its first
// element again. If no Hamiltonian cycle exists, the exact solvers return
// ErrIncompleteGraph, which no cost value can be confused with.
//
// Use the exact solvers on small instances only (n≲14 for BranchAndBound).
package tsp
