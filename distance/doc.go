// Package distance computes the integer distance matrix consumed by the TSP
// engines.
//
// Entries are Euclidean distances scaled by Scale (10) and truncated toward
// zero, so every downstream cost comparison is exact integer arithmetic.
// Self pairs and non-adjacent pairs hold the Unreachable sentinel; Weight
// reports them with ok == false so callers never add the sentinel into a sum.
//
// A Matrix is immutable once built by Compute and safe for concurrent reads.
package distance
