// Package city builds the towns that the TSP engines operate on.
//
// A Town is a slice of City records: an integer position on a square grid and
// a neighbour list. Generate places n cities uniformly at random on a
// gridSize×gridSize grid and links them either completely (the default, K_n)
// or sparsely (WithEdgeProbability), always keeping at least one Hamiltonian
// cycle so that random tour construction stays possible.
//
// Guarantees:
//   - City.ID equals its index in the Town (0..n-1).
//   - Neighbour lists are sorted ascending, symmetric, and never contain the
//     city itself.
//   - Determinism is explicit: the same seed yields the same town.
//   - Runtime errors are sentinel errors wrapped with method context; option
//     constructors panic on meaningless values (nil RNG, p outside [0,1]).
//
// Complexity:
//   - Generate: O(n²) time and space (adjacency lists).
//   - Validate: O(n + E) time, O(n) extra space.
package city
