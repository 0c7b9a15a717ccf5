// SPDX-License-Identifier: MIT
// Package: pathfinding/city
//
// generate.go - random town construction.
//
// Contract:
//   • n ≥ MinCities (else ErrTooFewCities).
//   • gridSize ≥ 1 (else ErrInvalidGrid).
//   • 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   • an RNG must be configured (else ErrNeedRandSource).
//   • Positions are drawn independently; two cities may share a cell.
//
// Determinism:
//   • Positions are drawn for i asc, X before Y.
//   • For p < 1 the ring permutation is drawn next, then one Bernoulli trial per
//     unordered pair {i,j}, i<j, in lexicographic order.

package city

import (
	"fmt"
	"sort"
)

const methodGenerate = "Generate"

// Generate places n cities on a gridSize×gridSize grid and links them.
//
// Complexity: O(n²) time and space.
func Generate(n, gridSize int, opts ...Option) (Town, error) {
	cfg := newGenerateConfig(opts...)

	if n < MinCities {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodGenerate, n, MinCities, ErrTooFewCities)
	}
	if gridSize < 1 {
		return nil, fmt.Errorf("%s: gridSize=%d: %w", methodGenerate, gridSize, ErrInvalidGrid)
	}
	if cfg.p < 0 || cfg.p > 1 {
		return nil, fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodGenerate, cfg.p, ErrInvalidProbability)
	}
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodGenerate, ErrNeedRandSource)
	}

	town := make(Town, n)
	var i int
	for i = 0; i < n; i++ {
		town[i] = City{
			ID: i,
			X:  cfg.rng.Intn(gridSize),
			Y:  cfg.rng.Intn(gridSize),
		}
	}

	if cfg.p == 1 {
		linkComplete(town)
	} else {
		linkSparse(town, cfg)
	}

	return town, nil
}

// linkComplete gives every city all other cities as neighbours (K_n).
func linkComplete(town Town) {
	n := len(town)
	var i, j int
	for i = 0; i < n; i++ {
		nb := make([]int, 0, n-1)
		for j = 0; j < n; j++ {
			if i != j {
				nb = append(nb, j)
			}
		}
		town[i].Neighbors = nb
	}
}

// linkSparse embeds a random Hamiltonian ring and then adds each remaining
// pair with probability cfg.p.
func linkSparse(town Town, cfg generateConfig) {
	var (
		n    = len(town)
		adj  = make([][]bool, n)
		ring = cfg.rng.Perm(n)
		i, j int
	)
	for i = 0; i < n; i++ {
		adj[i] = make([]bool, n)
	}

	// Ring backbone keeps at least one Hamiltonian cycle.
	for i = 0; i < n; i++ {
		u, v := ring[i], ring[(i+1)%n]
		if u != v {
			adj[u][v], adj[v][u] = true, true
		}
	}

	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if adj[i][j] {
				continue
			}
			if cfg.rng.Float64() < cfg.p {
				adj[i][j], adj[j][i] = true, true
			}
		}
	}

	for i = 0; i < n; i++ {
		nb := make([]int, 0, n-1)
		for j = 0; j < n; j++ {
			if adj[i][j] {
				nb = append(nb, j)
			}
		}
		sort.Ints(nb)
		town[i].Neighbors = nb
	}
}
