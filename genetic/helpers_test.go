package genetic_test

import (
	"testing"

	"github.com/katalvlaran/pathfinding/city"
	"github.com/katalvlaran/pathfinding/distance"
	"github.com/katalvlaran/pathfinding/genetic"
	"github.com/katalvlaran/pathfinding/tsp"
	"github.com/stretchr/testify/require"
)

// adjList is a bare Adjacency for hand-made topologies.
type adjList [][]int

var _ genetic.Adjacency = adjList{}

func (a adjList) Len() int              { return len(a) }
func (a adjList) Neighbors(u int) []int { return a[u] }

// ring returns the n-cycle 0-1-...-(n-1)-0.
func ring(n int) adjList {
	a := make(adjList, n)
	for i := 0; i < n; i++ {
		a[i] = []int{(i + n - 1) % n, (i + 1) % n}
	}

	return a
}

// complete returns K_n.
func complete(n int) adjList {
	a := make(adjList, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				a[i] = append(a[i], j)
			}
		}
	}

	return a
}

// noEdges is a Weights with every edge missing.
type noEdges int

func (n noEdges) Len() int                  { return int(n) }
func (noEdges) Weight(_, _ int) (int, bool) { return distance.Unreachable, false }

// instance generates a complete town and its distance matrix.
func instance(t *testing.T, n int, seed int64) (city.Town, *distance.Matrix) {
	t.Helper()
	town, err := city.Generate(n, 40, city.WithSeed(seed))
	require.NoError(t, err)
	m, err := distance.Compute(town)
	require.NoError(t, err)

	return town, m
}

// smallConfig is a fast deterministic configuration for tests.
func smallConfig(pop, gens int) genetic.Config {
	cfg := genetic.DefaultConfig()
	cfg.PopulationSize = pop
	cfg.MaxGenerations = gens
	cfg.TimeBudget = 0
	cfg.LogEvery = 0
	cfg.Seed = 7

	return cfg
}

func requirePopulationValid(t *testing.T, pop genetic.Population, n int) {
	t.Helper()
	for i, tour := range pop {
		require.NoError(t, tsp.ValidateTour(tour, n), "tour %d: %v", i, tour)
	}
}
