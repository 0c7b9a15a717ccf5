package genetic_test

import (
	"testing"

	"github.com/katalvlaran/pathfinding/city"
	"github.com/katalvlaran/pathfinding/genetic"
	"github.com/katalvlaran/pathfinding/tsp"
	"github.com/stretchr/testify/require"
)

func TestGenerateSeed_CompleteGraph(t *testing.T) {
	rng := genetic.NewRand(3)
	adj := complete(9)
	for i := 0; i < 200; i++ {
		tour, err := genetic.GenerateSeed(adj, rng, 4)
		require.NoError(t, err)
		require.NoError(t, tsp.ValidateTour(tour, 9))
	}
}

func TestGenerateSeed_RingAlwaysCloses(t *testing.T) {
	rng := genetic.NewRand(11)
	adj := ring(12)
	for i := 0; i < 100; i++ {
		tour, err := genetic.GenerateSeed(adj, rng, 1)
		require.NoError(t, err)
		require.NoError(t, tsp.ValidateTour(tour, 12))
		for k := 0; k < 12; k++ {
			d := (tour[k+1] - tour[k] + 12) % 12
			require.True(t, d == 1 || d == 11, "step %d->%d is not a ring edge", tour[k], tour[k+1])
		}
	}
}

func TestGenerateSeed_StarDeadEnds(t *testing.T) {
	star := adjList{{1, 2, 3}, {0}, {0}, {0}}
	_, err := genetic.GenerateSeed(star, genetic.NewRand(1), 8)
	require.ErrorIs(t, err, genetic.ErrDeadEnd)
}

func TestGenerateSeed_NoNeighbors(t *testing.T) {
	_, err := genetic.GenerateSeed(adjList{{}, {}}, genetic.NewRand(1), 8)
	require.ErrorIs(t, err, genetic.ErrNoNeighbors)
}

func TestGenerateSeed_BadInput(t *testing.T) {
	_, err := genetic.GenerateSeed(complete(4), nil, 8)
	require.ErrorIs(t, err, genetic.ErrInvalidConfig)
	_, err = genetic.GenerateSeed(complete(4), genetic.NewRand(1), 0)
	require.ErrorIs(t, err, genetic.ErrInvalidConfig)
	_, err = genetic.GenerateSeed(adjList{{}}, genetic.NewRand(1), 8)
	require.ErrorIs(t, err, genetic.ErrSizeMismatch)
	_, err = genetic.GenerateSeed(adjList{{5}, {5}}, genetic.NewRand(2), 8)
	require.ErrorIs(t, err, genetic.ErrSizeMismatch)
}

// Sparse towns must never hang: every walk either closes or reports a dead end.
func TestGenerateSeed_SparseIsBounded(t *testing.T) {
	town, err := city.Generate(30, 40, city.WithSeed(5), city.WithEdgeProbability(0.1))
	require.NoError(t, err)

	rng := genetic.NewRand(5)
	var ok int
	for i := 0; i < 300; i++ {
		tour, err := genetic.GenerateSeed(town, rng, 3)
		if err != nil {
			require.ErrorIs(t, err, genetic.ErrDeadEnd)
			continue
		}
		require.NoError(t, tsp.ValidateTour(tour, 30))
		ok++
	}
	t.Logf("%d/300 walks closed", ok)
}

func TestInitialPopulation(t *testing.T) {
	pop, err := genetic.InitialPopulation(complete(6), 20, genetic.SeedPolicy{Retries: 4, Attempts: 1}, genetic.NewRand(9))
	require.NoError(t, err)
	require.Len(t, pop, 20)
	requirePopulationValid(t, pop, 6)

	_, err = genetic.InitialPopulation(complete(6), 2, genetic.SeedPolicy{Retries: 4, Attempts: 1}, genetic.NewRand(9))
	require.ErrorIs(t, err, genetic.ErrPopulationTooSmall)

	star := adjList{{1, 2, 3}, {0}, {0}, {0}}
	_, err = genetic.InitialPopulation(star, 5, genetic.SeedPolicy{Retries: 4, Attempts: 3}, genetic.NewRand(9))
	require.ErrorIs(t, err, genetic.ErrDeadEnd)

	for _, policy := range []genetic.SeedPolicy{{Retries: 4}, {Attempts: 2}, {}} {
		pop, err = genetic.InitialPopulation(complete(5), 4, policy, genetic.NewRand(9))
		require.ErrorIs(t, err, genetic.ErrInvalidConfig, "%+v", policy)
		require.Nil(t, pop)
	}
}
