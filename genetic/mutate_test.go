package genetic_test

import (
	"testing"

	"github.com/katalvlaran/pathfinding/genetic"
	"github.com/katalvlaran/pathfinding/tsp"
	"github.com/stretchr/testify/require"
)

func randomPopulation(seed int64, size, n int) genetic.Population {
	rng := genetic.NewRand(seed)
	pop := make(genetic.Population, size)
	for i := range pop {
		pop[i] = tsp.CloseTour(rng.Perm(n))
	}

	return pop
}

func clonePopulation(pop genetic.Population) genetic.Population {
	out := make(genetic.Population, len(pop))
	for i := range pop {
		out[i] = tsp.CopyTour(pop[i])
	}

	return out
}

func TestMutate_ZeroChanceIsNoop(t *testing.T) {
	pop := randomPopulation(1, 30, 10)
	before := clonePopulation(pop)
	require.NoError(t, genetic.Mutate(pop, 0, 0, genetic.NewRand(2)))
	require.Equal(t, before, pop)
}

func TestMutate_KeepsPermutations(t *testing.T) {
	pop := randomPopulation(3, 50, 12)
	require.NoError(t, genetic.Mutate(pop, 100, 0, genetic.NewRand(4)))
	requirePopulationValid(t, pop, 12)
}

func TestMutate_SkipsProtectedTail(t *testing.T) {
	pop := randomPopulation(5, 10, 8)
	before := clonePopulation(pop)
	require.NoError(t, genetic.Mutate(pop, 100, 2, genetic.NewRand(6)))
	require.Equal(t, before[8], pop[8])
	require.Equal(t, before[9], pop[9])
	require.NotEqual(t, before[:8], pop[:8])
	requirePopulationValid(t, pop, 8)
}

func TestMutate_Rejects(t *testing.T) {
	pop := randomPopulation(1, 3, 4)
	require.ErrorIs(t, genetic.Mutate(pop, 101, 0, genetic.NewRand(1)), genetic.ErrMutationChance)
	require.ErrorIs(t, genetic.Mutate(pop, -1, 0, genetic.NewRand(1)), genetic.ErrMutationChance)
	require.ErrorIs(t, genetic.Mutate(pop, 5, 0, nil), genetic.ErrInvalidConfig)
	require.ErrorIs(t, genetic.Mutate(pop, 5, -1, genetic.NewRand(1)), genetic.ErrInvalidConfig)
}
