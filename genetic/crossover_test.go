package genetic_test

import (
	"testing"

	"github.com/katalvlaran/pathfinding/genetic"
	"github.com/katalvlaran/pathfinding/tsp"
	"github.com/stretchr/testify/require"
)

func TestCrossoverWindow(t *testing.T) {
	p1 := tsp.Tour{0, 1, 2, 3, 4, 0}
	p2 := tsp.Tour{4, 3, 2, 1, 0, 4}

	cases := []struct {
		name          string
		start, finish int
		want          tsp.Tour
	}{
		{"middle window", 1, 3, tsp.Tour{4, 1, 2, 0, 3, 4}},
		{"empty window copies p2", 0, 0, tsp.Tour{4, 3, 2, 1, 0, 4}},
		{"full window copies p1", 0, 5, tsp.Tour{0, 1, 2, 3, 4, 0}},
		{"tail window", 3, 5, tsp.Tour{2, 1, 0, 3, 4, 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := genetic.CrossoverWindow(p1, p2, tc.start, tc.finish)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestCrossoverWindow_Rejects(t *testing.T) {
	p := tsp.Tour{0, 1, 2, 0}
	_, err := genetic.CrossoverWindow(p, tsp.Tour{0, 1, 0}, 0, 1)
	require.ErrorIs(t, err, genetic.ErrParentMismatch)
	_, err = genetic.CrossoverWindow(p, p, 2, 1)
	require.ErrorIs(t, err, genetic.ErrParentMismatch)
	_, err = genetic.CrossoverWindow(p, p, 0, 4)
	require.ErrorIs(t, err, genetic.ErrParentMismatch)
	_, err = genetic.CrossoverWindow(p, tsp.Tour{0, 0, 2, 0}, 0, 1)
	require.ErrorIs(t, err, genetic.ErrParentMismatch)
}

func TestCrossover_AlwaysValid(t *testing.T) {
	const n = 15
	rng := genetic.NewRand(21)
	for i := 0; i < 500; i++ {
		p1 := tsp.CloseTour(rng.Perm(n))
		p2 := tsp.CloseTour(rng.Perm(n))
		child, err := genetic.Crossover(p1, p2, rng)
		require.NoError(t, err)
		require.NoError(t, tsp.ValidateTour(child, n), "p1=%v p2=%v child=%v", p1, p2, child)
	}
}

func TestCrossover_DoesNotTouchParents(t *testing.T) {
	p1 := tsp.Tour{0, 1, 2, 3, 0}
	p2 := tsp.Tour{3, 2, 1, 0, 3}
	c1, c2 := tsp.CopyTour(p1), tsp.CopyTour(p2)
	_, err := genetic.Crossover(p1, p2, genetic.NewRand(4))
	require.NoError(t, err)
	require.Equal(t, c1, p1)
	require.Equal(t, c2, p2)
}
