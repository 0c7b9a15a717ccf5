package city_test

import (
	"testing"

	"github.com/katalvlaran/pathfinding/city"
	"github.com/stretchr/testify/require"
)

func TestGenerate_CompleteByDefault(t *testing.T) {
	town, err := city.Generate(6, 40, city.WithSeed(7))
	require.NoError(t, err)
	require.Len(t, town, 6)
	require.NoError(t, town.Validate())
	require.True(t, town.Complete())

	for i, c := range town {
		require.Equal(t, i, c.ID)
		require.GreaterOrEqual(t, c.X, 0)
		require.Less(t, c.X, 40)
		require.GreaterOrEqual(t, c.Y, 0)
		require.Less(t, c.Y, 40)
		require.Len(t, c.Neighbors, 5)
		require.NotContains(t, c.Neighbors, i)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a, err := city.Generate(10, 30, city.WithSeed(42), city.WithEdgeProbability(0.3))
	require.NoError(t, err)
	b, err := city.Generate(10, 30, city.WithSeed(42), city.WithEdgeProbability(0.3))
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestGenerate_SparseKeepsRing(t *testing.T) {
	town, err := city.Generate(12, 20, city.WithSeed(3), city.WithEdgeProbability(0))
	require.NoError(t, err)
	require.NoError(t, town.Validate())

	// p=0 leaves exactly the Hamiltonian ring: every city has degree 2.
	for _, c := range town {
		require.Len(t, c.Neighbors, 2, "city %d", c.ID)
	}
	require.False(t, town.Complete())
}

func TestGenerate_Errors(t *testing.T) {
	cases := []struct {
		name   string
		n, g   int
		opts   []city.Option
		target error
	}{
		{"too few", 1, 10, []city.Option{city.WithSeed(1)}, city.ErrTooFewCities},
		{"bad grid", 5, 0, []city.Option{city.WithSeed(1)}, city.ErrInvalidGrid},
		{"bad p", 5, 10, []city.Option{city.WithSeed(1), city.WithEdgeProbability(1.5)}, city.ErrInvalidProbability},
		{"no rng", 5, 10, nil, city.ErrNeedRandSource},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := city.Generate(tc.n, tc.g, tc.opts...)
			require.ErrorIs(t, err, tc.target)
		})
	}
}

func TestWithRand_NilPanics(t *testing.T) {
	require.Panics(t, func() { city.WithRand(nil) })
}

func TestTown_Validate(t *testing.T) {
	cases := []struct {
		name   string
		town   city.Town
		target error
	}{
		{"empty", city.Town{}, city.ErrEmptyTown},
		{"id mismatch", city.Town{{ID: 1, Neighbors: []int{}}}, city.ErrIDMismatch},
		{"unknown", city.Town{{ID: 0, Neighbors: []int{3}}, {ID: 1}}, city.ErrUnknownCity},
		{"self", city.Town{{ID: 0, Neighbors: []int{0}}, {ID: 1}}, city.ErrSelfAdjacency},
		{"duplicate", city.Town{{ID: 0, Neighbors: []int{1, 1}}, {ID: 1, Neighbors: []int{0}}}, city.ErrDuplicateNeighbor},
		{"asymmetric", city.Town{{ID: 0, Neighbors: []int{1}}, {ID: 1}}, city.ErrAsymmetricAdjacency},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, tc.town.Validate(), tc.target)
		})
	}
}

func TestTown_AdjacencyHelpers(t *testing.T) {
	town := city.Town{
		{ID: 0, X: 0, Y: 0, Neighbors: []int{1}},
		{ID: 1, X: 3, Y: 4, Neighbors: []int{0, 2}},
		{ID: 2, X: 6, Y: 8, Neighbors: []int{1}},
	}
	require.NoError(t, town.Validate())
	require.Equal(t, 3, town.Len())
	require.True(t, town.Adjacent(0, 1))
	require.False(t, town.Adjacent(0, 2))
	require.False(t, town.Adjacent(0, 9))
	require.Equal(t, []int{0, 2}, town.Neighbors(1))
	require.Nil(t, town.Neighbors(-1))
	require.Equal(t, [][2]int{{0, 0}, {3, 4}, {6, 8}}, town.Positions())
}
