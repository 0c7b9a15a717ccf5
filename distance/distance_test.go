package distance_test

import (
	"testing"

	"github.com/katalvlaran/pathfinding/city"
	"github.com/katalvlaran/pathfinding/distance"
	"github.com/stretchr/testify/require"
)

// square5 is the 4-corner + centre town with full adjacency.
func square5() city.Town {
	pts := [][2]int{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {5, 5}}
	town := make(city.Town, len(pts))
	for i, p := range pts {
		nb := make([]int, 0, len(pts)-1)
		for j := range pts {
			if j != i {
				nb = append(nb, j)
			}
		}
		town[i] = city.City{ID: i, X: p[0], Y: p[1], Neighbors: nb}
	}

	return town
}

func TestCompute_SquareWithCentre(t *testing.T) {
	m, err := distance.Compute(square5())
	require.NoError(t, err)
	require.Equal(t, 5, m.Len())

	require.Equal(t, distance.Unreachable, m.At(0, 0))
	require.Equal(t, 100, m.At(0, 1))
	require.Equal(t, 141, m.At(0, 2)) // 10*sqrt(200) = 141.42… truncated
	require.Equal(t, 70, m.At(0, 4))  // 10*sqrt(50)  = 70.71… truncated

	w, ok := m.Weight(3, 3)
	require.False(t, ok)
	require.Equal(t, distance.Unreachable, w)
}

func TestCompute_Symmetric(t *testing.T) {
	town, err := city.Generate(15, 40, city.WithSeed(11), city.WithEdgeProbability(0.4))
	require.NoError(t, err)
	m, err := distance.Compute(town)
	require.NoError(t, err)
	require.True(t, m.IsSymmetric())

	for i := 0; i < town.Len(); i++ {
		for j := 0; j < town.Len(); j++ {
			_, ok := m.Weight(i, j)
			require.Equal(t, i != j && town.Adjacent(i, j), ok, "pair (%d,%d)", i, j)
			require.Equal(t, m.At(i, j), m.At(j, i))
		}
	}
}

func TestCompute_RejectsInvalidTown(t *testing.T) {
	bad := city.Town{{ID: 0, Neighbors: []int{1}}, {ID: 1}}
	_, err := distance.Compute(bad)
	require.ErrorIs(t, err, city.ErrAsymmetricAdjacency)
}

func TestFromRows(t *testing.T) {
	m, err := distance.FromRows([][]int{
		{-1, 3},
		{4, -1},
	})
	require.NoError(t, err)
	require.False(t, m.IsSymmetric())
	require.Equal(t, [][]int{{-1, 3}, {4, -1}}, m.Rows())

	_, err = distance.FromRows([][]int{{-1, 1}, {1}})
	require.ErrorIs(t, err, distance.ErrInvalidDimensions)

	_, err = distance.FromRows([][]int{{-1, -5}, {1, -1}})
	require.ErrorIs(t, err, distance.ErrNegativeDistance)

	_, err = distance.FromRows(nil)
	require.ErrorIs(t, err, distance.ErrInvalidDimensions)
}

func TestMatrix_SetAndBounds(t *testing.T) {
	m, err := distance.New(2)
	require.NoError(t, err)
	require.ErrorIs(t, m.Set(2, 0, 1), distance.ErrIndexOutOfBounds)
	require.NoError(t, m.Set(0, 1, 9))
	require.Equal(t, 9, m.At(0, 1))
	require.Equal(t, distance.Unreachable, m.At(-1, 0))
}

func TestEuclid(t *testing.T) {
	require.Equal(t, 50, distance.Euclid(0, 0, 3, 4))
	require.Equal(t, 0, distance.Euclid(2, 2, 2, 2))
}
