package tsp_test

import (
	"testing"

	"github.com/katalvlaran/pathfinding/tsp"
	"github.com/stretchr/testify/require"
)

func TestOneTreeBound_NeverExceedsOptimum(t *testing.T) {
	for n := 3; n <= 9; n++ {
		w := euclid(randomPoints(n, 40, uint32(n*31+7)))
		opt := bruteForce(w, startV)
		for _, ub := range []int{0, opt} {
			lb, err := tsp.OneTreeBound(w, startV, 0, ub)
			require.NoError(t, err, "n=%d", n)
			require.LessOrEqual(t, lb, opt, "n=%d ub=%d", n, ub)
			require.Positive(t, lb, "n=%d", n)
		}
	}
}

func TestOneTreeBound_SquareWithCentre(t *testing.T) {
	w := squareWithCentre()
	lb, err := tsp.OneTreeBound(w, startV, 100, 440)
	require.NoError(t, err)
	require.LessOrEqual(t, lb, 440)
	// The plain 1-tree already beats the trivial bound of three sides.
	require.GreaterOrEqual(t, lb, 300)
}

func TestOneTreeBound_TwoCities(t *testing.T) {
	w := testTable{a: [][]int{{missing, 7}, {7, missing}}}
	lb, err := tsp.OneTreeBound(w, 0, 0, 0)
	require.NoError(t, err)
	require.Equal(t, 14, lb)
}

func TestOneTreeBound_Errors(t *testing.T) {
	star := testTable{a: [][]int{
		{missing, 1, 1, 1},
		{1, missing, missing, missing},
		{1, missing, missing, missing},
		{1, missing, missing, missing},
	}}
	_, err := tsp.OneTreeBound(star, 0, 0, 0)
	require.ErrorIs(t, err, tsp.ErrIncompleteGraph)

	asym := testTable{a: [][]int{
		{missing, 1, 2},
		{5, missing, 1},
		{2, 1, missing},
	}}
	_, err = tsp.OneTreeBound(asym, 0, 0, 0)
	require.ErrorIs(t, err, tsp.ErrAsymmetric)

	_, err = tsp.OneTreeBound(squareWithCentre(), 9, 0, 0)
	require.ErrorIs(t, err, tsp.ErrStartOutOfRange)
}
