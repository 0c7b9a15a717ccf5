// Package tsp_test provides lightweight testing helpers shared across *_test.go
// files in this package.
package tsp_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/pathfinding/tsp"
	"github.com/stretchr/testify/require"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// startV is the canonical start vertex used across tests.
	startV = 0

	// missing marks an absent edge in testTable rows.
	missing = -1
)

// -----------------------------------------------------------------------------
// Minimal Weights implementation for tests.
// -----------------------------------------------------------------------------

// testTable is a square table where missing (and the diagonal) means no edge.
type testTable struct{ a [][]int }

var _ tsp.Weights = testTable{}

func (m testTable) Len() int { return len(m.a) }
func (m testTable) Weight(u, v int) (int, bool) {
	if u < 0 || u >= len(m.a) || v < 0 || v >= len(m.a) || u == v {
		return missing, false
	}
	c := m.a[u][v]

	return c, c != missing
}

// euclid builds a symmetric complete table from integer points,
// scaled by 10 and truncated like distance.Compute.
func euclid(pts [][2]int) testTable {
	n := len(pts)
	a := make([][]int, n)
	var i, j int
	for i = 0; i < n; i++ {
		a[i] = make([]int, n)
		for j = 0; j < n; j++ {
			if i == j {
				a[i][j] = missing
				continue
			}
			dx := float64(pts[i][0] - pts[j][0])
			dy := float64(pts[i][1] - pts[j][1])
			a[i][j] = int(10 * math.Hypot(dx, dy))
		}
	}

	return testTable{a: a}
}

// squareWithCentre is the 5-city scenario: four corners of a 10×10 square
// plus its centre.
func squareWithCentre() testTable {
	return euclid([][2]int{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {5, 5}})
}

// bruteForce enumerates every permutation of the non-start cities (Heap's
// algorithm) and returns the cheapest closed cycle cost, or -1 if none.
// It deliberately avoids every routine of the package under test.
func bruteForce(w testTable, start int) int {
	n := w.Len()
	rest := make([]int, 0, n-1)
	for v := 0; v < n; v++ {
		if v != start {
			rest = append(rest, v)
		}
	}

	best := -1
	eval := func() {
		sum, prev := 0, start
		for _, v := range rest {
			c, ok := w.Weight(prev, v)
			if !ok {
				return
			}
			sum += c
			prev = v
		}
		c, ok := w.Weight(prev, start)
		if !ok {
			return
		}
		sum += c
		if best == -1 || sum < best {
			best = sum
		}
	}

	var heap func(k int)
	heap = func(k int) {
		if k <= 1 {
			eval()
			return
		}
		for i := 0; i < k-1; i++ {
			heap(k - 1)
			if k%2 == 0 {
				rest[i], rest[k-1] = rest[k-1], rest[i]
			} else {
				rest[0], rest[k-1] = rest[k-1], rest[0]
			}
		}
		heap(k - 1)
	}
	heap(len(rest))

	return best
}

// randomPoints returns n deterministic pseudo-random points on a grid using
// a small LCG, so fixtures do not depend on math/rand stream details.
func randomPoints(n, grid int, seed uint32) [][2]int {
	pts := make([][2]int, n)
	x := seed
	next := func() int {
		x = x*1664525 + 1013904223
		return int(x>>8) % grid
	}
	for i := range pts {
		pts[i] = [2]int{next(), next()}
	}

	return pts
}

// requireValidTour asserts the closed-cycle invariants and the reported cost.
func requireValidTour(t *testing.T, w tsp.Weights, res tsp.Result) {
	t.Helper()
	require.NoError(t, tsp.ValidateTour(res.Tour, w.Len()))
	c, err := tsp.TourCost(w, res.Tour)
	require.NoError(t, err)
	require.Equal(t, c, res.Cost)
}
