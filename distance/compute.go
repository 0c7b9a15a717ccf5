package distance

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pathfinding/city"
)

// Compute builds the distance matrix of a town.
//
//   - i == j            → Unreachable
//   - i, j not adjacent → Unreachable
//   - otherwise         → int(Scale * hypot(xi-xj, yi-yj)), truncated toward zero
//
// The town is validated first, so the result is symmetric.
//
// Complexity: O(n² + E) time, O(n²) memory.
func Compute(town city.Town) (*Matrix, error) {
	if err := town.Validate(); err != nil {
		return nil, fmt.Errorf("Compute: %w", err)
	}
	m, err := New(town.Len())
	if err != nil {
		return nil, err
	}

	var (
		a, b city.City
		v    int
	)
	for _, a = range town {
		for _, v = range a.Neighbors {
			b = town[v]
			m.data[a.ID*m.n+v] = Euclid(a.X, a.Y, b.X, b.Y)
		}
	}

	return m, nil
}

// Euclid returns the scaled, truncated Euclidean distance between two points.
func Euclid(x1, y1, x2, y2 int) int {
	return int(Scale * math.Hypot(float64(x1-x2), float64(y1-y2)))
}
