package city

// MinCities is the smallest town for which a tour is meaningful.
const MinCities = 2

// City is a point on the integer grid together with its neighbour ids.
type City struct {
	// ID is the city index in its Town (0..n-1).
	ID int

	// X, Y is the grid position; both lie in [0, gridSize).
	X, Y int

	// Neighbors lists adjacent city ids in ascending order.
	Neighbors []int
}

// Town is the full set of cities. Town satisfies genetic.Adjacency.
type Town []City

// Len returns the number of cities.
func (t Town) Len() int { return len(t) }

// Neighbors returns the neighbour list of city u. The slice is shared; callers
// must not modify it.
func (t Town) Neighbors(u int) []int {
	if u < 0 || u >= len(t) {
		return nil
	}

	return t[u].Neighbors
}

// Adjacent reports whether v is in the neighbour list of u.
//
// Complexity: O(deg(u)).
func (t Town) Adjacent(u, v int) bool {
	if u < 0 || u >= len(t) || v < 0 || v >= len(t) {
		return false
	}

	return listed(t[u].Neighbors, v)
}

// Complete reports whether every pair of distinct cities is adjacent.
func (t Town) Complete() bool {
	var i int
	for i = range t {
		if len(t[i].Neighbors) != len(t)-1 {
			return false
		}
	}

	return true
}

// Positions returns the (X, Y) pair of every city in index order.
func (t Town) Positions() [][2]int {
	out := make([][2]int, len(t))
	for i := range t {
		out[i] = [2]int{t[i].X, t[i].Y}
	}

	return out
}
