package genetic

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/pathfinding/tsp"
)

// GenerateSeed builds one random closed tour by walking the adjacency from a
// uniformly random start city.
//
// At every step a neighbour of the current city is drawn uniformly up to
// maxRetries times; the first unvisited draw wins. When all draws hit visited
// cities the neighbour list is scanned in order for any unvisited city, so a
// single step never costs more than maxRetries+deg draws.
//
// Errors:
//   - ErrSizeMismatch if adj has fewer than two cities or lists an out-of-range id.
//   - ErrNoNeighbors if the current city has an empty neighbour list.
//   - ErrDeadEnd if every neighbour of the current city is already visited.
//   - ErrInvalidConfig if rng is nil or maxRetries < 1.
//
// Complexity: O(n·(maxRetries+deg)) time, O(n) space.
func GenerateSeed(adj Adjacency, rng *rand.Rand, maxRetries int) (tsp.Tour, error) {
	tour, _, err := generateSeed(adj, rng, maxRetries)

	return tour, err
}

// generateSeed is GenerateSeed that also reports how many steps fell back to
// the deterministic neighbour scan.
func generateSeed(adj Adjacency, rng *rand.Rand, maxRetries int) (tsp.Tour, int, error) {
	const method = "GenerateSeed"
	if rng == nil || maxRetries < 1 {
		return nil, 0, fmt.Errorf("%s: %w", method, ErrInvalidConfig)
	}
	if adj == nil || adj.Len() < 2 {
		return nil, 0, fmt.Errorf("%s: %w", method, ErrSizeMismatch)
	}

	var (
		n         = adj.Len()
		tour      = make(tsp.Tour, n+1)
		visited   = make([]bool, n)
		fallbacks int
		i, try    int
	)
	tour[0] = rng.Intn(n)
	visited[tour[0]] = true

	for i = 1; i < n; i++ {
		cur := tour[i-1]
		nb := adj.Neighbors(cur)
		if len(nb) == 0 {
			return nil, fallbacks, fmt.Errorf("%s: city %d: %w", method, cur, ErrNoNeighbors)
		}

		next := -1
		for try = 0; try < maxRetries; try++ {
			c := nb[rng.Intn(len(nb))]
			if c < 0 || c >= n {
				return nil, fallbacks, fmt.Errorf("%s: neighbour %d of city %d: %w", method, c, cur, ErrSizeMismatch)
			}
			if !visited[c] {
				next = c
				break
			}
		}
		if next == -1 {
			fallbacks++
			for _, c := range nb {
				if c >= 0 && c < n && !visited[c] {
					next = c
					break
				}
			}
		}
		if next == -1 {
			return nil, fallbacks, fmt.Errorf("%s: city %d after %d steps: %w", method, cur, i, ErrDeadEnd)
		}

		tour[i] = next
		visited[next] = true
	}
	tour[n] = tour[0]

	return tour, fallbacks, nil
}

// seedWithRestarts retries whole walks that ended in ErrDeadEnd, up to
// policy.Attempts times. Any other error is returned at once.
func seedWithRestarts(adj Adjacency, rng *rand.Rand, policy SeedPolicy, fallbacks *int) (tsp.Tour, error) {
	if err := policy.check("GenerateSeed"); err != nil {
		return nil, err
	}

	var (
		tour    tsp.Tour
		n       int
		err     error
		attempt int
	)
	for attempt = 0; attempt < policy.Attempts; attempt++ {
		tour, n, err = generateSeed(adj, rng, policy.Retries)
		if fallbacks != nil {
			*fallbacks += n
		}
		if err == nil || !errors.Is(err, ErrDeadEnd) {
			return tour, err
		}
	}

	return nil, err
}
