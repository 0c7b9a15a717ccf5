package genetic

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/pathfinding/tsp"
)

// InitialPopulation fills size slots with independent random tours.
//
// Errors: ErrPopulationTooSmall, ErrInvalidConfig for a policy with
// Retries < 1 or Attempts < 1, and any seed failure.
//
// Complexity: O(size·n·(Retries+deg)) time.
func InitialPopulation(adj Adjacency, size int, policy SeedPolicy, rng *rand.Rand) (Population, error) {
	return initialPopulation(adj, size, policy, rng, nil)
}

func initialPopulation(adj Adjacency, size int, policy SeedPolicy, rng *rand.Rand, fallbacks *int) (Population, error) {
	if size < MinPopulation {
		return nil, fmt.Errorf("InitialPopulation: size %d: %w", size, ErrPopulationTooSmall)
	}
	if err := policy.check("InitialPopulation"); err != nil {
		return nil, err
	}

	var (
		pop = make(Population, size)
		err error
		i   int
	)
	for i = range pop {
		if pop[i], err = seedWithRestarts(adj, rng, policy, fallbacks); err != nil {
			return nil, fmt.Errorf("InitialPopulation: tour %d: %w", i, err)
		}
	}

	return pop, nil
}

// NextGeneration builds a population of the given size from two elites:
//
//   - slots [0, size*2/3) are Crossover(best, second) children;
//   - the remaining slots are fresh GenerateSeed immigrants;
//   - slots size-1 and size-2 are then overwritten by best and second.
//
// Children and immigrants that would land in an elite slot are not built at
// all. The elites are referenced, not copied, so callers must keep them out of
// mutation (see Mutate's protected argument).
//
// Complexity: O(size·n²) worst case.
func NextGeneration(adj Adjacency, best, second tsp.Tour, size int, policy SeedPolicy, rng *rand.Rand) (Population, error) {
	return nextGeneration(adj, best, second, size, policy, rng, nil)
}

func nextGeneration(adj Adjacency, best, second tsp.Tour, size int, policy SeedPolicy, rng *rand.Rand, fallbacks *int) (Population, error) {
	const method = "NextGeneration"
	if size < MinPopulation {
		return nil, fmt.Errorf("%s: size %d: %w", method, size, ErrPopulationTooSmall)
	}
	if err := policy.check(method); err != nil {
		return nil, err
	}

	var (
		pop      = make(Population, size)
		children = size * 2 / 3
		free     = size - eliteSlots
		err      error
		i        int
	)
	if children > free {
		children = free
	}
	for i = 0; i < children; i++ {
		if pop[i], err = Crossover(best, second, rng); err != nil {
			return nil, fmt.Errorf("%s: child %d: %w", method, i, err)
		}
	}
	for ; i < free; i++ {
		if pop[i], err = seedWithRestarts(adj, rng, policy, fallbacks); err != nil {
			return nil, fmt.Errorf("%s: immigrant %d: %w", method, i, err)
		}
	}
	pop[size-1] = best
	pop[size-2] = second

	return pop, nil
}

// Evaluate writes the fitness of pop[i] into out[i]: its tour cost, or
// WorstFitness if the tour uses a missing edge or is malformed.
//
// Errors: ErrSizeMismatch if len(out) != len(pop).
//
// Complexity: O(P·n) time, one visited set per tour.
func Evaluate(w tsp.Weights, pop Population, out []int) error {
	if len(out) != len(pop) {
		return fmt.Errorf("Evaluate: %d tours, %d slots: %w", len(pop), len(out), ErrSizeMismatch)
	}

	var i int
	for i = range pop {
		if tsp.ValidateTour(pop[i], w.Len()) != nil {
			out[i] = WorstFitness
			continue
		}
		c, err := tsp.TourCost(w, pop[i])
		if err != nil {
			out[i] = WorstFitness
			continue
		}
		out[i] = c
	}

	return nil
}
