package genetic

import (
	"fmt"
	"math/rand"
)

// Mutate applies swap mutation in place to pop[0 : len(pop)-protected].
//
// For every such tour and every position j<n, with probability chance/100 the
// cities at j and at a uniform k ∈ [0,n) are swapped. The closing slot is then
// reset to the first city, so every mutated tour stays a valid closed tour.
// The last protected tours (the elites) are never touched. chance==0 leaves the
// population unchanged and draws nothing from rng.
//
// Errors: ErrMutationChance if chance is outside [0,100]; ErrInvalidConfig for
// a nil rng or negative protected.
//
// Complexity: O(P·n) time, O(1) space.
func Mutate(pop Population, chance, protected int, rng *rand.Rand) error {
	const method = "Mutate"
	if chance < 0 || chance > 100 {
		return fmt.Errorf("%s: chance %d: %w", method, chance, ErrMutationChance)
	}
	if rng == nil || protected < 0 {
		return fmt.Errorf("%s: %w", method, ErrInvalidConfig)
	}
	if chance == 0 {
		return nil
	}

	var (
		limit = len(pop) - protected
		i, j  int
	)
	for i = 0; i < limit; i++ {
		t := pop[i]
		n := len(t) - 1
		if n < 1 {
			continue
		}
		for j = 0; j < n; j++ {
			if rng.Intn(100) < chance {
				k := rng.Intn(n)
				t[j], t[k] = t[k], t[j]
			}
		}
		t[n] = t[0]
	}

	return nil
}
