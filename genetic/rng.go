package genetic

import "math/rand"

// NewRand returns a *rand.Rand seeded with seed, or with 1 when seed is 0,
// so a zero Config.Seed still gives a reproducible run. The result is not
// safe for concurrent use; an Engine owns its stream.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = 1
	}

	return rand.New(rand.NewSource(seed))
}
