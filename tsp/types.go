package tsp

import (
	"errors"
	"fmt"
	"time"
)

// Weights is the read-only distance table consumed by every routine here.
// Weight reports ok == false for a missing edge (including u == v).
// *distance.Matrix satisfies it.
type Weights interface {
	Len() int
	Weight(u, v int) (int, bool)
}

// Tour is a closed cycle: len == n+1, the first n entries are a permutation of
// 0..n-1 and Tour[n] == Tour[0].
type Tour []int

// Result holds the outcome of an exact solver.
type Result struct {
	// Tour starts and ends at the requested start city.
	Tour Tour

	// Cost is the total distance of the cycle.
	Cost int
}

// Ranking holds the indices of the cheapest and second cheapest entries.
type Ranking struct {
	Best   int
	Second int
}

var (
	// ErrDimensionMismatch indicates malformed shapes: wrong tour length,
	// out-of-range ids, duplicates or fewer than two cities.
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrStartOutOfRange indicates a start city outside [0..n-1].
	ErrStartOutOfRange = errors.New("tsp: start vertex out of range")

	// ErrNegativeWeight indicates a negative distance.
	ErrNegativeWeight = errors.New("tsp: negative weight")

	// ErrUnreachable indicates that a tour uses a missing edge.
	ErrUnreachable = errors.New("tsp: tour uses a missing edge")

	// ErrIncompleteGraph indicates that no Hamiltonian cycle exists.
	ErrIncompleteGraph = errors.New("tsp: no Hamiltonian cycle")

	// ErrTimeLimit indicates that the exact search exceeded its time budget.
	ErrTimeLimit = errors.New("tsp: time limit exceeded")

	// ErrTooLarge indicates an instance above the configured exact-solver limit.
	ErrTooLarge = errors.New("tsp: instance too large for exact search")

	// ErrAsymmetric indicates that a symmetric-only routine got an asymmetric table.
	ErrAsymmetric = errors.New("tsp: asymmetric distances")

	// ErrUnknownBound indicates an unsupported BoundAlgo value.
	ErrUnknownBound = errors.New("tsp: unknown bound algorithm")
)

// BoundAlgo selects the lower bound used by BranchAndBound to prune subtrees.
type BoundAlgo int

const (
	// NoBound explores every Hamiltonian cycle; only missing edges prune.
	NoBound BoundAlgo = iota

	// PartialBound prunes when the partial path already costs ≥ the incumbent.
	PartialBound

	// MinOutBound adds the degree-1 relaxation (cheapest outgoing/incoming
	// edge of every unfixed city) to the partial cost.
	MinOutBound
)

// String returns the config token of the bound ("none", "partial", "minout").
func (b BoundAlgo) String() string {
	switch b {
	case NoBound:
		return "none"
	case PartialBound:
		return "partial"
	case MinOutBound:
		return "minout"
	default:
		return fmt.Sprintf("BoundAlgo(%d)", int(b))
	}
}

// ParseBoundAlgo maps a config token back to its BoundAlgo.
func ParseBoundAlgo(s string) (BoundAlgo, error) {
	switch s {
	case "none":
		return NoBound, nil
	case "partial":
		return PartialBound, nil
	case "minout", "":
		return MinOutBound, nil
	default:
		return 0, fmt.Errorf("ParseBoundAlgo(%q): %w", s, ErrUnknownBound)
	}
}

// DefaultMaxCities caps BranchAndBound unless ExactOptions.MaxCities says otherwise.
const DefaultMaxCities = 14

// ExactOptions configures BranchAndBound.
type ExactOptions struct {
	// Start is the city every returned tour begins and ends at.
	Start int

	// Bound selects the pruning lower bound.
	Bound BoundAlgo

	// TimeLimit is a soft wall-clock budget; 0 means unlimited.
	TimeLimit time.Duration

	// MaxCities rejects larger instances with ErrTooLarge; ≤0 disables the cap.
	MaxCities int
}

// DefaultExactOptions returns start 0, MinOutBound, no time limit and
// DefaultMaxCities.
func DefaultExactOptions() ExactOptions {
	return ExactOptions{
		Start:     0,
		Bound:     MinOutBound,
		TimeLimit: 0,
		MaxCities: DefaultMaxCities,
	}
}
