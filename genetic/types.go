package genetic

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/pathfinding/tsp"
)

// Adjacency exposes the neighbour lists random tours are built from.
// city.Town satisfies it.
type Adjacency interface {
	Len() int
	Neighbors(u int) []int
}

// Population is an ordered, fixed-size collection of tours.
type Population []tsp.Tour

// WorstFitness is assigned to tours that use a missing edge.
const WorstFitness = math.MaxInt

// MinPopulation keeps room for the two elites plus at least one offspring.
const MinPopulation = 3

// eliteSlots is the number of protected tours at the end of every population.
const eliteSlots = 2

var (
	// ErrPopulationTooSmall indicates PopulationSize < MinPopulation.
	ErrPopulationTooSmall = errors.New("genetic: population too small")

	// ErrMutationChance indicates a mutation chance outside [0,100].
	ErrMutationChance = errors.New("genetic: mutation chance out of [0,100]")

	// ErrNoStopCondition indicates that neither TimeBudget nor MaxGenerations is set.
	ErrNoStopCondition = errors.New("genetic: no stop condition")

	// ErrInvalidConfig indicates any other out-of-range Config field.
	ErrInvalidConfig = errors.New("genetic: invalid config")

	// ErrSizeMismatch indicates that adjacency and weights disagree on n, or n < 2.
	ErrSizeMismatch = errors.New("genetic: adjacency and weights size mismatch")

	// ErrNoNeighbors indicates a city with an empty neighbour list.
	ErrNoNeighbors = errors.New("genetic: city has no neighbours")

	// ErrDeadEnd indicates a random walk that reached a city whose neighbours
	// are all visited.
	ErrDeadEnd = errors.New("genetic: no unvisited neighbour")

	// ErrParentMismatch indicates crossover parents of different shape or an
	// invalid copy window.
	ErrParentMismatch = errors.New("genetic: invalid crossover input")

	// ErrNoFeasibleTour indicates that the best tour found still uses a missing edge.
	ErrNoFeasibleTour = errors.New("genetic: no feasible tour found")
)

// Config holds the GA knobs. Zero values are invalid; start from DefaultConfig.
type Config struct {
	// PopulationSize is the fixed number of tours per generation.
	PopulationSize int

	// MutationChance is the per-position swap probability in percent.
	MutationChance int

	// TimeBudget stops Run once elapsed; 0 disables the deadline.
	TimeBudget time.Duration

	// MaxGenerations stops Run after that many generations; 0 disables it.
	MaxGenerations int

	// SeedRetries bounds rejection sampling per step of a random walk before
	// the deterministic neighbour scan kicks in.
	SeedRetries int

	// SeedAttempts bounds whole-walk restarts after ErrDeadEnd.
	SeedAttempts int

	// LogEvery emits a debug line every LogEvery generations; 0 disables it.
	LogEvery int

	// Polish runs tsp.TwoOpt on the final best tour (symmetric weights only).
	Polish bool

	// Seed feeds the RNG when no WithRand option is given.
	Seed int64
}

// DefaultConfig mirrors the reference run: P=10000, 5% mutation, 10s budget.
func DefaultConfig() Config {
	return Config{
		PopulationSize: 10000,
		MutationChance: 5,
		TimeBudget:     10 * time.Second,
		MaxGenerations: 0,
		SeedRetries:    64,
		SeedAttempts:   8,
		LogEvery:       100,
		Polish:         false,
		Seed:           0,
	}
}

// Validate checks every field range.
func (c Config) Validate() error {
	switch {
	case c.PopulationSize < MinPopulation:
		return ErrPopulationTooSmall
	case c.MutationChance < 0 || c.MutationChance > 100:
		return ErrMutationChance
	case c.TimeBudget < 0 || c.MaxGenerations < 0 || c.LogEvery < 0:
		return ErrInvalidConfig
	case c.TimeBudget == 0 && c.MaxGenerations == 0:
		return ErrNoStopCondition
	case c.SeedRetries < 1 || c.SeedAttempts < 1:
		return ErrInvalidConfig
	}

	return nil
}

// SeedPolicy bounds random tour construction.
type SeedPolicy struct {
	Retries  int // rejection-sampling draws per step
	Attempts int // whole-walk restarts after ErrDeadEnd
}

// check rejects policies that would build no tour at all.
func (p SeedPolicy) check(method string) error {
	if p.Retries < 1 || p.Attempts < 1 {
		return fmt.Errorf("%s: seed policy retries=%d attempts=%d: %w", method, p.Retries, p.Attempts, ErrInvalidConfig)
	}

	return nil
}

// policy extracts the seed policy of a Config.
func (c Config) policy() SeedPolicy {
	return SeedPolicy{Retries: c.SeedRetries, Attempts: c.SeedAttempts}
}

// StopReason tells why Run returned.
type StopReason string

const (
	StopDeadline    StopReason = "deadline"
	StopGenerations StopReason = "generations"
	StopCanceled    StopReason = "canceled"
)

// Result is what the driver reports to the outside world.
type Result struct {
	// BestTour is a closed tour of length n+1.
	BestTour tsp.Tour

	// BestCost is the cost of BestTour (after the optional polish).
	BestCost int

	// EvolvedCost is the best cost reached by evolution alone.
	EvolvedCost int

	// Generations counts completed generations.
	Generations int

	// Elapsed is the wall-clock time spent in Run.
	Elapsed time.Duration

	// Stopped names the condition that ended the run.
	Stopped StopReason
}

// GenerationStats is handed to the Observer after every generation.
type GenerationStats struct {
	Generation    int
	BestCost      int
	SecondCost    int
	Duration      time.Duration
	SeedFallbacks int // deterministic neighbour scans used while seeding this generation
}

// Observer receives per-generation statistics.
type Observer interface {
	OnGeneration(GenerationStats)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(GenerationStats)

// OnGeneration calls f(s).
func (f ObserverFunc) OnGeneration(s GenerationStats) { f(s) }
