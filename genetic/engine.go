package genetic

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/pathfinding/tsp"
)

// Engine owns one evolving population. Build it with New, advance it with
// Step, or let Run drive it against the configured stop conditions.
type Engine struct {
	adj Adjacency
	w   tsp.Weights
	cfg Config

	rng      *rand.Rand
	logger   *zap.Logger
	observer Observer
	now      func() time.Time

	pop     Population
	fitness []int
	rank    tsp.Ranking

	generation int
	fallbacks  int // neighbour-scan fallbacks of the population being built
}

// New validates the inputs, seeds the initial population and ranks it.
//
// Errors: any Config.Validate error; ErrSizeMismatch if adj and w disagree on
// n or n < 2; seeding errors (ErrNoNeighbors, ErrDeadEnd) wrapped with context.
//
// Complexity: O(P·n·(SeedRetries+deg)) time, O(P·n) space.
func New(adj Adjacency, w tsp.Weights, cfg Config, opts ...Option) (*Engine, error) {
	const method = "New"
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	if adj == nil || w == nil || adj.Len() != w.Len() || adj.Len() < 2 {
		return nil, fmt.Errorf("%s: %w", method, ErrSizeMismatch)
	}

	o := engineOptions{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = NewRand(cfg.Seed)
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}

	e := &Engine{
		adj:      adj,
		w:        w,
		cfg:      cfg,
		rng:      o.rng,
		logger:   o.logger,
		observer: o.observer,
		now:      o.now,
		fitness:  make([]int, cfg.PopulationSize),
	}

	pop, err := initialPopulation(adj, cfg.PopulationSize, cfg.policy(), e.rng, &e.fallbacks)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	if err = e.adopt(pop); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	e.logger.Debug("initial population ready",
		zap.Int("population", cfg.PopulationSize),
		zap.Int("best_cost", e.BestCost()),
		zap.Int("seed_fallbacks", e.fallbacks),
	)

	return e, nil
}

// adopt evaluates pop and makes it current.
func (e *Engine) adopt(pop Population) error {
	if err := Evaluate(e.w, pop, e.fitness); err != nil {
		return err
	}
	rank, err := tsp.BestTwo(e.fitness)
	if err != nil {
		return err
	}
	e.pop, e.rank = pop, rank

	return nil
}

// Step advances one generation: breed, mutate the non-elites, evaluate, rank.
// The best cost after Step is never greater than before.
//
// Complexity: O(P·n²) worst case.
func (e *Engine) Step() error {
	const method = "Step"
	began := e.now()
	e.fallbacks = 0

	best, second := e.pop[e.rank.Best], e.pop[e.rank.Second]
	next, err := nextGeneration(e.adj, best, second, e.cfg.PopulationSize, e.cfg.policy(), e.rng, &e.fallbacks)
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	if err = Mutate(next, e.cfg.MutationChance, eliteSlots, e.rng); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	if err = e.adopt(next); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	e.generation++

	if e.observer != nil {
		e.observer.OnGeneration(GenerationStats{
			Generation:    e.generation,
			BestCost:      e.BestCost(),
			SecondCost:    e.fitness[e.rank.Second],
			Duration:      e.now().Sub(began),
			SeedFallbacks: e.fallbacks,
		})
	}
	if e.cfg.LogEvery > 0 && e.generation%e.cfg.LogEvery == 0 {
		e.logger.Debug("generation",
			zap.Int("generation", e.generation),
			zap.Int("best_cost", e.BestCost()),
			zap.Duration("elapsed", e.now().Sub(began)),
		)
	}

	return nil
}

// Best returns a copy of the current best tour and its fitness.
func (e *Engine) Best() (tsp.Tour, int) {
	return tsp.CopyTour(e.pop[e.rank.Best]), e.fitness[e.rank.Best]
}

// BestCost returns the fitness of the current best tour.
func (e *Engine) BestCost() int { return e.fitness[e.rank.Best] }

// Generation returns the number of completed generations.
func (e *Engine) Generation() int { return e.generation }

// Population exposes the current population. Callers must not modify it.
func (e *Engine) Population() Population { return e.pop }

// Run repeats Step until a stop condition holds. Stop conditions are checked
// only between generations, so a run overshoots TimeBudget by at most one
// generation. Context cancellation is a normal stop and is reported through
// Result.Stopped.
//
// Errors: any Step error; ErrNoFeasibleTour if the best tour still uses a
// missing edge when the run ends.
func (e *Engine) Run(ctx context.Context) (Result, error) {
	const method = "Run"
	var (
		start    = e.now()
		deadline = start.Add(e.cfg.TimeBudget)
		reason   StopReason
	)

	for {
		if ctx.Err() != nil {
			reason = StopCanceled
			break
		}
		if e.cfg.TimeBudget > 0 && !e.now().Before(deadline) {
			reason = StopDeadline
			break
		}
		if e.cfg.MaxGenerations > 0 && e.generation >= e.cfg.MaxGenerations {
			reason = StopGenerations
			break
		}
		if err := e.Step(); err != nil {
			return Result{}, fmt.Errorf("%s: %w", method, err)
		}
	}

	tour, cost := e.Best()
	res := Result{
		BestTour:    tour,
		BestCost:    cost,
		EvolvedCost: cost,
		Generations: e.generation,
		Stopped:     reason,
	}
	if cost == WorstFitness {
		res.Elapsed = e.now().Sub(start)
		return res, fmt.Errorf("%s: %w", method, ErrNoFeasibleTour)
	}

	if e.cfg.Polish {
		polished, pc, err := tsp.TwoOpt(e.w, tour)
		switch {
		case err == nil && pc < cost:
			res.BestTour, res.BestCost = polished, pc
		case err != nil && !errors.Is(err, tsp.ErrAsymmetric):
			e.logger.Warn("polish failed", zap.Error(err))
		}
	}
	res.Elapsed = e.now().Sub(start)

	e.logger.Info("evolution finished",
		zap.Int("generations", res.Generations),
		zap.Int("best_cost", res.BestCost),
		zap.Int("evolved_cost", res.EvolvedCost),
		zap.Duration("elapsed", res.Elapsed),
		zap.String("stopped", string(res.Stopped)),
	)

	return res, nil
}
