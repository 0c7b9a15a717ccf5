package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/pathfinding/config"
	"github.com/katalvlaran/pathfinding/distance"
	"github.com/katalvlaran/pathfinding/tsp"
)

// exactFlags are shared by exact and compare.
type exactFlags struct {
	algo      string
	bound     string
	timeLimit time.Duration
	maxCities int
}

func (x *exactFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&x.algo, "algo", "", "exact solver: bb or heldkarp")
	f.StringVar(&x.bound, "bound", "", "branch-and-bound pruning: none, partial or minout")
	f.DurationVar(&x.timeLimit, "time-limit", 0, "exact search time limit; 0 disables it")
	f.IntVar(&x.maxCities, "max-cities", 0, "refuse exact search above this many cities")
}

func (x *exactFlags) apply(cmd *cobra.Command, a *app) error {
	f := cmd.Flags()
	if f.Changed("algo") {
		a.cfg.Exact.Algo = x.algo
	}
	if f.Changed("bound") {
		a.cfg.Exact.Bound = x.bound
	}
	if f.Changed("time-limit") {
		a.cfg.Exact.TimeLimit = x.timeLimit
	}
	if f.Changed("max-cities") {
		a.cfg.Exact.MaxCities = x.maxCities
	}

	return a.cfg.Validate()
}

func newExactCmd(a *app) *cobra.Command {
	var xf exactFlags
	cmd := &cobra.Command{
		Use:   "exact",
		Short: "Find the optimal tour by exhaustive search",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := xf.apply(cmd, a); err != nil {
				return err
			}
			town, m, err := a.buildTown()
			if err != nil {
				return err
			}
			res, elapsed, err := a.solveExact(m)
			if err != nil {
				return err
			}

			return a.report(cmd.OutOrStdout(), town, res.Tour,
				line{"cost", res.Cost},
				line{"solver", a.cfg.Exact.Algo},
				line{"elapsed", round(elapsed)},
				line{"seed", a.cfg.Town.Seed},
			)
		},
	}
	xf.register(cmd)

	return cmd
}

// solveExact dispatches to the configured exact solver.
func (a *app) solveExact(m *distance.Matrix) (tsp.Result, time.Duration, error) {
	var (
		res   tsp.Result
		err   error
		began = time.Now()
	)
	switch a.cfg.Exact.Algo {
	case config.AlgoHeldKarp:
		res, err = tsp.HeldKarp(m, 0)
	default:
		var opts tsp.ExactOptions
		if opts, err = a.cfg.ExactOptions(); err == nil {
			res, err = tsp.BranchAndBound(m, opts)
		}
	}
	elapsed := time.Since(began)
	a.collector.RecordRun(a.cfg.Exact.Algo, elapsed, err)
	if err != nil {
		return tsp.Result{}, elapsed, fmt.Errorf("%s: %w", a.cfg.Exact.Algo, err)
	}
	a.log.Info("exact search finished",
		zap.String("solver", a.cfg.Exact.Algo),
		zap.Int("cost", res.Cost),
		zap.Duration("elapsed", elapsed),
	)

	return res, elapsed, nil
}
