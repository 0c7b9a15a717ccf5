package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/pathfinding/city"
	"github.com/katalvlaran/pathfinding/distance"
	"github.com/katalvlaran/pathfinding/genetic"
)

// solverGenetic labels GA runs in metrics.
const solverGenetic = "genetic"

// geneticFlags are shared by evolve and compare.
type geneticFlags struct {
	population  int
	mutation    int
	budget      time.Duration
	generations int
	polish      bool
}

func (g *geneticFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.IntVarP(&g.population, "population", "p", 0, "population size")
	f.IntVar(&g.mutation, "mutation", 0, "per-position mutation chance in percent")
	f.DurationVarP(&g.budget, "budget", "b", 0, "wall-clock budget; 0 disables it")
	f.IntVarP(&g.generations, "generations", "g", 0, "generation cap; 0 disables it")
	f.BoolVar(&g.polish, "polish", false, "run 2-opt on the final tour")
}

// apply copies changed flags into the config and revalidates it.
func (g *geneticFlags) apply(cmd *cobra.Command, a *app) error {
	f := cmd.Flags()
	if f.Changed("population") {
		a.cfg.Genetic.PopulationSize = g.population
	}
	if f.Changed("mutation") {
		a.cfg.Genetic.MutationChance = g.mutation
	}
	if f.Changed("budget") {
		a.cfg.Genetic.TimeBudget = g.budget
	}
	if f.Changed("generations") {
		a.cfg.Genetic.MaxGenerations = g.generations
	}
	if f.Changed("polish") {
		a.cfg.Genetic.Polish = g.polish
	}

	return a.cfg.Validate()
}

func newEvolveCmd(a *app) *cobra.Command {
	var gf geneticFlags
	cmd := &cobra.Command{
		Use:   "evolve",
		Short: "Evolve a tour with the genetic algorithm",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := gf.apply(cmd, a); err != nil {
				return err
			}
			town, m, err := a.buildTown()
			if err != nil {
				return err
			}
			res, err := a.evolve(cmd.Context(), town, m)
			if err != nil {
				return err
			}

			return a.report(cmd.OutOrStdout(), town, res.BestTour,
				line{"cost", res.BestCost},
				line{"evolved cost", res.EvolvedCost},
				line{"generations", res.Generations},
				line{"stopped", res.Stopped},
				line{"elapsed", round(res.Elapsed)},
				line{"seed", a.cfg.Town.Seed},
			)
		},
	}
	gf.register(cmd)

	return cmd
}

// evolve runs the GA on town with the configured knobs.
func (a *app) evolve(ctx context.Context, town city.Town, m *distance.Matrix) (genetic.Result, error) {
	began := time.Now()
	e, err := genetic.New(town, m, a.cfg.EngineConfig(),
		genetic.WithLogger(a.log),
		genetic.WithObserver(a.collector),
	)
	if err != nil {
		a.collector.RecordRun(solverGenetic, time.Since(began), err)
		return genetic.Result{}, err
	}
	a.log.Info("population ready",
		zap.Int("population", a.cfg.Genetic.PopulationSize),
		zap.Int("best_cost", e.BestCost()),
		zap.Duration("took", time.Since(began)),
	)

	res, err := e.Run(ctx)
	a.collector.RecordRun(solverGenetic, res.Elapsed, err)

	return res, err
}
