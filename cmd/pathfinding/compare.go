package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/pathfinding/tsp"
)

func newCompareCmd(a *app) *cobra.Command {
	var (
		gf geneticFlags
		xf exactFlags
	)
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Evolve a tour and report its gap to the optimum or a lower bound",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := gf.apply(cmd, a); err != nil {
				return err
			}
			if err := xf.apply(cmd, a); err != nil {
				return err
			}
			town, m, err := a.buildTown()
			if err != nil {
				return err
			}

			evolved, err := a.evolve(cmd.Context(), town, m)
			if err != nil {
				return err
			}
			rows := []line{
				{"genetic cost", evolved.BestCost},
				{"generations", evolved.Generations},
				{"genetic elapsed", round(evolved.Elapsed)},
			}

			// Towns beyond exact reach are measured against the 1-tree bound.
			reference := 0
			exact, exactElapsed, err := a.solveExact(m)
			switch {
			case err == nil:
				reference = exact.Cost
				rows = append(rows, line{"exact cost", exact.Cost}, line{"exact elapsed", round(exactElapsed)})
			case errors.Is(err, tsp.ErrTooLarge) || errors.Is(err, tsp.ErrTimeLimit):
				a.log.Info("exact search skipped, using lower bound", zap.Error(err))
				if reference, err = tsp.OneTreeBound(m, 0, 0, evolved.BestCost); err != nil {
					return err
				}
				rows = append(rows, line{"lower bound", reference})
			default:
				return err
			}
			rows = append(rows, line{"seed", a.cfg.Town.Seed})

			w := cmd.OutOrStdout()
			if err = a.report(w, town, evolved.BestTour, rows...); err != nil {
				return err
			}
			printGap(w, reference, evolved.BestCost)

			return nil
		},
	}
	gf.register(cmd)
	xf.register(cmd)

	return cmd
}

// printGap prints how far the GA cost is above the optimum, in percent.
func printGap(w io.Writer, optimum, found int) {
	if optimum == 0 {
		fmt.Fprintf(w, "gap: n/a\n")
		return
	}
	fmt.Fprintf(w, "gap: %.2f%%\n", 100*float64(found-optimum)/float64(optimum))
}
