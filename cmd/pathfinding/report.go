package main

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/pathfinding/city"
	"github.com/katalvlaran/pathfinding/render"
	"github.com/katalvlaran/pathfinding/tsp"
)

// line is one "name: value" row under the drawing.
type line struct {
	name  string
	value any
}

// report draws the tour and prints its summary rows. The path is printed
// from city 0 whatever city the solver started at.
func (a *app) report(w io.Writer, town city.Town, tour tsp.Tour, rows ...line) error {
	tour, err := tsp.RotateTourToStart(tour, 0)
	if err != nil {
		return err
	}
	canvas, err := render.Grid(town, tour, a.cfg.Town.GridSize)
	if err != nil {
		return err
	}
	fmt.Fprint(w, render.Styled(lipgloss.NewRenderer(w), canvas))
	fmt.Fprintln(w)
	fmt.Fprintln(w, render.Path(tour))
	for _, r := range rows {
		fmt.Fprintf(w, "%s: %v\n", r.name, r.value)
	}

	return nil
}

// round keeps reported durations readable.
func round(d time.Duration) time.Duration { return d.Round(time.Millisecond) }
