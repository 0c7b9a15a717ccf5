package render_test

import (
	"fmt"

	"github.com/katalvlaran/pathfinding/city"
	"github.com/katalvlaran/pathfinding/render"
	"github.com/katalvlaran/pathfinding/tsp"
)

func ExampleGrid() {
	town := city.Town{
		{ID: 0, X: 0, Y: 0},
		{ID: 1, X: 3, Y: 3},
	}
	c, _ := render.Grid(town, tsp.Tour{0, 1, 0}, 4)
	fmt.Print(c)
	fmt.Println(render.Path(tsp.Tour{0, 1, 0}))
	// Output:
	// A - - -
	// - # - -
	// - - # -
	// - - - B
	// A --> B --> A
}
