package tsp_test

import (
	"fmt"

	"github.com/katalvlaran/pathfinding/tsp"
)

// ExampleBranchAndBound solves the square-with-centre instance exactly.
func ExampleBranchAndBound() {
	w := squareWithCentre()
	res, err := tsp.BranchAndBound(w, tsp.DefaultExactOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("cost:", res.Cost)
	// Output: cost: 440
}

// ExampleTourCost sums a triangle including the closing edge.
func ExampleTourCost() {
	w := testTable{a: [][]int{
		{-1, 3, 4},
		{3, -1, 5},
		{4, 5, -1},
	}}
	c, err := tsp.TourCost(w, tsp.Tour{0, 1, 2, 0})
	fmt.Println(c, err)
	// Output: 12 <nil>
}

// ExampleBestTwo picks the two cheapest tours of a population.
func ExampleBestTwo() {
	r, _ := tsp.BestTwo([]int{42, 17, 99, 23})
	fmt.Println(r.Best, r.Second)
	// Output: 1 3
}
