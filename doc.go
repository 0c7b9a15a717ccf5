// Package pathfinding tours a random town of cities on an integer grid with
// two strategies: an exact branch-and-bound search for small towns and an
// elitist genetic algorithm under a wall-clock budget for everything else.
//
// The module is organized one package per concern:
//
//	city/      random town generation (complete or sparse adjacency)
//	distance/  ×10 truncated Euclidean distance matrix with a missing-edge sentinel
//	tsp/       tours, fitness, BestTwo, branch-and-bound, Held–Karp, 2-opt, 1-tree bound
//	genetic/   seeds, order crossover, mutation, generations and the driver loop
//	render/    character-grid drawing of a town and a tour
//	config/    YAML configuration with validation
//	metrics/   Prometheus collectors fed by the GA observer hook
//	cmd/pathfinding  the command-line front end
//
// Quick start:
//
//	town, _ := city.Generate(25, 40, city.WithSeed(1))
//	m, _ := distance.Compute(town)
//	cfg := genetic.DefaultConfig()
//	cfg.TimeBudget = 2 * time.Second
//	e, _ := genetic.New(town, m, cfg)
//	res, _ := e.Run(context.Background())
//	c, _ := render.Grid(town, res.BestTour, 40)
//	fmt.Print(c, render.Path(res.BestTour), "\n", res.BestCost)
//
// Libraries never log; only genetic.Engine accepts a *zap.Logger, and the
// command wires logging, metrics and configuration together.
package pathfinding
