// Package genetic evolves TSP tours with an elitist genetic algorithm under a
// wall-clock budget.
//
// One generation is:
//
//  1. NextGeneration: two thirds of the population are ordered-crossover
//     children of the two current elites, the rest are fresh random tours
//     (immigrants), and the last two slots hold the elites themselves.
//  2. Mutate: per-position swap mutation on every non-elite tour.
//  3. Evaluate: integer fitness per tour (lower is better); tours that use a
//     missing edge get WorstFitness.
//  4. BestTwo: the two cheapest tours become the next elites.
//
// Because the elites are carried unmodified, the best cost never increases
// from one generation to the next.
//
// Engine drives the loop: Run repeats Step until the time budget elapses (the
// deadline is checked only between generations), MaxGenerations is reached,
// or the context is cancelled.
//
// Randomness always flows from an injected *rand.Rand (WithRand or
// Config.Seed); nothing here reads global random state. An Engine is not safe
// for concurrent use.
package genetic
