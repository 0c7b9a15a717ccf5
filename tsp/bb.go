// Package tsp - Branch-and-Bound (exact depth-first search with backtracking).
//
// BranchAndBound enumerates Hamiltonian cycles from a fixed start city. The
// search state is (last city, visited set): a city is marked visited before
// the recursive call and unmarked right after it, so sibling branches always
// see the exact set of their parent.
//
// Outline:
//  1. Prefetch the table into a dense []int buffer; missing edges become noEdge.
//  2. Precompute the cheapest outgoing/incoming edge of every city. A city
//     with neither is proof that no cycle exists (ErrIncompleteGraph).
//  3. Branching order: from the current "last", try next cities v in
//     ascending w[last→v] (index tiebreak). Cheap cycles are found early,
//     which tightens the incumbent and the pruning.
//  4. Pruning, per ExactOptions.Bound:
//     NoBound      → only missing edges prune (pure exhaustive search).
//     PartialBound → prune when costSoFar ≥ incumbent.
//     MinOutBound  → prune when costSoFar + max(Σ minOut, Σ minIn) over
//     unfixed cities ≥ incumbent. Admissible because every
//     city keeps out-degree and in-degree 1 in any completion.
//  5. Soft time limit: deadline checks every 4096 node events.
//
// Complexity:
//   - Worst case O((n-1)!) nodes; practical speed comes from pruning.
//   - Per node: O(n) bound + O(1) state updates.
//   - Memory: O(n²) precomputes + O(n) path/visited.
package tsp

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// noEdge marks missing edges inside the prefetched buffer.
const noEdge = -1

// bbEngine holds all search data and policies.
type bbEngine struct {
	// Configuration / policy
	n     int
	start int
	bound BoundAlgo

	// Time budget
	useDeadline bool
	deadline    time.Time
	steps       int
	timedOut    bool

	// Dense table: w[u*n+v], noEdge for missing edges.
	w []int

	// Precomputes for bound / branching order
	minOut []int
	minIn  []int
	order  [][]int // for each u: reachable v≠u sorted by w[u→v] (index tiebreak)

	// Current search state
	visited []bool
	path    []int // path[0:depth], path[0] == start

	// Incumbent
	bestTour []int
	bestCost int
	foundAny bool
}

// at is a fast accessor into the dense buffer.
func (e *bbEngine) at(u, v int) int { return e.w[u*e.n+v] }

// deadlineCheck performs a rare deadline test (every 4096 node events).
func (e *bbEngine) deadlineCheck() bool {
	if e.timedOut {
		return true
	}
	e.steps++
	if !e.useDeadline || (e.steps&4095) != 0 {
		return false
	}
	e.timedOut = time.Now().After(e.deadline)

	return e.timedOut
}

// initPrefetch loads the table into the dense buffer.
func (e *bbEngine) initPrefetch(w Weights) {
	var (
		i, j int
		c    int
		ok   bool
	)
	e.w = make([]int, e.n*e.n)
	for i = 0; i < e.n; i++ {
		for j = 0; j < e.n; j++ {
			c, ok = w.Weight(i, j)
			if i == j || !ok {
				c = noEdge
			}
			e.w[i*e.n+j] = c
		}
	}
}

// precomputeMinima computes per-city minOut/minIn. A city without any
// outgoing or incoming edge makes the instance infeasible.
func (e *bbEngine) precomputeMinima() error {
	var (
		u, v   int
		mo, mi int
		c      int
	)
	e.minOut = make([]int, e.n)
	e.minIn = make([]int, e.n)
	for v = 0; v < e.n; v++ {
		mo, mi = math.MaxInt, math.MaxInt
		for u = 0; u < e.n; u++ {
			if c = e.at(v, u); c != noEdge && c < mo {
				mo = c
			}
			if c = e.at(u, v); c != noEdge && c < mi {
				mi = c
			}
		}
		if mo == math.MaxInt || mi == math.MaxInt {
			return ErrIncompleteGraph
		}
		e.minOut[v] = mo
		e.minIn[v] = mi
	}

	return nil
}

// buildNeighborOrder lists, for each u, the reachable v≠u sorted by ascending
// w[u→v] and then by v.
func (e *bbEngine) buildNeighborOrder() {
	var u, v int
	e.order = make([][]int, e.n)
	for u = 0; u < e.n; u++ {
		row := make([]int, 0, e.n-1)
		for v = 0; v < e.n; v++ {
			if e.at(u, v) != noEdge {
				row = append(row, v)
			}
		}
		uu := u
		sort.SliceStable(row, func(i, j int) bool {
			wi, wj := e.at(uu, row[i]), e.at(uu, row[j])
			if wi == wj {
				return row[i] < row[j]
			}

			return wi < wj
		})
		e.order[u] = row
	}
}

// lowerBound returns an admissible bound on any completion of the current path.
func (e *bbEngine) lowerBound(costSoFar int, last int) int {
	switch e.bound {
	case NoBound:
		return math.MinInt
	case PartialBound:
		return costSoFar
	}

	// Outgoing is fixed for all visited cities except 'last';
	// incoming is fixed for all visited cities except 'start'.
	var (
		sumOut, sumIn int
		v             int
	)
	for v = 0; v < e.n; v++ {
		if e.visited[v] {
			if v == last {
				sumOut += e.minOut[v]
			}
			if v == e.start {
				sumIn += e.minIn[v]
			}
		} else {
			sumOut += e.minOut[v]
			sumIn += e.minIn[v]
		}
	}
	if sumIn > sumOut {
		return costSoFar + sumIn
	}

	return costSoFar + sumOut
}

// commit records a new incumbent.
func (e *bbEngine) commit(total int) {
	e.path[e.n] = e.start
	copy(e.bestTour, e.path)
	e.bestCost = total
	e.foundAny = true
}

// dfs is the recursive search step. depth counts the cities placed so far.
func (e *bbEngine) dfs(last int, depth int, costSoFar int) {
	if e.deadlineCheck() {
		return
	}
	if e.foundAny && e.lowerBound(costSoFar, last) >= e.bestCost {
		return
	}

	// Every city placed: the only step left is the way back to start.
	if depth == e.n {
		c := e.at(last, e.start)
		if c == noEdge {
			return
		}
		if total := costSoFar + c; !e.foundAny || total < e.bestCost {
			e.commit(total)
		}

		return
	}

	var v int
	for _, v = range e.order[last] {
		if e.visited[v] {
			continue
		}
		e.visited[v] = true
		e.path[depth] = v
		e.dfs(v, depth+1, costSoFar+e.at(last, v))
		e.visited[v] = false
	}
}

// BranchAndBound returns a minimum-cost Hamiltonian cycle that starts and
// ends at opts.Start.
//
// Errors:
//   - ErrDimensionMismatch / ErrNegativeWeight / ErrStartOutOfRange for bad input.
//   - ErrTooLarge if n > opts.MaxCities (when the cap is positive).
//   - ErrUnknownBound for an unsupported opts.Bound.
//   - ErrIncompleteGraph if no Hamiltonian cycle exists.
//   - ErrTimeLimit if a positive opts.TimeLimit elapses before the search ends.
func BranchAndBound(w Weights, opts ExactOptions) (Result, error) {
	n, err := validateWeights(w)
	if err != nil {
		return Result{}, err
	}
	if err = validateStartVertex(n, opts.Start); err != nil {
		return Result{}, err
	}
	if opts.MaxCities > 0 && n > opts.MaxCities {
		return Result{}, fmt.Errorf("BranchAndBound: n=%d > max=%d: %w", n, opts.MaxCities, ErrTooLarge)
	}
	if opts.Bound < NoBound || opts.Bound > MinOutBound {
		return Result{}, ErrUnknownBound
	}
	if opts.TimeLimit < 0 {
		return Result{}, ErrDimensionMismatch
	}

	var e bbEngine
	e.n = n
	e.start = opts.Start
	e.bound = opts.Bound
	if opts.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(opts.TimeLimit)
	}

	e.initPrefetch(w)
	if err = e.precomputeMinima(); err != nil {
		return Result{}, err
	}
	e.buildNeighborOrder()

	e.visited = make([]bool, n)
	e.path = make([]int, n+1)
	e.bestTour = make([]int, n+1)
	e.path[0] = e.start
	e.visited[e.start] = true

	e.dfs(e.start, 1, 0)

	if e.timedOut {
		return Result{}, ErrTimeLimit
	}
	if !e.foundAny {
		return Result{}, ErrIncompleteGraph
	}
	if err = ValidateTour(e.bestTour, n); err != nil {
		return Result{}, err
	}

	return Result{Tour: e.bestTour, Cost: e.bestCost}, nil
}
