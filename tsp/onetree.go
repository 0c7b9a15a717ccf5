// Package tsp - Held–Karp 1-tree (Lagrangian) lower bound for symmetric TSP.
//
// For multipliers π define reduced costs c'_{ij} = c_{ij} + π_i + π_j. A
// minimum 1-tree T(π) is an MST over V\{root} (Prim, O(n²)) plus the two
// cheapest root edges. Every Hamiltonian cycle is a 1-tree, so
//
//	L(π) = c'(T(π)) − 2·Σπ_i ≤ OPT
//
// for every π. Subgradient ascent with s_i = deg_T(i) − 2 tightens the bound.
// Missing edges are never used by the tree; if no 1-tree exists the graph has
// no Hamiltonian cycle either and ErrIncompleteGraph is returned.
//
// Determinism: no RNG; Prim and root-edge selection break ties by index.
//
// Complexity: O(iters·n²) time, O(n²) space for the dense prefetch.
package tsp

import (
	"fmt"
	"math"
)

// DefaultOneTreeIters is the subgradient budget used when iters ≤ 0.
const DefaultOneTreeIters = 64

// oneTreeAlpha scales the diminishing step t = α·(UB−L)/‖s‖².
const oneTreeAlpha = 1.0

// OneTreeBound returns an integer lower bound on the optimal tour cost of a
// symmetric instance. ub, when positive, is a known tour cost that drives the
// adaptive step; pass 0 when none is known.
//
// Errors: ErrDimensionMismatch, ErrStartOutOfRange, ErrNegativeWeight,
// ErrAsymmetric, ErrIncompleteGraph.
//
// Complexity: O(iters·n²).
func OneTreeBound(w Weights, root, iters, ub int) (int, error) {
	const method = "OneTreeBound"
	n, err := validateWeights(w)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", method, err)
	}
	if err = validateStartVertex(n, root); err != nil {
		return 0, fmt.Errorf("%s: %w", method, err)
	}
	if !isSymmetric(w) {
		return 0, fmt.Errorf("%s: %w", method, ErrAsymmetric)
	}
	if n < 3 {
		// The only cycle is u→v→u; the bound is exact.
		c, ok := w.Weight(0, 1)
		if !ok {
			return 0, fmt.Errorf("%s: %w", method, ErrIncompleteGraph)
		}
		return 2 * c, nil
	}
	if iters <= 0 {
		iters = DefaultOneTreeIters
	}

	e := newOneTree(w, n, root)
	var (
		best          = math.Inf(-1)
		bound, cost   float64
		sumPi, norm2  float64
		step          float64
		i, it, degDif int
	)
	for it = 0; it < iters; it++ {
		if cost, err = e.build(); err != nil {
			return 0, fmt.Errorf("%s: %w", method, err)
		}
		sumPi = 0
		for i = 0; i < n; i++ {
			sumPi += e.pi[i]
		}
		bound = cost - 2*sumPi
		if bound > best {
			best = bound
		}

		norm2 = 0
		for i = 0; i < n; i++ {
			degDif = e.deg[i] - 2
			norm2 += float64(degDif * degDif)
		}
		if norm2 == 0 {
			break // T(π) is a tour: the bound is tight
		}

		if ub > 0 {
			step = oneTreeAlpha * math.Max(float64(ub)-bound, 0) / norm2
		} else {
			step = oneTreeAlpha * math.Max(best, 1) / (float64(n) * float64(it+1) * norm2)
		}
		if step == 0 {
			break
		}
		for i = 0; i < n; i++ {
			e.pi[i] += step * float64(e.deg[i]-2)
		}
	}

	// Tour costs are integers, so the real bound rounds up.
	return int(math.Ceil(best - 1e-9)), nil
}

// oneTree holds reusable state for building 1-trees on reduced costs.
type oneTree struct {
	n, root int
	c       []float64 // dense costs; +Inf for missing edges
	pi      []float64 // multipliers π

	deg    []int
	inTree []bool
	parent []int
	key    []float64
}

func newOneTree(w Weights, n, root int) *oneTree {
	e := &oneTree{
		n:      n,
		root:   root,
		c:      make([]float64, n*n),
		pi:     make([]float64, n),
		deg:    make([]int, n),
		inTree: make([]bool, n),
		parent: make([]int, n),
		key:    make([]float64, n),
	}
	var u, v int
	for u = 0; u < n; u++ {
		for v = 0; v < n; v++ {
			if x, ok := w.Weight(u, v); ok && u != v {
				e.c[u*n+v] = float64(x)
			} else {
				e.c[u*n+v] = math.Inf(1)
			}
		}
	}

	return e
}

func (e *oneTree) reduced(u, v int) float64 { return e.c[u*e.n+v] + e.pi[u] + e.pi[v] }

// build fills e.deg with the degrees of a minimum 1-tree and returns its
// reduced cost.
func (e *oneTree) build() (float64, error) {
	inf := math.Inf(1)
	var (
		v, u, best, it int
		c, total       float64
	)
	for v = 0; v < e.n; v++ {
		e.deg[v] = 0
		e.inTree[v] = false
		e.parent[v] = -1
		e.key[v] = inf
	}
	start := 0
	if start == e.root {
		start = 1
	}
	e.key[start] = 0

	// Prim over V\{root}.
	for it = 0; it < e.n-1; it++ {
		best = -1
		for v = 0; v < e.n; v++ {
			if v == e.root || e.inTree[v] {
				continue
			}
			if best == -1 || e.key[v] < e.key[best] {
				best = v
			}
		}
		if math.IsInf(e.key[best], 1) {
			return 0, ErrIncompleteGraph
		}
		e.inTree[best] = true
		if u = e.parent[best]; u != -1 {
			total += e.reduced(best, u)
			e.deg[best]++
			e.deg[u]++
		}
		for v = 0; v < e.n; v++ {
			if v == e.root || e.inTree[v] || math.IsInf(e.c[best*e.n+v], 1) {
				continue
			}
			if c = e.reduced(best, v); c < e.key[v] {
				e.key[v] = c
				e.parent[v] = best
			}
		}
	}

	// Two cheapest root edges.
	m1, m2 := inf, inf
	to1, to2 := -1, -1
	for v = 0; v < e.n; v++ {
		if v == e.root || math.IsInf(e.c[e.root*e.n+v], 1) {
			continue
		}
		c = e.reduced(e.root, v)
		switch {
		case c < m1:
			m2, to2 = m1, to1
			m1, to1 = c, v
		case c < m2:
			m2, to2 = c, v
		}
	}
	if to1 == -1 || to2 == -1 {
		return 0, ErrIncompleteGraph
	}
	e.deg[e.root] += 2
	e.deg[to1]++
	e.deg[to2]++

	return total + m1 + m2, nil
}
