// Package tsp - 2-opt local search for symmetric instances.
//
// TwoOpt performs deterministic first-improvement 2-opt on a closed tour:
// reversing segment [i..k] replaces arcs (a,b),(c,d) by (a,c),(b,d) with
//
//	Δ = w(a,c) + w(b,d) − w(a,b) − w(c,d),  a=T[i−1], b=T[i], c=T[k], d=T[k+1].
//
// A move is accepted when Δ < 0 and both new arcs exist. The scan restarts
// after each accepted move, until no improving move is left.
//
// Contracts:
//   - tour is a valid closed cycle over w (ValidateTour) using existing edges.
//   - w is symmetric; otherwise ErrAsymmetric.
//
// Complexity:
//   - One pass: O(n²) candidate checks; O(n) per accepted reversal.
package tsp

// TwoOpt returns an improved copy of tour and its cost. The input is not
// modified and the start city stays in place.
func TwoOpt(w Weights, tour Tour) (Tour, int, error) {
	n, err := validateWeights(w)
	if err != nil {
		return nil, 0, err
	}
	if err = ValidateTour(tour, n); err != nil {
		return nil, 0, err
	}
	if !isSymmetric(w) {
		return nil, 0, ErrAsymmetric
	}

	cur := CopyTour(tour)
	cost, err := TourCost(w, cur)
	if err != nil {
		return nil, 0, err
	}
	if n < 4 {
		return cur, cost, nil
	}

	for {
		improved := false

		var (
			a, b, c, d         int
			wab, wcd, wac, wbd int
			okac, okbd         bool
			i, k               int
		)
		for i = 1; i <= n-2 && !improved; i++ {
			for k = i + 1; k <= n-1; k++ {
				a, b, c, d = cur[i-1], cur[i], cur[k], cur[k+1]
				wac, okac = w.Weight(a, c)
				wbd, okbd = w.Weight(b, d)
				if !okac || !okbd {
					continue
				}
				wab, _ = w.Weight(a, b)
				wcd, _ = w.Weight(c, d)
				if delta := wac + wbd - wab - wcd; delta < 0 {
					if err = reverseArcInPlace(cur, i, k); err != nil {
						return nil, 0, err
					}
					cost += delta
					improved = true

					break
				}
			}
		}
		if !improved {
			return cur, cost, nil
		}
	}
}
