// Package ptsa - cost utilities.
//
// This file provides small, allocation-conscious helpers to compute the
// total cost of a Hamiltonian cycle and to read individual edge weights out
// of a prefetched flat buffer (see matrix.go's flatten). Adapted from the
// teacher's cost.go: same round1e9 stabilization against cross-platform
// floating-point drift. These helpers do no NaN/Inf/negative checks of their
// own; they rely on validateDistMatrix having run at Run's entry point.
package ptsa

import "math"

// roundScale controls final cost stabilization precision (1e-9).
const roundScale = 1e9

// round1e9 returns x rounded to 1e-9 absolute precision.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

// edgeCosts is the prefetched, zero-allocation-on-read view of a distance
// matrix used by every hot loop (operators, chain steps, cost recomputation).
type edgeCosts struct {
	n int
	w []float64
}

// newEdgeCosts flattens dist once, up front.
//
// Complexity: O(n^2).
func newEdgeCosts(dist DistanceMatrix) (edgeCosts, error) {
	buf, n, err := flatten(dist)
	if err != nil {
		return edgeCosts{}, err
	}
	return edgeCosts{n: n, w: buf}, nil
}

// at returns the weight of edge u->v.
//
// Complexity: O(1).
func (e edgeCosts) at(u, v int) float64 {
	return e.w[u*e.n+v]
}

// tourLength recomputes the full cycle length from scratch (used to seed a
// freshly constructed Tour and to verify incremental bookkeeping in tests).
//
// Complexity: O(n).
func (e edgeCosts) tourLength(perm []int) float64 {
	n := len(perm)
	if n == 0 {
		return 0
	}

	var (
		sum float64
		i   int
	)
	for i = 0; i < n; i++ {
		sum += e.at(perm[i], perm[(i+1)%n])
	}

	return round1e9(sum)
}
