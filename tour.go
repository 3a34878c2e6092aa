// Package ptsa - tour representation.
//
// Tour wraps a permutation of {0..n-1} together with its cached cycle
// length, adapted from the teacher's tour.go helpers (ValidatePermutation,
// CopyTour, DebugString) but generalized from an explicit n+1-length
// "closed path" representation to a pure cyclic permutation: PTSA never
// fixes or rotates to a distinguished start vertex, so edge (n-1, 0) is
// always implicit rather than materialized as a trailing duplicate element.
package ptsa

import "fmt"

// Tour is a permutation of {0..n-1} interpreted as the closed cycle
// perm[0] -> perm[1] -> ... -> perm[n-1] -> perm[0], plus its cached length.
type Tour struct {
	perm   []int
	length float64
}

// NewTour wraps perm (taking ownership of the slice - callers that need to
// keep their own copy should pass a clone) together with its precomputed
// length.
func NewTour(perm []int, length float64) Tour {
	return Tour{perm: perm, length: length}
}

// Size returns n, the number of cities.
//
// Complexity: O(1).
func (t Tour) Size() int { return len(t.perm) }

// Length returns the cached cycle length.
//
// Complexity: O(1).
func (t Tour) Length() float64 { return t.length }

// At returns the city at position i (0 <= i < n).
//
// Complexity: O(1).
func (t Tour) At(i int) int { return t.perm[i] }

// Perm exposes the underlying permutation slice. Callers must not mutate it;
// use Clone to obtain an independent copy before mutating.
//
// Complexity: O(1).
func (t Tour) Perm() []int { return t.perm }

// Clone returns a deep, independent copy of t. Used whenever tour ownership
// must not be shared - e.g., capturing a chain's local best, or the global
// best snapshot returned to the caller.
//
// Complexity: O(n) time and space.
func (t Tour) Clone() Tour {
	return Tour{perm: CopyTour(t.perm), length: t.length}
}

// ValidatePermutation checks that perm is a permutation of {0..n-1} of
// length n.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(perm []int, n int) error {
	if len(perm) != n || n <= 0 {
		return ErrDimensionMismatch
	}
	seen := make([]bool, n)

	var (
		i, v int
	)
	for i = 0; i < n; i++ {
		v = perm[i]
		if v < 0 || v >= n {
			return ErrDimensionMismatch
		}
		if seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}

	return nil
}

// CopyTour returns an independent copy of the input permutation slice.
//
// Complexity: O(n) time, O(n) space.
func CopyTour(perm []int) []int {
	if perm == nil {
		return nil
	}
	out := make([]int, len(perm))
	copy(out, perm)
	return out
}

// DebugString returns a compact printable representation for tests/debug,
// e.g. "(0 3 1 2)" where the cycle implicitly closes back to the first entry.
//
// Complexity: O(n) time, O(n) space for formatting.
func (t Tour) DebugString() string {
	if len(t.perm) == 0 {
		return "()"
	}
	s := "("
	var i int
	for i = 0; i < len(t.perm); i++ {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprintf("%d", t.perm[i])
	}
	s += ")"
	return s
}

// sharedDirectedEdgeFraction returns the fraction of directed cycle edges
// shared between a and b, used by the exchange phase's closeness surrogate
// (population.go). Both tours must have the same size.
//
// Complexity: O(n) time, O(n) space.
func sharedDirectedEdgeFraction(a, b Tour) float64 {
	n := a.Size()
	if n == 0 || b.Size() != n {
		return 0
	}

	edges := make(map[[2]int]struct{}, n)
	var i, u, v int
	for i = 0; i < n; i++ {
		u = a.perm[i]
		v = a.perm[(i+1)%n]
		edges[[2]int{u, v}] = struct{}{}
	}

	var shared int
	for i = 0; i < n; i++ {
		u = b.perm[i]
		v = b.perm[(i+1)%n]
		if _, ok := edges[[2]int{u, v}]; ok {
			shared++
		}
	}

	return float64(shared) / float64(n)
}
