// Package ptsa - transition operators.
//
// insert and shuffle propose a neighboring tour and report the cost delta
// of applying it, without mutating anything until the caller decides to
// accept. The delta math is grounded on the teacher's two_opt.go idiom:
// prefetch weights into a flat buffer once, then compute a move's cost
// purely from the small number of edges it actually touches - never
// rescan the whole tour to evaluate a candidate.
//
// Segment sampling policy (shared by both operators, spec-mandated):
// segment length is uniform in [1, floor(maxLengthPercentOfCycle*n)],
// clamped to n-1; the start index is uniform in [0, n-1-len]. Segments
// never wrap across the array boundary - this keeps the "remaining
// sequence after excision" a simple prefix+suffix concatenation instead
// of a circular splice, which is what makes the O(1) delta below exact.
package ptsa

import "math/rand"

// maxSegLenRetries bounds resampling attempts for degenerate (no-op)
// candidate moves, per spec.
const maxSegLenRetries = 8

// segmentBounds samples a segment [l, r] (inclusive, non-wrapping) whose
// length is uniform in [1, maxLen], with maxLen itself derived from
// maxLengthPercentOfCycle and clamped to n-1.
//
// Complexity: O(1).
func segmentBounds(n int, maxLengthPercentOfCycle float64, rng *rand.Rand) (l, r, segLen int) {
	maxLen := int(maxLengthPercentOfCycle * float64(n))
	if maxLen < 1 {
		maxLen = 1
	}
	if maxLen > n-1 {
		maxLen = n - 1
	}

	segLen = 1 + rng.Intn(maxLen)
	l = rng.Intn(n - segLen) // uniform in [0, n-1-segLen]
	r = l + segLen - 1

	return l, r, segLen
}

// insertMove captures everything needed to apply an accepted insert move
// without recomputing any of the bookkeeping done while scoring it.
type insertMove struct {
	l, r     int // segment bounds, inclusive, non-wrapping
	pos      int // gap index in [0, n-segLen] into the (n-segLen)-city remaining sequence
	reversed bool
}

// proposeInsert samples an insert move and returns its cost delta.
//
// The six boundary edges named by the spec:
//
//	removed: (prevL -> segStart), (segEnd -> nextR), (gapPrev -> gapNext)
//	added:   (prevL -> nextR), plus the segment's two new boundary edges,
//	         which are (gapPrev -> segStart, segEnd -> gapNext) forward or
//	         (gapPrev -> segEnd, segStart -> gapNext) reversed.
//
// gapPrev/gapNext are read from the "remaining sequence" (the tour with the
// segment excised) via remAt, a pure O(1) index remap - see remAt's doc.
// Degenerate placements - pos==l without a reversal, or pos==l on a
// single-city segment even with one - reproduce the input exactly and are
// resampled up to maxSegLenRetries times, then skipped by returning
// ok=false. pos==l *with* a reversal on a segment of 2 or more cities is
// kept: it is a genuine in-place segment reversal, not a no-op.
//
// When reversed, the segment's own internal edges also flip direction.
// Since the distance matrix is not assumed symmetric (ATSP), that changes
// their cost: the segLen-1 internal edges are removed in forward order
// (seg[i] -> seg[i+1]) and added back in reverse order (seg[i+1] -> seg[i]).
// Skipping this would let the cached length diverge from the tour
// applyInsert actually builds.
//
// Complexity: O(1) when not reversed, O(segLen) when reversed.
func proposeInsert(perm []int, ec edgeCosts, maxLengthPercentOfCycle float64, rng *rand.Rand) (insertMove, float64, bool) {
	n := len(perm)

	var attempt int
	for attempt = 0; attempt < maxSegLenRetries; attempt++ {
		l, r, segLen := segmentBounds(n, maxLengthPercentOfCycle, rng)
		m := n - segLen // size of the remaining sequence

		pos := rng.Intn(m + 1)
		reversed := rng.Intn(2) == 1
		if pos == l && (!reversed || segLen == 1) {
			// pos==l without a reversal reproduces the current placement;
			// pos==l with a single-city "segment" has nothing to reverse
			// either. pos==l *with* reversed and segLen>=2 is a genuine,
			// distinct move (an in-place segment reversal), not a no-op -
			// keep it.
			continue
		}

		remAt := func(k int) int {
			if k < l {
				return perm[k]
			}
			return perm[k+segLen]
		}

		prevL := perm[(l-1+n)%n]
		segStart := perm[l]
		segEnd := perm[r]
		nextR := perm[(r+1)%n]

		var gapPrev, gapNext int
		if pos == 0 {
			gapPrev = remAt(m - 1)
		} else {
			gapPrev = remAt(pos - 1)
		}
		if pos == m {
			gapNext = remAt(0)
		} else {
			gapNext = remAt(pos)
		}

		removed := ec.at(prevL, segStart) + ec.at(segEnd, nextR) + ec.at(gapPrev, gapNext)
		bridge := ec.at(prevL, nextR)

		var added float64
		if reversed {
			added = bridge + ec.at(gapPrev, segEnd) + ec.at(segStart, gapNext)

			// Internal segment edges reverse direction too; fold their
			// asymmetric cost difference into the same delta.
			var i int
			for i = l; i < r; i++ {
				removed += ec.at(perm[i], perm[i+1])
				added += ec.at(perm[i+1], perm[i])
			}
		} else {
			added = bridge + ec.at(gapPrev, segStart) + ec.at(segEnd, gapNext)
		}

		return insertMove{l: l, r: r, pos: pos, reversed: reversed}, added - removed, true
	}

	return insertMove{}, 0, false
}

// applyInsert materializes an accepted insert move into a fresh permutation.
// This is the O(n) "pay on accept, not on reject" rebuild: most proposed
// moves in a hot SA loop are rejected and cost nothing beyond proposeInsert's
// O(1) (O(segLen) when reversed) scoring; only accepted moves pay for the
// physical splice.
//
// Complexity: O(n) time, O(n) space.
func applyInsert(perm []int, mv insertMove) []int {
	n := len(perm)
	segLen := mv.r - mv.l + 1
	m := n - segLen

	remaining := make([]int, m)
	var k int
	for k = 0; k < mv.l; k++ {
		remaining[k] = perm[k]
	}
	for k = mv.l; k < m; k++ {
		remaining[k] = perm[k+segLen]
	}

	segment := make([]int, segLen)
	copy(segment, perm[mv.l:mv.r+1])
	if mv.reversed {
		reverseInts(segment)
	}

	out := make([]int, 0, n)
	out = append(out, remaining[:mv.pos]...)
	out = append(out, segment...)
	out = append(out, remaining[mv.pos:]...)

	return out
}

// reverseInts reverses a slice in place.
//
// Complexity: O(len(a)).
func reverseInts(a []int) {
	i, j := 0, len(a)-1
	for i < j {
		a[i], a[j] = a[j], a[i]
		i++
		j--
	}
}

// shuffleMove captures an accepted shuffle move.
type shuffleMove struct {
	l, r    int
	newPerm []int // the new contents of perm[l..r], length r-l+1
}

// proposeShuffle samples a shuffle move and returns its cost delta. Only the
// two boundary edges and the r-l internal edges are touched, per spec.
//
// Complexity: O(r-l) time and space.
func proposeShuffle(perm []int, ec edgeCosts, maxLengthPercentOfCycle float64, rng *rand.Rand) (shuffleMove, float64, bool) {
	n := len(perm)

	var attempt int
	for attempt = 0; attempt < maxSegLenRetries; attempt++ {
		l, r, segLen := segmentBounds(n, maxLengthPercentOfCycle, rng)
		if segLen < 2 {
			// A single-city "segment" has no internal permutation freedom;
			// resample for a move that can actually change the tour.
			if n-1 < 2 {
				// Degenerate instance (n<=2): no shuffle is possible at all.
				return shuffleMove{}, 0, false
			}
			continue
		}

		oldSeg := perm[l : r+1]
		newSeg := make([]int, segLen)
		copy(newSeg, oldSeg)
		shuffleIntsInPlace(newSeg, rng)

		if intsEqual(oldSeg, newSeg) {
			continue // no-op permutation; resample
		}

		prevL := perm[(l-1+n)%n]
		nextR := perm[(r+1)%n]

		var removed, added float64
		removed += ec.at(prevL, oldSeg[0])
		added += ec.at(prevL, newSeg[0])
		var i int
		for i = 0; i < segLen-1; i++ {
			removed += ec.at(oldSeg[i], oldSeg[i+1])
			added += ec.at(newSeg[i], newSeg[i+1])
		}
		removed += ec.at(oldSeg[segLen-1], nextR)
		added += ec.at(newSeg[segLen-1], nextR)

		return shuffleMove{l: l, r: r, newPerm: newSeg}, added - removed, true
	}

	return shuffleMove{}, 0, false
}

// applyShuffle materializes an accepted shuffle move into a fresh permutation.
//
// Complexity: O(n) time, O(n) space (a full copy keeps Tour.perm immutable
// between accept events, which matters once tours start being cloned into
// local-best storage and swapped at exchange barriers - see chain.go).
func applyShuffle(perm []int, mv shuffleMove) []int {
	out := CopyTour(perm)
	copy(out[mv.l:mv.r+1], mv.newPerm)
	return out
}

// intsEqual reports whether a and b hold the same elements in the same order.
//
// Complexity: O(len(a)).
func intsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	var i int
	for i = range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
