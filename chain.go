// Package ptsa - SA chain.
//
// Chain owns one tour, one temperature, one transition-operator kind, a
// private RNG stream, and the best tour it has ever held. Step executes a
// single Metropolis iteration; Cool applies the per-epoch temperature decay.
// Chains are touched by exactly one worker goroutine at a time (see
// scheduler.go) except for brief, exclusive access from the exchange
// coordinator at epoch barriers.
package ptsa

import (
	"math"
	"math/rand"
)

// Chain is one simulated-annealing walker in the population.
type Chain struct {
	tour       Tour
	temp       float64
	op         OperatorKind
	rng        *rand.Rand
	bestTour   Tour
	bestLength float64

	maxLengthPercentOfCycle float64
}

// newChain constructs a chain from its initial tour, temperature, and
// operator assignment.
func newChain(tour Tour, temp float64, op OperatorKind, rng *rand.Rand, maxLengthPercentOfCycle float64) *Chain {
	return &Chain{
		tour:                    tour,
		temp:                    temp,
		op:                      op,
		rng:                     rng,
		bestTour:                tour.Clone(),
		bestLength:              tour.Length(),
		maxLengthPercentOfCycle: maxLengthPercentOfCycle,
	}
}

// Temperature returns the chain's current temperature.
func (c *Chain) Temperature() float64 { return c.temp }

// CurrentTour returns the chain's current tour (read-only snapshot; do not mutate
// the returned Tour's backing slice).
func (c *Chain) CurrentTour() Tour { return c.tour }

// BestLength returns the lowest cost this chain has ever held.
func (c *Chain) BestLength() float64 { return c.bestLength }

// BestTour returns a clone of the chain's local best.
func (c *Chain) BestTour() Tour { return c.bestTour.Clone() }

// Step executes one Metropolis iteration against the shared edge-cost view.
// It proposes a neighbor via the chain's assigned operator, accepts or
// rejects under the annealing criterion, and on acceptance mutates the
// tour and refreshes the local best. Returns true if a new local best was
// set (callers use this to decide whether a global-best update is worth
// attempting).
//
// Complexity: O(1) per proposal for a forward insert, O(segLen) for a
// reversed insert or a shuffle, plus O(n) only on the rarer accepted moves.
func (c *Chain) Step(ec edgeCosts) bool {
	var delta float64
	var ok bool
	var applyFn func() []int

	switch c.op {
	case OperatorInsert:
		var mv insertMove
		mv, delta, ok = proposeInsert(c.tour.perm, ec, c.maxLengthPercentOfCycle, c.rng)
		if ok {
			applyFn = func() []int { return applyInsert(c.tour.perm, mv) }
		}
	case OperatorShuffle:
		var mv shuffleMove
		mv, delta, ok = proposeShuffle(c.tour.perm, ec, c.maxLengthPercentOfCycle, c.rng)
		if ok {
			applyFn = func() []int { return applyShuffle(c.tour.perm, mv) }
		}
	}

	if !ok {
		return false // degenerate instance; no viable move this step
	}

	if !c.accept(delta) {
		return false
	}

	newPerm := applyFn()
	newLength := round1e9(c.tour.length + delta)
	c.tour = Tour{perm: newPerm, length: newLength}

	if newLength < c.bestLength {
		c.bestLength = newLength
		c.bestTour = c.tour.Clone()
		return true
	}

	return false
}

// accept implements the Metropolis acceptance rule:
//
//	delta <= 0             => always accept
//	delta > 0               => accept with probability exp(-delta/tau)
//
// tau is floored at minTemperatureFloor to avoid division by (near) zero.
// The exponent is evaluated only in the delta>0 branch so a very large
// positive delta/tau simply yields a probability indistinguishable from 0
// rather than overflowing.
//
// Complexity: O(1).
func (c *Chain) accept(delta float64) bool {
	if delta <= 0 {
		return true
	}

	tau := c.temp
	if tau < minTemperatureFloor {
		tau = minTemperatureFloor
	}

	x := -delta / tau
	var p float64
	if x < -745 { // math.Exp underflows to 0 below this; avoid the call
		p = 0
	} else {
		p = math.Exp(x)
	}
	if p > 1 {
		p = 1
	}

	return c.rng.Float64() < p
}

// Cool applies the per-epoch geometric temperature decay, floored so it
// never reaches zero (guarding future accept() calls against division by
// zero even when CoolingRate==1 is configured and cooling is effectively a
// no-op).
//
// Complexity: O(1).
func (c *Chain) Cool(coolingRate float64) {
	c.temp *= coolingRate
	if c.temp < minTemperatureFloor {
		c.temp = minTemperatureFloor
	}
}
