// Package ptsa - tempering coordinator.
//
// Population owns K chains, sorted ascending by initial temperature at
// construction; that order is the fixed adjacency used for exchange
// attempts for the lifetime of the run (temperatures drift via cooling but
// never re-sort). The exchange phase and global-best bookkeeping below are
// the population-level half of the spec; chain.go is the per-chain half.
package ptsa

import (
	"math"
	"math/rand"
	"sync"
)

// Population is the fixed-order set of chains a run searches with.
type Population struct {
	chains []*Chain

	bestMu     sync.Mutex
	bestTour   Tour
	bestLength float64
}

// newPopulation wraps K chains that the caller has already built, in
// ascending initial-temperature order (initialization.go), and seeds the
// global best from their local bests.
func newPopulation(chains []*Chain) *Population {
	p := &Population{chains: chains}

	p.bestLength = math.Inf(1)
	var c *Chain
	for _, c = range chains {
		p.considerGlobalBest(c.BestTour(), c.BestLength())
	}

	return p
}

// GlobalBest returns a snapshot of the best tour/length observed so far
// across every chain.
func (p *Population) GlobalBest() (Tour, float64) {
	p.bestMu.Lock()
	defer p.bestMu.Unlock()
	return p.bestTour.Clone(), p.bestLength
}

// considerGlobalBest updates the shared best under a single critical
// section if candidate improves on it. Safe for concurrent callers.
//
// Complexity: O(n) only on improvement (tour clone); O(1) otherwise.
func (p *Population) considerGlobalBest(candidate Tour, length float64) {
	p.bestMu.Lock()
	defer p.bestMu.Unlock()
	if length < p.bestLength {
		p.bestLength = length
		p.bestTour = candidate.Clone()
	}
}

// refreshGlobalBestFromChains scans every chain's local best under the
// single critical section, per spec's "after every epoch" consolidation
// pass. This is a safety net on top of the per-step considerGlobalBest
// calls already made from within Chain.Step's caller (scheduler.go) - it
// catches any local best a worker observed but did not (for whatever
// reason) already report.
//
// Complexity: O(K) chain scans plus O(n) for any single improving clone.
func (p *Population) refreshGlobalBestFromChains() {
	var c *Chain
	for _, c = range p.chains {
		p.considerGlobalBest(c.BestTour(), c.BestLength())
	}
}

// exchangeAndCool runs the exchange phase (gated by swapStatesProbability)
// and then cools every chain exactly once, per epoch. Must be called with
// exclusive access to every chain (i.e. from the epoch barrier in
// scheduler.go, never concurrently with any Chain.Step).
//
// Exchange acceptance follows the standard parallel-tempering criterion:
//
//	p_swap = min(1, exp((L_i - L_j) * (1/tau_i - 1/tau_j)))
//
// Pairs (i, i+1) are visited in ascending index order, so a swap accepted
// at (i, i+1) is visible to the (i+1, i+2) proposal that follows it, per
// spec. A pair is skipped ("closeness pruning") when the two tours already
// share a high fraction of directed edges, to preserve population
// diversity; see closenessBlocksSwap's doc for the surrogate definition.
//
// Complexity: O(K) pair proposals; O(n) per considered pair for the
// closeness surrogate.
func (p *Population) exchangeAndCool(cfg Config, rng *rand.Rand) {
	if rng.Float64() < cfg.SwapStatesProbability {
		var i int
		for i = 0; i+1 < len(p.chains); i++ {
			p.tryExchange(p.chains[i], p.chains[i+1], cfg.Closeness, rng)
		}
	}

	var c *Chain
	for _, c = range p.chains {
		c.Cool(cfg.CoolingRate)
	}
}

// tryExchange proposes swapping ci and cj's current tours under the
// parallel-tempering criterion, unless closeness pruning vetoes it first.
// Local bests and RNGs always stay with their owning chain - only the
// "current" tour field is ever exchanged.
//
// Complexity: O(n) (closeness surrogate dominates).
func (p *Population) tryExchange(ci, cj *Chain, closeness float64, rng *rand.Rand) {
	if closenessBlocksSwap(ci.tour, cj.tour, closeness) {
		return
	}

	li, lj := ci.tour.Length(), cj.tour.Length()
	taui, tauj := clampTemp(ci.temp), clampTemp(cj.temp)

	exponent := (li - lj) * (1/taui - 1/tauj)

	var pSwap float64
	switch {
	case exponent >= 0:
		pSwap = 1 // min(1, exp(x>=0)) == 1, avoid the exp call entirely
	case exponent < -745:
		pSwap = 0 // underflow guard
	default:
		pSwap = math.Exp(exponent)
	}

	if rng.Float64() < pSwap {
		ci.tour, cj.tour = cj.tour, ci.tour
	}
}

// clampTemp floors a temperature the same way Chain.accept does, so the
// exchange criterion never divides by (near) zero.
func clampTemp(tau float64) float64 {
	if tau < minTemperatureFloor {
		return minTemperatureFloor
	}
	return tau
}

// closenessBlocksSwap implements the spec's documented surrogate for the
// "closeness" diversity control: swap the pair only if the two tours share
// less than (1 - 1/closeness) of their directed edges. closeness>=1 by
// config validation, so the threshold is always in [0, 1). closeness==1
// (the strictest legal setting) yields threshold 0, blocking every swap
// regardless of overlap; larger closeness raises the threshold, tolerating
// more overlap before a pair is judged "too close" to trade states. This is
// the documented, deterministic surrogate called for in spec.md's open
// question on closeness semantics.
//
// Complexity: O(n).
func closenessBlocksSwap(a, b Tour, closeness float64) bool {
	threshold := 1 - 1/closeness
	return sharedDirectedEdgeFraction(a, b) >= threshold
}
