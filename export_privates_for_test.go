//go:build test

package ptsa

// Test-Bridge (White-Box) for Private Kernels
//
// Purpose:
//   - Expose unexported algorithmic kernels to ptsa_test for white-box
//     verification (round-trip laws, delta-vs-recompute checks, RNG
//     determinism, exchange math) without widening the public API.
//
// Build Policy:
//   - Compiles only under `-tags test`, so it never ships in a production
//     build of this module.
//
// Keep this file a thin forwarding layer only: no logic lives here that
// isn't already in the production file it bridges to.

import "math/rand"

// Edge-cost / matrix kernels.

func NewEdgeCosts_TestOnly(dist DistanceMatrix) (edgeCosts, error) { return newEdgeCosts(dist) }
func EdgeCostsAt_TestOnly(e edgeCosts, u, v int) float64           { return e.at(u, v) }
func TourLength_TestOnly(e edgeCosts, perm []int) float64          { return e.tourLength(perm) }
func Round1e9_TestOnly(x float64) float64                          { return round1e9(x) }
func NearestNeighborTour_TestOnly(e edgeCosts) []int               { return nearestNeighborTour(e) }

// RNG kernels.

func DeriveSeed_TestOnly(parent int64, stream uint64) int64 { return deriveSeed(parent, stream) }
func DeriveRNG_TestOnly(base int64, stream uint64) *rand.Rand {
	return deriveRNG(base, stream)
}
func RNGFromSeed_TestOnly(seed int64) *rand.Rand { return rngFromSeed(seed) }
func BetaTemperatures_TestOnly(k int, a, b, min, max float64, seed int64) []float64 {
	return betaTemperatures(k, a, b, min, max, seed)
}
func PermRange_TestOnly(n int, rng *rand.Rand) []int { return permRange(n, rng) }

// Transition-operator kernels.

type InsertMove_TestOnly = insertMove
type ShuffleMove_TestOnly = shuffleMove

// NewInsertMove_TestOnly constructs an insertMove directly, for round-trip
// tests that need to build the exact inverse of a sampled move.
func NewInsertMove_TestOnly(l, r, pos int, reversed bool) InsertMove_TestOnly {
	return insertMove{l: l, r: r, pos: pos, reversed: reversed}
}

func InsertMoveL_TestOnly(mv InsertMove_TestOnly) int          { return mv.l }
func InsertMoveR_TestOnly(mv InsertMove_TestOnly) int          { return mv.r }
func InsertMovePos_TestOnly(mv InsertMove_TestOnly) int        { return mv.pos }
func InsertMoveReversed_TestOnly(mv InsertMove_TestOnly) bool  { return mv.reversed }

func ProposeInsert_TestOnly(perm []int, e edgeCosts, maxLen float64, rng *rand.Rand) (InsertMove_TestOnly, float64, bool) {
	return proposeInsert(perm, e, maxLen, rng)
}
func ApplyInsert_TestOnly(perm []int, mv InsertMove_TestOnly) []int { return applyInsert(perm, mv) }
func ProposeShuffle_TestOnly(perm []int, e edgeCosts, maxLen float64, rng *rand.Rand) (ShuffleMove_TestOnly, float64, bool) {
	return proposeShuffle(perm, e, maxLen, rng)
}
func ApplyShuffle_TestOnly(perm []int, mv ShuffleMove_TestOnly) []int {
	return applyShuffle(perm, mv)
}

// Chain kernels.

type Chain_TestOnly = Chain

func NewChain_TestOnly(tour Tour, temp float64, op OperatorKind, rng *rand.Rand, maxLen float64) *Chain_TestOnly {
	return newChain(tour, temp, op, rng, maxLen)
}
func ChainAccept_TestOnly(c *Chain_TestOnly, delta float64) bool { return c.accept(delta) }
func ChainStep_TestOnly(c *Chain_TestOnly, e edgeCosts) bool     { return c.Step(e) }
func ChainCool_TestOnly(c *Chain_TestOnly, coolingRate float64)  { c.Cool(coolingRate) }

// Population / exchange kernels.

type Population_TestOnly = Population

func NewPopulation_TestOnly(chains []*Chain_TestOnly) *Population_TestOnly { return newPopulation(chains) }
func TryExchange_TestOnly(p *Population_TestOnly, ci, cj *Chain_TestOnly, closeness float64, rng *rand.Rand) {
	p.tryExchange(ci, cj, closeness, rng)
}
func ExchangeAndCool_TestOnly(p *Population_TestOnly, cfg Config, rng *rand.Rand) {
	p.exchangeAndCool(cfg, rng)
}
func ClosenessBlocksSwap_TestOnly(a, b Tour, closeness float64) bool {
	return closenessBlocksSwap(a, b, closeness)
}
func ClampTemp_TestOnly(tau float64) float64 { return clampTemp(tau) }

// ConsiderGlobalBest_TestOnly forwards to Population.considerGlobalBest.
func (p *Population) ConsiderGlobalBest_TestOnly(candidate Tour, length float64) {
	p.considerGlobalBest(candidate, length)
}

// Scheduler kernels.

func PartitionChains_TestOnly(k, w int) [][]int { return partitionChains(k, w) }

// RunFixedEpochs_TestOnly runs the PTSA search for a fixed, wall-clock-free
// epoch count, for determinism tests that must not depend on real-time
// scheduling jitter (see runFixedEpochs's doc in scheduler.go).
func RunFixedEpochs_TestOnly(dist DistanceMatrix, cfg Config, epochs int) (Tour, float64, error) {
	if err := validateConfig(cfg); err != nil {
		return Tour{}, 0, err
	}
	n, err := validateDistMatrix(dist)
	if err != nil {
		return Tour{}, 0, err
	}
	ec, err := newEdgeCosts(dist)
	if err != nil {
		return Tour{}, 0, err
	}

	pop := buildPopulation(ec, cfg)
	stepsPerEpoch := stepsPerEpochFor(cfg, n)
	coordRNG := deriveRNG(cfg.Seed, coordinatorStreamID)

	tour, length := runFixedEpochs(pop, ec, cfg, stepsPerEpoch, epochs, coordRNG)
	return tour, length, nil
}

// Config / validation kernels.

func ValidateConfig_TestOnly(cfg Config) error               { return validateConfig(cfg) }
func ValidateDistMatrix_TestOnly(dist DistanceMatrix) (int, error) { return validateDistMatrix(dist) }
func StepsPerEpochFor_TestOnly(cfg Config, n int) int         { return stepsPerEpochFor(cfg, n) }
