// Package ptsa - public API.
//
// Run is the single exported entry point: validate, build the population,
// drive the scheduler until the time budget elapses, and report the best
// tour found. Mirrors the teacher's top-level solver functions (one
// validate-then-delegate exported func per algorithm, sentinel errors
// returned rather than panics).
package ptsa

import "time"

// Run searches dist for a short Hamiltonian cycle using parallel tempering
// simulated annealing, for up to timeBudget wall-clock time, and returns the
// best tour found along with its length.
//
// Run never mutates dist. It returns an error without starting any
// goroutine if cfg or dist fails validation; once validation passes, Run
// always returns a Result (degenerate instances such as n==2 still produce
// a valid, if trivial, tour) and a nil error.
//
// Complexity: O(n^2) up-front (matrix validation, nearest-neighbor
// construction) plus O(timeBudget) of annealing work.
func Run(dist DistanceMatrix, timeBudget time.Duration, cfg Config) (Result, error) {
	if err := validateConfig(cfg); err != nil {
		return Result{}, err
	}

	n, err := validateDistMatrix(dist)
	if err != nil {
		return Result{}, err
	}

	ec, err := newEdgeCosts(dist)
	if err != nil {
		return Result{}, err
	}

	pop := buildPopulation(ec, cfg)
	stepsPerEpoch := stepsPerEpochFor(cfg, n)

	ctx, cancel := deadlineContext(timeBudget)
	defer cancel()

	coordRNG := deriveRNG(cfg.Seed, coordinatorStreamID)

	tour, length := runScheduler(ctx, pop, ec, cfg, stepsPerEpoch, coordRNG)

	return Result{Tour: tour.Perm(), Length: length}, nil
}

// coordinatorStreamID is the SplitMix64 stream index reserved for the
// exchange coordinator's RNG, distinct from every per-chain stream (which
// are indexed 0..K-1 by buildPopulation).
const coordinatorStreamID uint64 = 1 << 32
