// Package ptsa computes approximate solutions to the Asymmetric Travelling
// Salesman Problem (ATSP) using Parallel Tempering Simulated Annealing: a
// population of simulated-annealing chains at different temperatures evolve
// concurrently and periodically exchange states, letting cold chains exploit
// and hot chains explore.
//
// # What & Why
//
// Given an n×n non-negative distance matrix and a wall-clock time budget,
// Run returns the shortest Hamiltonian cycle (tour) discovered. This package
// does not attempt optimality: it is a stochastic local-search engine meant
// for instances large enough that exact methods (Held-Karp, branch and
// bound) are infeasible.
//
// # Algorithm
//
//	Population of K chains, each a tour + temperature + transition operator.
//	Epoch: steps_per_epoch Metropolis steps per chain (parallel across W
//	worker goroutines) followed by an exchange phase where adjacent chains
//	(by initial temperature order, fixed for the run) may swap tours under
//	the standard parallel-tempering acceptance criterion. Temperatures cool
//	geometrically once per epoch. A shared deadline is checked between
//	epochs; the best tour any chain has ever held is returned.
//
// # Determinism & Stability
//
//   - No time-based randomness inside the search: every randomized draw is
//     seeded from Config.Seed via deterministic stream derivation (rng.go).
//   - Worker count does not affect determinism guarantees — see Non-goals.
//   - Costs are stabilized by rounding to 1e-9 to avoid cross-platform
//     floating-point drift (cost.go).
//
// # Input Requirements
//
//	dist must be a square n×n matrix, n≥2. Diagonal is ignored. No negative
//	or NaN entries. The matrix need not be symmetric (ATSP is the native case).
//
// # Options
//
//	type Config struct { ... }
//	func DefaultConfig() Config
//
// # Errors
//
//	ErrConfigInvalid and the matrix-shape sentinels (ErrNonSquare,
//	ErrMatrixTooSmall, ErrNegativeWeight, ErrMatrixInvalid,
//	ErrDimensionMismatch) are returned synchronously, before any goroutine
//	starts. A time budget too small to finish one epoch is not an error:
//	Run returns the best tour present in the initial population.
//
// # Non-goals
//
// Exact optimality, deterministic reproducibility across thread counts,
// symmetric-only special casing, constrained variants (time windows,
// capacities), online problems. Problem-set loading, reporting, CLI
// plumbing, and benchmarking harnesses are external collaborators.
package ptsa
