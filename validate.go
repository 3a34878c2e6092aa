// Package ptsa - validation utilities.
//
// This file contains small, tight helpers that validate Config and the
// input distance matrix before any goroutine is started.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - O(n^2) worst case for the matrix scan; no hidden allocations.
package ptsa

import "math"

// validateConfig checks internal consistency of Config without touching the
// distance matrix.
//
// Complexity: O(1).
func validateConfig(cfg Config) error {
	if cfg.NumberOfStates < 2 {
		return ErrConfigInvalid
	}
	if cfg.NumberOfConcurrentThreads < 1 {
		return ErrConfigInvalid
	}
	if cfg.NumberOfRepeats < 0 {
		return ErrConfigInvalid
	}
	if cfg.MinTemperature <= 0 || cfg.MaxTemperature < cfg.MinTemperature {
		return ErrConfigInvalid
	}
	if cfg.TempBetaA <= 0 || cfg.TempBetaB <= 0 {
		return ErrConfigInvalid
	}
	if !inUnitRange(cfg.ProbabilityOfShuffle) {
		return ErrConfigInvalid
	}
	if !inUnitRange(cfg.ProbabilityOfHeuristic) {
		return ErrConfigInvalid
	}
	if cfg.MaxLengthPercentOfCycle <= 0 || cfg.MaxLengthPercentOfCycle > 0.3 {
		return ErrConfigInvalid
	}
	if !inUnitRange(cfg.SwapStatesProbability) {
		return ErrConfigInvalid
	}
	if cfg.Closeness < 1 {
		return ErrConfigInvalid
	}
	if cfg.CoolingRate <= 0 || cfg.CoolingRate > 1 {
		return ErrConfigInvalid
	}
	if cfg.StepsPerEpoch < 0 {
		return ErrConfigInvalid
	}

	return nil
}

// inUnitRange reports whether p is within [0, 1].
//
// Complexity: O(1).
func inUnitRange(p float64) bool {
	return p >= 0 && p <= 1
}

// validateDistMatrix performs full matrix validation:
//   - non-nil, square, n >= 2,
//   - no negative off-diagonal distances,
//   - no NaN or +/-Inf anywhere (PTSA never operates on partially
//     connected instances; an incomplete graph has no valid neighbor
//     moves and is rejected up front rather than discovered mid-search).
//
// Returns n (matrix order) on success.
//
// Complexity: O(n^2).
func validateDistMatrix(dist DistanceMatrix) (int, error) {
	if dist == nil {
		return 0, ErrMatrixInvalid
	}

	var (
		nr = dist.Rows()
		nc = dist.Cols()
	)
	if nr != nc {
		return 0, ErrNonSquare
	}
	if nr < 2 {
		return 0, ErrMatrixTooSmall
	}
	n := nr

	var (
		i, j int
		w    float64
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue // diagonal is ignored by cost computation
			}
			w, err = dist.At(i, j)
			if err != nil {
				return 0, ErrDimensionMismatch
			}
			if math.IsNaN(w) || math.IsInf(w, 0) {
				return 0, ErrMatrixInvalid
			}
			if w < 0 {
				return 0, ErrNegativeWeight
			}
		}
	}

	return n, nil
}
