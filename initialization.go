// Package ptsa - population initialization.
//
// buildPopulation wires together the three independent draws spec.md's
// section 4.5 describes: Beta-distributed temperatures (rng.go),
// Bernoulli-distributed operator kinds, and a heuristic/random tour mix
// where the nearest-neighbor tour is computed exactly once and shared
// (copied, never aliased) across every chain that draws it. Grounded on
// original_source/src/Code/initialization.py's `initialization` function,
// reshaped into the teacher's explicit-loop, pre-sized-slice style.
package ptsa

func buildPopulation(ec edgeCosts, cfg Config) *Population {
	k := cfg.NumberOfStates
	temps := betaTemperatures(k, cfg.TempBetaA, cfg.TempBetaB, cfg.MinTemperature, cfg.MaxTemperature, cfg.Seed)

	baseRNG := rngFromSeed(cfg.Seed)
	nnPerm := nearestNeighborTour(ec)
	nnLength := ec.tourLength(nnPerm)

	chains := make([]*Chain, k)

	var i int
	for i = 0; i < k; i++ {
		chainRNG := deriveRNG(baseRNG.Int63(), uint64(i))

		op := OperatorInsert
		if chainRNG.Float64() < cfg.ProbabilityOfShuffle {
			op = OperatorShuffle
		}

		var perm []int
		var length float64
		if chainRNG.Float64() < cfg.ProbabilityOfHeuristic {
			perm = CopyTour(nnPerm) // shared heuristic, eagerly copied: chains must not alias
			length = nnLength
		} else {
			perm = permRange(ec.n, chainRNG)
			length = ec.tourLength(perm)
		}

		tour := NewTour(perm, length)
		chains[i] = newChain(tour, temps[i], op, chainRNG, cfg.MaxLengthPercentOfCycle)
	}

	return newPopulation(chains)
}
