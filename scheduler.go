// Package ptsa - parallel scheduler.
//
// runScheduler partitions the population's chains across W worker
// goroutines, static and balanced by count, and drives the epoch loop:
// each worker advances its chains for steps_per_epoch Metropolis steps,
// then the scheduler waits for every worker to arrive (the barrier) before
// a single exchange-and-cool pass runs with exclusive access to every
// chain. Workers never touch a chain outside their own partition, and the
// coordinator never touches any chain while a worker is mid-epoch.
//
// Fan-out is grounded on niceyeti-tabular/tabular/server/fastview/client.go,
// the one file in the wider retrieved pack that pairs
// golang.org/x/sync/errgroup.WithContext with a shared cancellation signal
// for a worker group; here the "cancellation signal" is the run's absolute
// deadline. A fresh errgroup is built per epoch rather than keeping workers
// alive across epochs via channels: the barrier cost (one Wait per epoch)
// is amortized across steps_per_epoch Metropolis steps, which the spec
// requires to dominate wall time.
package ptsa

import (
	"context"
	"math/rand"
	"time"

	"golang.org/x/sync/errgroup"
)

// partitionChains splits indices [0, k) into w static, balanced (by count)
// groups.
//
// Complexity: O(k).
func partitionChains(k, w int) [][]int {
	if w > k {
		w = k
	}
	parts := make([][]int, w)
	base := k / w
	rem := k % w

	idx := 0
	var p int
	for p = 0; p < w; p++ {
		size := base
		if p < rem {
			size++
		}
		parts[p] = make([]int, size)
		var j int
		for j = 0; j < size; j++ {
			parts[p][j] = idx
			idx++
		}
	}

	return parts
}

// runScheduler executes the full epoch loop until deadline, returning the
// global best observed. coordRNG drives the exchange phase's Bernoulli gate
// and per-pair acceptance draws; it is a single stream, touched only by the
// coordinator goroutine between barriers, never by workers.
func runScheduler(ctx context.Context, pop *Population, ec edgeCosts, cfg Config, stepsPerEpoch int, coordRNG *rand.Rand) (Tour, float64) {
	parts := partitionChains(len(pop.chains), cfg.NumberOfConcurrentThreads)

	for {
		select {
		case <-ctx.Done():
			tour, length := pop.GlobalBest()
			return tour, length
		default:
		}

		g, _ := errgroup.WithContext(ctx)
		var part []int
		for _, part = range parts {
			part := part // capture for the closure
			g.Go(func() error {
				runEpochForPartition(pop, part, ec, stepsPerEpoch)
				return nil
			})
		}
		_ = g.Wait() // workers never return an error; Wait only serves as the barrier

		pop.exchangeAndCool(cfg, coordRNG)
		pop.refreshGlobalBestFromChains()

		if ctx.Err() != nil {
			tour, length := pop.GlobalBest()
			return tour, length
		}
	}
}

// runEpochForPartition advances every chain owned by this worker for
// stepsPerEpoch Metropolis steps, reporting any new local best to the
// population's global-best tracker immediately (not waiting for the
// once-per-epoch consolidation scan).
//
// Complexity: O(stepsPerEpoch) amortized per chain in the partition.
func runEpochForPartition(pop *Population, chainIdx []int, ec edgeCosts, stepsPerEpoch int) {
	var idx int
	for _, idx = range chainIdx {
		c := pop.chains[idx]
		var s int
		for s = 0; s < stepsPerEpoch; s++ {
			if c.Step(ec) {
				pop.considerGlobalBest(c.BestTour(), c.BestLength())
			}
		}
	}
}

// deadlineContext returns a context cancelled when budget elapses from now.
func deadlineContext(budget time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), budget)
}

// runFixedEpochs drives exactly epochs iterations of the same loop body as
// runScheduler, with no wall-clock involved. Run itself never calls this -
// it exists so determinism (same seed, same step count => same result) is
// testable without depending on real-time scheduling jitter, which a
// context.WithTimeout budget can never guarantee bit-for-bit across two
// separate process runs.
func runFixedEpochs(pop *Population, ec edgeCosts, cfg Config, stepsPerEpoch, epochs int, coordRNG *rand.Rand) (Tour, float64) {
	parts := partitionChains(len(pop.chains), cfg.NumberOfConcurrentThreads)

	var epoch int
	for epoch = 0; epoch < epochs; epoch++ {
		g, _ := errgroup.WithContext(context.Background())
		var part []int
		for _, part = range parts {
			part := part
			g.Go(func() error {
				runEpochForPartition(pop, part, ec, stepsPerEpoch)
				return nil
			})
		}
		_ = g.Wait()

		pop.exchangeAndCool(cfg, coordRNG)
		pop.refreshGlobalBestFromChains()
	}

	return pop.GlobalBest()
}
