// Package ptsa_test provides lightweight, stdlib-only helpers shared across
// this package's *_test.go files.
package ptsa_test

import (
	"testing"
	"time"

	ptsa "github.com/sarat-asymmetrica/ptsa-atsp"
)

const (
	// seedDet is a deterministic seed for RNG-driven tests.
	seedDet = int64(7)

	// timeTiny is a small-but-real budget for fast end-to-end scenarios.
	timeTiny = 50 * time.Millisecond

	// timeShort is used where the chain needs a handful of epochs to settle.
	timeShort = 200 * time.Millisecond
)

// mustMatrix builds a DistanceMatrix from rows or fails the test.
func mustMatrix(t *testing.T, rows [][]float64) ptsa.DistanceMatrix {
	t.Helper()
	m, err := ptsa.NewDistanceMatrix(rows)
	if err != nil {
		t.Fatalf("NewDistanceMatrix failed: %v", err)
	}
	return m
}

// cycleDist returns an n x n matrix where consecutive cities (mod n) are
// distance 1 apart and all other pairs are distance 2 apart: the optimal
// cycles are the identity tour and its reverse, both with length n.
func cycleDist(n int) [][]float64 {
	rows := make([][]float64, n)
	var i, j int
	for i = 0; i < n; i++ {
		rows[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			if (j-i+n)%n == 1 || (i-j+n)%n == 1 {
				rows[i][j] = 1
			} else {
				rows[i][j] = 2
			}
		}
	}
	return rows
}

// lineDist returns an n x n matrix laid out on a straight line at unit
// spacing: |i - j|. The nearest-neighbor walk from 0 is 0,1,2,...,n-1, which
// is optimal for the open path but forces one long closing edge back to 0.
func lineDist(n int) [][]float64 {
	rows := make([][]float64, n)
	var i, j int
	for i = 0; i < n; i++ {
		rows[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			d := i - j
			if d < 0 {
				d = -d
			}
			rows[i][j] = float64(d)
		}
	}
	return rows
}

// randomAsymInstance builds a deterministic, non-symmetric n x n distance
// matrix (pseudo-random weights derived from i,j so the test has no RNG
// dependency of its own).
func randomAsymInstance(n int) [][]float64 {
	rows := make([][]float64, n)
	var i, j int
	for i = 0; i < n; i++ {
		rows[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			rows[i][j] = float64((i*31+j*17)%23 + 1)
		}
	}
	return rows
}

// smallConfig returns a Config tuned to converge quickly on tiny instances
// within test-friendly wall-clock budgets.
func smallConfig(seed int64) ptsa.Config {
	cfg := ptsa.DefaultConfig()
	cfg.NumberOfStates = 4
	cfg.NumberOfConcurrentThreads = 1
	cfg.Seed = seed
	cfg.StepsPerEpoch = 64
	return cfg
}
