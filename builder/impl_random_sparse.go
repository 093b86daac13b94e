// SPDX-License-Identifier: MIT
// Package: sparsegraph/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Model:
//   - Erdős–Rényi-like generator: include each ordered pair (i,j) independently with prob p.
//   - Directed only; self-loops (i,i) are admissible trials.
//   - Edge costs come from cfg.costFn(cfg.rng).
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource); p ∈ {0,1} needs no RNG.
//   - Grows g to at least n nodes; existing nodes and edges are kept.
//   - Returns only sentinel-wrapped errors; never panics at runtime.
//
// Complexity:
//   - Time: O(n²) Bernoulli trials.
//   - Space: O(E) for the appended edges.
//
// Determinism:
//   - Stable edge-trial order: for each i asc, j asc.
//   - Deterministic outcomes for a fixed seed and cost function.

package builder

import (
	"fmt"

	"github.com/katalvlaran/sparsegraph/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples each ordered pair (i,j),
// self-loops included, independently with probability p.
// Trials run i asc, j asc so a fixed seed always yields the same graph.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.SparseWeightDirected, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		// RNG is only required for true sampling; p ∈ {0,1} is deterministic.
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}
		if err := ensureNodes(g, n); err != nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, err)
		}
		if p == probMin {
			return nil
		}

		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if p < probMax && cfg.rng.Float64() >= p {
					continue
				}
				if err := g.AddEdge(core.NodeID(i), core.NodeID(j), cfg.cost()); err != nil {
					return fmt.Errorf("%s: AddEdge(%d→%d): %w", methodRandomSparse, i, j, err)
				}
			}
		}
		return nil
	}
}
