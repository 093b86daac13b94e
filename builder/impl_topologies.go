// SPDX-License-Identifier: MIT
// Package: sparsegraph/builder
//
// impl_topologies.go - deterministic fixed-shape constructors: Path, Cycle, Star, Complete.
//
// Every constructor grows g to n nodes and appends its edges in ascending
// (from, to) order, taking each cost from cfg.costFn. No RNG is consumed unless
// the cost function draws from it.

package builder

import (
	"fmt"

	"github.com/katalvlaran/sparsegraph/core"
)

const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodStar     = "Star"
	methodComplete = "Complete"

	minPathNodes     = 2
	minCycleNodes    = 2
	minStarNodes     = 2
	minCompleteNodes = 1
)

// Path returns a Constructor for the directed path 0→1→…→n-1.
func Path(n int) Constructor {
	return func(g *core.SparseWeightDirected, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		if err := ensureNodes(g, n); err != nil {
			return fmt.Errorf("%s: %w", methodPath, err)
		}
		for i := 0; i+1 < n; i++ {
			if err := g.AddEdge(core.NodeID(i), core.NodeID(i+1), cfg.cost()); err != nil {
				return fmt.Errorf("%s: AddEdge(%d→%d): %w", methodPath, i, i+1, err)
			}
		}
		return nil
	}
}

// Cycle returns a Constructor for the directed ring 0→1→…→n-1→0.
func Cycle(n int) Constructor {
	return func(g *core.SparseWeightDirected, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		if err := Path(n)(g, cfg); err != nil {
			return fmt.Errorf("%s: %w", methodCycle, err)
		}
		if err := g.AddEdge(core.NodeID(n-1), 0, cfg.cost()); err != nil {
			return fmt.Errorf("%s: AddEdge(%d→0): %w", methodCycle, n-1, err)
		}
		return nil
	}
}

// Star returns a Constructor with hub 0 pointing at every other node.
func Star(n int) Constructor {
	return func(g *core.SparseWeightDirected, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := ensureNodes(g, n); err != nil {
			return fmt.Errorf("%s: %w", methodStar, err)
		}
		for i := 1; i < n; i++ {
			if err := g.AddEdge(0, core.NodeID(i), cfg.cost()); err != nil {
				return fmt.Errorf("%s: AddEdge(0→%d): %w", methodStar, i, err)
			}
		}
		return nil
	}
}

// Complete returns a Constructor adding i→j for every ordered pair i != j.
func Complete(n int) Constructor {
	return func(g *core.SparseWeightDirected, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		if err := ensureNodes(g, n); err != nil {
			return fmt.Errorf("%s: %w", methodComplete, err)
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if err := g.AddEdge(core.NodeID(i), core.NodeID(j), cfg.cost()); err != nil {
					return fmt.Errorf("%s: AddEdge(%d→%d): %w", methodComplete, i, j, err)
				}
			}
		}
		return nil
	}
}
