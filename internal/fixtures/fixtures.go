// SPDX-License-Identifier: MIT

// Package fixtures provides small hand-built graphs that exercise every edge
// case the codecs care about. Tests across packages share them so that all
// three formats are checked against the same inputs.
package fixtures

import (
	"math"

	"github.com/katalvlaran/sparsegraph/core"
)

// Named fixture graphs.
const (
	Empty         = "empty"
	Isolated      = "isolated"
	SingleEdge    = "single-edge"
	NoCost        = "no-cost"
	SameCost      = "same-cost"
	Bimodal       = "bimodal"
	Distinct      = "distinct"
	Mixed         = "mixed"
	Extremes      = "extremes"
	Dangling      = "dangling"
	SkewedBimodal = "skewed-bimodal"
)

// Names lists every fixture in a stable order.
var Names = []string{
	Empty, Isolated, SingleEdge, NoCost, SameCost, Bimodal,
	Distinct, Mixed, Extremes, Dangling, SkewedBimodal,
}

// Graph returns a fresh copy of the named fixture. Unknown names panic.
func Graph(name string) *core.SparseWeightDirected {
	switch name {
	case Empty:
		return core.New(0)
	case Isolated:
		return core.New(4)
	case SingleEdge:
		return core.FromAdjacency([][]core.Edge{{{To: 1, Cost: -7}}, {}})
	case NoCost:
		return core.FromAdjacency([][]core.Edge{{{To: 1, Cost: 0}, {To: 2, Cost: 0}, {To: 3, Cost: 0}}, {}, {}, {}})
	case SameCost:
		return core.FromAdjacency([][]core.Edge{{{To: 1, Cost: 5}, {To: 2, Cost: 5}}, {}, {}})
	case Bimodal:
		return core.FromAdjacency([][]core.Edge{
			{{To: 1, Cost: 0}, {To: 2, Cost: 0}, {To: 3, Cost: 7}, {To: 4, Cost: 7}},
			{}, {}, {}, {},
		})
	case Distinct:
		return core.FromAdjacency([][]core.Edge{{{To: 1, Cost: 1}, {To: 2, Cost: 2}, {To: 3, Cost: 3}}, {}, {}, {}})
	case Mixed:
		// Self-loops, duplicate destinations, interleaved buckets, empty nodes.
		return core.FromAdjacency([][]core.Edge{
			{{To: 0, Cost: 3}, {To: 2, Cost: -1}, {To: 0, Cost: 3}, {To: 2, Cost: -1}, {To: 1, Cost: 3}},
			{},
			{{To: 2, Cost: 0}, {To: 2, Cost: 0}},
			{{To: 0, Cost: 9}, {To: 1, Cost: 9}, {To: 2, Cost: 4}},
			{},
			{{To: 5, Cost: 12}},
		})
	case Extremes:
		last := core.NodeID(299)
		adjacency := make([][]core.Edge, 300)
		adjacency[0] = []core.Edge{
			{To: last, Cost: math.MaxInt32},
			{To: 128, Cost: math.MinInt32},
			{To: 127, Cost: -1},
		}
		adjacency[last] = []core.Edge{{To: 0, Cost: math.MinInt32}, {To: 1, Cost: math.MinInt32}}
		return core.FromAdjacency(adjacency)
	case Dangling:
		return core.FromAdjacency([][]core.Edge{{{To: 10, Cost: 1}}, {{To: 1 << 20, Cost: 0}}})
	case SkewedBimodal:
		// Two buckets but one of them has a single member.
		return core.FromAdjacency([][]core.Edge{{{To: 1, Cost: 2}, {To: 2, Cost: 2}, {To: 3, Cost: 8}}, {}, {}, {}})
	default:
		panic("fixtures: unknown graph " + name)
	}
}
