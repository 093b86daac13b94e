// SPDX-License-Identifier: MIT

package converters

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/graph/multi"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/sparsegraph/core"
)

var (
	// ErrDanglingEdge indicates an edge that gonum would turn into a new node.
	ErrDanglingEdge = core.ErrDanglingEdge

	// ErrBadNodeID indicates a gonum node id outside [0, core.MaxNodeCount).
	ErrBadNodeID = errors.New("converters: node id not representable")

	// ErrBadWeight indicates a gonum weight that is not an integral int32.
	ErrBadWeight = errors.New("converters: weight not representable as int32 cost")
)

const (
	methodToGonum   = "ToGonum"
	methodFromGonum = "FromGonum"
)

// ToGonum copies g into a new gonum weighted directed multigraph. Every node
// id in [0, NodeCount()) is added, including isolated ones.
// Complexity: O(V + E).
func ToGonum(g *core.SparseWeightDirected) (*multi.WeightedDirectedGraph, error) {
	if err := core.Validate(g); err != nil {
		return nil, fmt.Errorf("%s: %w", methodToGonum, err)
	}
	out := multi.NewWeightedDirectedGraph()
	for id := 0; id < g.NodeCount(); id++ {
		out.AddNode(simple.Node(id))
	}
	for id := 0; id < g.NodeCount(); id++ {
		from := out.Node(int64(id))
		for _, e := range g.Neighbors(core.NodeID(id)) {
			out.SetWeightedLine(out.NewWeightedLine(from, out.Node(int64(e.To)), float64(e.Cost)))
		}
	}
	return out, nil
}

// FromGonum copies src into a SparseWeightDirected. The node count is the
// largest node id plus one; ids with no gonum node become isolated nodes.
// Edges of each node are sorted with core.CompareEdges.
// Complexity: O(V + E log d).
func FromGonum(src *multi.WeightedDirectedGraph) (*core.SparseWeightDirected, error) {
	maxID := int64(-1)
	nodes := src.Nodes()
	for nodes.Next() {
		id := nodes.Node().ID()
		if id < 0 || id >= core.MaxNodeCount {
			return nil, fmt.Errorf("%s: node %d: %w", methodFromGonum, id, ErrBadNodeID)
		}
		maxID = max(maxID, id)
	}

	g := core.New(int(maxID + 1))
	for uid := int64(0); uid <= maxID; uid++ {
		if src.Node(uid) == nil {
			continue
		}
		list := g.MutableNeighbors(core.NodeID(uid))
		to := src.From(uid)
		for to.Next() {
			vid := to.Node().ID()
			lines := src.WeightedLines(uid, vid)
			for lines.Next() {
				w := lines.WeightedLine().Weight()
				if w != math.Trunc(w) || w < math.MinInt32 || w > math.MaxInt32 {
					return nil, fmt.Errorf("%s: line %d→%d weight %g: %w", methodFromGonum, uid, vid, w, ErrBadWeight)
				}
				*list = append(*list, core.Edge{To: core.NodeID(vid), Cost: int32(w)})
			}
		}
		slices.SortFunc(*list, core.CompareEdges)
	}
	return g, nil
}
