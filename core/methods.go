// SPDX-License-Identifier: MIT
// Package: sparsegraph/core
//
// methods.go - accessors and mutators of SparseWeightDirected.
//
// Complexity:
//   - NodeCount, Neighbors, MutableNeighbors, AddEdge, AppendNode: O(1) amortized.
//   - EdgeCount, Clone, Validate: O(V + E).
//   - Resize: O(n) when it reallocates, O(dropped nodes) when shrinking.

package core

import "fmt"

// NodeCount returns the number of nodes.
func (g *SparseWeightDirected) NodeCount() int { return len(g.adjacency) }

// EdgeCount returns the total number of edges over all nodes.
// Complexity: O(V).
func (g *SparseWeightDirected) EdgeCount() int {
	total := 0
	for _, edges := range g.adjacency {
		total += len(edges)
	}
	return total
}

// Neighbors returns the edge list of id, or nil if id is out of range.
// The returned slice aliases graph storage and must not be modified.
func (g *SparseWeightDirected) Neighbors(id NodeID) []Edge {
	if int64(id) >= int64(len(g.adjacency)) {
		return nil
	}
	return g.adjacency[id]
}

// MutableNeighbors returns a pointer to the edge list of id so callers can
// replace or extend it in place. It returns nil if id is out of range.
func (g *SparseWeightDirected) MutableNeighbors(id NodeID) *[]Edge {
	if int64(id) >= int64(len(g.adjacency)) {
		return nil
	}
	return &g.adjacency[id]
}

// AddEdge appends from→to with the given cost.
// The destination is not checked against NodeCount(); see Validate.
func (g *SparseWeightDirected) AddEdge(from, to NodeID, cost int32) error {
	if int64(from) >= int64(len(g.adjacency)) {
		return fmt.Errorf("core: AddEdge(%d→%d): node count %d: %w", from, to, len(g.adjacency), ErrNodeOutOfRange)
	}
	g.adjacency[from] = append(g.adjacency[from], Edge{To: to, Cost: cost})
	return nil
}

// Resize sets the node count to n. Growing appends empty edge lists;
// shrinking drops the trailing lists. Edges pointing at dropped nodes are kept.
func (g *SparseWeightDirected) Resize(n int) error {
	if n < 0 {
		return fmt.Errorf("core: Resize(%d): %w", n, ErrNegativeSize)
	}
	switch {
	case n <= len(g.adjacency):
		clear(g.adjacency[n:])
		g.adjacency = g.adjacency[:n]
	case n <= cap(g.adjacency):
		g.adjacency = g.adjacency[:n]
	default:
		grown := make([][]Edge, n)
		copy(grown, g.adjacency)
		g.adjacency = grown
	}
	return nil
}

// AppendNode adds one node with the given edge list and returns its id.
// Readers use it to grow a graph record by record instead of trusting a
// declared node count up front.
func (g *SparseWeightDirected) AppendNode(edges []Edge) NodeID {
	g.adjacency = append(g.adjacency, edges)
	return NodeID(len(g.adjacency) - 1)
}

// Reserve makes room for at least n nodes without changing NodeCount().
func (g *SparseWeightDirected) Reserve(n int) {
	if n > cap(g.adjacency) {
		grown := make([][]Edge, len(g.adjacency), n)
		copy(grown, g.adjacency)
		g.adjacency = grown
	}
}

// Clone returns a deep copy of g.
// Complexity: O(V + E).
func (g *SparseWeightDirected) Clone() *SparseWeightDirected {
	clone := New(len(g.adjacency))
	for i, edges := range g.adjacency {
		if edges != nil {
			clone.adjacency[i] = append([]Edge(nil), edges...)
		}
	}
	return clone
}

// Validate reports the first edge whose destination is >= NodeCount(),
// scanning nodes and edges in order.
func Validate(g *SparseWeightDirected) error {
	n := int64(len(g.adjacency))
	for from, edges := range g.adjacency {
		for i, e := range edges {
			if int64(e.To) >= n {
				return fmt.Errorf("core: node %d edge %d: destination %d, node count %d: %w",
					from, i, e.To, n, ErrDanglingEdge)
			}
		}
	}
	return nil
}
