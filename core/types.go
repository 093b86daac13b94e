// SPDX-License-Identifier: MIT
// Package: sparsegraph/core
//
// types.go - the SparseWeightDirected model, its Edge and NodeID types,
// sentinel errors and constructors.
//
// Model:
//   - Nodes are dense ids 0..NodeCount()-1; the node count is explicit.
//   - Each node owns one ordered edge list; order carries no meaning for Equal.
//   - Parallel edges and self-loops are allowed.
//   - Destinations are not checked on insertion; Validate reports dangling edges.
//
// Concurrency:
//   - No internal locking. Concurrent readers are safe; any writer needs
//     exclusive access.
//
// Errors:
//
//	ErrNodeOutOfRange - a source node id >= NodeCount().
//	ErrNegativeSize   - Resize called with a negative count.
//	ErrDanglingEdge   - Validate found a destination >= NodeCount().

package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrNodeOutOfRange indicates an operation referenced a node id >= NodeCount().
	ErrNodeOutOfRange = errors.New("core: node id out of range")

	// ErrNegativeSize indicates a negative node count.
	ErrNegativeSize = errors.New("core: negative node count")

	// ErrDanglingEdge indicates an edge whose destination is not a node of the graph.
	ErrDanglingEdge = errors.New("core: edge destination out of range")
)

// NodeID is a dense node identifier in [0, NodeCount()).
type NodeID = uint32

// MaxNodeCount is the largest node count addressable by NodeID.
const MaxNodeCount = 1 << 32

// Edge is one outgoing arc of a node.
type Edge struct {
	// To is the destination node id.
	To NodeID

	// Cost is the signed edge weight.
	Cost int32
}

// SparseWeightDirected is a directed graph with a fixed node count and one
// edge list per node.
type SparseWeightDirected struct {
	adjacency [][]Edge

	// Reserved for optional string naming of nodes; no codec reads or writes them.
	nodeNameTable []string
	nodeNameIndex map[string]NodeID
}

// New returns a graph with nodeCount nodes and no edges.
// Negative counts are treated as zero.
func New(nodeCount int) *SparseWeightDirected {
	if nodeCount < 0 {
		nodeCount = 0
	}
	return &SparseWeightDirected{adjacency: make([][]Edge, nodeCount)}
}

// FromAdjacency builds a graph that takes ownership of adjacency.
// len(adjacency) becomes the node count.
func FromAdjacency(adjacency [][]Edge) *SparseWeightDirected {
	return &SparseWeightDirected{adjacency: adjacency}
}
