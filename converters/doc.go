// SPDX-License-Identifier: MIT

// Package converters provides two-way adapters between
// core.SparseWeightDirected and gonum's multigraph representation
// (gonum.org/v1/gonum/graph/multi), so graphs loaded by any codec can be fed
// to gonum algorithms and results built with gonum can be persisted.
//
// Mapping:
//   - node id i          ↔ gonum node with ID() == i
//   - edge (i → j, cost) ↔ one weighted line i → j with Weight() == cost
//   - parallel edges and self-loops map to parallel lines and loop lines
//
// Errors:
//
//	ErrDanglingEdge - ToGonum on a graph with destinations >= NodeCount().
//	ErrBadNodeID    - FromGonum saw a negative or over-wide node id.
//	ErrBadWeight    - FromGonum saw a weight that is not an int32 integer.
package converters
