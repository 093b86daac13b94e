// SPDX-License-Identifier: MIT

// Package core defines the in-memory sparse weighted directed graph shared by
// every codec in this module, plus the structural equality oracle used to
// validate round-trips.
//
// Model:
//
//   - Nodes are dense ids in [0, NodeCount()). Ids are never reused or renumbered.
//   - adjacency[i] is the outgoing edge list of node i, in insertion order.
//   - An Edge is (To, Cost) with a signed 32-bit cost.
//   - Self-loops and repeated destinations are legal.
//   - Destinations are not required to be < NodeCount(); Validate reports the
//     first that is not, and the codecs only reject them when asked to.
//
// Equality:
//
//	Equal(a, b) compares per-node edge multisets. Storage order is irrelevant,
//	so a graph written by any codec and read back is Equal to the original even
//	when the codec regroups edges.
//
// Fingerprint(g) is a BLAKE3 digest over the same canonical form, so Equal
// graphs always share a fingerprint.
//
// Concurrency: a SparseWeightDirected is a plain aggregate with no locking.
// Share it read-only or guard it externally.
//
// Errors:
//
//	ErrNodeOutOfRange - a node id is >= NodeCount().
//	ErrNegativeSize   - a negative node count was requested.
//	ErrDanglingEdge   - an edge destination is >= NodeCount().
package core
