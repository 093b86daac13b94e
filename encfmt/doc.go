// SPDX-License-Identifier: MIT

// Package encfmt reads and writes a core.SparseWeightDirected in the compact
// "encoded" binary format: VarInt (package varint) counts and destinations,
// plus a per-edge-list sub-encoding that stores shared costs once.
//
// Layout (raw costs are int32 little-endian):
//
//	"SPARSE_WEIGHT_DIRECTED_GRAPH" 0x00   header with terminator
//	'1'                                   type tag
//	VarInt                                node count
//	per node, in id order:
//	  VarInt size
//	  size == 0 → nothing else
//	  byte discriminator, then:
//	    NoCost       size × VarInt dst
//	    SameCost     int32 cost, size × VarInt dst
//	    UniqueCosts  size × { VarInt dst, int32 cost }
//	    CostByGroup  groups until their sizes sum to size, each:
//	                 VarInt n, byte NoCost|SameCost, [int32 cost], n × VarInt dst
//
// Selection (Classify), evaluated in order:
//
//  1. empty list           → size 0 only
//  2. exactly one edge     → UniqueCosts
//  3. one shared cost      → NoCost if it is 0, else SameCost
//  4. exactly two costs,
//     each on ≥ 2 edges    → CostByGroup
//  5. anything else        → UniqueCosts
//
// The heuristic is greedy and only recognizes uniform and bimodal cost
// patterns; lists with three or more distinct costs always fall back to
// UniqueCosts even when a grouping would be smaller. The thresholds are part
// of the format and must not change.
//
// CostByGroup groups are written in ascending cost order, so encoding the same
// graph twice yields identical bytes. Readers accept groups in any order. Edge
// order inside a node may differ after a round-trip; core.Equal is the contract.
package encfmt
