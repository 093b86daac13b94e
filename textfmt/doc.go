// SPDX-License-Identifier: MIT

// Package textfmt reads and writes a core.SparseWeightDirected as
// whitespace-delimited ASCII.
//
// Layout:
//
//	SPARSE_WEIGHT_DIRECTED_GRAPH
//	1 <nodeCount>
//	<size> <dst> <cost> <dst> <cost> ...     (node 0)
//	0                                        (a node without edges)
//	...                                      (one line per node, in id order)
//
// The header line must match exactly (a trailing '\r' is tolerated). After it
// the reader is token based, so any run of spaces, tabs or newlines separates
// numbers. Tag mismatch, non-numeric tokens and truncated input abort the read;
// no partial graph is returned.
package textfmt
