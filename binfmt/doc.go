// SPDX-License-Identifier: MIT

// Package binfmt reads and writes a core.SparseWeightDirected as raw
// fixed-width fields.
//
// Layout (all integers little-endian):
//
//	"SPARSE_WEIGHT_DIRECTED_GRAPH" 0x00   header with terminator
//	'1'                                   type tag
//	uint64                                node count
//	per node, in id order:
//	  uint64                              edge list size
//	  size × { uint32 destination, int32 cost }
//
// There are no delimiters, so corruption surfaces as a header or tag
// mismatch, or as io.ErrUnexpectedEOF when the data ends early.
package binfmt
