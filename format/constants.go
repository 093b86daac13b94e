// SPDX-License-Identifier: MIT

package format

import "fmt"

// Header is the literal that opens every graph file.
const Header = "SPARSE_WEIGHT_DIRECTED_GRAPH"

// headerTerminator follows Header in the raw (binary/encoded) layouts.
const headerTerminator = 0x00

// RawHeader returns Header followed by its terminator byte.
func RawHeader() []byte {
	return append([]byte(Header), headerTerminator)
}

// TypeTag identifies the graph kind stored in a file.
type TypeTag byte

// SparseWeightDirectedTag is the only graph kind this module reads and writes.
const SparseWeightDirectedTag TypeTag = '1'

// Discriminator selects the sub-encoding of one edge list in the encoded format.
// The numeric values are part of the wire format.
type Discriminator uint8

const (
	// NoCost: every edge costs 0; only destinations are stored.
	NoCost Discriminator = 0
	// SameCost: every edge shares one non-zero cost, stored once.
	SameCost Discriminator = 1
	// UniqueCosts: destination and cost are stored per edge.
	UniqueCosts Discriminator = 2
	// CostByGroup: two cost buckets, each written as NoCost or SameCost.
	CostByGroup Discriminator = 3
)

// Valid reports whether d is one of the four known discriminators.
func (d Discriminator) Valid() bool { return d <= CostByGroup }

// String returns the discriminator name.
func (d Discriminator) String() string {
	switch d {
	case NoCost:
		return "NoCost"
	case SameCost:
		return "SameCost"
	case UniqueCosts:
		return "UniqueCosts"
	case CostByGroup:
		return "CostByGroup"
	default:
		return fmt.Sprintf("Discriminator(%d)", uint8(d))
	}
}
