// SPDX-License-Identifier: MIT

package core

import (
	"encoding/binary"
	"encoding/hex"
	"slices"

	"lukechampine.com/blake3"
)

// FingerprintSize is the digest length in bytes.
const FingerprintSize = 32

// Fingerprint is an order-independent structural digest of a graph.
type Fingerprint [FingerprintSize]byte

// String returns the lowercase hex form.
func (f Fingerprint) String() string { return hex.EncodeToString(f[:]) }

// FingerprintOf hashes the canonical form of g: node count, then per node its
// degree followed by its edges sorted with CompareEdges. Graphs that are Equal
// produce the same Fingerprint.
func FingerprintOf(g *SparseWeightDirected) Fingerprint {
	h := blake3.New(FingerprintSize, nil)
	var word [8]byte
	put := func(v uint64) {
		binary.LittleEndian.PutUint64(word[:], v)
		_, _ = h.Write(word[:])
	}

	put(uint64(g.NodeCount()))
	var sorted []Edge
	for _, edges := range g.adjacency {
		put(uint64(len(edges)))
		sorted = append(sorted[:0], edges...)
		slices.SortFunc(sorted, CompareEdges)
		for _, e := range sorted {
			put(uint64(e.To)<<32 | uint64(uint32(e.Cost)))
		}
	}

	var f Fingerprint
	h.Sum(f[:0])
	return f
}
