// SPDX-License-Identifier: MIT

// Package sparsegraph persists sparse weighted directed graphs in three
// interchangeable on-disk formats.
//
// What is in the box?
//
//	One in-memory model and three codecs that round-trip it losslessly:
//		• core/      - SparseWeightDirected, Edge, NodeID, Equal, FingerprintOf
//		• varint/    - MSB-first 7-bit-group variable-length integers
//		• textfmt/   - human-readable text ("SPARSE_WEIGHT_DIRECTED_GRAPH" + lines)
//		• binfmt/    - fixed-width little-endian binary
//		• encfmt/    - compact binary with per-node cost compression
//		• graphio/   - picks the codec from the file extension (.txt .bin .enc [.zst])
//
// Supporting packages:
//
//	format/      - shared header, type tag, discriminators, errors, options, zstd framing
//	builder/     - seeded fixture generators (RandomSparse, Path, Cycle, Star, Complete)
//	converters/  - gonum multigraph adapters (ToGonum, FromGonum)
//	cmd/swdgraph - CLI: convert, stat, equal, fingerprint, gen
//
// Quick example:
//
//	g := core.New(3)
//	_ = g.AddEdge(0, 1, 5)
//	_ = g.AddEdge(0, 2, 5)
//	_ = graphio.Write(g, "g.enc")       // node 0 stored as SameCost: one cost, two ids
//	h, _ := graphio.Read("g.enc")
//	fmt.Println(core.Equal(g, h))      // true
//
// Equality is per-node multiset equality of (destination, cost) pairs, so a
// graph read back from any format equals the one written even though the
// encoded format may reorder edges within a node.
//
//	go get github.com/katalvlaran/sparsegraph
package sparsegraph
