// SPDX-License-Identifier: MIT

// Package format holds what the text, binary and encoded graph codecs share:
// the header literal, the format-type tag, the encoded-format discriminators,
// sentinel errors, functional options and the file plumbing that guarantees a
// handle is closed on every exit path.
//
// Wire constants:
//
//	Header          "SPARSE_WEIGHT_DIRECTED_GRAPH"
//	Raw header      Header + 0x00 (binary and encoded formats)
//	Type tag        '1' (sparse weight directed)
//	Fixed width     little-endian
//
// Compression:
//
//	WithCompression(true) frames the whole file in zstd. Readers detect the
//	zstd magic and unwrap transparently, so the option only affects writes.
//
// Error classes:
//
//	Format: ErrHeaderMismatch, ErrTypeTagMismatch, ErrBadDiscriminator,
//	        ErrMalformedNumber, ErrGroupOverflow, ErrValueRange
//	I/O:    io.ErrUnexpectedEOF (wrapped) and OS errors from open/create
//	Range:  core.ErrDanglingEdge under WithStrictDestinations(true)
//
// Every error is wrapped with "<codec>: <operation>: ..." context and keeps its
// sentinel reachable through errors.Is.
package format
