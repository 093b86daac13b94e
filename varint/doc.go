// SPDX-License-Identifier: MIT

// Package varint implements the variable-length unsigned integer codec used by
// the encoded graph format.
//
// Layout:
//
//	value 0        → 0x00
//	value x != 0   → n = ceil(bitlen(x)/7) groups of 7 bits, most significant
//	                 group first; every byte but the last carries 0x80.
//
// This is a big-endian (MSB-first) group order. It is NOT LEB128 and is not
// interchangeable with encoding/binary.PutUvarint: 128 encodes as 0x81 0x00
// here, while LEB128 produces 0x80 0x01.
//
// Boundary lengths:
//
//	0 … 127                  1 byte
//	128 … 16383              2 bytes
//	16384 … 2097151          3 bytes
//	2097152 … 268435455      4 bytes
//	…one byte per additional 7 bits, up to MaxLen for the full uint64 range.
//
// Decoding is streamed: Read pulls one byte at a time from an io.ByteReader and
// stops on the first byte whose continuation bit is clear, so no length prefix
// is stored.
//
// Errors:
//
//	ErrOverflow - a sequence is longer than MaxLen bytes or exceeds 64 bits.
package varint
