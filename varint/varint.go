// SPDX-License-Identifier: MIT

package varint

import (
	"errors"
	"fmt"
	"io"
	"math/bits"
)

const (
	// MaxLen is the maximum number of bytes a uint64 occupies (ceil(64/7)).
	MaxLen = 10

	groupBits    = 7
	groupMask    = 0x7F
	continuation = 0x80
)

// ErrOverflow indicates a VarInt sequence that does not fit in 64 bits.
var ErrOverflow = errors.New("varint: value overflows 64 bits")

// Buffer holds one encoded value. Only the first Len bytes are meaningful.
type Buffer struct {
	data [MaxLen]byte
	n    int
}

// Bytes returns the encoded bytes. The slice aliases the buffer.
func (b *Buffer) Bytes() []byte { return b.data[:b.n] }

// Len returns the number of encoded bytes.
func (b *Buffer) Len() int { return b.n }

// BytesNeeded reports how many bytes Encode produces for x.
// Zero is special-cased: LeadingZeros64(0) is meaningless for group counting.
func BytesNeeded(x uint64) int {
	if x == 0 {
		return 1
	}
	bitLen := 64 - bits.LeadingZeros64(x)
	return (bitLen + groupBits - 1) / groupBits
}

// Encode returns the encoded form of x in a fixed-capacity Buffer.
func Encode(x uint64) Buffer {
	var b Buffer
	if x == 0 {
		b.n = 1 // data[0] is already 0x00
		return b
	}
	n := BytesNeeded(x)
	for j := 0; j < n; j++ {
		shift := uint((n - 1 - j) * groupBits)
		b.data[j] = byte((x>>shift)&groupMask) | continuation
	}
	b.data[n-1] ^= continuation
	b.n = n
	return b
}

// Append appends the encoded form of x to dst and returns the extended slice.
func Append(dst []byte, x uint64) []byte {
	b := Encode(x)
	return append(dst, b.Bytes()...)
}

// Decode parses one value from the front of src and returns it together with
// the number of bytes consumed. A sequence that ends without a terminating
// byte yields io.ErrUnexpectedEOF.
func Decode(src []byte) (uint64, int, error) {
	var r uint64
	for i, c := range src {
		if i == MaxLen || r>>(64-groupBits) != 0 {
			return 0, 0, ErrOverflow
		}
		r = r<<groupBits | uint64(c&groupMask)
		if c&continuation == 0 {
			return r, i + 1, nil
		}
	}
	return 0, 0, io.ErrUnexpectedEOF
}

// Write encodes x to w.
func Write(w io.Writer, x uint64) error {
	b := Encode(x)
	if _, err := w.Write(b.Bytes()); err != nil {
		return fmt.Errorf("varint: write: %w", err)
	}
	return nil
}

// Read decodes one value from r, consuming exactly the bytes of that value.
// End of input before the first byte returns io.EOF; end of input inside a
// sequence returns io.ErrUnexpectedEOF.
func Read(r io.ByteReader) (uint64, error) {
	var acc uint64
	for i := 0; ; i++ {
		c, err := r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) && i > 0 {
				return 0, io.ErrUnexpectedEOF
			}
			return 0, err
		}
		if i == MaxLen || acc>>(64-groupBits) != 0 {
			return 0, ErrOverflow
		}
		acc = acc<<groupBits | uint64(c&groupMask)
		if c&continuation == 0 {
			return acc, nil
		}
	}
}
