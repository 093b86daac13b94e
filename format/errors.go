// SPDX-License-Identifier: MIT

package format

import (
	"errors"
	"io"
)

// Sentinel errors shared by the codecs. Callers branch with errors.Is.
var (
	// ErrHeaderMismatch indicates the file does not start with Header.
	ErrHeaderMismatch = errors.New("format: header mismatch")

	// ErrTypeTagMismatch indicates a format-type tag other than SparseWeightDirectedTag.
	ErrTypeTagMismatch = errors.New("format: type tag mismatch")

	// ErrBadDiscriminator indicates an unknown edge-list discriminator, or a
	// CostByGroup sub-group that is neither NoCost nor SameCost.
	ErrBadDiscriminator = errors.New("format: invalid discriminator")

	// ErrMalformedNumber indicates a text token that is not the expected integer.
	ErrMalformedNumber = errors.New("format: malformed number")

	// ErrGroupOverflow indicates CostByGroup sub-groups declaring more edges
	// than the edge list holds.
	ErrGroupOverflow = errors.New("format: cost groups exceed edge list size")

	// ErrValueRange indicates a decoded value that does not fit its in-memory type.
	ErrValueRange = errors.New("format: value out of range")
)

// NoEOF turns a clean io.EOF into io.ErrUnexpectedEOF. Codecs use it wherever
// more data is required, so truncation always reports the same I/O error.
func NoEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}

// ReadFull fills buf from r, reporting any shortfall as io.ErrUnexpectedEOF.
func ReadFull(r io.Reader, buf []byte) error {
	_, err := io.ReadFull(r, buf)
	return NoEOF(err)
}
