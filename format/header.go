// SPDX-License-Identifier: MIT

package format

import (
	"bytes"
	"fmt"
	"io"
)

// WriteRawHeader writes the raw header bytes followed by the type tag.
func WriteRawHeader(w io.Writer, tag TypeTag) error {
	buf := append(RawHeader(), byte(tag))
	_, err := w.Write(buf)
	return err
}

// ReadRawHeader consumes the raw header and type tag, rejecting anything but
// the expected literal and SparseWeightDirectedTag.
func ReadRawHeader(r io.Reader) error {
	want := RawHeader()
	got := make([]byte, len(want)+1)
	if err := ReadFull(r, got); err != nil {
		return fmt.Errorf("header: %w", err)
	}
	if !bytes.Equal(got[:len(want)], want) {
		return fmt.Errorf("header %q: %w", bytes.TrimRight(got[:len(want)], "\x00"), ErrHeaderMismatch)
	}
	if err := CheckTag(TypeTag(got[len(want)])); err != nil {
		return err
	}
	return nil
}

// CheckTag rejects any tag other than SparseWeightDirectedTag.
func CheckTag(tag TypeTag) error {
	if tag != SparseWeightDirectedTag {
		return fmt.Errorf("tag %q, want %q: %w", byte(tag), byte(SparseWeightDirectedTag), ErrTypeTagMismatch)
	}
	return nil
}
