// SPDX-License-Identifier: MIT

package format

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
)

// zstdMagic opens every zstd frame.
var zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}

// WriteFile creates filename, hands fn a buffered writer and closes everything
// in order (buffer, compressor, file) whether or not fn succeeds. The first
// error wins. On failure filename is removed, so no truncated file remains.
func WriteFile(filename string, o Options, fn func(w *bufio.Writer) error) (err error) {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
		if err != nil {
			_ = os.Remove(filename)
		}
	}()

	w, finish, err := Wrap(f, o.bufferSize, o.compress)
	if err != nil {
		return err
	}
	err = fn(w)
	if ferr := finish(); err == nil {
		err = ferr
	}
	return err
}

// ReadFile opens filename, unwraps zstd framing when present and hands fn a
// buffered reader. The file is closed on every path.
func ReadFile(filename string, o Options, fn func(r *bufio.Reader) error) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	r, closeFn, err := Unwrap(f, o.bufferSize)
	if err != nil {
		return err
	}
	defer closeFn()
	return fn(r)
}

// Unwrap returns a buffered reader over src that transparently decompresses a
// zstd stream. closeFn releases decoder resources and is always non-nil.
func Unwrap(src io.Reader, size int) (*bufio.Reader, func(), error) {
	br := bufio.NewReaderSize(src, size)
	magic, err := br.Peek(len(zstdMagic))
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, func() {}, err
	}
	if !bytes.Equal(magic, zstdMagic) {
		return br, func() {}, nil
	}
	dec, err := zstd.NewReader(br)
	if err != nil {
		return nil, func() {}, fmt.Errorf("format: zstd reader: %w", err)
	}
	return bufio.NewReaderSize(dec, size), dec.Close, nil
}

// Wrap returns a buffered writer over dst, zstd framed when compress is set.
// The returned close function flushes the buffer and finishes the frame; it
// does not close dst.
func Wrap(dst io.Writer, size int, compress bool) (*bufio.Writer, func() error, error) {
	if !compress {
		w := bufio.NewWriterSize(dst, size)
		return w, w.Flush, nil
	}
	enc, err := zstd.NewWriter(dst)
	if err != nil {
		return nil, nil, fmt.Errorf("format: zstd writer: %w", err)
	}
	w := bufio.NewWriterSize(enc, size)
	return w, func() error {
		if err := w.Flush(); err != nil {
			_ = enc.Close()
			return err
		}
		return enc.Close()
	}, nil
}
