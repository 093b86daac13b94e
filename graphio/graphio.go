// SPDX-License-Identifier: MIT

// Package graphio dispatches graph reads and writes to the text, binary or
// encoded codec based on the file extension.
//
//	.txt  → textfmt
//	.bin  → binfmt
//	.enc  → encfmt
//
// A trailing ".zst" (e.g. "roads.enc.zst") selects the codec from the inner
// extension and turns on zstd framing for writes. Reads always detect framing.
package graphio

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/sparsegraph/binfmt"
	"github.com/katalvlaran/sparsegraph/core"
	"github.com/katalvlaran/sparsegraph/encfmt"
	"github.com/katalvlaran/sparsegraph/format"
	"github.com/katalvlaran/sparsegraph/textfmt"
)

// ErrUnknownFormat indicates a filename whose extension maps to no codec.
var ErrUnknownFormat = errors.New("graphio: unknown graph format")

// Kind names one of the on-disk encodings.
type Kind int

const (
	// Text is the whitespace-delimited ASCII format.
	Text Kind = iota + 1
	// Binary is the fixed-width raw format.
	Binary
	// Encoded is the VarInt-based compact format.
	Encoded
)

const compressedExt = ".zst"

var kindByExt = map[string]Kind{
	".txt": Text,
	".bin": Binary,
	".enc": Encoded,
}

// String returns the kind name as accepted by ParseKind.
func (k Kind) String() string {
	switch k {
	case Text:
		return "text"
	case Binary:
		return "binary"
	case Encoded:
		return "encoded"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps "text", "binary" or "encoded" to a Kind.
func ParseKind(s string) (Kind, error) {
	for _, k := range []Kind{Text, Binary, Encoded} {
		if strings.EqualFold(s, k.String()) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("graphio: kind %q: %w", s, ErrUnknownFormat)
}

// KindOf infers the codec from filename and reports whether the name carries
// the compressed suffix.
func KindOf(filename string) (kind Kind, compressed bool, err error) {
	name := strings.ToLower(filename)
	if strings.HasSuffix(name, compressedExt) {
		compressed = true
		name = strings.TrimSuffix(name, compressedExt)
	}
	kind, ok := kindByExt[filepath.Ext(name)]
	if !ok {
		return 0, compressed, fmt.Errorf("graphio: %s: %w", filename, ErrUnknownFormat)
	}
	return kind, compressed, nil
}

// Write stores g using the codec implied by filename.
func Write(g *core.SparseWeightDirected, filename string, opts ...format.Option) error {
	kind, compressed, err := KindOf(filename)
	if err != nil {
		return err
	}
	if compressed {
		opts = append([]format.Option{format.WithCompression(true)}, opts...)
	}
	return WriteAs(g, filename, kind, opts...)
}

// WriteAs stores g with an explicit codec, ignoring the extension.
func WriteAs(g *core.SparseWeightDirected, filename string, kind Kind, opts ...format.Option) error {
	switch kind {
	case Text:
		return textfmt.Write(g, filename, opts...)
	case Binary:
		return binfmt.Write(g, filename, opts...)
	case Encoded:
		return encfmt.Write(g, filename, opts...)
	default:
		return fmt.Errorf("graphio: %s: %w", kind, ErrUnknownFormat)
	}
}

// Read loads filename using the codec implied by its extension.
func Read(filename string, opts ...format.Option) (*core.SparseWeightDirected, error) {
	kind, _, err := KindOf(filename)
	if err != nil {
		return nil, err
	}
	return ReadAs(filename, kind, opts...)
}

// ReadAs loads filename with an explicit codec, ignoring the extension.
func ReadAs(filename string, kind Kind, opts ...format.Option) (*core.SparseWeightDirected, error) {
	switch kind {
	case Text:
		return textfmt.Read(filename, opts...)
	case Binary:
		return binfmt.Read(filename, opts...)
	case Encoded:
		return encfmt.Read(filename, opts...)
	default:
		return nil, fmt.Errorf("graphio: %s: %w", kind, ErrUnknownFormat)
	}
}
