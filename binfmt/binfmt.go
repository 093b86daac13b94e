// SPDX-License-Identifier: MIT

package binfmt

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/katalvlaran/sparsegraph/core"
	"github.com/katalvlaran/sparsegraph/format"
)

const (
	codecName   = "binfmt"
	methodWrite = "Write"
	methodRead  = "Read"

	// EdgeSize is the on-disk size of one edge.
	EdgeSize = 8
)

// Write stores g in filename, replacing any existing file.
func Write(g *core.SparseWeightDirected, filename string, opts ...format.Option) error {
	o := format.Gather(opts...)
	if o.Strict() {
		if err := core.Validate(g); err != nil {
			return fmt.Errorf("%s: %s(%s): %w", codecName, methodWrite, filename, err)
		}
	}
	if err := format.WriteFile(filename, o, func(w *bufio.Writer) error { return encode(w, g) }); err != nil {
		return fmt.Errorf("%s: %s(%s): %w", codecName, methodWrite, filename, err)
	}
	o.Logger().Debug().
		Str("codec", codecName).
		Str("file", filename).
		Int("nodes", g.NodeCount()).
		Int("edges", g.EdgeCount()).
		Bool("compressed", o.Compress()).
		Msg("graph written")
	return nil
}

// Encode writes g to w without compression framing.
func Encode(w io.Writer, g *core.SparseWeightDirected, opts ...format.Option) error {
	o := format.Gather(opts...)
	if o.Strict() {
		if err := core.Validate(g); err != nil {
			return fmt.Errorf("%s: Encode: %w", codecName, err)
		}
	}
	bw := bufio.NewWriterSize(w, o.BufferSize())
	if err := encode(bw, g); err != nil {
		return fmt.Errorf("%s: Encode: %w", codecName, err)
	}
	return nil
}

func encode(w *bufio.Writer, g *core.SparseWeightDirected) error {
	if err := format.WriteRawHeader(w, format.SparseWeightDirectedTag); err != nil {
		return err
	}
	var word [8]byte
	binary.LittleEndian.PutUint64(word[:], uint64(g.NodeCount()))
	_, _ = w.Write(word[:])

	for id := 0; id < g.NodeCount(); id++ {
		edges := g.Neighbors(core.NodeID(id))
		binary.LittleEndian.PutUint64(word[:], uint64(len(edges)))
		_, _ = w.Write(word[:])
		for _, e := range edges {
			binary.LittleEndian.PutUint32(word[0:4], e.To)
			binary.LittleEndian.PutUint32(word[4:8], uint32(e.Cost))
			if _, err := w.Write(word[:EdgeSize]); err != nil {
				return err
			}
		}
	}
	return w.Flush()
}

// Read parses filename. Any failure aborts the read and returns a nil graph.
func Read(filename string, opts ...format.Option) (*core.SparseWeightDirected, error) {
	o := format.Gather(opts...)
	var g *core.SparseWeightDirected
	err := format.ReadFile(filename, o, func(r *bufio.Reader) error {
		var derr error
		g, derr = decode(r)
		return derr
	})
	if err == nil && o.Strict() {
		err = core.Validate(g)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %s(%s): %w", codecName, methodRead, filename, err)
	}
	o.Logger().Debug().
		Str("codec", codecName).
		Str("file", filename).
		Int("nodes", g.NodeCount()).
		Int("edges", g.EdgeCount()).
		Msg("graph read")
	return g, nil
}

// Decode parses a graph from r. Compression framing is not unwrapped.
func Decode(r io.Reader, opts ...format.Option) (*core.SparseWeightDirected, error) {
	o := format.Gather(opts...)
	g, err := decode(bufio.NewReaderSize(r, o.BufferSize()))
	if err == nil && o.Strict() {
		err = core.Validate(g)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: Decode: %w", codecName, err)
	}
	return g, nil
}

func decode(r *bufio.Reader) (*core.SparseWeightDirected, error) {
	if err := format.ReadRawHeader(r); err != nil {
		return nil, err
	}
	var word [8]byte
	if err := format.ReadFull(r, word[:]); err != nil {
		return nil, fmt.Errorf("node count: %w", err)
	}
	nodeCount := binary.LittleEndian.Uint64(word[:])
	if nodeCount > core.MaxNodeCount {
		return nil, fmt.Errorf("node count %d: %w", nodeCount, format.ErrValueRange)
	}

	g := core.New(0)
	g.Reserve(format.Prealloc(nodeCount))
	for id := uint64(0); id < nodeCount; id++ {
		if err := format.ReadFull(r, word[:]); err != nil {
			return nil, fmt.Errorf("node %d: edge list size: %w", id, err)
		}
		size := binary.LittleEndian.Uint64(word[:])
		var edges []core.Edge
		if size > 0 {
			edges = make([]core.Edge, 0, format.Prealloc(size))
		}
		for i := uint64(0); i < size; i++ {
			if err := format.ReadFull(r, word[:EdgeSize]); err != nil {
				return nil, fmt.Errorf("node %d edge %d: %w", id, i, err)
			}
			edges = append(edges, core.Edge{
				To:   binary.LittleEndian.Uint32(word[0:4]),
				Cost: int32(binary.LittleEndian.Uint32(word[4:8])),
			})
		}
		g.AppendNode(edges)
	}
	return g, nil
}
