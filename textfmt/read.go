// SPDX-License-Identifier: MIT

package textfmt

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/sparsegraph/core"
	"github.com/katalvlaran/sparsegraph/format"
)

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
	t := newTokenizer(r)
	if err := t.headerLine(); err != nil {
		return nil, err
	}

	tag, err := t.next()
	if err != nil {
		return nil, fmt.Errorf("type tag: %w", err)
	}
	if len(tag) != 1 {
		return nil, fmt.Errorf("type tag %q: %w", tag, format.ErrTypeTagMismatch)
	}
	if err = format.CheckTag(format.TypeTag(tag[0])); err != nil {
		return nil, err
	}

	nodeCount, err := t.uint("node count", 64)
	if err != nil {
		return nil, err
	}
	if nodeCount > core.MaxNodeCount {
		return nil, fmt.Errorf("node count %d: %w", nodeCount, format.ErrValueRange)
	}

	g := core.New(0)
	g.Reserve(format.Prealloc(nodeCount))
	for id := uint64(0); id < nodeCount; id++ {
		size, err := t.uint("edge list size", 64)
		if err != nil {
			return nil, fmt.Errorf("node %d: %w", id, err)
		}
		var edges []core.Edge
		if size > 0 {
			edges = make([]core.Edge, 0, format.Prealloc(size))
		}
		for i := uint64(0); i < size; i++ {
			to, err := t.uint("destination", 32)
			if err != nil {
				return nil, fmt.Errorf("node %d edge %d: %w", id, i, err)
			}
			cost, err := t.int("cost", 32)
			if err != nil {
				return nil, fmt.Errorf("node %d edge %d: %w", id, i, err)
			}
			edges = append(edges, core.Edge{To: core.NodeID(to), Cost: int32(cost)})
		}
		g.AppendNode(edges)
	}
	return g, nil
}
