// SPDX-License-Identifier: MIT

package encfmt

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/katalvlaran/sparsegraph/core"
	"github.com/katalvlaran/sparsegraph/format"
	"github.com/katalvlaran/sparsegraph/varint"
)

const (
	codecName   = "encfmt"
	methodWrite = "Write"
	methodRead  = "Read"
)

// Write stores g in filename, replacing any existing file.
func Write(g *core.SparseWeightDirected, filename string, opts ...format.Option) error {
	o := format.Gather(opts...)
	if o.Strict() {
		if err := core.Validate(g); err != nil {
			return fmt.Errorf("%s: %s(%s): %w", codecName, methodWrite, filename, err)
		}
	}
	var stats Stats
	err := format.WriteFile(filename, o, func(w *bufio.Writer) error {
		var eerr error
		stats, eerr = encode(w, g)
		return eerr
	})
	if err != nil {
		return fmt.Errorf("%s: %s(%s): %w", codecName, methodWrite, filename, err)
	}
	o.Logger().Debug().
		Str("codec", codecName).
		Str("file", filename).
		Int("nodes", g.NodeCount()).
		Int("edges", g.EdgeCount()).
		Bool("compressed", o.Compress()).
		Object("lists", stats).
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
	if _, err := encode(bufio.NewWriterSize(w, o.BufferSize()), g); err != nil {
		return fmt.Errorf("%s: Encode: %w", codecName, err)
	}
	return nil
}

// encoder batches small writes through a scratch buffer. bufio.Writer errors
// are sticky, so only the final Flush result matters.
type encoder struct {
	w       *bufio.Writer
	scratch []byte
	stats   Stats
}

func (e *encoder) uvarint(x uint64) {
	e.scratch = varint.Append(e.scratch[:0], x)
	_, _ = e.w.Write(e.scratch)
}

func (e *encoder) cost(c int32) {
	e.scratch = binary.LittleEndian.AppendUint32(e.scratch[:0], uint32(c))
	_, _ = e.w.Write(e.scratch)
}

func (e *encoder) tag(d format.Discriminator) { _ = e.w.WriteByte(byte(d)) }

func encode(w *bufio.Writer, g *core.SparseWeightDirected) (Stats, error) {
	e := &encoder{w: w, scratch: make([]byte, 0, varint.MaxLen)}
	if err := format.WriteRawHeader(w, format.SparseWeightDirectedTag); err != nil {
		return e.stats, err
	}
	e.uvarint(uint64(g.NodeCount()))
	for id := 0; id < g.NodeCount(); id++ {
		e.edgeList(g.Neighbors(core.NodeID(id)))
	}
	return e.stats, w.Flush()
}

func (e *encoder) edgeList(edges []core.Edge) {
	e.uvarint(uint64(len(edges)))
	if len(edges) == 0 {
		e.stats.Empty++
		return
	}
	d, b := plan(edges)
	e.tag(d)
	e.stats.add(d)

	switch d {
	case format.NoCost:
		e.destinations(edges)
	case format.SameCost:
		e.cost(b.costs[0])
		e.destinations(edges)
	case format.CostByGroup:
		for i := 0; i < 2; i++ {
			c := b.costs[i]
			e.uvarint(uint64(b.counts[i]))
			sub := sharedCostDiscriminator(c)
			e.tag(sub)
			if sub == format.SameCost {
				e.cost(c)
			}
			for _, edge := range edges {
				if edge.Cost == c {
					e.uvarint(uint64(edge.To))
				}
			}
		}
	default: // UniqueCosts
		for _, edge := range edges {
			e.uvarint(uint64(edge.To))
			e.cost(edge.Cost)
		}
	}
}

func (e *encoder) destinations(edges []core.Edge) {
	for _, edge := range edges {
		e.uvarint(uint64(edge.To))
	}
}
