// SPDX-License-Identifier: MIT

package textfmt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/sparsegraph/core"
	"github.com/katalvlaran/sparsegraph/format"
)

const (
	codecName   = "textfmt"
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
	err := format.WriteFile(filename, o, func(w *bufio.Writer) error {
		return encode(w, g)
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
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%s: Encode: %w", codecName, err)
	}
	return nil
}

func encode(w *bufio.Writer, g *core.SparseWeightDirected) error {
	// bufio.Writer keeps the first error sticky; checking once at the end is enough.
	scratch := make([]byte, 0, 32)

	_, _ = w.WriteString(format.Header)
	_ = w.WriteByte('\n')
	_ = w.WriteByte(byte(format.SparseWeightDirectedTag))
	_ = w.WriteByte(' ')
	_, _ = w.Write(strconv.AppendInt(scratch[:0], int64(g.NodeCount()), 10))
	_ = w.WriteByte('\n')

	for id := 0; id < g.NodeCount(); id++ {
		edges := g.Neighbors(core.NodeID(id))
		line := strconv.AppendInt(scratch[:0], int64(len(edges)), 10)
		for _, e := range edges {
			line = append(line, ' ')
			line = strconv.AppendUint(line, uint64(e.To), 10)
			line = append(line, ' ')
			line = strconv.AppendInt(line, int64(e.Cost), 10)
		}
		line = append(line, '\n')
		if _, err := w.Write(line); err != nil {
			return err
		}
		scratch = line[:0]
	}
	return w.Flush()
}
