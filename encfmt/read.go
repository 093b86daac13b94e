// SPDX-License-Identifier: MIT

package encfmt

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/katalvlaran/sparsegraph/core"
	"github.com/katalvlaran/sparsegraph/format"
	"github.com/katalvlaran/sparsegraph/varint"
)

// Read parses filename. Any failure aborts the read and returns a nil graph.
func Read(filename string, opts ...format.Option) (*core.SparseWeightDirected, error) {
	g, _, err := ReadStats(filename, opts...)
	return g, err
}

// ReadStats is Read that also reports how the edge lists were encoded.
func ReadStats(filename string, opts ...format.Option) (*core.SparseWeightDirected, Stats, error) {
	o := format.Gather(opts...)
	var (
		g     *core.SparseWeightDirected
		stats Stats
	)
	err := format.ReadFile(filename, o, func(r *bufio.Reader) error {
		var derr error
		g, stats, derr = decode(r)
		return derr
	})
	if err == nil && o.Strict() {
		err = core.Validate(g)
	}
	if err != nil {
		return nil, Stats{}, fmt.Errorf("%s: %s(%s): %w", codecName, methodRead, filename, err)
	}
	o.Logger().Debug().
		Str("codec", codecName).
		Str("file", filename).
		Int("nodes", g.NodeCount()).
		Int("edges", g.EdgeCount()).
		Object("lists", stats).
		Msg("graph read")
	return g, stats, nil
}

// Decode parses a graph from r. Compression framing is not unwrapped.
func Decode(r io.Reader, opts ...format.Option) (*core.SparseWeightDirected, error) {
	o := format.Gather(opts...)
	g, _, err := decode(bufio.NewReaderSize(r, o.BufferSize()))
	if err == nil && o.Strict() {
		err = core.Validate(g)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: Decode: %w", codecName, err)
	}
	return g, nil
}

// decoder pulls fields off a buffered stream. Every read needs data, so a
// clean EOF is reported as io.ErrUnexpectedEOF.
type decoder struct {
	r     *bufio.Reader
	word  [4]byte
	stats Stats
}

func (d *decoder) uvarint() (uint64, error) {
	v, err := varint.Read(d.r)
	return v, format.NoEOF(err)
}

func (d *decoder) destination() (core.NodeID, error) {
	v, err := d.uvarint()
	if err != nil {
		return 0, err
	}
	if v > math.MaxUint32 {
		return 0, fmt.Errorf("destination %d: %w", v, format.ErrValueRange)
	}
	return core.NodeID(v), nil
}

func (d *decoder) cost() (int32, error) {
	if err := format.ReadFull(d.r, d.word[:]); err != nil {
		return 0, err
	}
	return int32(binary.LittleEndian.Uint32(d.word[:])), nil
}

func (d *decoder) tag() (format.Discriminator, error) {
	b, err := d.r.ReadByte()
	return format.Discriminator(b), format.NoEOF(err)
}

func decode(r *bufio.Reader) (*core.SparseWeightDirected, Stats, error) {
	d := &decoder{r: r}
	if err := format.ReadRawHeader(r); err != nil {
		return nil, Stats{}, err
	}
	nodeCount, err := d.uvarint()
	if err != nil {
		return nil, Stats{}, fmt.Errorf("node count: %w", err)
	}
	if nodeCount > core.MaxNodeCount {
		return nil, Stats{}, fmt.Errorf("node count %d: %w", nodeCount, format.ErrValueRange)
	}

	g := core.New(0)
	g.Reserve(format.Prealloc(nodeCount))
	for id := uint64(0); id < nodeCount; id++ {
		edges, err := d.edgeList()
		if err != nil {
			return nil, Stats{}, fmt.Errorf("node %d: %w", id, err)
		}
		g.AppendNode(edges)
	}
	return g, d.stats, nil
}

func (d *decoder) edgeList() ([]core.Edge, error) {
	size, err := d.uvarint()
	if err != nil {
		return nil, fmt.Errorf("edge list size: %w", err)
	}
	if size == 0 {
		d.stats.Empty++
		return nil, nil
	}
	disc, err := d.tag()
	if err != nil {
		return nil, fmt.Errorf("discriminator: %w", err)
	}
	edges := make([]core.Edge, 0, format.Prealloc(size))

	switch disc {
	case format.NoCost, format.SameCost:
		edges, err = d.sharedCost(edges, disc, size)
	case format.UniqueCosts:
		for i := uint64(0); i < size && err == nil; i++ {
			var e core.Edge
			if e.To, err = d.destination(); err == nil {
				e.Cost, err = d.cost()
			}
			edges = append(edges, e)
		}
	case format.CostByGroup:
		edges, err = d.groups(edges, size)
	default:
		return nil, fmt.Errorf("discriminator %d: %w", uint8(disc), format.ErrBadDiscriminator)
	}
	if err != nil {
		return nil, fmt.Errorf("%s list: %w", disc, err)
	}
	d.stats.add(disc)
	return edges, nil
}

// sharedCost appends n edges that all carry one cost: zero for NoCost, or a
// raw cost read first for SameCost.
func (d *decoder) sharedCost(edges []core.Edge, disc format.Discriminator, n uint64) ([]core.Edge, error) {
	var c int32
	if disc == format.SameCost {
		var err error
		if c, err = d.cost(); err != nil {
			return nil, fmt.Errorf("cost: %w", err)
		}
	}
	for i := uint64(0); i < n; i++ {
		to, err := d.destination()
		if err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
		edges = append(edges, core.Edge{To: to, Cost: c})
	}
	return edges, nil
}

// groups reads CostByGroup sub-groups until they account for total edges.
func (d *decoder) groups(edges []core.Edge, total uint64) ([]core.Edge, error) {
	var seen uint64
	for group := 0; seen < total; group++ {
		n, err := d.uvarint()
		if err != nil {
			return nil, fmt.Errorf("group %d size: %w", group, err)
		}
		if n > total-seen {
			return nil, fmt.Errorf("group %d declares %d edges, %d left: %w", group, n, total-seen, format.ErrGroupOverflow)
		}
		sub, err := d.tag()
		if err != nil {
			return nil, fmt.Errorf("group %d discriminator: %w", group, err)
		}
		if sub != format.NoCost && sub != format.SameCost {
			return nil, fmt.Errorf("group %d discriminator %s: %w", group, sub, format.ErrBadDiscriminator)
		}
		if edges, err = d.sharedCost(edges, sub, n); err != nil {
			return nil, fmt.Errorf("group %d: %w", group, err)
		}
		seen += n
	}
	return edges, nil
}
