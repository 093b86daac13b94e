// SPDX-License-Identifier: MIT

package binfmt_test

import (
	"bytes"
	"encoding/binary"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsegraph/binfmt"
	"github.com/katalvlaran/sparsegraph/core"
	"github.com/katalvlaran/sparsegraph/format"
	"github.com/katalvlaran/sparsegraph/internal/fixtures"
)

func TestRoundTripFixtures(t *testing.T) {
	dir := t.TempDir()
	for _, name := range fixtures.Names {
		t.Run(name, func(t *testing.T) {
			g := fixtures.Graph(name)
			path := filepath.Join(dir, name+".bin")
			require.NoError(t, binfmt.Write(g, path))
			got, err := binfmt.Read(path)
			require.NoError(t, err)
			require.True(t, core.Equal(g, got), "round trip changed %s", name)
		})
	}
}

func TestRoundTripCompressed(t *testing.T) {
	g := fixtures.Graph(fixtures.Extremes)
	path := filepath.Join(t.TempDir(), "g.bin.zst")
	require.NoError(t, binfmt.Write(g, path, format.WithCompression(true)))
	got, err := binfmt.Read(path)
	require.NoError(t, err)
	require.True(t, core.Equal(g, got))
}

func TestWriteLayout(t *testing.T) {
	g := core.FromAdjacency([][]core.Edge{{{To: 1, Cost: -2}}, {}})
	var buf bytes.Buffer
	require.NoError(t, binfmt.Encode(&buf, g))

	want := append([]byte(format.Header), 0x00, '1')
	want = binary.LittleEndian.AppendUint64(want, 2)
	want = binary.LittleEndian.AppendUint64(want, 1)
	want = binary.LittleEndian.AppendUint32(want, 1)
	want = binary.LittleEndian.AppendUint32(want, 0xFFFFFFFE)
	want = binary.LittleEndian.AppendUint64(want, 0)
	require.Equal(t, want, buf.Bytes())
}

func TestEveryTruncationFails(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, binfmt.Encode(&buf, fixtures.Graph(fixtures.Mixed)))
	full := buf.Bytes()
	for n := 0; n < len(full); n++ {
		g, err := binfmt.Decode(bytes.NewReader(full[:n]))
		require.Error(t, err, "prefix of %d bytes must not decode", n)
		require.Nil(t, g)
		if n >= len(format.Header)+2 {
			require.ErrorIs(t, err, io.ErrUnexpectedEOF, "prefix %d", n)
		}
	}
}

func TestDecodeRejectsHeaderAndTag(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, binfmt.Encode(&buf, fixtures.Graph(fixtures.SameCost)))

	badHeader := append([]byte(nil), buf.Bytes()...)
	badHeader[0] = 'X'
	_, err := binfmt.Decode(bytes.NewReader(badHeader))
	require.ErrorIs(t, err, format.ErrHeaderMismatch)

	noTerminator := append([]byte(nil), buf.Bytes()...)
	noTerminator[len(format.Header)] = ' '
	_, err = binfmt.Decode(bytes.NewReader(noTerminator))
	require.ErrorIs(t, err, format.ErrHeaderMismatch)

	badTag := append([]byte(nil), buf.Bytes()...)
	badTag[len(format.Header)+1] = '7'
	_, err = binfmt.Decode(bytes.NewReader(badTag))
	require.ErrorIs(t, err, format.ErrTypeTagMismatch)
}

func TestDecodeRejectsHugeNodeCount(t *testing.T) {
	in := append([]byte(format.Header), 0x00, '1')
	in = binary.LittleEndian.AppendUint64(in, 1<<40)
	_, err := binfmt.Decode(bytes.NewReader(in))
	require.ErrorIs(t, err, format.ErrValueRange)
}

func TestDecodeLargeDeclaredCountFailsByEOF(t *testing.T) {
	// A plausible but false count must not be trusted for allocation.
	in := append([]byte(format.Header), 0x00, '1')
	in = binary.LittleEndian.AppendUint64(in, 1<<31)
	in = binary.LittleEndian.AppendUint64(in, 0)
	_, err := binfmt.Decode(bytes.NewReader(in))
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestStrictDestinations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dangling.bin")
	g := fixtures.Graph(fixtures.Dangling)
	require.ErrorIs(t, binfmt.Write(g, path, format.WithStrictDestinations(true)), core.ErrDanglingEdge)
	require.NoError(t, binfmt.Write(g, path))
	_, err := binfmt.Read(path, format.WithStrictDestinations(true))
	require.ErrorIs(t, err, core.ErrDanglingEdge)
}
