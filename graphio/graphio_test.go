// SPDX-License-Identifier: MIT

package graphio_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsegraph/builder"
	"github.com/katalvlaran/sparsegraph/core"
	"github.com/katalvlaran/sparsegraph/format"
	"github.com/katalvlaran/sparsegraph/graphio"
	"github.com/katalvlaran/sparsegraph/internal/fixtures"
)

func TestKindOf(t *testing.T) {
	cases := []struct {
		name       string
		kind       graphio.Kind
		compressed bool
	}{
		{"a.txt", graphio.Text, false},
		{"dir/a.BIN", graphio.Binary, false},
		{"a.enc", graphio.Encoded, false},
		{"a.enc.zst", graphio.Encoded, true},
		{"a.txt.ZST", graphio.Text, true},
	}
	for _, tc := range cases {
		kind, compressed, err := graphio.KindOf(tc.name)
		require.NoError(t, err, tc.name)
		assert.Equal(t, tc.kind, kind, tc.name)
		assert.Equal(t, tc.compressed, compressed, tc.name)
	}

	for _, bad := range []string{"a", "a.zst", "a.csv", "a.csv.zst"} {
		_, _, err := graphio.KindOf(bad)
		assert.ErrorIs(t, err, graphio.ErrUnknownFormat, bad)
	}
}

func TestParseKind(t *testing.T) {
	k, err := graphio.ParseKind("Encoded")
	require.NoError(t, err)
	assert.Equal(t, graphio.Encoded, k)
	_, err = graphio.ParseKind("yaml")
	assert.ErrorIs(t, err, graphio.ErrUnknownFormat)
	assert.Equal(t, "Kind(9)", graphio.Kind(9).String())
}

// Every codec must agree on content for the same input graph.
func TestCrossCodecEquivalence(t *testing.T) {
	dir := t.TempDir()
	exts := []string{".txt", ".bin", ".enc", ".txt.zst", ".bin.zst", ".enc.zst"}

	graphs := map[string]*core.SparseWeightDirected{}
	for _, name := range fixtures.Names {
		graphs[name] = fixtures.Graph(name)
	}
	random, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSeed(7), builder.WithCostFn(builder.BimodalCost(0, 4, 0.5))},
		builder.RandomSparse(60, 0.1),
	)
	require.NoError(t, err)
	graphs["random"] = random

	for name, g := range graphs {
		var decoded []*core.SparseWeightDirected
		for _, ext := range exts {
			path := filepath.Join(dir, name+ext)
			require.NoError(t, graphio.Write(g, path), path)
			got, err := graphio.Read(path)
			require.NoError(t, err, path)
			require.True(t, core.Equal(g, got), "%s changed through %s", name, ext)
			decoded = append(decoded, got)
		}
		for i := 1; i < len(decoded); i++ {
			require.True(t, core.Equal(decoded[0], decoded[i]), "%s: %s and %s disagree", name, exts[0], exts[i])
		}
	}
}

func TestCompressedSuffixCompresses(t *testing.T) {
	dir := t.TempDir()
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithCostFn(builder.ConstantCost(3))}, builder.Complete(40))
	require.NoError(t, err)

	plain := filepath.Join(dir, "g.txt")
	packed := filepath.Join(dir, "g.txt.zst")
	require.NoError(t, graphio.Write(g, plain))
	require.NoError(t, graphio.Write(g, packed))

	ps, err := os.Stat(plain)
	require.NoError(t, err)
	zs, err := os.Stat(packed)
	require.NoError(t, err)
	assert.Less(t, zs.Size(), ps.Size())

	// Explicit options override the suffix.
	forcedPlain := filepath.Join(dir, "forced.txt.zst")
	require.NoError(t, graphio.Write(g, forcedPlain, format.WithCompression(false)))
	fs, err := os.Stat(forcedPlain)
	require.NoError(t, err)
	assert.Equal(t, ps.Size(), fs.Size())
}

func TestReadAsIgnoresExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.data")
	g := fixtures.Graph(fixtures.Bimodal)
	require.NoError(t, graphio.WriteAs(g, path, graphio.Encoded))

	got, err := graphio.ReadAs(path, graphio.Encoded)
	require.NoError(t, err)
	require.True(t, core.Equal(g, got))

	_, err = graphio.ReadAs(path, graphio.Text)
	require.ErrorIs(t, err, format.ErrHeaderMismatch, "encoded bytes are not a text header")

	_, err = graphio.Read(path)
	require.ErrorIs(t, err, graphio.ErrUnknownFormat)
}

func TestCodecsLogAtDebug(t *testing.T) {
	dir := t.TempDir()
	g := fixtures.Graph(fixtures.Mixed)
	for _, name := range []string{"g.txt", "g.bin", "g.enc"} {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			log := format.WithLogger(zerolog.New(&buf).Level(zerolog.DebugLevel))
			path := filepath.Join(dir, name)

			require.NoError(t, graphio.Write(g, path, log))
			require.NoError(t, func() error { _, err := graphio.Read(path, log); return err }())

			out := buf.String()
			assert.Contains(t, out, `"message":"graph written"`)
			assert.Contains(t, out, `"message":"graph read"`)
			assert.Contains(t, out, `"nodes":6`)
		})
	}
}
