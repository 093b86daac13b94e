// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsegraph/core"
	"github.com/katalvlaran/sparsegraph/graphio"
	"github.com/katalvlaran/sparsegraph/internal/fixtures"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommand(t *testing.T) {
	root := newRootCmd(&bytes.Buffer{})
	assert.Equal(t, "swdgraph", root.Use)
	names := map[string]bool{}
	for _, c := range root.Commands() {
		names[c.Name()] = true
		assert.NotNil(t, c.RunE, c.Name())
	}
	for _, want := range []string{"convert", "stat", "equal", "fingerprint", "gen"} {
		assert.True(t, names[want], "missing %s", want)
	}
}

func TestGenConvertEqual(t *testing.T) {
	dir := t.TempDir()
	txt := filepath.Join(dir, "g.txt")
	bin := filepath.Join(dir, "g.bin")
	enc := filepath.Join(dir, "g.enc.zst")

	_, err := run(t, "gen", txt, "--nodes", "30", "--p", "0.2", "--seed", "7", "--costs", "bimodal", "--cost-a", "0", "--cost-b", "5")
	require.NoError(t, err)

	_, err = run(t, "convert", "-j", "2", txt, bin, txt, enc)
	require.NoError(t, err)

	out, err := run(t, "equal", bin, enc)
	require.NoError(t, err)
	assert.Equal(t, "equal\n", out)

	a, err := graphio.Read(txt)
	require.NoError(t, err)
	b, err := graphio.Read(enc)
	require.NoError(t, err)
	require.True(t, core.Equal(a, b))
}

func TestGenIsSeeded(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "a.enc")
	second := filepath.Join(dir, "b.enc")
	for _, name := range []string{first, second} {
		_, err := run(t, "gen", name, "--nodes", "20", "--seed", "3", "--costs", "uniform", "--cost-a", "-2", "--cost-b", "2")
		require.NoError(t, err)
	}
	out, err := run(t, "fingerprint", first, second)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, strings.Fields(lines[0])[0], strings.Fields(lines[1])[0])
}

func TestEqualReportsDifference(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.bin")
	b := filepath.Join(dir, "b.bin")
	require.NoError(t, graphio.Write(fixtures.Graph(fixtures.SameCost), a))
	require.NoError(t, graphio.Write(fixtures.Graph(fixtures.NoCost), b))

	out, err := run(t, "equal", a, b)
	require.ErrorIs(t, err, errGraphsDiffer)
	assert.Equal(t, "differ\n", out)
}

func TestStat(t *testing.T) {
	name := filepath.Join(t.TempDir(), "mixed.enc")
	require.NoError(t, graphio.Write(fixtures.Graph(fixtures.Mixed), name))

	out, err := run(t, "stat", name)
	require.NoError(t, err)
	assert.Contains(t, out, "encoded, 6 nodes, 11 edges, ")
	assert.Contains(t, out, "in memory")
	assert.Contains(t, out, "empty=2 NoCost=1 SameCost=0 UniqueCosts=2 CostByGroup=1")
}

func TestStrictFlag(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "dangling.bin")
	require.NoError(t, graphio.Write(fixtures.Graph(fixtures.Dangling), in))

	_, err := run(t, "convert", in, filepath.Join(dir, "ok.txt"))
	require.NoError(t, err)
	_, err = run(t, "--strict", "convert", in, filepath.Join(dir, "bad.txt"))
	require.ErrorIs(t, err, core.ErrDanglingEdge)
}

func TestArgumentErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, "convert", filepath.Join(dir, "only.txt"))
	require.Error(t, err)

	_, err = run(t, "gen", filepath.Join(dir, "g.txt"), "--costs", "zipf")
	require.Error(t, err)

	_, err = run(t, "gen", filepath.Join(dir, "g.txt"), "--costs", "uniform", "--cost-a", "5", "--cost-b", "1")
	require.Error(t, err)

	_, err = run(t, "stat", filepath.Join(dir, "missing.enc"))
	require.Error(t, err)
}

func TestConvertManyPairsInParallel(t *testing.T) {
	dir := t.TempDir()
	args := []string{"convert", "--jobs", "4"}
	var outs []string
	for i, name := range []string{fixtures.NoCost, fixtures.Bimodal, fixtures.Mixed, fixtures.Extremes} {
		in := filepath.Join(dir, name+".txt")
		require.NoError(t, graphio.Write(fixtures.Graph(name), in))
		out := filepath.Join(dir, name+[]string{".bin", ".enc", ".enc.zst", ".txt.zst"}[i])
		args = append(args, in, out)
		outs = append(outs, out)
	}
	_, err := run(t, args...)
	require.NoError(t, err)

	for i, name := range []string{fixtures.NoCost, fixtures.Bimodal, fixtures.Mixed, fixtures.Extremes} {
		got, err := graphio.Read(outs[i])
		require.NoError(t, err)
		require.True(t, core.Equal(fixtures.Graph(name), got), name)
	}
}
