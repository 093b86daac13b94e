// SPDX-License-Identifier: MIT

package format_test

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsegraph/format"
)

func TestGatherDefaults(t *testing.T) {
	o := format.Gather()
	assert.Equal(t, format.DefaultStrictDestinations, o.Strict())
	assert.Equal(t, format.DefaultCompression, o.Compress())
	assert.Equal(t, format.DefaultBufferSize, o.BufferSize())
	assert.Equal(t, zerolog.Disabled, o.Logger().GetLevel())
}

func TestGatherLastWins(t *testing.T) {
	o := format.Gather(
		format.WithStrictDestinations(true),
		format.WithCompression(true),
		format.WithBufferSize(16),
		format.WithStrictDestinations(false),
	)
	assert.False(t, o.Strict())
	assert.True(t, o.Compress())
	assert.Equal(t, 16, o.BufferSize())
}

func TestWithBufferSizePanics(t *testing.T) {
	assert.Panics(t, func() { format.WithBufferSize(0) })
}

func TestDiscriminatorWireValues(t *testing.T) {
	assert.Equal(t, uint8(0), uint8(format.NoCost))
	assert.Equal(t, uint8(1), uint8(format.SameCost))
	assert.Equal(t, uint8(2), uint8(format.UniqueCosts))
	assert.Equal(t, uint8(3), uint8(format.CostByGroup))
	assert.True(t, format.CostByGroup.Valid())
	assert.False(t, format.Discriminator(4).Valid())
	assert.Equal(t, "SameCost", format.SameCost.String())
	assert.Equal(t, "Discriminator(9)", format.Discriminator(9).String())
}

func TestRawHeaderRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, format.WriteRawHeader(&buf, format.SparseWeightDirectedTag))
	require.Equal(t, len(format.Header)+2, buf.Len())
	require.Equal(t, byte(0x00), buf.Bytes()[len(format.Header)])
	require.NoError(t, format.ReadRawHeader(&buf))
}

func TestReadRawHeaderRejects(t *testing.T) {
	var wrongTag bytes.Buffer
	require.NoError(t, format.WriteRawHeader(&wrongTag, '2'))
	require.ErrorIs(t, format.ReadRawHeader(&wrongTag), format.ErrTypeTagMismatch)

	bad := append([]byte("NOT_A_GRAPH_HEADER_AT_ALL___"), 0x00, '1')
	require.ErrorIs(t, format.ReadRawHeader(bytes.NewReader(bad)), format.ErrHeaderMismatch)

	require.ErrorIs(t, format.ReadRawHeader(bytes.NewReader(nil)), io.ErrUnexpectedEOF)
	require.ErrorIs(t, format.ReadRawHeader(bytes.NewReader([]byte("SPARSE"))), io.ErrUnexpectedEOF)
}

func TestNoEOF(t *testing.T) {
	assert.ErrorIs(t, format.NoEOF(io.EOF), io.ErrUnexpectedEOF)
	assert.Nil(t, format.NoEOF(nil))
	other := errors.New("boom")
	assert.Equal(t, other, format.NoEOF(other))
}

func TestWrapUnwrapCompressed(t *testing.T) {
	var buf bytes.Buffer
	w, finish, err := format.Wrap(&buf, 32, true)
	require.NoError(t, err)
	payload := bytes.Repeat([]byte("edge "), 500)
	_, err = w.Write(payload)
	require.NoError(t, err)
	require.NoError(t, finish())
	require.Less(t, buf.Len(), len(payload), "zstd should shrink a repetitive payload")

	r, closeFn, err := format.Unwrap(&buf, 32)
	require.NoError(t, err)
	defer closeFn()
	got, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, payload, got)
}

func TestUnwrapPlainPassesThrough(t *testing.T) {
	r, closeFn, err := format.Unwrap(bytes.NewReader([]byte("ab")), 16)
	require.NoError(t, err)
	defer closeFn()
	got, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, []byte("ab"), got)
}

func TestWriteFileReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blob")
	opts := format.Gather(format.WithCompression(true))
	require.NoError(t, format.WriteFile(path, opts, func(w *bufio.Writer) error {
		_, err := w.WriteString("hello graph")
		return err
	}))

	var got string
	require.NoError(t, format.ReadFile(path, format.Gather(), func(r *bufio.Reader) error {
		b, err := io.ReadAll(r)
		got = string(b)
		return err
	}))
	require.Equal(t, "hello graph", got)
}

func TestWriteFilePropagatesCallbackError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blob")
	boom := errors.New("boom")
	err := format.WriteFile(path, format.Gather(), func(w *bufio.Writer) error {
		_, _ = w.WriteString("partial")
		return boom
	})
	require.ErrorIs(t, err, boom)
	_, statErr := os.Stat(path)
	require.ErrorIs(t, statErr, os.ErrNotExist, "failed write must not leave a partial file")
}

func TestGatherLoggerIsUsable(t *testing.T) {
	var buf bytes.Buffer
	o := format.Gather(format.WithLogger(zerolog.New(&buf)))
	o.Logger().Debug().Str("codec", "test").Msg("graph written")
	assert.Contains(t, buf.String(), `"message":"graph written"`)
}

func TestReadFileMissing(t *testing.T) {
	err := format.ReadFile(filepath.Join(t.TempDir(), "absent"), format.Gather(), func(*bufio.Reader) error { return nil })
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestPrealloc(t *testing.T) {
	assert.Equal(t, 0, format.Prealloc(0))
	assert.Equal(t, 17, format.Prealloc(17))
	assert.Equal(t, 1<<16, format.Prealloc(1<<16))
	assert.Equal(t, 1<<16, format.Prealloc(1<<40))
}
