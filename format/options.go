// SPDX-License-Identifier: MIT

package format

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Defaults (single source of truth for zero-value behavior).
const (
	// DefaultStrictDestinations keeps dangling destinations legal.
	DefaultStrictDestinations = false

	// DefaultCompression writes plain, uncompressed files.
	DefaultCompression = false

	// DefaultBufferSize is the bufio size wrapped around every file handle.
	DefaultBufferSize = 64 << 10
)

// Options is the resolved configuration of one codec call.
type Options struct {
	logger     zerolog.Logger
	strict     bool
	compress   bool
	bufferSize int
}

// Option mutates Options before a codec call.
type Option func(*Options)

// WithLogger routes codec diagnostics to l. The default logger discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// WithStrictDestinations rejects edges whose destination is >= node count,
// on write before any byte is emitted and on read after the graph is parsed.
func WithStrictDestinations(strict bool) Option {
	return func(o *Options) { o.strict = strict }
}

// WithCompression frames written files in zstd.
func WithCompression(compress bool) Option {
	return func(o *Options) { o.compress = compress }
}

// WithBufferSize sets the bufio size used for file handles.
// Panics if n <= 0 (programmer error).
func WithBufferSize(n int) Option {
	if n <= 0 {
		panic(fmt.Sprintf("format: WithBufferSize(%d): size must be positive", n))
	}
	return func(o *Options) { o.bufferSize = n }
}

// Gather applies opts left to right over the defaults.
func Gather(opts ...Option) Options {
	o := Options{
		logger:     zerolog.Nop(),
		strict:     DefaultStrictDestinations,
		compress:   DefaultCompression,
		bufferSize: DefaultBufferSize,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Logger returns the configured logger. Event methods on zerolog.Logger have
// pointer receivers, so callers can chain o.Logger().Debug() directly.
func (o Options) Logger() *zerolog.Logger { return &o.logger }

// Strict reports whether dangling destinations are rejected.
func (o Options) Strict() bool { return o.strict }

// Compress reports whether writes are zstd framed.
func (o Options) Compress() bool { return o.compress }

// BufferSize returns the bufio size for file handles.
func (o Options) BufferSize() int { return o.bufferSize }
