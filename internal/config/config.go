// SPDX-License-Identifier: MIT

// Package config holds the swdgraph CLI configuration. Values come from
// defaults, an optional config file and SWDGRAPH_* environment variables, in
// increasing order of precedence.
package config

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/natefinch/lumberjack"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/katalvlaran/sparsegraph/format"
)

// EnvPrefix is prepended to upper-cased keys, so io.strict reads SWDGRAPH_IO_STRICT.
const EnvPrefix = "SWDGRAPH"

// Keys understood by Config.
const (
	KeyLogLevel    = "logging.level"
	KeyLogFile     = "logging.file"
	KeyLogMaxSize  = "logging.max_size"
	KeyLogMaxAge   = "logging.max_age"
	KeyStrict      = "io.strict"
	KeyCompress    = "io.compress"
	KeyBufferSize  = "io.buffer_size"
	KeyConvertJobs = "convert.jobs"
	KeyGenSeed     = "gen.seed"
)

// Config manages CLI configuration using Viper.
type Config struct {
	v *viper.Viper
}

// New creates a configuration with defaults and environment overrides.
func New() *Config {
	v := viper.New()

	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyLogMaxSize, 100) // megabytes
	v.SetDefault(KeyLogMaxAge, 28)   // days

	// io.compress has no default so that IsSet reports an explicit choice.
	v.SetDefault(KeyStrict, false)
	v.SetDefault(KeyBufferSize, format.DefaultBufferSize)

	v.SetDefault(KeyConvertJobs, runtime.NumCPU())
	v.SetDefault(KeyGenSeed, int64(1))

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Config{v: v}
}

// LoadFromFile merges the file at path over the defaults. The format is
// chosen from the extension (yaml, toml, json, ...).
func (c *Config) LoadFromFile(path string) error {
	c.v.SetConfigFile(path)
	if err := c.v.ReadInConfig(); err != nil {
		return fmt.Errorf("config: load %q: %w", path, err)
	}
	return nil
}

func (c *Config) LogLevel() string { return c.v.GetString(KeyLogLevel) }
func (c *Config) LogFile() string  { return c.v.GetString(KeyLogFile) }
func (c *Config) LogMaxSize() int  { return c.v.GetInt(KeyLogMaxSize) }
func (c *Config) LogMaxAge() int   { return c.v.GetInt(KeyLogMaxAge) }

func (c *Config) Strict() bool     { return c.v.GetBool(KeyStrict) }
func (c *Config) Compress() bool   { return c.v.GetBool(KeyCompress) }
func (c *Config) BufferSize() int  { return c.v.GetInt(KeyBufferSize) }
func (c *Config) ConvertJobs() int { return max(1, c.v.GetInt(KeyConvertJobs)) }
func (c *Config) GenSeed() int64   { return c.v.GetInt64(KeyGenSeed) }

// Set allows dynamic configuration changes, e.g. from command-line flags.
func (c *Config) Set(key string, value any) {
	c.v.Set(key, value)
}

// IsSet reports whether key was given by a file, the environment or Set.
func (c *Config) IsSet(key string) bool {
	return c.v.IsSet(key)
}

// IOOptions returns the codec options for reading. Compression is a write
// concern and only applied by WriteOptions.
func (c *Config) IOOptions(logger zerolog.Logger) []format.Option {
	opts := []format.Option{
		format.WithLogger(logger),
		format.WithStrictDestinations(c.Strict()),
	}
	if n := c.BufferSize(); n > 0 {
		opts = append(opts, format.WithBufferSize(n))
	}
	return opts
}

// WriteOptions returns IOOptions plus compression when io.compress was set
// explicitly. Left unset, the output extension decides.
func (c *Config) WriteOptions(logger zerolog.Logger) []format.Option {
	opts := c.IOOptions(logger)
	if c.IsSet(KeyCompress) {
		opts = append(opts, format.WithCompression(c.Compress()))
	}
	return opts
}

// CreateLogger creates a zerolog logger. With logging.file set, JSON lines
// go to a size-rotated file; otherwise a console writer prints to stderr.
func (c *Config) CreateLogger() zerolog.Logger {
	if name := c.LogFile(); name != "" {
		return c.logger(&lumberjack.Logger{
			Filename: name,
			MaxSize:  c.LogMaxSize(),
			MaxAge:   c.LogMaxAge(),
		})
	}
	return c.logger(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})
}

func (c *Config) logger(out io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(c.LogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}
	return zerolog.New(out).Level(level).With().Timestamp().Str("service", "swdgraph").Logger()
}
