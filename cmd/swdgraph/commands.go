// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/DmitriyVTitov/size"
	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/sparsegraph/builder"
	"github.com/katalvlaran/sparsegraph/core"
	"github.com/katalvlaran/sparsegraph/encfmt"
	"github.com/katalvlaran/sparsegraph/format"
	"github.com/katalvlaran/sparsegraph/graphio"
	"github.com/katalvlaran/sparsegraph/internal/config"
)

// errGraphsDiffer is returned by equal so that main exits with status 1
// without printing an error line.
var errGraphsDiffer = errors.New("graphs differ")

// Cost distributions accepted by gen --costs.
const (
	costsConst   = "const"
	costsUniform = "uniform"
	costsBimodal = "bimodal"
)

// app carries state shared by all subcommands of one invocation.
type app struct {
	cfg *config.Config
	log zerolog.Logger

	configPath string
	logLevel   string
	strict     bool
	compress   bool
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{cfg: config.New(), log: zerolog.Nop()}

	root := &cobra.Command{
		Use:               "swdgraph",
		Short:             "Sparse weighted directed graph file tool",
		Long:              `swdgraph reads and writes sparse weighted directed graphs in text, binary and encoded formats. The format is chosen from the file extension.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(out)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "Config file (yaml, toml or json)")
	pf.StringVar(&a.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	pf.BoolVar(&a.strict, "strict", false, "Reject edges whose destination is not a node")
	pf.BoolVar(&a.compress, "compress", false, "Force zstd framing on written files")

	root.AddCommand(
		a.convertCmd(),
		a.statCmd(),
		a.equalCmd(),
		a.fingerprintCmd(),
		a.genCmd(),
	)
	return root
}

// setup merges the config file and explicitly given flags, then builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if a.configPath != "" {
		if err := a.cfg.LoadFromFile(a.configPath); err != nil {
			return err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		a.cfg.Set(config.KeyLogLevel, a.logLevel)
	}
	if flags.Changed("strict") {
		a.cfg.Set(config.KeyStrict, a.strict)
	}
	if flags.Changed("compress") {
		a.cfg.Set(config.KeyCompress, a.compress)
	}
	a.log = a.cfg.CreateLogger()
	return nil
}

func (a *app) readOpts() []format.Option  { return a.cfg.IOOptions(a.log) }
func (a *app) writeOpts() []format.Option { return a.cfg.WriteOptions(a.log) }

func (a *app) convertCmd() *cobra.Command {
	var jobs int
	cmd := &cobra.Command{
		Use:   "convert <in> <out> [<in> <out>...]",
		Short: "Convert graph files between formats",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) == 0 || len(args)%2 != 0 {
				return fmt.Errorf("convert: need <in> <out> pairs, got %d args", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("jobs") {
				a.cfg.Set(config.KeyConvertJobs, jobs)
			}
			// Config is read once here; viper is not safe for concurrent reads.
			readOpts, writeOpts := a.readOpts(), a.writeOpts()
			var eg errgroup.Group
			eg.SetLimit(a.cfg.ConvertJobs())
			for i := 0; i < len(args); i += 2 {
				in, out := args[i], args[i+1]
				eg.Go(func() error { return a.convert(in, out, readOpts, writeOpts) })
			}
			return eg.Wait()
		},
	}
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "Number of conversions run in parallel (default: config convert.jobs)")
	return cmd
}

func (a *app) convert(in, out string, readOpts, writeOpts []format.Option) error {
	g, err := graphio.Read(in, readOpts...)
	if err != nil {
		return err
	}
	if err := graphio.Write(g, out, writeOpts...); err != nil {
		return err
	}
	a.log.Info().Str("in", in).Str("out", out).Int("nodes", g.NodeCount()).Msg("converted")
	return nil
}

func (a *app) statCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stat <file>...",
		Short: "Print node, edge and size figures for graph files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range args {
				if err := a.stat(cmd.OutOrStdout(), name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func (a *app) stat(w io.Writer, name string) error {
	info, err := os.Stat(name)
	if err != nil {
		return fmt.Errorf("stat: %w", err)
	}
	kind, compressed, err := graphio.KindOf(name)
	if err != nil {
		return err
	}

	var (
		g     *core.SparseWeightDirected
		stats encfmt.Stats
	)
	if kind == graphio.Encoded {
		g, stats, err = encfmt.ReadStats(name, a.readOpts()...)
	} else {
		g, err = graphio.Read(name, a.readOpts()...)
	}
	if err != nil {
		return err
	}

	framing := ""
	if compressed {
		framing = "+zstd"
	}
	fmt.Fprintf(w, "%s: %s%s, %s nodes, %s edges, %s on disk, %s in memory\n", name, kind, framing,
		humanize.Comma(int64(g.NodeCount())), humanize.Comma(int64(g.EdgeCount())),
		humanize.Bytes(uint64(info.Size())), humanize.Bytes(uint64(size.Of(g))))
	if kind == graphio.Encoded {
		fmt.Fprintf(w, "  empty=%d", stats.Empty)
		for d := format.NoCost; d <= format.CostByGroup; d++ {
			fmt.Fprintf(w, " %s=%d", d, stats.Count(d))
		}
		fmt.Fprintln(w)
	}
	return nil
}

func (a *app) equalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "equal <a> <b>",
		Short: "Compare two graph files as edge multisets; exit status 1 if they differ",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ga, err := graphio.Read(args[0], a.readOpts()...)
			if err != nil {
				return err
			}
			gb, err := graphio.Read(args[1], a.readOpts()...)
			if err != nil {
				return err
			}
			if !core.Equal(ga, gb) {
				fmt.Fprintln(cmd.OutOrStdout(), "differ")
				return errGraphsDiffer
			}
			fmt.Fprintln(cmd.OutOrStdout(), "equal")
			return nil
		},
	}
}

func (a *app) fingerprintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint <file>...",
		Short: "Print the order-independent BLAKE3 digest of each graph",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range args {
				g, err := graphio.Read(name, a.readOpts()...)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", core.FingerprintOf(g), name)
			}
			return nil
		},
	}
}

func (a *app) genCmd() *cobra.Command {
	var (
		nodes        int
		p            float64
		seed         int64
		costs        string
		costA, costB int32
		costP        float64
	)
	cmd := &cobra.Command{
		Use:   "gen <out>",
		Short: "Write a seeded random sparse graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("seed") {
				a.cfg.Set(config.KeyGenSeed, seed)
			}
			fn, err := costFn(costs, costA, costB, costP)
			if err != nil {
				return err
			}
			g, err := builder.BuildGraph(
				[]builder.BuilderOption{builder.WithSeed(a.cfg.GenSeed()), builder.WithCostFn(fn)},
				builder.RandomSparse(nodes, p),
			)
			if err != nil {
				return err
			}
			if err := graphio.Write(g, args[0], a.writeOpts()...); err != nil {
				return err
			}
			a.log.Info().Str("out", args[0]).Int("nodes", g.NodeCount()).Int("edges", g.EdgeCount()).Msg("generated")
			return nil
		},
	}
	f := cmd.Flags()
	f.IntVar(&nodes, "nodes", 100, "Number of nodes")
	f.Float64Var(&p, "p", 0.05, "Probability of each ordered pair being an edge")
	f.Int64Var(&seed, "seed", 0, "Random seed (default: config gen.seed)")
	f.StringVar(&costs, "costs", costsConst, "Cost distribution: const, uniform or bimodal")
	f.Int32Var(&costA, "cost-a", builder.DefaultEdgeCost, "Constant cost, uniform minimum or first bimodal cost")
	f.Int32Var(&costB, "cost-b", 10, "Uniform maximum or second bimodal cost")
	f.Float64Var(&costP, "cost-p", 0.5, "Probability of cost-a in the bimodal distribution")
	return cmd
}

func costFn(kind string, a, b int32, p float64) (builder.CostFn, error) {
	switch kind {
	case costsConst:
		return builder.ConstantCost(a), nil
	case costsUniform:
		if b < a {
			return nil, fmt.Errorf("gen: uniform costs need cost-a <= cost-b, got %d > %d", a, b)
		}
		return builder.UniformCost(a, b), nil
	case costsBimodal:
		if p < 0 || p > 1 {
			return nil, fmt.Errorf("gen: cost-p=%g not in [0,1]", p)
		}
		return builder.BimodalCost(a, b, p), nil
	default:
		return nil, fmt.Errorf("gen: unknown cost distribution %q", kind)
	}
}
