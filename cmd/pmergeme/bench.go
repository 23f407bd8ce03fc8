package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"PmergeMe/internal/bench"
	"PmergeMe/internal/config"
	"PmergeMe/internal/history"
)

var (
	benchSizes    []int
	benchRuns     int
	benchSeed     int64
	benchMaxValue int
	jsonPath      string
	markdownPath  string
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Time merge-insertion sort against the standard library sort",
	Long: `Sorts seeded random data of each size with every configured container
and with the standard library, then prints the averaged figures.

With --history the session is saved and can be listed with "pmergeme history".`,
	Args: cobra.NoArgs,
	RunE: runBench,
}

func init() {
	f := benchCmd.Flags()
	f.IntSliceVar(&benchSizes, "sizes", nil, "data sizes to benchmark")
	f.IntVar(&benchRuns, "runs", 0, "trials per size and algorithm")
	f.Int64Var(&benchSeed, "seed", 0, "random data seed")
	f.IntVar(&benchMaxValue, "max-value", 0, "largest generated value")
	f.StringSliceVar(&containers, "containers", nil, "containers to benchmark (vector,deque)")
	f.StringVar(&jsonPath, "json", "", "write the session as JSON to this file")
	f.StringVar(&markdownPath, "markdown", "", "write a markdown report to this file")
}

func applyBenchFlags(flags *pflag.FlagSet, b *config.BenchConfig) {
	if flags.Changed("sizes") {
		b.Sizes = benchSizes
	}
	if flags.Changed("runs") {
		b.Runs = benchRuns
	}
	if flags.Changed("seed") {
		b.Seed = benchSeed
	}
	if flags.Changed("max-value") {
		b.MaxValue = benchMaxValue
	}
}

func runBench(cmd *cobra.Command, args []string) error {
	kinds, err := cfg.Kinds()
	if err != nil {
		return err
	}
	p, err := newPrinter(cmd.OutOrStdout())
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	runner := &bench.Runner{
		Sizes:    cfg.Bench.Sizes,
		Runs:     cfg.Bench.Runs,
		Seed:     cfg.Bench.Seed,
		MaxValue: cfg.Bench.MaxValue,
		Kinds:    kinds,
		Logger:   logger,
	}
	session, err := runner.Run(ctx)
	if err != nil {
		return fmt.Errorf("benchmark failed: %w", err)
	}
	p.BenchTable(bench.Averages(session.Results))

	if cfg.History.Path != "" {
		store, err := history.Open(cfg.History.Path)
		if err != nil {
			return err
		}
		defer store.Close()
		if err := store.Put(session); err != nil {
			return fmt.Errorf("failed to save session: %w", err)
		}
		p.Line("Saved as session #%d", session.ID)
	}
	if jsonPath != "" {
		if err := writeReport(jsonPath, session, bench.WriteJSON); err != nil {
			return err
		}
	}
	if markdownPath != "" {
		if err := writeReport(markdownPath, session, bench.WriteMarkdown); err != nil {
			return err
		}
	}
	return nil
}

func writeReport(path string, s *bench.Session, write func(io.Writer, *bench.Session) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	if err := write(f, s); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	logger.Info("report written", zap.String("path", path))
	return f.Close()
}
