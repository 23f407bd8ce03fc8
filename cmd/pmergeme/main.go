package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"

	"PmergeMe/FordJohnson"
	"PmergeMe/internal/argparse"
	"PmergeMe/internal/config"
	"PmergeMe/internal/display"
	"PmergeMe/internal/logging"
)

var (
	// Global flags
	configPath  string
	verbose     bool
	containers  []string
	colorMode   string
	maxElements int
	showStats   bool
	historyPath string

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "pmergeme <values...>",
	Short: "Sort non-negative integers with Ford-Johnson merge-insertion sort",
	Long: `Sorts the given values once per container (vector, deque) with
merge-insertion sort and reports the time each sort took.

Each argument may hold several whitespace-separated values:
  pmergeme 3 5 9 7 4
  pmergeme "$(shuf -i 1-100000 -n 3000 | tr '\n' ' ')"`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = loadConfig(cmd)
		if err != nil {
			return err
		}
		logger, err = logging.New(cfg.Logging, verbose)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runSort,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&configPath, "config", "c", "", "YAML config file")
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging on stderr")
	pf.StringVar(&colorMode, "color", "auto", "color output: auto, always or never")
	pf.StringVar(&historyPath, "history", "", "bbolt file holding benchmark history")

	f := rootCmd.Flags()
	f.StringSliceVar(&containers, "containers", nil, "containers to sort on, in order (vector,deque)")
	f.IntVar(&maxElements, "max-elements", 0, "values printed before and after sorting")
	f.BoolVar(&showStats, "stats", false, "print comparison and insertion counts")

	rootCmd.AddCommand(benchCmd, historyCmd)
}

// loadConfig reads --config and applies the flags the user set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	c, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("containers") {
		c.Containers = containers
	}
	if flags.Changed("color") {
		c.Display.Color = colorMode
	}
	if flags.Changed("max-elements") {
		c.Display.MaxElements = maxElements
	}
	if flags.Changed("history") {
		c.History.Path = historyPath
	}
	applyBenchFlags(flags, &c.Bench)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func newPrinter(w io.Writer) (*display.Printer, error) {
	mode, err := display.ParseColorMode(cfg.Display.Color)
	if err != nil {
		return nil, err
	}
	return display.New(w, mode, cfg.Display.MaxElements), nil
}

func runSort(cmd *cobra.Command, args []string) error {
	values, err := argparse.Parse(args)
	if err != nil {
		return err
	}
	kinds, err := cfg.Kinds()
	if err != nil {
		return err
	}
	p, err := newPrinter(cmd.OutOrStdout())
	if err != nil {
		return err
	}
	logger.Debug("parsed input", zap.Int("values", len(values)))

	for _, kind := range kinds {
		work := slices.Clone(values)

		p.Header(kind)
		p.Elements("Before:", work)
		p.SortedCheck(FordJohnson.IsSorted(work))

		start := time.Now()
		stats := FordJohnson.SortWith(work, kind)
		elapsed := time.Since(start)

		p.Elements("After:", work)
		sorted := FordJohnson.IsSorted(work)
		p.SortedCheck(sorted)
		p.Timing(len(work), kind, elapsed)
		if showStats {
			p.Stats(stats)
		}
		logger.Debug("sorted",
			zap.Stringer("container", kind),
			zap.Int("elements", len(work)),
			zap.Duration("elapsed", elapsed),
			zap.Int("comparisons", stats.Comparisons),
			zap.Int("levels", stats.Levels))
		if !sorted {
			return fmt.Errorf("%s result is not sorted", kind)
		}
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		mode, perr := display.ParseColorMode(colorMode)
		if perr != nil {
			mode = display.ColorAuto
		}
		display.New(os.Stderr, mode, 1).Error(err)
		os.Exit(1)
	}
}
