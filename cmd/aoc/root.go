package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/aoc2024/internal/config"
	"github.com/katalvlaran/aoc2024/internal/logging"
	"github.com/katalvlaran/aoc2024/internal/timing"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	// global flags
	configPath string
	verbose    bool
	bench      int
	jsonOut    bool

	settings config.Config
	logger   *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: logging.Discard()}

	root := &cobra.Command{
		Use:   "aoc",
		Short: "Solve the 2024 puzzle inputs",
		Long: `aoc reads a puzzle input file and prints the answers for one day.

Examples:
  aoc reports input.txt --verify
  aoc wordsearch grid.txt --reduced
  aoc pageorder rules.txt --bench 10`,
		Version:       "0.1.0",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "YAML settings file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().IntVar(&a.bench, "bench", 0, "Time the solution over N runs")
	root.PersistentFlags().BoolVar(&a.jsonOut, "json", false, "Output in JSON format")

	root.AddCommand(
		newReportsCmd(a),
		newLocationsCmd(a),
		newMemscanCmd(a),
		newWordsearchCmd(a),
		newPageorderCmd(a),
	)

	return root
}

// setup loads settings, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("bench") {
		cfg.BenchIterations = a.bench
	}
	if a.verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}

	a.settings = cfg
	a.logger = logging.New(logging.Options{Enabled: true, Level: level, Writer: cmd.ErrOrStderr()})
	a.logger.Debug("settings loaded",
		slog.String("config", a.configPath),
		slog.Int("workers", cfg.Workers),
		slog.Int("bench_iterations", cfg.BenchIterations),
		slog.Bool("verify", cfg.Verify),
	)

	return nil
}

// answer is one labelled result line.
type answer struct {
	Label string `json:"label"`
	Value any    `json:"value"`
}

// print writes answers as "label: value" lines, or as JSON under --json.
func (a *app) print(cmd *cobra.Command, answers ...answer) error {
	out := cmd.OutOrStdout()
	if a.jsonOut {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(answers)
	}
	for _, ans := range answers {
		if _, err := fmt.Fprintf(out, "%s: %v\n", ans.Label, ans.Value); err != nil {
			return err
		}
	}

	return nil
}

// measure times fn when benchmarking is enabled and logs the stats.
func (a *app) measure(label string, fn func()) {
	if a.settings.BenchIterations < 1 {
		return
	}
	s := timing.Measure(a.settings.BenchIterations, fn)
	a.logger.Info("benchmark",
		slog.String("label", label),
		slog.Duration("median", s.Median),
		slog.Duration("min", s.Min),
		slog.Duration("max", s.Max),
		slog.Int("runs", s.Runs),
	)
}

// openInput opens the input file named by the single positional argument.
func openInput(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}

	return f, nil
}
