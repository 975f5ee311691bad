package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/aoc2024/input"
	"github.com/katalvlaran/aoc2024/reports"
)

func newReportsCmd(a *app) *cobra.Command {
	var (
		workers int
		verify  bool
	)
	cmd := &cobra.Command{
		Use:   "reports <input>",
		Short: "Count safe and tolerant-safe reports",
		Long: `The reports command reads one report per line and counts the reports
that are safe, and those that become safe after removing one level.

Example:
  aoc reports input.txt
  aoc reports input.txt --workers 4 --verify`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("workers") {
				if workers < 1 {
					return fmt.Errorf("--workers must be ≥ 1, got %d", workers)
				}
				a.settings.Workers = workers
			}
			if verify {
				a.settings.Verify = true
			}
			return runReports(cmd, a, args[0])
		},
	}
	cmd.Flags().IntVar(&workers, "workers", 0, "Concurrent evaluation workers (default from config)")
	cmd.Flags().BoolVar(&verify, "verify", false, "Cross-check against the naive evaluator")

	return cmd
}

func runReports(cmd *cobra.Command, a *app, path string) error {
	f, err := openInput(path)
	if err != nil {
		return err
	}
	defer f.Close()

	seqs, err := input.ReadSequences(f)
	if err != nil {
		return err
	}

	opts := []reports.Option{
		reports.WithContext(cmd.Context()),
		reports.WithWorkers(a.settings.Workers),
		reports.WithLogger(a.logger),
	}
	if a.settings.Verify {
		opts = append(opts, reports.WithVerify())
	}

	r, err := reports.Evaluate(seqs, opts...)
	if err != nil {
		return err
	}

	maxLen := 0
	for _, s := range seqs {
		maxLen = max(maxLen, len(s))
	}
	table, err := reports.BuildMasks(maxLen)
	if err != nil {
		return err
	}
	a.measure("reports/bitmask", func() {
		for _, s := range seqs {
			_ = reports.IsTolerantSafe(s, table.For(len(s)))
		}
	})
	a.measure("reports/naive", func() {
		for _, s := range seqs {
			_ = reports.IsTolerantSafeNaive(s)
		}
	})

	return a.print(cmd,
		answer{Label: "reports", Value: r.Total},
		answer{Label: "safe", Value: r.Safe},
		answer{Label: "tolerant-safe", Value: r.TolerantSafe},
	)
}
