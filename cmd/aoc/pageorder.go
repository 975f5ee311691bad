package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/aoc2024/pageorder"
)

func newPageorderCmd(a *app) *cobra.Command {
	var checkTotal bool
	cmd := &cobra.Command{
		Use:   "pageorder <input>",
		Short: "Check and repair print update page orders",
		Long: `The pageorder command reads "X|Y" ordering rules, a blank line and
comma-separated updates. It sums the middle pages of the correctly ordered
updates, then of the incorrectly ordered ones after reordering them.

Example:
  aoc pageorder input.txt
  aoc pageorder input.txt --check-total`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPageorder(cmd, a, args[0], checkTotal)
		},
	}
	cmd.Flags().BoolVar(&checkTotal, "check-total", false, "Fail unless the rules decide every pair of pages")

	return cmd
}

func runPageorder(cmd *cobra.Command, a *app, path string, checkTotal bool) error {
	f, err := openInput(path)
	if err != nil {
		return err
	}
	defer f.Close()

	rules, updates, err := pageorder.Parse(f)
	if err != nil {
		return err
	}
	a.logger.Debug("rules parsed",
		slog.Int("pages", len(rules.Pages())),
		slog.Int("updates", len(updates)),
	)
	if checkTotal {
		if err := rules.CheckTotal(nil); err != nil {
			return err
		}
	}

	ordered, err := rules.SumOrderedMiddles(updates)
	if err != nil {
		return err
	}
	reordered, err := rules.SumReorderedMiddles(updates)
	if err != nil {
		return err
	}

	a.measure("pageorder/ordered", func() { _, _ = rules.SumOrderedMiddles(updates) })
	a.measure("pageorder/reordered", func() { _, _ = rules.SumReorderedMiddles(updates) })

	return a.print(cmd,
		answer{Label: "ordered-middles", Value: ordered},
		answer{Label: "reordered-middles", Value: reordered},
	)
}
