package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/aoc2024/input"
	"github.com/katalvlaran/aoc2024/wordsearch"
)

func newWordsearchCmd(a *app) *cobra.Command {
	var (
		word    string
		reduced bool
	)
	cmd := &cobra.Command{
		Use:   "wordsearch <input>",
		Short: "Count words and X-MAS crosses in a letter grid",
		Long: `The wordsearch command reads a rectangular letter grid and counts the
placements of a word in all eight directions, plus the MAS crosses.

Example:
  aoc wordsearch input.txt
  aoc wordsearch input.txt --word XMAS --reduced`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWordsearch(cmd, a, args[0], word, reduced)
		},
	}
	cmd.Flags().StringVar(&word, "word", "XMAS", "Word to search for")
	cmd.Flags().BoolVar(&reduced, "reduced", false, "Scan four directions for the word and its reverse")

	return cmd
}

func runWordsearch(cmd *cobra.Command, a *app, path, word string, reduced bool) error {
	f, err := openInput(path)
	if err != nil {
		return err
	}
	defer f.Close()

	lines, err := input.Lines(f)
	if err != nil {
		return err
	}
	// a trailing blank line is not part of the grid
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	g, err := wordsearch.NewGrid(lines)
	if err != nil {
		return err
	}

	var opts []wordsearch.Option
	if reduced {
		opts = append(opts, wordsearch.WithReducedDirections())
	}
	count, err := wordsearch.CountWord(g, word, opts...)
	if err != nil {
		return err
	}
	crosses := wordsearch.CountCross(g)

	a.measure("wordsearch/all", func() { _, _ = wordsearch.CountWord(g, word) })
	a.measure("wordsearch/reduced", func() { _, _ = wordsearch.CountWord(g, word, wordsearch.WithReducedDirections()) })
	a.measure("wordsearch/cross", func() { _ = wordsearch.CountCross(g) })

	return a.print(cmd,
		answer{Label: "words", Value: count},
		answer{Label: "crosses", Value: crosses},
	)
}
