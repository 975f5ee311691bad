package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/aoc2024/memscan"
)

func newMemscanCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "memscan <input>",
		Short: "Sum the mul instructions in corrupted memory",
		Long: `The memscan command scans a memory dump for mul(a,b) instructions and
prints the sum of all products, and the sum honouring do()/don't().

Example:
  aoc memscan input.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMemscan(cmd, a, args[0])
		},
	}
}

func runMemscan(cmd *cobra.Command, a *app, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	text := string(data)

	all := memscan.SumProducts(text)
	enabled := memscan.SumEnabledProducts(text)

	a.measure("memscan/all", func() { _ = memscan.SumProducts(text) })
	a.measure("memscan/enabled", func() { _ = memscan.SumEnabledProducts(text) })

	return a.print(cmd,
		answer{Label: "products", Value: all},
		answer{Label: "enabled-products", Value: enabled},
	)
}
