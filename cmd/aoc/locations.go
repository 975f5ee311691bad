package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/aoc2024/input"
	"github.com/katalvlaran/aoc2024/locations"
)

func newLocationsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "locations <input>",
		Short: "Sum the distance between two location lists",
		Long: `The locations command reads two whitespace-separated columns of
location IDs and prints the total distance between the sorted lists.

Example:
  aoc locations input.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLocations(cmd, a, args[0])
		},
	}
}

func runLocations(cmd *cobra.Command, a *app, path string) error {
	f, err := openInput(path)
	if err != nil {
		return err
	}
	defer f.Close()

	cols, err := input.ReadColumns(f, 2)
	if err != nil {
		return err
	}
	left, right := cols[0], cols[1]

	dist, err := locations.TotalDistance(left, right)
	if err != nil {
		return err
	}

	a.measure("locations/heap", func() { _, _ = locations.TotalDistance(left, right) })
	a.measure("locations/sorted", func() { _, _ = locations.TotalDistanceSorted(left, right) })

	return a.print(cmd, answer{Label: "distance", Value: dist})
}
