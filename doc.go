// Package aoc2024 collects small, allocation-light solvers for the 2024
// puzzle inputs, each in its own subpackage.
//
// Subpackages:
//
//	reports/     bounded-monotonicity checks with single-removal tolerance via precomputed bitmasks
//	input/       line-oriented parsing of integer sequences and columns
//	locations/   pairwise distance between two sorted ID lists
//	memscan/     regexp scanning of mul/do/don't instructions
//	wordsearch/  eight-direction word search and X-shaped pattern counts on a letter grid
//	pageorder/   rule-based page ordering with topological repair
//
// The aoc command (cmd/aoc) wires them to input files:
//
//	go run ./cmd/aoc reports input.txt --verify
//
// Quick example of the reports bit layout for a 4-element sequence:
//
//	levels:  a ─ b ─ c ─ d      single steps: bits 0,1,2
//	          ╲_____╱           bridging a→c: bit 3 (b removed)
//	              ╲_____╱       bridging b→d: bit 4 (c removed)
package aoc2024
