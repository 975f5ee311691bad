// Package memscan extracts multiplication instructions from corrupted memory.
//
// Only exact tokens are recognised:
//
//	mul(A,B)   A and B are 1–3 decimal digits, no spaces
//	do()       enables subsequent mul instructions
//	don't()    disables subsequent mul instructions
//
// Everything else is noise. Scanning starts enabled.
package memscan

import (
	"regexp"
	"strconv"
)

// Op identifies the kind of a scanned instruction.
type Op int

const (
	// Mul multiplies its two operands.
	Mul Op = iota
	// Do re-enables multiplication.
	Do
	// Dont disables multiplication.
	Dont
)

// Instruction is one recognised token. A and B are set only for Mul.
type Instruction struct {
	Op     Op
	A, B   int
	Offset int // byte offset of the token in the input
}

var instructionRE = regexp.MustCompile(`(?P<do>do\(\))|(?P<mul>mul\((?P<a>\d{1,3}),(?P<b>\d{1,3})\))|(?P<dont>don't\(\))`)

var (
	groupDo   = instructionRE.SubexpIndex("do")
	groupMul  = instructionRE.SubexpIndex("mul")
	groupA    = instructionRE.SubexpIndex("a")
	groupB    = instructionRE.SubexpIndex("b")
	groupDont = instructionRE.SubexpIndex("dont")
)

// Scan returns every instruction in input, in order of appearance.
// Complexity: O(len(input)).
func Scan(input string) []Instruction {
	matches := instructionRE.FindAllStringSubmatchIndex(input, -1)
	out := make([]Instruction, 0, len(matches))
	for _, m := range matches {
		switch {
		case m[2*groupMul] >= 0:
			// operands are at most three digits, Atoi cannot fail
			a, _ := strconv.Atoi(input[m[2*groupA]:m[2*groupA+1]])
			b, _ := strconv.Atoi(input[m[2*groupB]:m[2*groupB+1]])
			out = append(out, Instruction{Op: Mul, A: a, B: b, Offset: m[0]})
		case m[2*groupDo] >= 0:
			out = append(out, Instruction{Op: Do, Offset: m[0]})
		case m[2*groupDont] >= 0:
			out = append(out, Instruction{Op: Dont, Offset: m[0]})
		}
	}

	return out
}

// SumProducts sums A*B over every mul instruction, ignoring do/don't.
func SumProducts(input string) int {
	sum := 0
	for _, in := range Scan(input) {
		if in.Op == Mul {
			sum += in.A * in.B
		}
	}

	return sum
}

// SumEnabledProducts sums A*B over mul instructions that are enabled at
// their position.
func SumEnabledProducts(input string) int {
	sum, enabled := 0, true
	for _, in := range Scan(input) {
		switch in.Op {
		case Do:
			enabled = true
		case Dont:
			enabled = false
		case Mul:
			if enabled {
				sum += in.A * in.B
			}
		}
	}

	return sum
}
