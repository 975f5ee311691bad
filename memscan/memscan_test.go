package memscan_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/aoc2024/memscan"
)

const (
	sample1 = "xmul(2,4)%&mul[3,7]!@^do_not_mul(5,5)+mul(32,64]then(mul(11,8)mul(8,5))"
	sample2 = "xmul(2,4)&mul[3,7]!^don't()_mul(5,5)+mul(32,64](mul(11,8)undo()?mul(8,5))"
)

// TestScan checks token kinds, operands and offsets.
func TestScan(t *testing.T) {
	got := memscan.Scan("mul(1,2)don't()mul(123,4)do()mul(1234,5)mul( 1,2)")
	assert.Equal(t, []memscan.Instruction{
		{Op: memscan.Mul, A: 1, B: 2, Offset: 0},
		{Op: memscan.Dont, Offset: 8},
		{Op: memscan.Mul, A: 123, B: 4, Offset: 15},
		{Op: memscan.Do, Offset: 25},
	}, got)
}

// TestSumProducts uses the unconditional example (161).
func TestSumProducts(t *testing.T) {
	assert.Equal(t, 161, memscan.SumProducts(sample1))
	assert.Zero(t, memscan.SumProducts(""))
}

// TestSumEnabledProducts uses the conditional example (48).
func TestSumEnabledProducts(t *testing.T) {
	assert.Equal(t, 48, memscan.SumEnabledProducts(sample2))
	assert.Equal(t, 161, memscan.SumEnabledProducts(sample1))
}

// ExampleSumEnabledProducts shows do()/don't() toggling.
func ExampleSumEnabledProducts() {
	fmt.Println(memscan.SumEnabledProducts("mul(2,3)don't()mul(9,9)do()mul(1,4)"))

	// Output:
	// 10
}
