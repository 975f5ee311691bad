package reports_test

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2024/reports"
)

// TestBuildMasks_Errors verifies the table bound is validated.
func TestBuildMasks_Errors(t *testing.T) {
	_, err := reports.BuildMasks(-1)
	assert.ErrorIs(t, err, reports.ErrNegativeLength)

	_, err = reports.BuildMasks(reports.MaxSequenceLength + 1)
	assert.ErrorIs(t, err, reports.ErrLengthOutOfRange)

	tbl, err := reports.BuildMasks(reports.MaxSequenceLength)
	require.NoError(t, err)
	assert.Equal(t, reports.MaxSequenceLength, tbl.MaxLength())
}

// TestMasksForLength_Layout pins the exact bit patterns for n=4 and n=5.
func TestMasksForLength_Layout(t *testing.T) {
	// n=4, level=3: full=0b111, bridging bits at 3 and 4.
	assert.Equal(t, []uint64{
		0b00111, // no removal
		0b00110, // remove first
		0b00011, // remove last
		0b01100, // remove 1: clear bits 0,1; set bit 3 (seq[0]→seq[2])
		0b10001, // remove 2: clear bits 1,2; set bit 4 (seq[1]→seq[3])
	}, reports.MasksForLength(4))

	// n=5, level=4: bridging bits at 4, 5, 6.
	assert.Equal(t, []uint64{
		0b0001111,
		0b0001110,
		0b0000111,
		0b0011100,
		0b0101001,
		0b1000011,
	}, reports.MasksForLength(5))
}

// TestMaskTable_Shape checks entry counts for every length.
func TestMaskTable_Shape(t *testing.T) {
	tbl, err := reports.BuildMasks(reports.MaxSequenceLength)
	require.NoError(t, err)

	for n := 0; n <= reports.MaxSequenceLength; n++ {
		if n <= 3 {
			assert.Empty(t, tbl.For(n), "length %d", n)
			continue
		}
		assert.Len(t, tbl.For(n), n+1, "length %d", n)
	}
}

// TestMaskTable_Popcount checks that each removal mask keeps exactly n-2
// deltas, the no-removal mask n-1, and that no mask leaves the 2n-3 bit universe.
func TestMaskTable_Popcount(t *testing.T) {
	tbl, err := reports.BuildMasks(reports.MaxSequenceLength)
	require.NoError(t, err)

	for n := 4; n <= reports.MaxSequenceLength; n++ {
		universe := uint64(1)<<(2*n-3) - 1
		for idx, m := range tbl.For(n) {
			assert.Zero(t, m&^universe, "length %d mask %d escapes universe", n, idx)
			want := n - 2
			if idx == 0 {
				want = n - 1
			}
			assert.Equal(t, want, bits.OnesCount64(m), "length %d mask %d", n, idx)
		}
	}
}

// TestMaskTable_Distinct ensures no two removal candidates collapse onto one mask.
func TestMaskTable_Distinct(t *testing.T) {
	for n := 4; n <= reports.MaxSequenceLength; n++ {
		seen := make(map[uint64]bool)
		for _, m := range reports.MasksForLength(n) {
			assert.False(t, seen[m], "length %d duplicate mask %b", n, m)
			seen[m] = true
		}
	}
}

// TestBuildMasks_Idempotent builds the table twice and compares.
func TestBuildMasks_Idempotent(t *testing.T) {
	a, err := reports.BuildMasks(20)
	require.NoError(t, err)
	b, err := reports.BuildMasks(20)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	for n := 0; n <= 20; n++ {
		assert.Equal(t, reports.MasksForLength(n), a.For(n))
	}
}

// TestMaskTable_ForOutOfRange verifies lookups beyond the bound fail fast.
func TestMaskTable_ForOutOfRange(t *testing.T) {
	tbl, err := reports.BuildMasks(5)
	require.NoError(t, err)

	assert.Panics(t, func() { tbl.For(6) })
	assert.Panics(t, func() { tbl.For(-1) })
	assert.Panics(t, func() { reports.MasksForLength(reports.MaxSequenceLength + 1) })
}
