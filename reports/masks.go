package reports

import (
	"fmt"
)

// MaskTable maps a sequence length to its ordered list of removal masks.
// It is immutable after BuildMasks returns and safe for concurrent reads.
type MaskTable struct {
	byLength [][]uint64 // byLength[n] is the list for length n
}

// BuildMasks precomputes the mask lists for every length 0..maxLength.
// Returns ErrNegativeLength if maxLength < 0 and ErrLengthOutOfRange if
// maxLength > MaxSequenceLength.
// Complexity: O(L²) time and memory for L = maxLength.
func BuildMasks(maxLength int) (*MaskTable, error) {
	if maxLength < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeLength, maxLength)
	}
	if maxLength > MaxSequenceLength {
		return nil, fmt.Errorf("%w: got %d, max %d", ErrLengthOutOfRange, maxLength, MaxSequenceLength)
	}

	t := &MaskTable{byLength: make([][]uint64, maxLength+1)}
	for n := 0; n <= maxLength; n++ {
		t.byLength[n] = MasksForLength(n)
	}

	return t, nil
}

// MaxLength returns the longest sequence length the table covers.
func (t *MaskTable) MaxLength() int {
	return len(t.byLength) - 1
}

// For returns the mask list for sequences of length n.
// The returned slice is shared and must not be modified.
// Requesting a length outside the table is a caller bug and panics.
func (t *MaskTable) For(n int) []uint64 {
	if n < 0 || n >= len(t.byLength) {
		panic(fmt.Sprintf("reports: MaskTable.For(%d) outside table bound %d", n, t.MaxLength()))
	}

	return t.byLength[n]
}

// MasksForLength computes the mask list for a single sequence length n.
//
// For n ≤ 3 the list is empty. Otherwise, with level = n-1 single-step
// deltas, the n+1 entries are, in order:
//
//  1. 1<<level - 1                     no removal
//  2. full with bit 0 cleared          remove the first element
//  3. full with bit level-1 cleared    remove the last element
//  4. for i in 1..level-1: full with bits i-1 and i cleared and
//     bridging bit level+i-1 set       remove element i
//
// Entry 0 keeps all level single steps, so it has n-1 bits set; every
// removal mask has n-2.
//
// Panics if n > MaxSequenceLength.
func MasksForLength(n int) []uint64 {
	if n > MaxSequenceLength {
		panic(fmt.Sprintf("reports: MasksForLength(%d) exceeds MaxSequenceLength %d", n, MaxSequenceLength))
	}
	if n < minMaskedLength {
		return nil
	}

	level := n - 1
	full := uint64(1)<<level - 1

	masks := make([]uint64, 0, n+1)
	masks = append(masks,
		full,
		full-1,
		full-uint64(1)<<(level-1),
	)
	for i := 1; i < level; i++ {
		m := full - uint64(1)<<i - uint64(1)<<(i-1) + uint64(1)<<(i+level-1)
		masks = append(masks, m)
	}

	return masks
}
