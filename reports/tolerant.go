package reports

import (
	"fmt"
)

// ComputeDeltas builds the Valid and Sign bitsets of seq in a single pass.
// Single-step deltas occupy bits 0..n-2, double-step deltas bits n-1..2n-4.
// Panics if len(seq) > MaxSequenceLength.
// Complexity: O(n).
func ComputeDeltas(seq Sequence) DeltaBitset {
	n := len(seq)
	if n > MaxSequenceLength {
		panic(fmt.Sprintf("reports: sequence of length %d exceeds MaxSequenceLength %d", n, MaxSequenceLength))
	}

	d := DeltaBitset{Len: n}
	for i := 0; i+1 < n; i++ {
		d.set(uint(i), seq[i], seq[i+1])
		if i+2 < n {
			d.set(uint(n-1+i), seq[i], seq[i+2])
		}
	}

	return d
}

// set records the delta a → b at bit.
func (d *DeltaBitset) set(bit uint, a, b int32) {
	if inRange(a, b) {
		d.Valid |= 1 << bit
	}
	if a > b {
		d.Sign |= 1 << bit
	}
}

// Satisfies reports whether the deltas selected by mask are all in range
// and share one sign.
// Complexity: O(1).
func (d DeltaBitset) Satisfies(mask uint64) bool {
	if d.Valid&mask != mask {
		return false
	}
	sign := d.Sign & mask

	return sign == 0 || sign == mask
}

// IsTolerantSafe reports whether seq is safe as-is or after removing one
// element. masks must be the entry for len(seq), typically table.For(len(seq)).
//
// Sequences shorter than four elements carry no masks; they are decided by
// the base check, then by the base check with each index skipped in turn.
//
// Passing a mask list that does not belong to len(seq) is a caller bug and
// panics.
// Complexity: O(n).
func IsTolerantSafe(seq Sequence, masks []uint64) bool {
	n := len(seq)
	if len(masks) == 0 {
		if n >= minMaskedLength {
			panic(fmt.Sprintf("reports: no masks supplied for sequence of length %d", n))
		}

		return isShortTolerantSafe(seq)
	}
	if len(masks) != n+1 {
		panic(fmt.Sprintf("reports: %d masks supplied for sequence of length %d, want %d", len(masks), n, n+1))
	}

	deltas := ComputeDeltas(seq)
	for _, m := range masks {
		if deltas.Satisfies(m) {
			return true
		}
	}

	return false
}

// isShortTolerantSafe handles n ≤ 3 by direct re-evaluation.
func isShortTolerantSafe(seq Sequence) bool {
	if isSafeSkipping(seq, -1) {
		return true
	}
	for skip := range seq {
		if isSafeSkipping(seq, skip) {
			return true
		}
	}

	return false
}

// IsTolerantSafeNaive is the reference implementation of IsTolerantSafe:
// it copies seq without each element in turn and reruns IsSafe.
// Complexity: O(n²) time, O(n) memory.
func IsTolerantSafeNaive(seq Sequence) bool {
	if IsSafe(seq) {
		return true
	}
	variant := make(Sequence, 0, len(seq))
	for i := range seq {
		variant = append(variant[:0], seq[:i]...)
		variant = append(variant, seq[i+1:]...)
		if IsSafe(variant) {
			return true
		}
	}

	return false
}
