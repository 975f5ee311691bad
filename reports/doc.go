// Package reports validates short integer sequences ("reports") for
// bounded monotonicity, optionally tolerating a single bad element.
//
// What:
//
//   - IsSafe: a sequence is safe when it is strictly increasing or strictly
//     decreasing and every consecutive step has magnitude in [MinStep, MaxStep].
//   - IsTolerantSafe: a sequence is tolerant-safe when it is safe as-is or
//     after removing exactly one element. The removal is never materialized;
//     instead every candidate is expressed as a precomputed bitmask over the
//     sequence's single-step and double-step deltas.
//   - BuildMasks: precomputes the mask lists for every length up to a bound.
//   - Evaluate: runs both checks over a batch on a bounded worker pool.
//
// Bit layout for a sequence of length n (level = n-1):
//
//	bit i          (0 ≤ i ≤ n-2): delta seq[i] → seq[i+1]
//	bit (n-1)+i    (0 ≤ i ≤ n-3): delta seq[i] → seq[i+2]  (bridging delta)
//
// For n ≥ 4 the mask list has n+1 entries: no removal, remove first,
// remove last, then remove element i for each interior i. Removing an
// interior element clears the two single-step bits touching it and sets the
// bridging bit that skips over it.
//
// Complexity:
//
//   - ComputeDeltas:   Time O(n), Memory O(1)
//   - IsTolerantSafe:  Time O(n) (n+1 masks at O(1) each), Memory O(1)
//   - IsTolerantSafeNaive: Time O(n²), Memory O(n) per candidate
//   - BuildMasks(L):   Time O(L²), Memory O(L²)
//
// Errors:
//
//   - ErrNegativeLength    maxLength < 0
//   - ErrLengthOutOfRange  length exceeds MaxSequenceLength
//   - ErrOracleMismatch    bitmask and naive results disagree (WithVerify)
//
// The MaskTable is read-only after BuildMasks returns and may be shared by
// any number of goroutines.
package reports
