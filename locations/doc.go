// Package locations reconciles two lists of location IDs.
//
// The distance between the lists pairs the smallest ID of the left list with
// the smallest of the right, the second smallest with the second smallest,
// and so on, summing the absolute differences of each pair.
//
// Two implementations are provided:
//
//   - TotalDistance:       streams both lists through min-heaps, O(n log n)
//   - TotalDistanceSorted: sorts copies of both lists and zips them, O(n log n)
//
// Both return ErrLengthMismatch when the lists differ in length and never
// modify their arguments.
package locations
