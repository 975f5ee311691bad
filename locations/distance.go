package locations

import (
	"container/heap"
	"errors"
	"fmt"
	"slices"
)

// ErrLengthMismatch indicates the two lists cannot be paired one-to-one.
var ErrLengthMismatch = errors.New("locations: lists differ in length")

// TotalDistance pairs the lists in ascending order using two min-heaps and
// returns the sum of absolute pair differences.
// Complexity: O(n log n) time, O(n) memory.
func TotalDistance(left, right []int64) (int64, error) {
	if len(left) != len(right) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(left), len(right))
	}

	// 1) Copy into heaps so the callers' slices stay untouched.
	lh := idHeap(slices.Clone(left))
	rh := idHeap(slices.Clone(right))
	heap.Init(&lh)
	heap.Init(&rh)

	// 2) Pop pairs smallest-first.
	var sum int64
	for lh.Len() > 0 {
		l := heap.Pop(&lh).(int64)
		r := heap.Pop(&rh).(int64)
		sum += absDiff(l, r)
	}

	return sum, nil
}

// TotalDistanceSorted is the sort-and-zip reference for TotalDistance.
// Complexity: O(n log n) time, O(n) memory.
func TotalDistanceSorted(left, right []int64) (int64, error) {
	if len(left) != len(right) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(left), len(right))
	}
	l, r := slices.Clone(left), slices.Clone(right)
	slices.Sort(l)
	slices.Sort(r)

	var sum int64
	for i := range l {
		sum += absDiff(l[i], r[i])
	}

	return sum, nil
}

func absDiff(a, b int64) int64 {
	if a > b {
		return a - b
	}

	return b - a
}

// idHeap is a min-heap of location IDs for container/heap.
type idHeap []int64

// Len returns the number of items in the heap.
func (h idHeap) Len() int { return len(h) }

// Less orders smaller IDs first.
func (h idHeap) Less(i, j int) bool { return h[i] < h[j] }

// Swap swaps two elements in the heap.
func (h idHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push adds x, which must be an int64.
func (h *idHeap) Push(x any) { *h = append(*h, x.(int64)) }

// Pop removes and returns the last element.
func (h *idHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]

	return x
}
