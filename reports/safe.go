package reports

// Classify reports the kind of step from a to b.
// Complexity: O(1).
func Classify(a, b int32) StepKind {
	switch {
	case a < b:
		return Ascending
	case a > b:
		return Descending
	default:
		return Flat
	}
}

// inRange reports whether |a-b| lies in [MinStep, MaxStep].
// The difference is taken in int64 so extreme int32 values cannot overflow.
func inRange(a, b int32) bool {
	d := int64(a) - int64(b)
	if d < 0 {
		d = -d
	}

	return d >= MinStep && d <= MaxStep
}

// IsSafe reports whether seq is strictly monotonic with every step in
// [MinStep, MaxStep]. The direction is fixed by the first pair; a Flat first
// pair is unsafe. Sequences of length 0 or 1 have no steps and are safe.
// Complexity: O(n).
func IsSafe(seq Sequence) bool {
	return isSafeSkipping(seq, -1)
}

// isSafeSkipping runs the base check as if seq[skip] were absent.
// skip < 0 checks the whole sequence. Nothing is copied.
func isSafeSkipping(seq Sequence, skip int) bool {
	var (
		direction = Flat // unknown until the first pair
		prev      int32
		havePrev  bool
	)
	for i, cur := range seq {
		if i == skip {
			continue
		}
		if !havePrev {
			prev, havePrev = cur, true
			continue
		}
		kind := Classify(prev, cur)
		if kind == Flat || !inRange(prev, cur) {
			return false
		}
		if direction == Flat {
			direction = kind // first pair fixes the direction
		} else if kind != direction {
			return false
		}
		prev = cur
	}

	return true
}
