package reports

// Domain constants of the validator. They are not configurable.
const (
	// MinStep is the smallest accepted step magnitude; equal neighbours are never valid.
	MinStep = 1
	// MaxStep is the largest accepted step magnitude.
	MaxStep = 3

	// MaxSequenceLength bounds the length a uint64 bitset can describe:
	// a sequence of length n needs (n-1)+(n-2) = 2n-3 bits.
	MaxSequenceLength = 33

	// minMaskedLength is the shortest sequence evaluated through masks.
	// Shorter sequences are re-evaluated directly.
	minMaskedLength = 4
)

// Sequence is an ordered list of levels under validation.
// It is never modified by this package.
type Sequence []int32

// StepKind classifies the step between two levels.
type StepKind int

const (
	// Flat means both levels are equal.
	Flat StepKind = iota
	// Ascending means the second level is larger.
	Ascending
	// Descending means the second level is smaller.
	Descending
)

// String implements fmt.Stringer.
func (k StepKind) String() string {
	switch k {
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	default:
		return "flat"
	}
}

// DeltaBitset holds the two bit vectors describing a sequence's deltas.
//
// Valid bit b is set iff the delta at b has magnitude in [MinStep, MaxStep].
// Sign bit b is set iff that delta is positive, i.e. seq[a]-seq[b] > 0
// for the ordered pair (a, b) the bit stands for (a descending step).
type DeltaBitset struct {
	Valid uint64
	Sign  uint64
	Len   int // length of the sequence the bitset was computed from
}

// Verdict is the per-sequence outcome of Evaluate.
type Verdict struct {
	Safe         bool // safe without removal
	TolerantSafe bool // safe with at most one removal
}

// Report aggregates the verdicts of a batch.
type Report struct {
	Total        int
	Safe         int
	TolerantSafe int
	Verdicts     []Verdict // same order as the input batch
}
