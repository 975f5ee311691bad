package reports

import "errors"

var (
	// ErrNegativeLength indicates a negative maximum length was requested.
	ErrNegativeLength = errors.New("reports: length must be non-negative")

	// ErrLengthOutOfRange indicates a sequence (or requested table bound)
	// longer than MaxSequenceLength, which the 64-bit masks cannot describe.
	ErrLengthOutOfRange = errors.New("reports: length exceeds MaxSequenceLength")

	// ErrOracleMismatch indicates the bitmask evaluator and the naive
	// reference disagreed on a sequence. Only reported under WithVerify.
	ErrOracleMismatch = errors.New("reports: bitmask and naive evaluation disagree")
)
