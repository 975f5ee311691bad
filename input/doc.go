// Package input turns line-oriented puzzle text into typed values.
//
// What:
//
//   - Lines:         trimmed lines of a reader.
//   - ReadSequences: one reports.Sequence per line of whitespace-separated int32s.
//   - ReadColumns:   whitespace-separated numbers split column-wise.
//
// Errors:
//
//   - ErrMalformedToken  a token is not a base-10 integer in range
//   - ErrRaggedLine      a line has a different number of columns than expected
//
// Every error is wrapped with the 1-based line number so callers can report
// the exact location; use errors.Is to match the sentinel.
package input
