package reports

import (
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// Evaluate runs IsSafe and IsTolerantSafe over every sequence in seqs.
//
// A single MaskTable is built for the longest sequence; the batch is cut into
// contiguous chunks evaluated on at most Options.Workers goroutines. Each
// worker writes only the verdicts of its own chunk, so no locking is needed.
//
// Returns ErrLengthOutOfRange (wrapped with the offending index) if any
// sequence is longer than MaxSequenceLength, the context error if the
// context is cancelled, and ErrOracleMismatch under WithVerify.
// Complexity: O(total levels) time, O(len(seqs)) memory.
func Evaluate(seqs []Sequence, opts ...Option) (*Report, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	maxLen := 0
	for i, s := range seqs {
		if len(s) > MaxSequenceLength {
			return nil, fmt.Errorf("%w: sequence %d has length %d", ErrLengthOutOfRange, i, len(s))
		}
		maxLen = max(maxLen, len(s))
	}

	table, err := BuildMasks(maxLen)
	if err != nil {
		return nil, err
	}
	o.Logger.Debug("mask table built",
		slog.Int("max_length", maxLen),
		slog.Int("sequences", len(seqs)),
		slog.Int("workers", o.Workers),
	)

	verdicts := make([]Verdict, len(seqs))
	g, ctx := errgroup.WithContext(o.Ctx)
	g.SetLimit(o.Workers)
	for start := 0; start < len(seqs); start += o.ChunkSize {
		end := min(start+o.ChunkSize, len(seqs))
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			return evaluateChunk(seqs, verdicts, start, end, table, o.Verify)
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}
	// errgroup's derived context is cancelled by Wait; only the caller's counts.
	if err = o.Ctx.Err(); err != nil {
		return nil, err
	}

	r := &Report{Total: len(seqs), Verdicts: verdicts}
	for _, v := range verdicts {
		if v.Safe {
			r.Safe++
		}
		if v.TolerantSafe {
			r.TolerantSafe++
		}
	}
	o.Logger.Debug("batch evaluated",
		slog.Int("total", r.Total),
		slog.Int("safe", r.Safe),
		slog.Int("tolerant_safe", r.TolerantSafe),
	)

	return r, nil
}

// evaluateChunk fills verdicts[start:end].
func evaluateChunk(seqs []Sequence, verdicts []Verdict, start, end int, table *MaskTable, verify bool) error {
	for i := start; i < end; i++ {
		s := seqs[i]
		v := Verdict{
			Safe:         IsSafe(s),
			TolerantSafe: IsTolerantSafe(s, table.For(len(s))),
		}
		if verify {
			if naive := IsTolerantSafeNaive(s); naive != v.TolerantSafe {
				return fmt.Errorf("%w: sequence %d %v: bitmask=%t naive=%t",
					ErrOracleMismatch, i, s, v.TolerantSafe, naive)
			}
		}
		verdicts[i] = v
	}

	return nil
}

// CountSafe returns how many sequences pass IsSafe.
func CountSafe(seqs []Sequence) int {
	count := 0
	for _, s := range seqs {
		if IsSafe(s) {
			count++
		}
	}

	return count
}
