package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2024/reports"
)

var (
	// ErrMalformedToken indicates a token that is not a valid integer.
	ErrMalformedToken = errors.New("input: malformed integer token")

	// ErrRaggedLine indicates a line whose column count differs from the expected one.
	ErrRaggedLine = errors.New("input: unexpected number of columns")
)

// maxLineBytes raises bufio.Scanner's default token limit for wide grids.
const maxLineBytes = 1 << 20

// Option configures ReadSequences.
type Option func(*options)

type options struct {
	keepBlank bool
}

// WithKeepBlank makes ReadSequences emit an empty sequence for blank lines
// instead of skipping them.
func WithKeepBlank() Option {
	return func(o *options) {
		o.keepBlank = true
	}
}

// Lines returns every line of r with trailing whitespace removed.
// A trailing newline does not produce an extra empty line.
func Lines(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var out []string
	for sc.Scan() {
		out = append(out, strings.TrimRight(sc.Text(), " \t\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("input: read: %w", err)
	}

	return out, nil
}

// ReadSequences parses one sequence of signed 32-bit integers per line.
// Blank lines are skipped unless WithKeepBlank is given.
func ReadSequences(r io.Reader, opts ...Option) ([]reports.Sequence, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	lines, err := Lines(r)
	if err != nil {
		return nil, err
	}

	out := make([]reports.Sequence, 0, len(lines))
	for ln, line := range lines {
		fields := strings.Fields(line)
		if len(fields) == 0 && !o.keepBlank {
			continue
		}
		seq := make(reports.Sequence, len(fields))
		for i, tok := range fields {
			v, err := strconv.ParseInt(tok, 10, 32)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedToken, ln+1, tok)
			}
			seq[i] = int32(v)
		}
		out = append(out, seq)
	}

	return out, nil
}

// ReadColumns parses lines of exactly columns whitespace-separated integers
// and returns them column-wise: result[c][row]. Blank lines are skipped.
// Panics if columns < 1.
func ReadColumns(r io.Reader, columns int) ([][]int64, error) {
	if columns < 1 {
		panic(fmt.Sprintf("input: ReadColumns requires columns ≥ 1, got %d", columns))
	}

	lines, err := Lines(r)
	if err != nil {
		return nil, err
	}

	out := make([][]int64, columns)
	for c := range out {
		out[c] = make([]int64, 0, len(lines))
	}
	for ln, line := range lines {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != columns {
			return nil, fmt.Errorf("%w: line %d: got %d, want %d", ErrRaggedLine, ln+1, len(fields), columns)
		}
		for c, tok := range fields {
			v, err := strconv.ParseInt(tok, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedToken, ln+1, tok)
			}
			out[c] = append(out[c], v)
		}
	}

	return out, nil
}
