package reports

import (
	"context"
	"io"
	"log/slog"
	"runtime"
)

// Option configures Evaluate.
type Option func(*Options)

// Options holds the settings for a batch evaluation.
type Options struct {
	// Ctx allows cancellation between chunks; defaults to context.Background().
	Ctx context.Context

	// Workers bounds the number of concurrently evaluated chunks.
	// Default is runtime.GOMAXPROCS(0).
	Workers int

	// ChunkSize is the number of sequences handed to a worker at once.
	ChunkSize int

	// Verify cross-checks every bitmask verdict against IsTolerantSafeNaive.
	Verify bool

	// Logger receives debug records; defaults to a discarding logger.
	Logger *slog.Logger
}

// DefaultOptions returns Options with:
//   - Background context
//   - Workers = runtime.GOMAXPROCS(0)
//   - ChunkSize = 256
//   - no oracle verification
//   - a logger that discards everything
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Workers:   runtime.GOMAXPROCS(0),
		ChunkSize: 256,
		Verify:    false,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithContext sets the cancellation context. A nil ctx has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers bounds the worker pool. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("reports: WithWorkers requires n ≥ 1")
	}

	return func(o *Options) {
		o.Workers = n
	}
}

// WithChunkSize sets how many sequences one worker evaluates per task.
// Panics if size < 1.
func WithChunkSize(size int) Option {
	if size < 1 {
		panic("reports: WithChunkSize requires size ≥ 1")
	}

	return func(o *Options) {
		o.ChunkSize = size
	}
}

// WithVerify enables the naive cross-check on every sequence.
func WithVerify() Option {
	return func(o *Options) {
		o.Verify = true
	}
}

// WithLogger installs a structured logger. A nil logger has no effect.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
