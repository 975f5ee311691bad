package reports_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/aoc2024/reports"
)

// benchBatch returns 1000 deterministic reports of length 5..8,
// roughly the shape of a real puzzle input.
func benchBatch() []reports.Sequence {
	rng := rand.New(rand.NewSource(1))
	batch := make([]reports.Sequence, 1000)
	for i := range batch {
		batch[i] = randomReport(rng, 5+rng.Intn(4))
	}

	return batch
}

// BenchmarkIsTolerantSafe measures the bitmask path over a batch.
// Complexity: O(n) per report.
func BenchmarkIsTolerantSafe(b *testing.B) {
	batch := benchBatch()
	table, err := reports.BuildMasks(8)
	if err != nil {
		b.Fatalf("BuildMasks: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, s := range batch {
			_ = reports.IsTolerantSafe(s, table.For(len(s)))
		}
	}
}

// BenchmarkIsTolerantSafeNaive measures the copy-and-recheck reference.
// Complexity: O(n²) per report.
func BenchmarkIsTolerantSafeNaive(b *testing.B) {
	batch := benchBatch()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, s := range batch {
			_ = reports.IsTolerantSafeNaive(s)
		}
	}
}

// BenchmarkBuildMasks measures building the full table.
func BenchmarkBuildMasks(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = reports.BuildMasks(reports.MaxSequenceLength)
	}
}
