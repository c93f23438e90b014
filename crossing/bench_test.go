package crossing_test

import (
	"testing"

	"github.com/katalvlaran/icefield/builder"
	"github.com/katalvlaran/icefield/crossing"
)

// benchmarkCount runs the solver selected by opts on a seeded random
// rows×cols field. It resets the timer after setup and fails on
// unexpected errors.
func benchmarkCount(b *testing.B, rows, cols int, opts crossing.Options) {
	g, err := builder.Random(rows, cols, 0.2, 1)
	if err != nil {
		b.Fatalf("Random failed: %v", err)
	}

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err = crossing.Count(g, opts); err != nil {
			b.Fatalf("Count failed: %v", err)
		}
	}
}

// BenchmarkCountDynamic_FullTable benchmarks the DP solver with a full
// 100×100 table.
func BenchmarkCountDynamic_FullTable(b *testing.B) {
	opts := crossing.DefaultOptions()
	opts.Table = crossing.FullTable
	benchmarkCount(b, 100, 100, opts)
}

// BenchmarkCountDynamic_TwoRows benchmarks the DP solver with the rolling
// two-row arena on the same 100×100 field.
func BenchmarkCountDynamic_TwoRows(b *testing.B) {
	opts := crossing.DefaultOptions()
	opts.Table = crossing.TwoRows
	benchmarkCount(b, 100, 100, opts)
}

// BenchmarkCountExhaustive_BitReplay benchmarks the oracle's full 2^14
// pattern scan on an 8×8 field.
func BenchmarkCountExhaustive_BitReplay(b *testing.B) {
	opts := crossing.DefaultOptions()
	opts.Algo = crossing.Exhaustive
	opts.Enum = crossing.BitReplay
	benchmarkCount(b, 8, 8, opts)
}

// BenchmarkCountExhaustive_Combinations benchmarks the oracle restricted to
// the C(14,7) viable patterns on the same 8×8 field.
func BenchmarkCountExhaustive_Combinations(b *testing.B) {
	opts := crossing.DefaultOptions()
	opts.Algo = crossing.Exhaustive
	opts.Enum = crossing.Combinations
	benchmarkCount(b, 8, 8, opts)
}
