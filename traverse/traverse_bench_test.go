// ============================================================================
// LOOKAHEAD TRAVERSAL ENGINE PERFORMANCE BENCHMARK SUITE
// ============================================================================
//
// Per-iteration cost of the traversal under each lookahead policy. Working
// sets are sized to spill well past L2 so the increment's line fill is a
// real miss; on cache-sensitive hardware the prefetch variant should report
// materially lower ns/op at benchmark lookahead depth.
//
// Measurement methodology:
//   - Buffer allocated and faulted in before the timer starts
//   - Trip count rides b.N so ns/op is per traversal iteration
//   - Warmup pass touches the seed path before measurement

package traverse

import (
	"fmt"
	"testing"
)

// benchWorkingSet is 2^22 counters = 32 MiB, past L2 on commodity parts
// while keeping CI memory use reasonable.
const benchWorkingSet = 1 << 22

// benchTraversal measures one policy pair at a given lookahead depth.
func benchTraversal(b *testing.B, opHighest Op, lookahead int) {
	buf := make([]int64, benchWorkingSet)

	// Fault the buffer in so page faults bill to setup, not the loop.
	for i := range buf {
		buf[i] = 0
	}

	cfg := Config{BufferLen: benchWorkingSet, Iters: b.N, Lookahead: lookahead}

	b.ReportAllocs()
	b.ResetTimer()

	Run(cfg, buf, opHighest, OpIncrement)
}

// BenchmarkTraversalBaseline measures the nop-lookahead (unhinted) pass.
func BenchmarkTraversalBaseline(b *testing.B) {
	for _, ahead := range []int{4, 32, 128} {
		b.Run(fmt.Sprintf("ahead_%d", ahead), func(b *testing.B) {
			benchTraversal(b, OpNop, ahead)
		})
	}
}

// BenchmarkTraversalPrefetch measures the prefetch-hinted pass.
func BenchmarkTraversalPrefetch(b *testing.B) {
	for _, ahead := range []int{4, 32, 128} {
		b.Run(fmt.Sprintf("ahead_%d", ahead), func(b *testing.B) {
			benchTraversal(b, OpPrefetch, ahead)
		})
	}
}

// BenchmarkApply isolates operation dispatch from ring maintenance.
func BenchmarkApply(b *testing.B) {
	buf := make([]int64, 1024)

	for _, op := range []Op{OpNop, OpPrefetch, OpIncrement} {
		b.Run(op.String(), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				op.apply(buf, uint64(i)&1023)
			}
		})
	}
}
