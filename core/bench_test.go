package core_test

import (
	"testing"

	"github.com/katalvlaran/bmssp/core"
)

// BenchmarkAddEdge measures forward-star construction throughput.
func BenchmarkAddEdge(b *testing.B) {
	const n = 1 << 16

	b.ReportAllocs()
	b.ResetTimer()

	g, _ := core.NewGraph(n)
	for i := 0; i < b.N; i++ {
		_ = g.AddEdge(i%n, (i+1)%n, int64(i&1023))
	}
}

// BenchmarkForEachArc measures adjacency iteration over a ring with
// out-degree 8.
func BenchmarkForEachArc(b *testing.B) {
	const n = 1 << 12
	g, _ := core.NewGraph(n)
	for u := 0; u < n; u++ {
		for d := 1; d <= 8; d++ {
			_ = g.AddEdge(u, (u+d)%n, int64(d))
		}
	}

	b.ReportAllocs()
	b.ResetTimer()

	var sink int64
	for i := 0; i < b.N; i++ {
		g.ForEachArc(i%n, func(_ int, w int64) { sink += w })
	}
	_ = sink
}
