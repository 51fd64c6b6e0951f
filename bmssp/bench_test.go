package bmssp_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/bmssp/bmssp"
	"github.com/katalvlaran/bmssp/builder"
	"github.com/katalvlaran/bmssp/core"
	"github.com/katalvlaran/bmssp/dijkstra"
)

// benchGraph builds one deterministic sparse instance per size.
func benchGraph(b *testing.B, n int) *core.Graph {
	b.Helper()
	g, err := builder.RandomConnected(n, 4*n, builder.WithSeed(42))
	if err != nil {
		b.Fatalf("RandomConnected(%d): %v", n, err)
	}

	return g
}

// BenchmarkSolver_Sparse measures full Runs on random sparse graphs.
func BenchmarkSolver_Sparse(b *testing.B) {
	for _, n := range []int{1000, 10000, 100000} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			g := benchGraph(b, n)
			s := bmssp.FromGraph(g)

			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if err := s.Run(0); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkDijkstraBaseline_Sparse runs the reference on the same
// instances for a direct comparison.
func BenchmarkDijkstraBaseline_Sparse(b *testing.B) {
	for _, n := range []int{1000, 10000, 100000} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			g := benchGraph(b, n)

			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, _, err := dijkstra.Dijkstra(g, 0); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkSolver_Grid measures Runs on a unit-weight lattice, the shape
// with the largest equal-distance layers.
func BenchmarkSolver_Grid(b *testing.B) {
	const side = 200
	g, err := builder.Grid(side, side, builder.WithUnitWeights())
	if err != nil {
		b.Fatal(err)
	}
	s := bmssp.FromGraph(g)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if err := s.Run(0); err != nil {
			b.Fatal(err)
		}
	}
}
