// Package bmssp is a single-source shortest-path toolkit built around the
// bounded multi-source shortest-path (BMSSP) recursion — the algorithm
// that breaks the sorting barrier of classical Dijkstra on sparse
// directed graphs with non-negative integer weights.
//
// What lives where:
//
//	core/      — dense forward-star graph, distance sentinels
//	blockheap/ — the block-partitioned frontier structure
//	bmssp/     — the Solver façade and the recursion itself
//	dijkstra/  — classical binary-heap reference implementation
//	builder/   — deterministic graph generators for tests and benchmarks
//	cmd/bmssp/ — verification and benchmark command-line driver
//
// Quick start:
//
//	s, _ := bmssp.New(5, bmssp.WithPredecessors())
//	_ = s.AddEdge(0, 1, 1)
//	_ = s.AddEdge(1, 2, 1)
//	_ = s.Run(0)
//	d, _ := s.Distance(2) // 2
//
// The solver agrees with package dijkstra on every vertex of every graph;
// `bmssp verify` runs that comparison over randomized campaigns and the
// property tests enforce it per package.
package bmssp
