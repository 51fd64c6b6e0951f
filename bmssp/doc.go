// Package bmssp computes single-source shortest paths on directed graphs
// with non-negative integer weights using the bounded multi-source
// shortest-path (BMSSP) recursive decomposition, which avoids the full
// priority-queue sort over all vertices that classical Dijkstra performs.
//
// What:
//
//   - Solver: the façade — construct over n vertices (or wrap an existing
//     core.Graph), add arcs, Run from a source, then query Distance,
//     NextHop and PathTo.
//   - The recursion underneath: BMSSP(ℓ, B, S) partitions work by distance
//     ranges. Each frame finds pivot vertices whose tentative shortest-path
//     subtrees are heavy (FindPivots), drives a blockheap.Heap frontier of
//     pivots, and recurses on the M smallest frontier vertices at a tighter
//     bound until level 0 runs a bounded Dijkstra (BaseCase).
//
// Why:
//
//   - Sorting the frontier costs Ω(n log n) over a full run. Bounding how
//     many vertices each frame may complete, and keeping the frontier only
//     block-partitioned rather than sorted, brings the comparison count
//     below the sorting barrier on sparse graphs.
//
// Parameters k, t and the recursion depth l are derived once per Run from
// n: k = ⌊log₂(n)^{1/3}⌋, t = ⌊log₂(n)^{2/3}⌋, l = ⌈log₂(n)/t⌉, each
// floored at 1.
//
// Execution model: strictly single-threaded and synchronous. The distance
// and predecessor arrays are shared by every frame of the recursion;
// distances only ever decrease, so deeper frames cannot invalidate the
// invariants of shallower ones. Each frame owns one blockheap instance,
// released at frame exit.
//
// Errors:
//
//   - ErrVertexRange:    a vertex id outside [0, n).
//   - ErrRunNotCalled:   Distance/NextHop/PathTo before Run.
//   - ErrNoPredecessors: NextHop/PathTo without WithPredecessors.
//
// Unreachable targets are not errors: Distance reports core.Inf and
// NextHop reports core.NoVertex.
package bmssp
