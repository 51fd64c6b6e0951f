// Package core provides the dense directed-graph representation shared by
// every shortest-path algorithm in this module.
//
// What:
//
//   - Graph: a fixed-size directed graph over integer vertices [0, n) with
//     non-negative int64 edge weights, stored as a forward-star adjacency:
//     a per-vertex head index into an append-only arc arena, each arc
//     carrying (to, weight, next-arc-index).
//   - Inf: the int64 distance sentinel for "unreachable".
//   - NoVertex: sentinel for "no predecessor / no next hop".
//
// Why:
//
//   - Shortest-path kernels touch every arc of a vertex many times; the
//     forward-star layout keeps a vertex's out-arcs one pointer-chase apart
//     with zero per-edge allocations after construction.
//   - Integer vertex ids index straight into distance and predecessor
//     arrays, so algorithm state is flat arrays rather than hash maps.
//
// The vertex set is fixed at construction and arcs are append-only:
// algorithms may assume the adjacency never changes underneath them.
//
// Complexity:
//
//   - NewGraph:  O(n) time, O(n + m) space over the graph's lifetime.
//   - AddEdge:   O(1) amortized.
//   - ForEachArc: O(out-degree(u)).
//
// Errors:
//
//   - ErrBadVertexCount: NewGraph called with n < 1.
//   - ErrVertexRange:    a vertex id outside [0, n).
//   - ErrNegativeWeight: an arc with weight < 0.
package core
