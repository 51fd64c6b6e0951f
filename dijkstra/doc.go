// Package dijkstra implements the classical binary-heap Dijkstra algorithm
// on the module's dense graph representation.
//
// It exists as the reference oracle: the recursive solver in package bmssp
// must agree with it on every vertex of every graph, and the verification
// harness and property tests enforce exactly that. It is also the honest
// baseline for benchmarks.
//
// The implementation uses the lazy decrease-key strategy: improvements
// push duplicate heap entries and stale entries are dropped when popped.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
//
// Options:
//
//   - WithReturnPath:  also return the predecessor array.
//   - WithMaxDistance: vertices farther than the cap are not explored.
//
// Errors:
//
//   - ErrNilGraph:    the graph pointer is nil.
//   - ErrSourceRange: the source id lies outside [0, n).
package dijkstra
