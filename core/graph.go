package core

import "fmt"

// arc is one directed edge in the forward-star arena.
// next links to the previous arc appended at the same source vertex, so a
// vertex's chain enumerates its out-arcs in reverse insertion order.
type arc struct {
	to     int32
	next   int32
	weight int64
}

// Graph is a fixed-size directed graph over vertices [0, n) with
// non-negative int64 weights. The zero value is not usable; construct with
// NewGraph. Graph is not safe for concurrent mutation.
type Graph struct {
	n     int
	heads []int32 // heads[u] = id of the most recently added arc out of u
	arcs  []arc   // arcs[0] is an unused terminator slot
}

// NewGraph returns an empty directed graph over n vertices.
// Returns ErrBadVertexCount if n < 1.
func NewGraph(n int) (*Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("NewGraph(n=%d): %w", n, ErrBadVertexCount)
	}

	return &Graph{
		n:     n,
		heads: make([]int32, n),
		arcs:  make([]arc, 1, n+1), // slot 0 reserved as the chain terminator
	}, nil
}

// VertexCount returns n, the fixed number of vertices.
func (g *Graph) VertexCount() int { return g.n }

// EdgeCount returns the number of arcs added so far.
func (g *Graph) EdgeCount() int { return len(g.arcs) - 1 }

// AddEdge appends the directed arc u→v with the given weight.
// Parallel arcs and self-loops are permitted; shortest-path relaxation is
// idempotent under min, so duplicates only cost time.
//
// Returns ErrVertexRange if u or v lies outside [0, n), ErrNegativeWeight
// if weight < 0.
func (g *Graph) AddEdge(u, v int, weight int64) error {
	if u < 0 || u >= g.n {
		return fmt.Errorf("AddEdge: u=%d not in [0,%d): %w", u, g.n, ErrVertexRange)
	}
	if v < 0 || v >= g.n {
		return fmt.Errorf("AddEdge: v=%d not in [0,%d): %w", v, g.n, ErrVertexRange)
	}
	if weight < 0 {
		return fmt.Errorf("AddEdge: %d→%d weight=%d: %w", u, v, weight, ErrNegativeWeight)
	}

	g.arcs = append(g.arcs, arc{to: int32(v), next: g.heads[u], weight: weight})
	g.heads[u] = int32(len(g.arcs) - 1)

	return nil
}

// ForEachArc calls visit(v, w) for every arc u→v with weight w, in
// forward-star chain order (reverse insertion order). Iteration order is
// deterministic for a fixed construction sequence.
//
// u must lie in [0, n); out-of-range ids are ignored (no arcs to visit).
func (g *Graph) ForEachArc(u int, visit func(v int, w int64)) {
	if u < 0 || u >= g.n {
		return
	}
	for ai := g.heads[u]; ai != noArc; ai = g.arcs[ai].next {
		visit(int(g.arcs[ai].to), g.arcs[ai].weight)
	}
}
