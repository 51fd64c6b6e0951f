package builder

import (
	"fmt"

	"github.com/katalvlaran/bmssp/core"
)

// addEdge emits one edge under the resolved options, sampling its weight
// and mirroring it when the construction is undirected.
func addEdge(g *core.Graph, u, v int, cfg *Options) error {
	w := cfg.weight()
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("builder: AddEdge(%d→%d, w=%d): %w", u, v, w, err)
	}
	if cfg.Undirected {
		if err := g.AddEdge(v, u, w); err != nil {
			return fmt.Errorf("builder: AddEdge(%d→%d, w=%d): %w", v, u, w, err)
		}
	}

	return nil
}

// prepare validates the vertex count, resolves options and allocates the
// graph; shared prologue of every constructor.
func prepare(name string, n, minN int, opts []Option) (*core.Graph, *Options, error) {
	if n < minN {
		return nil, nil, fmt.Errorf("%s: n=%d < min=%d: %w", name, n, minN, ErrTooFewVertices)
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.resolve(); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", name, err)
	}
	g, err := core.NewGraph(n)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", name, err)
	}

	return g, &cfg, nil
}

// Path builds the chain 0→1→…→n-1.
func Path(n int, opts ...Option) (*core.Graph, error) {
	g, cfg, err := prepare("Path", n, 1, opts)
	if err != nil {
		return nil, err
	}
	for i := 0; i+1 < n; i++ {
		if err := addEdge(g, i, i+1, cfg); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Grid builds a rows×cols lattice. Vertex (r, c) has id r*cols + c; arcs
// run rightward and downward (both ways under WithUndirected).
func Grid(rows, cols int, opts ...Option) (*core.Graph, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("Grid: %dx%d: %w", rows, cols, ErrTooFewVertices)
	}
	g, cfg, err := prepare("Grid", rows*cols, 1, opts)
	if err != nil {
		return nil, err
	}

	id := func(r, c int) int { return r*cols + c }
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				if err := addEdge(g, id(r, c), id(r, c+1), cfg); err != nil {
					return nil, err
				}
			}
			if r+1 < rows {
				if err := addEdge(g, id(r, c), id(r+1, c), cfg); err != nil {
					return nil, err
				}
			}
		}
	}

	return g, nil
}

// Star builds a hub at vertex 0 with spokes to 1..n-1.
func Star(n int, opts ...Option) (*core.Graph, error) {
	g, cfg, err := prepare("Star", n, 2, opts)
	if err != nil {
		return nil, err
	}
	for i := 1; i < n; i++ {
		if err := addEdge(g, 0, i, cfg); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Complete builds one edge per unordered pair {i, j}, i < j, oriented
// i→j (both ways under WithUndirected). Quadratic; meant for small n.
func Complete(n int, opts ...Option) (*core.Graph, error) {
	g, cfg, err := prepare("Complete", n, 1, opts)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if err := addEdge(g, i, j, cfg); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// RandomTree attaches each vertex i ≥ 1 to a uniformly random earlier
// vertex, yielding a random recursive tree rooted at 0.
func RandomTree(n int, opts ...Option) (*core.Graph, error) {
	g, cfg, err := prepare("RandomTree", n, 1, opts)
	if err != nil {
		return nil, err
	}
	for i := 1; i < n; i++ {
		parent := cfg.Rand.Intn(i)
		if err := addEdge(g, parent, i, cfg); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// RandomConnected builds a random spanning tree over a shuffled vertex
// order, then tops it up with random extra arcs until m edges exist.
// Self-loop candidates among the extras are skipped, so the final edge
// count may fall slightly short of m — exactly m - (n-1) extra draws are
// attempted. Requires m ≥ n-1.
func RandomConnected(n, m int, opts ...Option) (*core.Graph, error) {
	if m < n-1 {
		return nil, fmt.Errorf("RandomConnected: m=%d < n-1=%d: %w", m, n-1, ErrTooFewEdges)
	}
	g, cfg, err := prepare("RandomConnected", n, 1, opts)
	if err != nil {
		return nil, err
	}

	// Spanning tree over a random permutation: each vertex links to a
	// random predecessor in permutation order.
	perm := cfg.Rand.Perm(n)
	for i := 1; i < n; i++ {
		u := perm[cfg.Rand.Intn(i)]
		v := perm[i]
		if err := addEdge(g, u, v, cfg); err != nil {
			return nil, err
		}
	}

	for i := 0; i < m-(n-1); i++ {
		u := cfg.Rand.Intn(n)
		v := cfg.Rand.Intn(n)
		if u == v {
			continue
		}
		if err := addEdge(g, u, v, cfg); err != nil {
			return nil, err
		}
	}

	return g, nil
}
