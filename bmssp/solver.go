package bmssp

import (
	"fmt"

	"github.com/katalvlaran/bmssp/core"
)

// Solver is the single-source shortest-path façade. Construct with New or
// FromGraph, add arcs, call Run, then query. A Solver may Run repeatedly
// (for different sources); each Run resets all previous results.
//
// Solver is not safe for concurrent use.
type Solver struct {
	g    *core.Graph
	opts Options

	dis    []int64 // dis[v] = best known distance from source; core.Inf if none
	parent []int   // parent[v] = predecessor on a shortest path; core.NoVertex if none
	source int
	ran    bool
}

// New returns a Solver over a fresh empty graph with n vertices.
// Returns core.ErrBadVertexCount if n < 1.
func New(n int, opts ...Option) (*Solver, error) {
	g, err := core.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("bmssp: %w", err)
	}

	return FromGraph(g, opts...), nil
}

// FromGraph returns a Solver over an existing graph. The graph is not
// copied; the caller must not mutate it during Run.
func FromGraph(g *core.Graph, opts ...Option) *Solver {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Solver{g: g, opts: cfg}
}

// Graph exposes the underlying graph, e.g. for running a reference
// algorithm over the same topology.
func (s *Solver) Graph() *core.Graph { return s.g }

// AddEdge appends the directed arc u→v with the given non-negative weight.
// Arcs may be added between Runs; results of an earlier Run are unaffected
// until Run is called again.
func (s *Solver) AddEdge(u, v int, weight int64) error {
	return s.g.AddEdge(u, v, weight)
}

// Run computes shortest distances from source to every vertex.
// On error the solver's query state is untouched; on success Distance (and
// NextHop/PathTo when predecessor tracking is on) reflect the new source.
func (s *Solver) Run(source int) error {
	n := s.g.VertexCount()
	if source < 0 || source >= n {
		return fmt.Errorf("Run(source=%d): n=%d: %w", source, n, ErrVertexRange)
	}

	// 1) Reset distances to Inf, the source to zero.
	dis := make([]int64, n)
	for i := range dis {
		dis[i] = core.Inf
	}
	dis[source] = 0

	// 2) Predecessor array only when route tracking is requested.
	//    parent[source] = source marks the tree root.
	var parent []int
	if s.opts.Predecessors {
		parent = make([]int, n)
		for i := range parent {
			parent[i] = core.NoVertex
		}
		parent[source] = source
	}

	// 3) Derive k, t, l from n and descend from the top level with the
	//    configured bound and the source as the only pivot.
	par := deriveParams(n)
	r := &runner{g: s.g, dis: dis, parent: parent, k: par.K, t: par.T}
	r.bmssp(par.L, s.opts.MaxDistance, []int{source})

	// 4) Under a distance cap, values at or above the cap are tentative
	//    lower bounds, not proven distances; report them as unreachable.
	if s.opts.MaxDistance < core.Inf {
		for v := range dis {
			if dis[v] >= s.opts.MaxDistance {
				dis[v] = core.Inf
				if parent != nil && v != source {
					parent[v] = core.NoVertex
				}
			}
		}
	}

	s.dis, s.parent, s.source, s.ran = dis, parent, source, true

	return nil
}

// Params reports the recursion parameters for the solver's vertex count.
func (s *Solver) Params() Params { return deriveParams(s.g.VertexCount()) }

// Distance returns the shortest distance from the Run source to v, or
// core.Inf if v is unreachable.
func (s *Solver) Distance(v int) (int64, error) {
	if !s.ran {
		return core.Inf, ErrRunNotCalled
	}
	if v < 0 || v >= s.g.VertexCount() {
		return core.Inf, fmt.Errorf("Distance(v=%d): %w", v, ErrVertexRange)
	}

	return s.dis[v], nil
}

// Distances returns the full distance array of the last Run. The slice is
// owned by the solver; callers must not modify it.
func (s *Solver) Distances() ([]int64, error) {
	if !s.ran {
		return nil, ErrRunNotCalled
	}

	return s.dis, nil
}

// NextHop returns the source's direct out-neighbor on a shortest path to
// target: the first hop a router at the source would forward along.
// Returns core.NoVertex when target is unreachable, equals the source, or
// the predecessor chain is malformed (defensive; cannot occur after a
// correct Run).
func (s *Solver) NextHop(target int) (int, error) {
	if err := s.checkPathQuery(target); err != nil {
		return core.NoVertex, err
	}
	if target == s.source || s.parent[target] == core.NoVertex {
		return core.NoVertex, nil
	}

	// Walk the predecessor chain back until the hop whose parent is the
	// source. The step budget of n guards against cycles.
	cur := target
	for steps := 0; steps < len(s.parent); steps++ {
		p := s.parent[cur]
		if p == core.NoVertex {
			return core.NoVertex, nil
		}
		if p == s.source {
			return cur, nil
		}
		cur = p
	}

	return core.NoVertex, nil
}

// PathTo returns the full shortest path source..target inclusive, or nil
// if target is unreachable. For target == source the path is [source].
func (s *Solver) PathTo(target int) ([]int, error) {
	if err := s.checkPathQuery(target); err != nil {
		return nil, err
	}
	if target == s.source {
		return []int{s.source}, nil
	}
	if s.parent[target] == core.NoVertex {
		return nil, nil
	}

	rev := []int{target}
	cur := target
	for steps := 0; steps < len(s.parent); steps++ {
		p := s.parent[cur]
		if p == core.NoVertex {
			return nil, nil
		}
		rev = append(rev, p)
		if p == s.source {
			// Reverse into source-first order.
			for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
				rev[i], rev[j] = rev[j], rev[i]
			}

			return rev, nil
		}
		cur = p
	}

	return nil, nil
}

// checkPathQuery validates the common preconditions of NextHop and PathTo.
func (s *Solver) checkPathQuery(target int) error {
	if !s.ran {
		return ErrRunNotCalled
	}
	if s.parent == nil {
		return ErrNoPredecessors
	}
	if target < 0 || target >= s.g.VertexCount() {
		return fmt.Errorf("target=%d: %w", target, ErrVertexRange)
	}

	return nil
}
