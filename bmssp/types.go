package bmssp

import (
	"errors"
	"math"

	"github.com/katalvlaran/bmssp/core"
)

// Sentinel errors returned by the Solver façade.
var (
	// ErrVertexRange indicates a source or query vertex outside [0, n).
	ErrVertexRange = errors.New("bmssp: vertex id out of range")

	// ErrRunNotCalled indicates a query before any successful Run.
	ErrRunNotCalled = errors.New("bmssp: Run must be called before querying results")

	// ErrNoPredecessors indicates a path query on a solver constructed
	// without WithPredecessors.
	ErrNoPredecessors = errors.New("bmssp: predecessor tracking not enabled")
)

// Params holds the recursion parameters derived once from the vertex count.
// They are immutable for the duration of a Run.
//
//	K — relaxation-round and pivot-subtree threshold, ⌊log₂(n)^{1/3}⌋.
//	T — level width exponent, ⌊log₂(n)^{2/3}⌋.
//	L — recursion depth, ⌈log₂(n)/T⌉.
//
// Each is floored at 1 so degenerate graphs (n = 1, 2) stay well-formed.
type Params struct {
	K int
	T int
	L int
}

// deriveParams computes Params from the vertex count n ≥ 1.
func deriveParams(n int) Params {
	logn := math.Log2(float64(n))
	t := max(1, int(math.Floor(math.Pow(logn, 2.0/3.0))))

	return Params{
		K: max(1, int(math.Floor(math.Cbrt(logn)))),
		T: t,
		L: max(1, int(math.Ceil(logn/float64(t)))),
	}
}

// Options configures a Solver.
//
// Predecessors — track the shortest-path tree for NextHop/PathTo.
// MaxDistance  — upper bound on explored distances; vertices whose true
// distance is ≥ MaxDistance report core.Inf after Run.
type Options struct {
	Predecessors bool
	MaxDistance  int64
}

// Option is a functional option for configuring a Solver.
type Option func(*Options)

// WithPredecessors enables shortest-path-tree tracking, making NextHop and
// PathTo available after Run.
func WithPredecessors() Option {
	return func(o *Options) { o.Predecessors = true }
}

// WithMaxDistance caps exploration at the given bound. After Run, every
// vertex with true distance < bound holds its exact distance; all others
// report core.Inf. Must be positive; non-positive values panic (invalid
// configuration, caught at option-construction time).
func WithMaxDistance(bound int64) Option {
	if bound <= 0 {
		panic("bmssp: WithMaxDistance requires a positive bound")
	}

	return func(o *Options) { o.MaxDistance = bound }
}

// DefaultOptions returns the baseline configuration: no predecessor
// tracking, no distance cap.
func DefaultOptions() Options {
	return Options{
		Predecessors: false,
		MaxDistance:  core.Inf,
	}
}
