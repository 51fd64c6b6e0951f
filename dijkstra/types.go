package dijkstra

import (
	"errors"

	"github.com/katalvlaran/bmssp/core"
)

// Sentinel errors returned by Dijkstra.
var (
	// ErrNilGraph indicates a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrSourceRange indicates the source vertex lies outside [0, n).
	ErrSourceRange = errors.New("dijkstra: source vertex out of range")
)

// Options configures a Dijkstra run.
//
// ReturnPath  — if true, the predecessor array is built and returned.
// MaxDistance — vertices whose distance exceeds the cap are not explored;
// they report core.Inf.
type Options struct {
	ReturnPath  bool
	MaxDistance int64
}

// Option is a functional option for configuring Dijkstra.
type Option func(*Options)

// WithReturnPath enables predecessor tracking in the result.
func WithReturnPath() Option {
	return func(o *Options) { o.ReturnPath = true }
}

// WithMaxDistance caps exploration at the given distance. Must be
// non-negative; negative values panic (invalid configuration).
func WithMaxDistance(max int64) Option {
	if max < 0 {
		panic("dijkstra: WithMaxDistance requires a non-negative cap")
	}

	return func(o *Options) { o.MaxDistance = max }
}

// DefaultOptions returns the baseline configuration: no predecessor array,
// no distance cap.
func DefaultOptions() Options {
	return Options{
		ReturnPath:  false,
		MaxDistance: core.Inf,
	}
}
