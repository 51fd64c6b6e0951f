package core

import (
	"errors"
	"math"
)

// Inf is the distance sentinel for "not reached". All real path lengths are
// strictly smaller, so comparisons against Inf need no special casing.
const Inf int64 = math.MaxInt64

// NoVertex is the sentinel returned where a vertex is expected but none
// exists: the predecessor of an unreachable vertex, the next hop to an
// unreachable target, and so on.
const NoVertex int = -1

// noArc terminates a vertex's forward-star chain. Arc ids start at 1 so the
// zero value of the heads slice means "no outgoing arcs".
const noArc int32 = 0

// Sentinel errors returned by graph construction.
var (
	// ErrBadVertexCount indicates NewGraph was called with n < 1.
	ErrBadVertexCount = errors.New("core: vertex count must be at least 1")

	// ErrVertexRange indicates a vertex id outside [0, n).
	ErrVertexRange = errors.New("core: vertex id out of range")

	// ErrNegativeWeight indicates an arc weight below zero. Shortest-path
	// algorithms in this module require non-negative weights.
	ErrNegativeWeight = errors.New("core: negative arc weight")
)
