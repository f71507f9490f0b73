package pathfind

import (
	"math"

	"github.com/pkg/errors"
)

// Sentinel errors returned by this package.
var (
	// ErrNilMesh indicates a nil *meshcore.Mesh was passed in.
	ErrNilMesh = errors.New("pathfind: mesh is nil")

	// ErrVertexOutOfRange indicates a source or target vertex handle does
	// not address a live vertex of the mesh.
	ErrVertexOutOfRange = errors.New("pathfind: vertex handle out of range")

	// ErrNoPath indicates the target is not reachable from the source
	// along mesh edges (the mesh is not edge-connected between them). This
	// is an expected, non-fatal outcome distinct from malformed input.
	ErrNoPath = errors.New("pathfind: no path exists between source and target")

	// ErrEmptyWaypoints indicates ComputePiecewisePath was called with
	// fewer than two waypoints.
	ErrEmptyWaypoints = errors.New("pathfind: need at least two waypoints")
)

// Options configures a single ShortestPathTree run.
type Options struct {
	// ReturnPath, when true, causes ShortestPathTree to also return the
	// predecessor array needed for path reconstruction.
	ReturnPath bool

	// MaxDistance caps exploration: vertices whose shortest distance would
	// exceed it are left unreached. Default math.MaxFloat64 (no cap).
	MaxDistance float64
}

// Option is a functional option for ShortestPathTree.
type Option func(*Options)

// WithReturnPath enables predecessor-array computation.
func WithReturnPath() Option {
	return func(o *Options) { o.ReturnPath = true }
}

// WithMaxDistance caps exploration at the given non-negative distance.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 {
			panic("pathfind: MaxDistance must be non-negative")
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns the zero-value-safe defaults.
func DefaultOptions() Options {
	return Options{
		ReturnPath:  false,
		MaxDistance: math.MaxFloat64,
	}
}
