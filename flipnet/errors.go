package flipnet

import "github.com/pkg/errors"

// Sentinel errors for the flipnet package.
var (
	// ErrNilMesh indicates a nil *meshcore.Mesh was passed to a constructor.
	ErrNilMesh = errors.New("flipnet: mesh is nil")

	// ErrTooFewWaypoints indicates fewer than two waypoints were given to a
	// piecewise-path constructor.
	ErrTooFewWaypoints = errors.New("flipnet: need at least two waypoints")

	// ErrNoWaypointEdges indicates LoopNetwork construction was given no
	// waypoint edges.
	ErrNoWaypointEdges = errors.New("flipnet: no waypoint edges supplied")

	// ErrNotAdjacent indicates a Dijkstra-reconstructed vertex sequence
	// contained a consecutive pair with no shared mesh edge, which should
	// never happen for a well-formed pathfind.ComputePath result.
	ErrNotAdjacent = errors.New("flipnet: consecutive vertices are not mesh-adjacent")

	// ErrTooManySkipped indicates the loop's edge-ordering stage skipped
	// more waypoint edges than Options.MaxSkippedEdges allows, or skipped
	// any at all while Options.RequireAllEdges is set.
	ErrTooManySkipped = errors.New("flipnet: ordering skipped too many waypoint edges")
)
