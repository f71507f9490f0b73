package ordering

import (
	"errors"

	"github.com/meshgeo/flipout/meshcore"
)

// Sentinel errors for ordering package operations.
var (
	// ErrNilMesh indicates a nil *meshcore.Mesh was passed to Order.
	ErrNilMesh = errors.New("ordering: mesh is nil")

	// ErrNoWaypoints indicates an empty waypoint-edge slice was passed to Order.
	ErrNoWaypoints = errors.New("ordering: no waypoint edges supplied")

	// ErrTooFewVertices indicates fewer than 3 distinct candidate vertices were
	// found among the waypoint edges; a closed loop needs at least 3.
	ErrTooFewVertices = errors.New("ordering: fewer than 3 distinct candidate vertices")
)

// Options configures the ordering heuristic.
//   - UseNearestNeighbor: run greedy nearest-neighbour construction (the only
//     constructor currently implemented; false yields the candidate vertices
//     in first-seen order, still refined by 2-opt when Use2Opt is set).
//   - Use2Opt: run a 2-opt refinement pass over the constructed tour.
//   - Max2OptIterations: caps accepted 2-opt moves (0 == unlimited).
//   - SkipCrossingEdges: not read by Order. Greedy construction never
//     places a vertex twice whatever its value, and waypoint edges whose
//     endpoints end up non-adjacent are always reported via
//     Result.SkippedEdges rather than causing a hard failure.
type Options struct {
	UseNearestNeighbor bool
	Use2Opt            bool
	Max2OptIterations  uint32
	SkipCrossingEdges  bool
}

// DefaultOptions returns the heuristic's documented defaults.
func DefaultOptions() Options {
	return Options{
		UseNearestNeighbor: true,
		Use2Opt:            true,
		Max2OptIterations:  100,
		SkipCrossingEdges:  true,
	}
}

// Result is the outcome of Order.
type Result struct {
	// Order is the ordered vertex list, with Order[0] == Order[len(Order)-1]
	// closing the loop.
	Order []meshcore.VertexHandle

	// SkippedEdges holds the input waypoint edges that could not be honoured
	// by the self-crossing guard: their two endpoints do not appear adjacent
	// (including wraparound) anywhere in Order.
	SkippedEdges []meshcore.EdgeHandle

	// EstimatedLength is the tour's total length under the Dijkstra distance
	// matrix, i.e. the sum of shortest-path distances between consecutive
	// vertices in Order (not literal mesh-edge lengths).
	EstimatedLength float64
}
