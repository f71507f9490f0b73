package flipnet

import (
	"github.com/meshgeo/flipout/geopath"
	"github.com/meshgeo/flipout/meshcore"
	"github.com/meshgeo/flipout/ordering"
	"github.com/meshgeo/flipout/pathfind"
	"github.com/meshgeo/flipout/segmentation"
	"github.com/meshgeo/flipout/signpost"
)

// LoopNetwork owns a mesh, its signpost index, and a single GeodesicLoop
// that FlipOut straightens in place. Unlike FlipNetwork it is built from a
// set of waypoint edges rather than an explicit vertex sequence: ordering
// the waypoints into a short cyclic tour is part of construction.
type LoopNetwork struct {
	mesh    *meshcore.Mesh
	sp      *signpost.Index
	loop    *geopath.GeodesicLoop
	opts    Options
	skipped []meshcore.EdgeHandle
}

// Mesh returns the underlying mesh.
func (n *LoopNetwork) Mesh() *meshcore.Mesh { return n.mesh }

// Signpost returns the network's angular index.
func (n *LoopNetwork) Signpost() *signpost.Index { return n.sp }

// Loop returns the network's loop.
func (n *LoopNetwork) Loop() *geopath.GeodesicLoop { return n.loop }

// SkippedEdges returns the waypoint edges the ordering stage could not
// place adjacently in the tour, when Options.OptimizeOrder was set.
func (n *LoopNetwork) SkippedEdges() []meshcore.EdgeHandle { return n.skipped }

// TotalLength returns the loop's current cached length.
func (n *LoopNetwork) TotalLength() float64 { return n.loop.Length() }

// FromEdgeWaypoints builds a LoopNetwork from a set of waypoint edges: when
// Options.OptimizeOrder is set (the default) the waypoints' endpoints are
// first ordered into a short cyclic tour via the ordering package, then a
// closed loop is bootstrapped through that tour via piecewise Dijkstra,
// exactly as FromPiecewiseDijkstraPath bootstraps an open FlipNetwork.
func FromEdgeWaypoints(m *meshcore.Mesh, waypoints []meshcore.EdgeHandle, opts Options) (*LoopNetwork, error) {
	if m == nil {
		return nil, ErrNilMesh
	}
	if len(waypoints) == 0 {
		return nil, ErrNoWaypointEdges
	}

	opts = opts.withDefaults()

	order, skipped, err := resolveLoopOrder(m, waypoints, opts)
	if err != nil {
		return nil, err
	}
	if err := checkSkipped(skipped, opts); err != nil {
		return nil, err
	}

	sp := signpost.Build(m)

	vs, _, err := pathfind.ComputePiecewisePath(m, order)
	if err != nil {
		return nil, err
	}
	edges, err := edgesFromVertexSequence(m, vs)
	if err != nil {
		return nil, err
	}
	for _, e := range edges {
		m.SetEdgeInPath(e, true)
	}

	loop, err := geopath.NewGeodesicLoop(m, edges, order[0])
	if err != nil {
		return nil, err
	}

	return &LoopNetwork{mesh: m, sp: sp, loop: loop, opts: opts, skipped: skipped}, nil
}

// resolveLoopOrder produces the closed vertex tour a LoopNetwork bootstraps
// from: the ordering package's TSP-style pass when requested, or else the
// waypoints' endpoints in first-seen order (still closed by repeating the
// first vertex), matching ordering.Result.Order's shape.
func resolveLoopOrder(m *meshcore.Mesh, waypoints []meshcore.EdgeHandle, opts Options) ([]meshcore.VertexHandle, []meshcore.EdgeHandle, error) {
	if !opts.OptimizeOrder {
		return naiveOrder(m, waypoints), nil, nil
	}

	res, err := ordering.Order(m, waypoints, opts.OrderingOptions)
	if err != nil {
		return nil, nil, err
	}

	return res.Order, res.SkippedEdges, nil
}

// naiveOrder returns the distinct waypoint endpoints in first-seen order,
// closed by repeating the first vertex, with no tour optimisation.
func naiveOrder(m *meshcore.Mesh, waypoints []meshcore.EdgeHandle) []meshcore.VertexHandle {
	seen := make(map[meshcore.VertexHandle]bool)
	var out []meshcore.VertexHandle
	for _, e := range waypoints {
		s, d := m.EdgeEndpoints(e)
		for _, v := range [2]meshcore.VertexHandle{s, d} {
			if !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
	}

	return append(out, out[0])
}

// checkSkipped enforces Options.RequireAllEdges and Options.MaxSkippedEdges
// against the ordering stage's skipped-edge list.
func checkSkipped(skipped []meshcore.EdgeHandle, opts Options) error {
	if len(skipped) == 0 {
		return nil
	}
	if opts.RequireAllEdges {
		return ErrTooManySkipped
	}
	if opts.MaxSkippedEdges >= 0 && len(skipped) > opts.MaxSkippedEdges {
		return ErrTooManySkipped
	}

	return nil
}

// IterativeShorten runs the shared FlipOut outer loop over the network's
// single loop until convergence, the configured iteration cap, or the
// configured length-change threshold, whichever comes first.
func (n *LoopNetwork) IterativeShorten() (Stats, error) {
	containers := []pathLike{n.loop}

	return runFlipOut(n.mesh, n.sp, containers, n.opts.MaxIterations, n.opts.ConvergenceThreshold, n.opts.Logger, n.TotalLength)
}

// Segment classifies every face of the mesh as Inside, Outside, or Boundary
// relative to the network's (presumably already-shortened) loop.
func (n *LoopNetwork) Segment() (*segmentation.Result, error) {
	return segmentation.Compute(n.mesh, n.loop)
}

// ComputeResult bundles the outcome of a LoopNetwork.Compute call: the
// shortened loop, its face segmentation, and the shortening stats.
type ComputeResult struct {
	Loop         *geopath.GeodesicLoop
	Segmentation *segmentation.Result
	Stats        Stats
}

// Compute shortens the loop in place and then segments the mesh relative to
// the shortened loop, returning both outcomes together.
func (n *LoopNetwork) Compute() (*ComputeResult, error) {
	stats, err := n.IterativeShorten()
	if err != nil {
		return nil, err
	}

	seg, err := n.Segment()
	if err != nil {
		return nil, err
	}

	return &ComputeResult{Loop: n.loop, Segmentation: seg, Stats: stats}, nil
}
