package flipnet

import (
	"math"

	"github.com/meshgeo/flipout/geopath"
	"github.com/meshgeo/flipout/meshcore"
	"github.com/meshgeo/flipout/pathfind"
	"github.com/meshgeo/flipout/signpost"
	"github.com/pkg/errors"
)

// FlipNetwork owns a mesh, the signpost index built over it, and a vector
// of GeodesicPaths that FlipOut straightens in place. Marking is a mesh-level
// concern (meshcore.Mesh.SetMark); the network never tracks marks itself, so
// marking a vertex pins it across every path/network sharing that mesh.
type FlipNetwork struct {
	mesh  *meshcore.Mesh
	sp    *signpost.Index
	paths []*geopath.GeodesicPath
	opts  Options
}

// Mesh returns the underlying mesh.
func (n *FlipNetwork) Mesh() *meshcore.Mesh { return n.mesh }

// Signpost returns the network's angular index.
func (n *FlipNetwork) Signpost() *signpost.Index { return n.sp }

// Paths returns the network's path list. Callers must not mutate the slice.
func (n *FlipNetwork) Paths() []*geopath.GeodesicPath { return n.paths }

// EdgeInPath reports whether e belongs to any path owned by this network
// (delegates to the mesh's path-membership flag, which every constructor
// below maintains).
func (n *FlipNetwork) EdgeInPath(e meshcore.EdgeHandle) bool { return n.mesh.EdgeInPath(e) }

// TotalLength returns the sum of every path's current cached length.
func (n *FlipNetwork) TotalLength() float64 {
	total := 0.0
	for _, p := range n.paths {
		total += p.Length()
	}

	return total
}

// MinInteriorAngle returns the minimum wedge angle over every unmarked
// interior vertex of every path. A network with no interior vertices at all
// (e.g. single-edge paths only) returns +Inf.
func (n *FlipNetwork) MinInteriorAngle() (float64, error) {
	min := math.Inf(1)
	for _, p := range n.paths {
		for _, v := range p.InteriorVertices() {
			if n.mesh.Mark(v) {
				continue
			}
			a, err := p.AngleAtInteriorVertex(v, n.sp)
			if err != nil {
				return 0, err
			}
			if a < min {
				min = a
			}
		}
	}

	return min, nil
}

func buildNetwork(m *meshcore.Mesh, opts Options) *FlipNetwork {
	return &FlipNetwork{mesh: m, sp: signpost.Build(m), opts: opts.withDefaults()}
}

func (n *FlipNetwork) addPath(edges []meshcore.EdgeHandle, start, end meshcore.VertexHandle) (*geopath.GeodesicPath, error) {
	p, err := geopath.NewGeodesicPath(n.mesh, edges, start, end)
	if err != nil {
		return nil, err
	}
	for _, e := range edges {
		n.mesh.SetEdgeInPath(e, true)
	}
	n.paths = append(n.paths, p)

	return p, nil
}

// FromDijkstraPath builds a single-path FlipNetwork from the Dijkstra
// shortest path between src and tgt.
func FromDijkstraPath(m *meshcore.Mesh, src, tgt meshcore.VertexHandle, opts Options) (*FlipNetwork, error) {
	if m == nil {
		return nil, ErrNilMesh
	}

	vs, _, err := pathfind.ComputePath(m, src, tgt)
	if err != nil {
		return nil, err
	}

	n := buildNetwork(m, opts)
	edges, err := edgesFromVertexSequence(m, vs)
	if err != nil {
		return nil, err
	}
	if _, err := n.addPath(edges, src, tgt); err != nil {
		return nil, err
	}

	return n, nil
}

// FromPiecewiseDijkstraPath builds a multi-path FlipNetwork, one path per
// consecutive pair of waypoints. When markInterior is true every waypoint
// strictly between the first and last is marked on the mesh, pinning it
// against FlipOut selection (the path is still shortened segment by
// segment, but the shared waypoint vertex never moves).
func FromPiecewiseDijkstraPath(m *meshcore.Mesh, waypoints []meshcore.VertexHandle, markInterior bool, opts Options) (*FlipNetwork, error) {
	if m == nil {
		return nil, ErrNilMesh
	}
	if len(waypoints) < 2 {
		return nil, ErrTooFewWaypoints
	}

	n := buildNetwork(m, opts)
	for i := 0; i+1 < len(waypoints); i++ {
		vs, _, err := pathfind.ComputePath(m, waypoints[i], waypoints[i+1])
		if err != nil {
			return nil, err
		}
		edges, err := edgesFromVertexSequence(m, vs)
		if err != nil {
			return nil, err
		}
		if _, err := n.addPath(edges, waypoints[i], waypoints[i+1]); err != nil {
			return nil, err
		}
	}

	if markInterior {
		for _, v := range waypoints[1 : len(waypoints)-1] {
			m.SetMark(v, true)
		}
	}

	return n, nil
}

// edgesFromVertexSequence resolves the edge connecting each consecutive
// vertex pair of vs (as produced by pathfind.ComputePath), via the shared
// halfedge between them.
func edgesFromVertexSequence(m *meshcore.Mesh, vs []meshcore.VertexHandle) ([]meshcore.EdgeHandle, error) {
	edges := make([]meshcore.EdgeHandle, 0, len(vs)-1)
	for i := 0; i+1 < len(vs); i++ {
		e, err := edgeBetween(m, vs[i], vs[i+1])
		if err != nil {
			return nil, err
		}
		edges = append(edges, e)
	}

	return edges, nil
}

// edgeBetween returns the edge connecting a and b by scanning a's outgoing
// fan. a and b must be mesh-adjacent (guaranteed for a Dijkstra-reconstructed
// vertex sequence, since each step followed a halfedge).
func edgeBetween(m *meshcore.Mesh, a, b meshcore.VertexHandle) (meshcore.EdgeHandle, error) {
	for _, h := range m.OutgoingHalfedges(a) {
		if m.HalfedgeTarget(h) == b {
			return m.HalfedgeEdge(h), nil
		}
	}

	return meshcore.InvalidHandle, errors.Wrapf(ErrNotAdjacent, "vertex %d -> %d", a, b)
}
