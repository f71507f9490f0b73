package geopath

import (
	"github.com/meshgeo/flipout/meshcore"
	"github.com/meshgeo/flipout/signpost"
)

// GeodesicLoop is a cyclic edge sequence through a distinguished base
// vertex that is simultaneously the loop's start and end. Every vertex of
// a loop is interior: even the base vertex must pass the straightness
// test, since it has no privileged "outside" direction.
type GeodesicLoop struct {
	mesh   *meshcore.Mesh
	edges  []meshcore.EdgeHandle
	base   meshcore.VertexHandle
	length float64
}

// NewGeodesicLoop builds a GeodesicLoop from a cyclic edge sequence and its
// base vertex, validating: at least 3 edges, the first and last edge both
// incident to base, and consecutive edges sharing a vertex.
func NewGeodesicLoop(m *meshcore.Mesh, edges []meshcore.EdgeHandle, base meshcore.VertexHandle) (*GeodesicLoop, error) {
	if len(edges) < 3 {
		return nil, ErrTooFewEdges
	}

	l := &GeodesicLoop{mesh: m, edges: append([]meshcore.EdgeHandle(nil), edges...), base: base}
	s0, d0 := m.EdgeEndpoints(edges[0])
	if base != s0 && base != d0 {
		return nil, ErrBaseNotIncident
	}
	sLast, dLast := m.EdgeEndpoints(edges[len(edges)-1])
	if base != sLast && base != dLast {
		return nil, ErrBaseNotIncident
	}
	if _, err := l.vertices(); err != nil {
		return nil, err
	}
	l.updateLengthNoErr()

	return l, nil
}

// Edges returns the loop's cyclic edge sequence.
func (l *GeodesicLoop) Edges() []meshcore.EdgeHandle { return l.edges }

// Base returns the loop's base vertex.
func (l *GeodesicLoop) Base() meshcore.VertexHandle { return l.base }

// Length returns the cached total length.
func (l *GeodesicLoop) Length() float64 { return l.length }

// vertices walks the cyclic edge sequence from base, resolving at each
// step the endpoint of the current edge that is not the current vertex.
// The result has exactly len(edges) entries (the closing step back to
// base is verified but not appended again).
func (l *GeodesicLoop) vertices() ([]meshcore.VertexHandle, error) {
	out := make([]meshcore.VertexHandle, 0, len(l.edges))
	cur := l.base
	out = append(out, cur)
	for i := 0; i+1 < len(l.edges); i++ {
		next, err := otherEndpoint(l.mesh, l.edges[i], cur)
		if err != nil {
			return nil, err
		}
		out = append(out, next)
		cur = next
	}
	closing, err := otherEndpoint(l.mesh, l.edges[len(l.edges)-1], cur)
	if err != nil {
		return nil, err
	}
	if closing != l.base {
		return nil, ErrNotEdgeConnected
	}

	return out, nil
}

// Vertices returns the loop's vertex sequence, of length len(edges).
func (l *GeodesicLoop) Vertices() []meshcore.VertexHandle {
	vs, _ := l.vertices()

	return vs
}

// InteriorVertices returns every loop vertex: for a loop, that is all of them.
func (l *GeodesicLoop) InteriorVertices() []meshcore.VertexHandle {
	return l.Vertices()
}

// ContainsVertex reports whether v appears anywhere on the loop.
func (l *GeodesicLoop) ContainsVertex(v meshcore.VertexHandle) bool {
	return indexOfVertex(l.Vertices(), v) >= 0
}

// ContainsEdge reports whether e is part of the loop's edge sequence.
func (l *GeodesicLoop) ContainsEdge(e meshcore.EdgeHandle) bool {
	return indexOfEdge(l.edges, e) >= 0
}

// GetVertexIndex returns v's position in Vertices(), or -1 if absent.
func (l *GeodesicLoop) GetVertexIndex(v meshcore.VertexHandle) int {
	return indexOfVertex(l.Vertices(), v)
}

// IncomingOutgoingAt returns the loop edges immediately before and after v
// in traversal order, wrapping cyclically at the base vertex.
func (l *GeodesicLoop) IncomingOutgoingAt(v meshcore.VertexHandle) (incoming, outgoing meshcore.EdgeHandle, err error) {
	vs := l.Vertices()
	idx := indexOfVertex(vs, v)
	if idx < 0 {
		return meshcore.InvalidHandle, meshcore.InvalidHandle, ErrNotInteriorVertex
	}
	n := len(l.edges)

	return l.edges[(idx-1+n)%n], l.edges[idx%n], nil
}

// AngleAtInteriorVertex returns the wedge angle at v, exactly as
// GeodesicPath.AngleAtInteriorVertex, except that the base vertex's
// "incoming" edge wraps to the loop's last edge and its "outgoing" edge is
// the loop's first edge.
func (l *GeodesicLoop) AngleAtInteriorVertex(v meshcore.VertexHandle, ix *signpost.Index) (float64, error) {
	incoming, outgoing, err := l.IncomingOutgoingAt(v)
	if err != nil {
		return 0, err
	}

	return angleAtVertexBetween(l.mesh, ix, incoming, outgoing, v)
}

func (l *GeodesicLoop) updateLengthNoErr() {
	total := 0.0
	for _, e := range l.edges {
		total += l.mesh.EdgeLength(e)
	}
	l.length = total
}

// UpdateLength recomputes the cached total length from the mesh's current
// edge lengths.
func (l *GeodesicLoop) UpdateLength() {
	l.updateLengthNoErr()
}
