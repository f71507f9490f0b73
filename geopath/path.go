package geopath

import (
	"github.com/meshgeo/flipout/meshcore"
	"github.com/meshgeo/flipout/signpost"
)

// GeodesicPath is an ordered sequence of edges between two distinct
// vertices. Consecutive edges must share a vertex (the interior vertex
// between them); this is checked at construction.
type GeodesicPath struct {
	mesh   *meshcore.Mesh
	edges  []meshcore.EdgeHandle
	start  meshcore.VertexHandle
	end    meshcore.VertexHandle
	length float64
}

// NewGeodesicPath builds a GeodesicPath from an edge sequence and its two
// endpoint vertices, validating edge-connectedness.
func NewGeodesicPath(m *meshcore.Mesh, edges []meshcore.EdgeHandle, start, end meshcore.VertexHandle) (*GeodesicPath, error) {
	p := &GeodesicPath{mesh: m, edges: append([]meshcore.EdgeHandle(nil), edges...), start: start, end: end}
	if _, err := p.vertices(); err != nil {
		return nil, err
	}
	p.updateLengthNoErr()

	return p, nil
}

// Edges returns the path's edge sequence.
func (p *GeodesicPath) Edges() []meshcore.EdgeHandle { return p.edges }

// Start returns the path's first vertex.
func (p *GeodesicPath) Start() meshcore.VertexHandle { return p.start }

// End returns the path's last vertex.
func (p *GeodesicPath) End() meshcore.VertexHandle { return p.end }

// Length returns the cached total length; call UpdateLength after any
// mutation to the underlying edge lengths.
func (p *GeodesicPath) Length() float64 { return p.length }

// vertices walks the edge sequence from start, resolving at each step the
// endpoint of the current edge that is not the current vertex.
func (p *GeodesicPath) vertices() ([]meshcore.VertexHandle, error) {
	out := make([]meshcore.VertexHandle, 0, len(p.edges)+1)
	cur := p.start
	out = append(out, cur)
	for _, e := range p.edges {
		next, err := otherEndpoint(p.mesh, e, cur)
		if err != nil {
			return nil, err
		}
		out = append(out, next)
		cur = next
	}
	if cur != p.end {
		return nil, ErrNotEdgeConnected
	}

	return out, nil
}

// Vertices returns the path's vertex sequence, of length len(edges)+1.
func (p *GeodesicPath) Vertices() []meshcore.VertexHandle {
	vs, _ := p.vertices()

	return vs
}

// InteriorVertices returns every path vertex except the start and end.
func (p *GeodesicPath) InteriorVertices() []meshcore.VertexHandle {
	vs := p.Vertices()
	if len(vs) <= 2 {
		return nil
	}

	return vs[1 : len(vs)-1]
}

// ContainsVertex reports whether v appears anywhere on the path.
func (p *GeodesicPath) ContainsVertex(v meshcore.VertexHandle) bool {
	return indexOfVertex(p.Vertices(), v) >= 0
}

// ContainsEdge reports whether e is part of the path's edge sequence.
func (p *GeodesicPath) ContainsEdge(e meshcore.EdgeHandle) bool {
	return indexOfEdge(p.edges, e) >= 0
}

// GetVertexIndex returns v's position in Vertices(), or -1 if absent.
func (p *GeodesicPath) GetVertexIndex(v meshcore.VertexHandle) int {
	return indexOfVertex(p.Vertices(), v)
}

// IncomingOutgoingAt returns the path edges immediately before and after v
// in traversal order. v must be a strict interior vertex (not start or end).
func (p *GeodesicPath) IncomingOutgoingAt(v meshcore.VertexHandle) (incoming, outgoing meshcore.EdgeHandle, err error) {
	vs := p.Vertices()
	idx := indexOfVertex(vs, v)
	if idx <= 0 || idx >= len(vs)-1 {
		return meshcore.InvalidHandle, meshcore.InvalidHandle, ErrNotInteriorVertex
	}

	return p.edges[idx-1], p.edges[idx], nil
}

// AngleAtInteriorVertex returns the signpost CCW angle from the reversed
// incoming halfedge at v to the outgoing halfedge at v along the path: the
// wedge angle on the left side of the path in CCW orientation. v must be a
// strict interior vertex (not start or end).
func (p *GeodesicPath) AngleAtInteriorVertex(v meshcore.VertexHandle, ix *signpost.Index) (float64, error) {
	incoming, outgoing, err := p.IncomingOutgoingAt(v)
	if err != nil {
		return 0, err
	}

	return angleAtVertexBetween(p.mesh, ix, incoming, outgoing, v)
}

// updateLengthNoErr recomputes Length() from the mesh's current edge
// lengths. Mesh.EdgeLength reports no error, since edge handles remain
// valid for the mesh's lifetime.
func (p *GeodesicPath) updateLengthNoErr() {
	total := 0.0
	for _, e := range p.edges {
		total += p.mesh.EdgeLength(e)
	}
	p.length = total
}

// UpdateLength recomputes the cached total length from the mesh's current
// edge lengths. Callers must invoke this after any mutation (e.g. a flip)
// changes a path edge's length.
func (p *GeodesicPath) UpdateLength() {
	p.updateLengthNoErr()
}
