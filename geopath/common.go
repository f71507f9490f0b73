package geopath

import (
	"github.com/meshgeo/flipout/meshcore"
	"github.com/meshgeo/flipout/signpost"
)

// otherEndpoint returns the endpoint of e that is not v.
func otherEndpoint(m *meshcore.Mesh, e meshcore.EdgeHandle, v meshcore.VertexHandle) (meshcore.VertexHandle, error) {
	s, d := m.EdgeEndpoints(e)
	switch v {
	case s:
		return d, nil
	case d:
		return s, nil
	default:
		return meshcore.InvalidHandle, ErrVertexNotOnEdge
	}
}

// OutgoingHalfedgeOfEdgeAt returns the halfedge of e whose source is v, i.e.
// the direction of e departing from v. Used to resolve both "the outgoing
// path edge at V" and "the reversed incoming path edge at V" (which is also
// an outgoing halfedge, just along the incoming edge) for signpost queries.
// Exported so flipnet and segmentation can resolve the same path-edge
// directions without re-deriving them from the mesh.
func OutgoingHalfedgeOfEdgeAt(m *meshcore.Mesh, e meshcore.EdgeHandle, v meshcore.VertexHandle) (meshcore.HalfedgeHandle, error) {
	h := m.EdgeHalfedge(e)
	if m.HalfedgeSource(h) == v {
		return h, nil
	}
	t := m.HalfedgeTwin(h)
	if t != meshcore.InvalidHandle && m.HalfedgeSource(t) == v {
		return t, nil
	}

	return meshcore.InvalidHandle, ErrVertexNotOnEdge
}

// angleAtVertexBetween computes the signpost CCW angle from the reversed
// incoming edge direction to the outgoing edge direction, both measured as
// outgoing halfedges from v. This is the wedge angle on the left side of a
// path traversing incoming then outgoing, in CCW orientation.
func angleAtVertexBetween(m *meshcore.Mesh, ix *signpost.Index, incoming, outgoing meshcore.EdgeHandle, v meshcore.VertexHandle) (float64, error) {
	hIn, err := OutgoingHalfedgeOfEdgeAt(m, incoming, v)
	if err != nil {
		return 0, err
	}
	hOut, err := OutgoingHalfedgeOfEdgeAt(m, outgoing, v)
	if err != nil {
		return 0, err
	}

	return ix.AngleBetween(hIn, hOut), nil
}

func indexOfVertex(vs []meshcore.VertexHandle, v meshcore.VertexHandle) int {
	for i, vv := range vs {
		if vv == v {
			return i
		}
	}

	return -1
}

func indexOfEdge(es []meshcore.EdgeHandle, e meshcore.EdgeHandle) int {
	for i, ee := range es {
		if ee == e {
			return i
		}
	}

	return -1
}
