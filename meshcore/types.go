package meshcore

import "github.com/meshgeo/flipout/geom"

// VertexHandle, HalfedgeHandle, EdgeHandle and FaceHandle index into the
// Mesh's four parallel arenas. The zero value of each is a valid handle
// (index 0 is a real entity), so it cannot mark absence; use InvalidHandle /
// Valid() to test absence of an optional reference (Twin, Face on a
// halfedge; Representative halfedge, etc).
type (
	VertexHandle   int32
	HalfedgeHandle int32
	EdgeHandle     int32
	FaceHandle     int32
)

// InvalidHandle is the shared "absent" sentinel for all four handle kinds.
const InvalidHandle = -1

// Valid reports whether h refers to a potentially live vertex.
func (h VertexHandle) Valid() bool { return h >= 0 }

// Valid reports whether h refers to a potentially live halfedge.
func (h HalfedgeHandle) Valid() bool { return h >= 0 }

// Valid reports whether h refers to a potentially live edge.
func (h EdgeHandle) Valid() bool { return h >= 0 }

// Valid reports whether h refers to a potentially live face.
func (h FaceHandle) Valid() bool { return h >= 0 }

// vertexData is the arena record for a Vertex: its fixed extrinsic position,
// a representative outgoing halfedge (mutable, used only as a walk start),
// and the external Mark flag used to pin the vertex during FlipOut.
type vertexData struct {
	Pos  geom.Vec3
	Rep  HalfedgeHandle
	Mark bool
}

// halfedgeData is the arena record for a directed Halfedge.
type halfedgeData struct {
	Target VertexHandle
	Edge   EdgeHandle
	Twin   HalfedgeHandle
	Next   HalfedgeHandle
	Prev   HalfedgeHandle
	Face   FaceHandle
}

// edgeData is the arena record for an undirected Edge.
type edgeData struct {
	He     HalfedgeHandle // one representative halfedge; twin is the other
	Length float64
	InPath bool
}

// faceData is the arena record for a triangular Face.
type faceData struct {
	He HalfedgeHandle
}

// Mesh is the intrinsic halfedge mesh: the sole owner of vertices, edges,
// halfedges and faces. Paths, loops and the signpost index hold only
// handles into this mesh; every reference stays valid for the mesh's
// lifetime because flips never delete entities.
type Mesh struct {
	vertices  []vertexData
	halfedges []halfedgeData
	edges     []edgeData
	faces     []faceData
}

// NumVertices returns the number of vertices in the mesh.
func (m *Mesh) NumVertices() int { return len(m.vertices) }

// NumHalfedges returns the number of halfedges in the mesh.
func (m *Mesh) NumHalfedges() int { return len(m.halfedges) }

// NumEdges returns the number of edges in the mesh.
func (m *Mesh) NumEdges() int { return len(m.edges) }

// NumFaces returns the number of faces in the mesh.
func (m *Mesh) NumFaces() int { return len(m.faces) }

// Position returns the fixed extrinsic position of v. Panics if v is out of
// range: stale/invalid handles are a programmer error (the mesh never
// deletes vertices).
func (m *Mesh) Position(v VertexHandle) geom.Vec3 { return m.vertices[v].Pos }

// Mark reports whether v is pinned against FlipOut selection.
func (m *Mesh) Mark(v VertexHandle) bool { return m.vertices[v].Mark }

// SetMark sets or clears the pin flag on v. External collaborators call
// this to protect waypoints (e.g. Bezier control points) during shortening.
func (m *Mesh) SetMark(v VertexHandle, marked bool) { m.vertices[v].Mark = marked }

// VertexHalfedge returns v's representative outgoing halfedge.
func (m *Mesh) VertexHalfedge(v VertexHandle) HalfedgeHandle { return m.vertices[v].Rep }

// HalfedgeTarget returns the vertex h points to.
func (m *Mesh) HalfedgeTarget(h HalfedgeHandle) VertexHandle { return m.halfedges[h].Target }

// HalfedgeSource returns the vertex h departs from. Derived as the target of
// h's predecessor in its face cycle (prev(h).Target == source(h)), which is
// valid whether or not h has a twin — unlike deriving it from twin.Target,
// this works uniformly for boundary halfedges too.
func (m *Mesh) HalfedgeSource(h HalfedgeHandle) VertexHandle {
	return m.halfedges[m.halfedges[h].Prev].Target
}

// HalfedgeEdge returns the (undirected) edge h belongs to.
func (m *Mesh) HalfedgeEdge(h HalfedgeHandle) EdgeHandle { return m.halfedges[h].Edge }

// HalfedgeTwin returns h's twin, or InvalidHandle if h is a boundary halfedge.
func (m *Mesh) HalfedgeTwin(h HalfedgeHandle) HalfedgeHandle { return m.halfedges[h].Twin }

// HalfedgeNext returns the next halfedge in h's face cycle.
func (m *Mesh) HalfedgeNext(h HalfedgeHandle) HalfedgeHandle { return m.halfedges[h].Next }

// HalfedgePrev returns the previous halfedge in h's face cycle.
func (m *Mesh) HalfedgePrev(h HalfedgeHandle) HalfedgeHandle { return m.halfedges[h].Prev }

// HalfedgeFace returns the face h belongs to. Every constructed halfedge
// belongs to exactly one of the M triangular faces (boundary-ness is a
// property of the edge/twin, not of the halfedge's face membership).
func (m *Mesh) HalfedgeFace(h HalfedgeHandle) FaceHandle { return m.halfedges[h].Face }

// IsBoundary reports whether h has no twin.
func (m *Mesh) IsBoundary(h HalfedgeHandle) bool { return m.halfedges[h].Twin == InvalidHandle }

// EdgeHalfedge returns one of e's two halfedges (its twin, if any, is the other).
func (m *Mesh) EdgeHalfedge(e EdgeHandle) HalfedgeHandle { return m.edges[e].He }

// EdgeLength returns the current intrinsic length of e.
func (m *Mesh) EdgeLength(e EdgeHandle) float64 { return m.edges[e].Length }

// EdgeIsBoundary reports whether e has only one incident halfedge.
func (m *Mesh) EdgeIsBoundary(e EdgeHandle) bool { return m.IsBoundary(m.edges[e].He) }

// EdgeInPath reports the path-membership flag maintained by a path/loop owner.
func (m *Mesh) EdgeInPath(e EdgeHandle) bool { return m.edges[e].InPath }

// SetEdgeInPath sets the path-membership flag on e.
func (m *Mesh) SetEdgeInPath(e EdgeHandle, inPath bool) { m.edges[e].InPath = inPath }

// EdgeEndpoints returns the two vertices of e, in the direction of its
// representative halfedge (source, target).
func (m *Mesh) EdgeEndpoints(e EdgeHandle) (VertexHandle, VertexHandle) {
	h := m.edges[e].He

	return m.HalfedgeSource(h), m.HalfedgeTarget(h)
}

// FaceHalfedge returns f's representative halfedge.
func (m *Mesh) FaceHalfedge(f FaceHandle) HalfedgeHandle { return m.faces[f].He }

// FaceHalfedges returns the three halfedges of f in face-cycle order.
func (m *Mesh) FaceHalfedges(f FaceHandle) [3]HalfedgeHandle {
	h0 := m.faces[f].He
	h1 := m.halfedges[h0].Next
	h2 := m.halfedges[h1].Next

	return [3]HalfedgeHandle{h0, h1, h2}
}

// FaceVertices returns f's three vertices in face-cycle order.
func (m *Mesh) FaceVertices(f FaceHandle) [3]VertexHandle {
	hs := m.FaceHalfedges(f)

	return [3]VertexHandle{
		m.HalfedgeTarget(hs[2]), // source of hs[0] == target of hs[2]
		m.HalfedgeTarget(hs[0]),
		m.HalfedgeTarget(hs[1]),
	}
}

// FaceEdgeLengths returns f's three edge lengths, ordered so lengths[i] is
// the side opposite FaceVertices(f)[i].
func (m *Mesh) FaceEdgeLengths(f FaceHandle) [3]float64 {
	hs := m.FaceHalfedges(f)

	return [3]float64{
		m.EdgeLength(m.HalfedgeEdge(hs[1])), // opposite vertex 0 is edge hs[1] (v1->v2)
		m.EdgeLength(m.HalfedgeEdge(hs[2])), // opposite vertex 1 is edge hs[2] (v2->v0)
		m.EdgeLength(m.HalfedgeEdge(hs[0])), // opposite vertex 2 is edge hs[0] (v0->v1)
	}
}

// OppositeHalfedge returns the halfedge of f that does not touch v, i.e. the
// side opposite vertex v in face f. v must be one of f's three vertices.
func (m *Mesh) OppositeHalfedge(f FaceHandle, v VertexHandle) HalfedgeHandle {
	hs := m.FaceHalfedges(f)
	for _, h := range hs {
		if m.HalfedgeTarget(h) != v && m.HalfedgeSource(h) != v {
			return h
		}
	}

	return InvalidHandle
}

// VertexDegree returns the number of distinct edges incident to v, by
// walking v's outgoing-halfedge fan.
func (m *Mesh) VertexDegree(v VertexHandle) int {
	out := m.OutgoingHalfedges(v)
	count := len(out)
	if count > 0 && m.halfedges[m.halfedges[out[0]].Prev].Twin == InvalidHandle {
		count++ // the incoming-only boundary edge that opens v's fan
	}

	return count
}

// OutgoingHalfedges returns every outgoing halfedge of v, in an arbitrary
// (CCW-by-construction, but unspecified to callers outside signpost) fan
// order. For an interior vertex the walk is a closed cycle; for a boundary
// vertex it starts at the fan's CCW-most halfedge (see
// computeRepresentatives in build.go) and stops when it runs out of twins.
func (m *Mesh) OutgoingHalfedges(v VertexHandle) []HalfedgeHandle {
	start := m.vertices[v].Rep
	if start == InvalidHandle {
		return nil
	}

	out := []HalfedgeHandle{start}
	h := start
	for {
		twin := m.halfedges[h].Twin
		if twin == InvalidHandle {
			break
		}
		next := m.halfedges[twin].Next
		if next == start {
			break
		}
		out = append(out, next)
		h = next
	}

	return out
}
