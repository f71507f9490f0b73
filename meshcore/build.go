package meshcore

import (
	"fmt"

	"github.com/meshgeo/flipout/geom"
	"github.com/pkg/errors"
)

// Build constructs a Mesh from an extrinsic position buffer and a
// CCW-per-triangle index buffer, mirroring the reference ingest contract:
// positions and indices are both required, len(indices) must be a multiple
// of 3, and every index must address a real vertex.
//
// Construction:
//  1. One Vertex per position.
//  2. 3 halfedges and 1 Face per triangle, wired into a closed face cycle
//     (h.Next.Next.Next == h).
//  3. Halfedges are grouped by their unordered endpoint pair; a group of two
//     becomes one interior Edge with mutual twins, a group of one becomes a
//     boundary Edge with no twin, any other group size is ErrNonManifold.
//  4. Each Edge's intrinsic length is seeded as the Euclidean distance
//     between its endpoints' extrinsic positions.
//
// Duplicate-vertex merging (within some epsilon) is the caller's
// responsibility; Build performs none.
//
// Complexity: O(N+M) time and space, where N=len(positions), M=len(indices)/3.
func Build(positions []geom.Vec3, indices []int) (*Mesh, error) {
	if len(positions) == 0 {
		return nil, ErrNoPositions
	}
	if len(indices) == 0 {
		return nil, ErrNoIndices
	}
	if len(indices)%3 != 0 {
		return nil, ErrIndexCount
	}
	for _, idx := range indices {
		if idx < 0 || idx >= len(positions) {
			return nil, errors.Wrapf(ErrIndexOutOfRange, "index %d (have %d vertices)", idx, len(positions))
		}
	}

	numVerts := len(positions)
	numFaces := len(indices) / 3

	m := &Mesh{
		vertices:  make([]vertexData, numVerts),
		halfedges: make([]halfedgeData, 0, numFaces*3),
		faces:     make([]faceData, numFaces),
	}
	for i, p := range positions {
		m.vertices[i] = vertexData{Pos: p, Rep: InvalidHandle}
	}

	// Pass 1: allocate halfedges/faces and wire Next/Prev/Target/Face.
	for f := 0; f < numFaces; f++ {
		base := HalfedgeHandle(len(m.halfedges))
		tri := [3]VertexHandle{
			VertexHandle(indices[3*f]),
			VertexHandle(indices[3*f+1]),
			VertexHandle(indices[3*f+2]),
		}
		for i := 0; i < 3; i++ {
			m.halfedges = append(m.halfedges, halfedgeData{
				Target: tri[(i+1)%3],
				Edge:   InvalidHandle,
				Twin:   InvalidHandle,
				Next:   base + HalfedgeHandle((i+1)%3),
				Prev:   base + HalfedgeHandle((i+2)%3),
				Face:   FaceHandle(f),
			})
		}
		m.faces[f] = faceData{He: base}
	}

	if err := m.pairTwinsAndBuildEdges(); err != nil {
		return nil, err
	}
	m.computeRepresentatives()

	return m, nil
}

// edgeKey canonicalizes an unordered vertex pair for edge grouping.
type edgeKey struct{ lo, hi VertexHandle }

func makeEdgeKey(a, b VertexHandle) edgeKey {
	if a <= b {
		return edgeKey{a, b}
	}

	return edgeKey{b, a}
}

// pairTwinsAndBuildEdges groups halfedges by their canonical endpoint pair,
// creating one Edge per group and linking twins for interior groups.
func (m *Mesh) pairTwinsAndBuildEdges() error {
	groups := make(map[edgeKey][]HalfedgeHandle, len(m.halfedges)/2+1)
	// Preserve first-seen group order for deterministic edge handle assignment.
	order := make([]edgeKey, 0, len(m.halfedges)/2+1)

	for h := range m.halfedges {
		hh := HalfedgeHandle(h)
		src := m.HalfedgeSource(hh)
		dst := m.HalfedgeTarget(hh)
		key := makeEdgeKey(src, dst)
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], hh)
	}

	m.edges = make([]edgeData, 0, len(order))
	for _, key := range order {
		hes := groups[key]
		switch len(hes) {
		case 1:
			e := EdgeHandle(len(m.edges))
			m.edges = append(m.edges, edgeData{
				He:     hes[0],
				Length: m.edgeLengthFromPositions(hes[0]),
			})
			m.halfedges[hes[0]].Edge = e
		case 2:
			e := EdgeHandle(len(m.edges))
			m.edges = append(m.edges, edgeData{
				He:     hes[0],
				Length: m.edgeLengthFromPositions(hes[0]),
			})
			m.halfedges[hes[0]].Edge = e
			m.halfedges[hes[1]].Edge = e
			m.halfedges[hes[0]].Twin = hes[1]
			m.halfedges[hes[1]].Twin = hes[0]
		default:
			return errors.Wrapf(ErrNonManifold, "edge (%d,%d) has %d incident halfedges", key.lo, key.hi, len(hes))
		}
	}

	return nil
}

// edgeLengthFromPositions returns the Euclidean length of the edge h belongs
// to, computed from the current extrinsic positions of its endpoints.
func (m *Mesh) edgeLengthFromPositions(h HalfedgeHandle) float64 {
	src := m.HalfedgeSource(h)
	dst := m.HalfedgeTarget(h)

	return m.vertices[src].Pos.Distance(m.vertices[dst].Pos)
}

// computeRepresentatives assigns each vertex's representative outgoing
// halfedge. Interior vertices get an arbitrary outgoing halfedge (any choice
// is a valid start for a closed fan walk). Boundary vertices get the one
// outgoing halfedge whose Prev lacks a twin, i.e. the CCW-first halfedge of
// an open fan, so a forward-only walk (signpost.Index / Mesh.OutgoingHalfedges)
// reaches every outgoing halfedge before terminating at the far boundary.
func (m *Mesh) computeRepresentatives() {
	for h := range m.halfedges {
		hh := HalfedgeHandle(h)
		m.vertices[m.HalfedgeSource(hh)].Rep = hh
	}
	for h := range m.halfedges {
		hh := HalfedgeHandle(h)
		prev := m.halfedges[hh].Prev
		if m.halfedges[prev].Twin == InvalidHandle {
			m.vertices[m.HalfedgeSource(hh)].Rep = hh
		}
	}
}

// Export returns the position and (CCW, per-triangle) index buffers that
// would reconstruct a mesh with identical vertex/edge/face counts (edge
// identities are not preserved: flips change which vertex pairs are
// adjacent). Used to verify the build/export/re-ingest round trip.
func (m *Mesh) Export() ([]geom.Vec3, []int) {
	positions := make([]geom.Vec3, len(m.vertices))
	for i, v := range m.vertices {
		positions[i] = v.Pos
	}

	indices := make([]int, 0, len(m.faces)*3)
	for f := range m.faces {
		verts := m.FaceVertices(FaceHandle(f))
		indices = append(indices, int(verts[0]), int(verts[1]), int(verts[2]))
	}

	return positions, indices
}

// String implements fmt.Stringer for debugging/log output.
func (m *Mesh) String() string {
	return fmt.Sprintf("meshcore.Mesh{V=%d, HE=%d, E=%d, F=%d}", len(m.vertices), len(m.halfedges), len(m.edges), len(m.faces))
}
