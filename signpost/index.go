package signpost

import (
	"github.com/meshgeo/flipout/meshcore"
	"github.com/unixpickle/essentials"
)

// Index is a per-vertex CCW angular coordinate system over a mesh's
// outgoing halfedges, rebuilt incrementally as the mesh is flipped.
//
// For a vertex v with outgoing fan h0, h1, ..., hk-1 (in the CCW order
// meshcore.Mesh.OutgoingHalfedges returns), Angle(h0) is defined as 0 and
// Angle(hi) accumulates the interior face angle at v of every face crossed
// between h0 and hi. Total(v) is the sum of all such face angles around v:
// close to 2*pi for an interior vertex (exactly 2*pi only in the absence of
// angle defect) and the true boundary angle sum for a boundary vertex.
type Index struct {
	mesh  *meshcore.Mesh
	angle []float64 // indexed by HalfedgeHandle
	total []float64 // indexed by VertexHandle
}

// Build computes the angular index for every vertex of m.
func Build(m *meshcore.Mesh) *Index {
	ix := &Index{
		mesh:  m,
		angle: make([]float64, m.NumHalfedges()),
		total: make([]float64, m.NumVertices()),
	}
	for v := 0; v < m.NumVertices(); v++ {
		ix.buildVertex(meshcore.VertexHandle(v))
	}

	return ix
}

// buildVertex (re)computes the cumulative angle of every outgoing halfedge
// of v and v's total angle, overwriting any previous values.
func (ix *Index) buildVertex(v meshcore.VertexHandle) {
	m := ix.mesh
	outs := m.OutgoingHalfedges(v)
	if len(outs) == 0 {
		return
	}

	n := len(outs)
	ix.angle[outs[0]] = 0

	gaps := n - 1
	if m.HalfedgeTwin(outs[n-1]) != meshcore.InvalidHandle {
		gaps = n // interior vertex: the fan closes, one more gap wraps to outs[0]
	}

	cumulative := 0.0
	for i := 0; i < gaps; i++ {
		h := outs[i]
		f := m.HalfedgeFace(m.HalfedgeTwin(h))
		verts := m.FaceVertices(f)
		angles, _ := m.FaceAngles(f)
		cumulative += angles[vertexIndexIn(verts, v)]
		if i+1 < n {
			ix.angle[outs[i+1]] = cumulative
		}
	}
	if gaps < n {
		// boundary vertex: outs[0]'s own face lies between the incoming-only
		// boundary edge and outs[0], and belongs to the corner angle too.
		f := m.HalfedgeFace(outs[0])
		verts := m.FaceVertices(f)
		angles, _ := m.FaceAngles(f)
		cumulative += angles[vertexIndexIn(verts, v)]
	}
	ix.total[v] = cumulative
}

func vertexIndexIn(verts [3]meshcore.VertexHandle, v meshcore.VertexHandle) int {
	for i, vv := range verts {
		if vv == v {
			return i
		}
	}

	return -1
}

// Angle returns the cumulative CCW angle of outgoing halfedge h within its
// source vertex's angular coordinate system.
func (ix *Index) Angle(h meshcore.HalfedgeHandle) float64 {
	return ix.angle[h]
}

// Total returns the total angle swept around v (2*pi plus angle defect for
// an interior vertex, the true corner-angle sum for a boundary vertex).
func (ix *Index) Total(v meshcore.VertexHandle) float64 {
	return ix.total[v]
}

// AngleBetween returns the CCW angular distance from hFrom to hTo, both
// required to be outgoing from the same vertex, wrapping through Total(v)
// when hTo's raw angle is smaller than hFrom's.
func (ix *Index) AngleBetween(hFrom, hTo meshcore.HalfedgeHandle) float64 {
	v := ix.mesh.HalfedgeSource(hFrom)
	diff := ix.angle[hTo] - ix.angle[hFrom]
	if diff < 0 {
		diff += ix.total[v]
	}

	return diff
}

// IsAngleBetween reports whether theta lies in the CCW arc [start, end],
// wrapping through 0 (or, equivalently, through total) when end < start.
func IsAngleBetween(theta, start, end float64) bool {
	if start <= end {
		return theta >= start && theta <= end
	}

	return theta >= start || theta <= end
}

// OutgoingSortedCCW returns every outgoing halfedge of v sorted by ascending
// cumulative angle, i.e. in true CCW fan order starting from the reference
// halfedge. Halfedges that land at exactly the same angle (degenerate flat
// wedges) are tie-broken by halfedge handle so the order is stable and
// reproducible across calls.
func (ix *Index) OutgoingSortedCCW(v meshcore.VertexHandle) []meshcore.HalfedgeHandle {
	outs := ix.mesh.OutgoingHalfedges(v)
	angles := make([]float64, len(outs))
	for i, h := range outs {
		angles[i] = ix.angle[h]
	}
	essentials.VoodooSort(angles, func(i, j int) bool {
		if angles[i] != angles[j] {
			return angles[i] < angles[j]
		}

		return outs[i] < outs[j]
	}, outs)

	return outs
}

// UpdateAfterFlip recomputes the angular index for every vertex in vs,
// whose outgoing fans changed shape after a meshcore.Mesh.FlipEdge call.
// Callers pass the flip's four touched vertices (the edge's two original
// endpoints and the two opposite "wing" vertices).
func (ix *Index) UpdateAfterFlip(vs [4]meshcore.VertexHandle) {
	for _, v := range vs {
		ix.buildVertex(v)
	}
}
