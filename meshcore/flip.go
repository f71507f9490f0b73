package meshcore

import "math"

// DelaunayEpsilon is the tolerance used by IsDelaunay's "sum of opposite
// angles <= pi + eps" test, absorbing floating-point rounding at the
// Delaunay boundary.
const DelaunayEpsilon = 1e-9

// FlipEdge performs the canonical halfedge flip of e: the edge is removed
// from between its two "near" vertices and reinserted between the two
// "far" vertices of the quadrilateral formed by e's two incident triangles.
// The new length is taken as the Euclidean distance between the far
// vertices in the extrinsic embedding carried alongside the intrinsic
// lengths, rather than an unfolded flattening of the two triangles: the
// embedding is cheap to keep current after a flip and exact for the flat
// and near-flat inputs this package targets.
//
// Preconditions (failure returns (false, nil), not an error — an individual
// failed flip is an expected, silently-skippable event for FlipOut):
//   - e must be interior (have a twin).
//   - both endpoints of e must have degree > 1 (flipping a degree-1 endpoint
//     would disconnect it).
//
// Postconditions on success: the two incident faces keep valid triangle
// invariants (positive lengths, strict triangle inequality); all six
// surrounding halfedges are re-linked; face and vertex representative
// halfedges are repaired to still point at an incident halfedge.
//
// Complexity: O(d) in the degrees of the touched vertices (fan walks for
// the degree check and representative repair).
func (m *Mesh) FlipEdge(e EdgeHandle) (bool, error) {
	h := m.edges[e].He
	t := m.halfedges[h].Twin
	if t == InvalidHandle {
		return false, nil // boundary edge: not flippable
	}

	vA := m.HalfedgeSource(h) // h: A -> B
	vB := m.HalfedgeTarget(h)
	if m.VertexDegree(vA) <= 1 || m.VertexDegree(vB) <= 1 {
		return false, nil
	}

	n1 := m.halfedges[h].Next // B -> C
	p1 := m.halfedges[h].Prev // C -> A
	n2 := m.halfedges[t].Next // A -> D
	p2 := m.halfedges[t].Prev // D -> B
	vC := m.halfedges[n1].Target
	vD := m.halfedges[n2].Target

	faceA := m.halfedges[h].Face
	faceB := m.halfedges[t].Face

	// Re-target the two diagonal halfedges: h becomes D->C, t becomes C->D.
	m.halfedges[h].Target = vC
	m.halfedges[t].Target = vD

	// Face faceA becomes triangle (D, C, A): cycle h(D->C) -> p1(C->A) -> n2(A->D).
	m.halfedges[h].Next = p1
	m.halfedges[p1].Next = n2
	m.halfedges[n2].Next = h
	m.halfedges[h].Prev = n2
	m.halfedges[n2].Prev = p1
	m.halfedges[p1].Prev = h
	m.halfedges[p1].Face = faceA
	m.halfedges[n2].Face = faceA
	m.faces[faceA].He = h

	// Face faceB becomes triangle (C, D, B): cycle t(C->D) -> p2(D->B) -> n1(B->C).
	m.halfedges[t].Next = p2
	m.halfedges[p2].Next = n1
	m.halfedges[n1].Next = t
	m.halfedges[t].Prev = n1
	m.halfedges[n1].Prev = p2
	m.halfedges[p2].Prev = t
	m.halfedges[n1].Face = faceB
	m.halfedges[p2].Face = faceB
	m.faces[faceB].He = t

	// Diagonal length from the original 3-D embedding of the far vertices.
	m.edges[e].Length = m.vertices[vC].Pos.Distance(m.vertices[vD].Pos)

	// Repair representative halfedges for the four touched vertices: A and B
	// each lost their one outgoing copy of e; C and D gained one.
	m.vertices[vA].Rep = n2 // A -> D, still outgoing from A
	m.vertices[vB].Rep = n1 // B -> C, still outgoing from B
	m.vertices[vC].Rep = t  // C -> D
	m.vertices[vD].Rep = h  // D -> C
	for _, v := range [4]VertexHandle{vA, vB, vC, vD} {
		m.repairBoundaryRep(v)
	}

	return true, nil
}

// repairBoundaryRep re-scans v's outgoing fan (starting from its current,
// valid Rep) and, if v turns out to be a boundary vertex, moves Rep to the
// CCW-first outgoing halfedge of the open fan (see computeRepresentatives).
// A no-op for interior vertices.
func (m *Mesh) repairBoundaryRep(v VertexHandle) {
	for _, h := range m.OutgoingHalfedges(v) {
		if m.halfedges[m.halfedges[h].Prev].Twin == InvalidHandle {
			m.vertices[v].Rep = h

			return
		}
	}
}

// FaceAngles returns f's three interior angles, ordered to match
// FaceVertices(f): angles[i] is the angle at FaceVertices(f)[i].
func (m *Mesh) FaceAngles(f FaceHandle) ([3]float64, error) {
	lens := m.FaceEdgeLengths(f)
	a, b, c, err := faceAnglesFromLengths(lens)

	return [3]float64{a, b, c}, err
}

// FaceArea returns f's area via Heron's formula over its current edge lengths.
func (m *Mesh) FaceArea(f FaceHandle) (float64, error) {
	lens := m.FaceEdgeLengths(f)

	return faceAreaFromLengths(lens)
}

// angleOppositeHalfedge returns the interior angle at the vertex opposite h
// within h's face, i.e. the angle the flip/Delaunay tests call "the angle
// looking across the diagonal".
func (m *Mesh) angleOppositeHalfedge(h HalfedgeHandle) (float64, error) {
	f := m.halfedges[h].Face
	hs := m.FaceHalfedges(f)
	angles, err := m.FaceAngles(f)
	if err != nil {
		return 0, err
	}
	for i, fh := range hs {
		if fh == h {
			return angles[i], nil
		}
	}

	return 0, ErrInvalidHandle
}

// IsDelaunay reports whether e satisfies the Delaunay condition: the sum of
// the two angles opposite e (one in each incident triangle) is <= pi + eps.
// Boundary edges are trivially Delaunay (there is no opposing triangle to
// violate the condition).
func (m *Mesh) IsDelaunay(e EdgeHandle) (bool, error) {
	h := m.edges[e].He
	t := m.halfedges[h].Twin
	if t == InvalidHandle {
		return true, nil
	}

	angle1, err := m.angleOppositeHalfedge(h)
	if err != nil {
		return false, err
	}
	angle2, err := m.angleOppositeHalfedge(t)
	if err != nil {
		return false, err
	}

	return angle1+angle2 <= math.Pi+DelaunayEpsilon, nil
}

// makeDelaunaySafetyFactor bounds MakeDelaunay's iteration budget at
// 10*|E| flip attempts, matching the reference safety net against
// pathological non-termination.
const makeDelaunaySafetyFactor = 10

// MakeDelaunay repeatedly flips non-Delaunay interior edges, scanning edges
// in ascending handle order each pass, until a full pass performs zero
// flips or the 10*|E| safety-net budget is exhausted. Returns the number of
// flips performed. Idempotent: a second call on an already-Delaunay mesh
// performs zero flips.
func (m *Mesh) MakeDelaunay() (int, error) {
	budget := makeDelaunaySafetyFactor * len(m.edges)
	flips := 0

	for attempt := 0; attempt < budget; {
		didFlip := false
		for e := 0; e < len(m.edges); e++ {
			eh := EdgeHandle(e)
			attempt++
			if attempt > budget {
				return flips, nil
			}
			if m.EdgeIsBoundary(eh) {
				continue
			}
			ok, err := m.IsDelaunay(eh)
			if err != nil {
				return flips, err
			}
			if ok {
				continue
			}
			flipped, err := m.FlipEdge(eh)
			if err != nil {
				return flips, err
			}
			if flipped {
				flips++
				didFlip = true
			}
		}
		if !didFlip {
			break
		}
	}

	return flips, nil
}
