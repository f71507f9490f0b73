package segmentation

import (
	"github.com/meshgeo/flipout/geopath"
	"github.com/meshgeo/flipout/meshcore"
)

// maxMajorityVotePasses bounds the majority-vote resolution stage against
// pathological inputs (a non-manifold or non-closed loop) that could
// otherwise flip the same face back and forth indefinitely.
const maxMajorityVotePasses = 64

// Compute classifies every face of m relative to loop, per the flood-fill
// algorithm: seed a face on each side of the loop's first edge (inside is
// the face to the left of the loop's traversal direction, i.e. the face
// owning the halfedge that departs from the loop's base vertex), flood each
// seed across every non-loop edge, resolve anything the flood fill missed by
// a majority vote over classified neighbours, and default any still-Unknown
// face to Outside.
func Compute(m *meshcore.Mesh, loop *geopath.GeodesicLoop) (*Result, error) {
	res := &Result{faceRegion: make([]Region, m.NumFaces())}

	insideSeed, outsideSeed, err := seedFaces(m, loop)
	if err != nil {
		return nil, err
	}
	if insideSeed.Valid() {
		floodFill(m, res.faceRegion, insideSeed, Inside)
	}
	if outsideSeed.Valid() {
		floodFill(m, res.faceRegion, outsideSeed, Outside)
	}

	markBoundaryTouchingFaces(m, res.faceRegion)
	resolveByMajorityVote(m, res.faceRegion)

	for f, reg := range res.faceRegion {
		if reg == Unknown {
			res.faceRegion[f] = Outside
		}
	}

	areas, err := computeAreas(m, res.faceRegion)
	if err != nil {
		return nil, err
	}
	res.Areas = areas

	return res, nil
}

// seedFaces resolves the loop's first edge's halfedge oriented away from the
// base vertex: its owning face seeds Inside, its twin's owning face (if the
// edge is interior) seeds Outside.
func seedFaces(m *meshcore.Mesh, loop *geopath.GeodesicLoop) (inside, outside meshcore.FaceHandle, err error) {
	first := loop.Edges()[0]
	h, err := geopath.OutgoingHalfedgeOfEdgeAt(m, first, loop.Base())
	if err != nil {
		return meshcore.InvalidHandle, meshcore.InvalidHandle, err
	}

	inside = m.HalfedgeFace(h)
	outside = meshcore.InvalidHandle
	if t := m.HalfedgeTwin(h); t != meshcore.InvalidHandle {
		outside = m.HalfedgeFace(t)
	}

	return inside, outside, nil
}

// floodFill assigns region to seed and every face reachable from it by
// crossing a non-loop edge, via breadth-first search.
func floodFill(m *meshcore.Mesh, faceRegion []Region, seed meshcore.FaceHandle, region Region) {
	if faceRegion[seed] != Unknown {
		return
	}

	queue := []meshcore.FaceHandle{seed}
	faceRegion[seed] = region

	for len(queue) > 0 {
		f := queue[0]
		queue = queue[1:]

		for _, h := range m.FaceHalfedges(f) {
			e := m.HalfedgeEdge(h)
			if m.EdgeInPath(e) {
				continue // loop edge: does not separate inside from outside here
			}
			t := m.HalfedgeTwin(h)
			if t == meshcore.InvalidHandle {
				continue // mesh boundary
			}
			nf := m.HalfedgeFace(t)
			if faceRegion[nf] != Unknown {
				continue
			}
			faceRegion[nf] = region
			queue = append(queue, nf)
		}
	}
}

// markBoundaryTouchingFaces assigns Boundary to every still-Unknown face
// that has at least one loop edge on its border.
func markBoundaryTouchingFaces(m *meshcore.Mesh, faceRegion []Region) {
	for f := range faceRegion {
		if faceRegion[f] != Unknown {
			continue
		}
		for _, h := range m.FaceHalfedges(meshcore.FaceHandle(f)) {
			if m.EdgeInPath(m.HalfedgeEdge(h)) {
				faceRegion[f] = Boundary

				break
			}
		}
	}
}

// resolveByMajorityVote repeatedly assigns each remaining Unknown face the
// region held by at least two of its (up to three) neighbours, a strict
// majority of three, until a pass makes no change or the safety cap is hit.
func resolveByMajorityVote(m *meshcore.Mesh, faceRegion []Region) {
	for pass := 0; pass < maxMajorityVotePasses; pass++ {
		changed := false
		for f := range faceRegion {
			if faceRegion[f] != Unknown {
				continue
			}
			counts := map[Region]int{}
			for _, h := range m.FaceHalfedges(meshcore.FaceHandle(f)) {
				t := m.HalfedgeTwin(h)
				if t == meshcore.InvalidHandle {
					continue
				}
				nr := faceRegion[m.HalfedgeFace(t)]
				if nr != Unknown {
					counts[nr]++
				}
			}
			best, bestCount := Unknown, 0
			for r, c := range counts {
				if c > bestCount {
					best, bestCount = r, c
				}
			}
			if bestCount*2 > 3 { // strict majority of up to 3 neighbours
				faceRegion[f] = best
				changed = true
			}
		}
		if !changed {
			break
		}
	}
}

// computeAreas sums each region's face areas via Heron's formula.
func computeAreas(m *meshcore.Mesh, faceRegion []Region) (map[Region]float64, error) {
	areas := map[Region]float64{Inside: 0, Outside: 0, Boundary: 0}
	for f, reg := range faceRegion {
		a, err := m.FaceArea(meshcore.FaceHandle(f))
		if err != nil {
			return nil, err
		}
		areas[reg] += a
	}

	return areas, nil
}
