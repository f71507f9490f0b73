package flipnet

import (
	"math"

	"github.com/meshgeo/flipout/geopath"
	"github.com/meshgeo/flipout/meshcore"
	"github.com/meshgeo/flipout/signpost"
	"github.com/unixpickle/essentials"
)

// StraightnessEpsilon is the tolerance below pi used to decide whether an
// interior vertex's wedge angle counts as "straight" (i.e. not a flexible
// joint).
const StraightnessEpsilon = 1e-6

// pathLike is the subset of geopath.GeodesicPath / geopath.GeodesicLoop that
// the FlipOut loop needs. Both containers satisfy it, so a single
// findFlexibleJoint/flipOutAt implementation drives FlipNetwork's paths and
// LoopNetwork's single loop alike: the wedge-flip step never cares which
// container it came from.
type pathLike interface {
	InteriorVertices() []meshcore.VertexHandle
	AngleAtInteriorVertex(v meshcore.VertexHandle, ix *signpost.Index) (float64, error)
	IncomingOutgoingAt(v meshcore.VertexHandle) (incoming, outgoing meshcore.EdgeHandle, err error)
	UpdateLength()
}

// interiorVertex identifies one interior vertex of one container in a
// []pathLike scan, as returned by findFlexibleJoint.
type interiorVertex struct {
	containerIdx int
	vertex       meshcore.VertexHandle
}

// findFlexibleJoint scans containers in order and vertices in
// vertex-sequence order, skipping marked vertices, returning the first
// whose wedge angle is strictly below pi - epsilon.
func findFlexibleJoint(mesh *meshcore.Mesh, sp *signpost.Index, containers []pathLike) (interiorVertex, bool, error) {
	for ci, c := range containers {
		for _, v := range c.InteriorVertices() {
			if mesh.Mark(v) {
				continue
			}
			angle, err := c.AngleAtInteriorVertex(v, sp)
			if err != nil {
				return interiorVertex{}, false, err
			}
			if angle < math.Pi-StraightnessEpsilon {
				return interiorVertex{containerIdx: ci, vertex: v}, true, nil
			}
		}
	}

	return interiorVertex{}, false, nil
}

// flipAndUpdateSignpost flips e, capturing its endpoints immediately before
// and after the flip so the signpost index can be refreshed for exactly the
// four touched vertices (the edge's two original endpoints and its two new
// ones).
func flipAndUpdateSignpost(m *meshcore.Mesh, sp *signpost.Index, e meshcore.EdgeHandle) (bool, error) {
	beforeA, beforeB := m.EdgeEndpoints(e)
	ok, err := m.FlipEdge(e)
	if err != nil || !ok {
		return ok, err
	}
	afterA, afterB := m.EdgeEndpoints(e)
	sp.UpdateAfterFlip([4]meshcore.VertexHandle{beforeA, beforeB, afterA, afterB})

	return true, nil
}

// flipOutAt straightens the container at joint by flipping every wedge edge
// between its incoming and outgoing directions at that vertex, in signpost
// CCW order. Returns the number of edges actually flipped.
func flipOutAt(mesh *meshcore.Mesh, sp *signpost.Index, containers []pathLike, joint interiorVertex) (int, error) {
	c := containers[joint.containerIdx]
	v := joint.vertex

	incoming, outgoing, err := c.IncomingOutgoingAt(v)
	if err != nil {
		return 0, err
	}
	hIn, err := geopath.OutgoingHalfedgeOfEdgeAt(mesh, incoming, v)
	if err != nil {
		return 0, err
	}
	hOut, err := geopath.OutgoingHalfedgeOfEdgeAt(mesh, outgoing, v)
	if err != nil {
		return 0, err
	}

	flips, err := flipOutWedge(mesh, sp, v, hIn, hOut, incoming, outgoing)
	if err != nil {
		return flips, err
	}

	c.UpdateLength()

	return flips, nil
}

// flipOutWedge flips every edge of v's wedge between hIn and hOut (exclusive
// of the incoming/outgoing path edges themselves), re-deriving v's current
// outgoing fan after each flip since the previous flip may have reshaped it.
// Shared by FlipNetwork (paths) and LoopNetwork (loops): the wedge-flip step
// depends only on mesh handles, never on the path/loop container type.
func flipOutWedge(
	m *meshcore.Mesh, sp *signpost.Index,
	v meshcore.VertexHandle,
	hIn, hOut meshcore.HalfedgeHandle,
	incoming, outgoing meshcore.EdgeHandle,
) (int, error) {
	attempted := make(map[meshcore.EdgeHandle]bool)
	flips := 0

	for {
		next, ok := nextWedgeEdge(m, sp, v, hIn, hOut, incoming, outgoing, attempted)
		if !ok {
			break
		}
		attempted[next] = true
		flipped, err := flipAndUpdateSignpost(m, sp, next)
		if err != nil {
			return flips, err
		}
		if flipped {
			flips++
		}
	}

	return flips, nil
}

// nextWedgeEdge re-derives v's current outgoing fan in CCW order and returns
// the CCW-first edge whose angle lies in the closed arc [angle(hIn),
// angle(hOut)], is neither the incoming nor outgoing path edge, and has not
// already been attempted in this flipOutWedge call.
func nextWedgeEdge(
	m *meshcore.Mesh, sp *signpost.Index,
	v meshcore.VertexHandle,
	hIn, hOut meshcore.HalfedgeHandle,
	incoming, outgoing meshcore.EdgeHandle,
	attempted map[meshcore.EdgeHandle]bool,
) (meshcore.EdgeHandle, bool) {
	thetaIn := sp.Angle(hIn)
	thetaOut := sp.Angle(hOut)

	for _, h := range sp.OutgoingSortedCCW(v) {
		e := m.HalfedgeEdge(h)
		if e == incoming || e == outgoing || attempted[e] {
			continue
		}
		theta := sp.Angle(h)
		if !signpost.IsAngleBetween(theta, thetaIn, thetaOut) {
			continue
		}

		return e, true
	}

	return meshcore.InvalidHandle, false
}

// runFlipOut is the shared outer loop: it terminates when findFlexibleJoint
// finds nothing (converged), an iteration flips no edge, the length change
// between consecutive iterations falls below threshold, or maxIterations is
// exhausted. totalLength
// is called fresh after every mutation since the containers cache their own
// length independently.
func runFlipOut(
	mesh *meshcore.Mesh, sp *signpost.Index, containers []pathLike,
	maxIterations uint32, threshold float64, logger Logger,
	totalLength func() float64,
) (Stats, error) {
	stats := Stats{InitialLength: totalLength()}
	lastLength := stats.InitialLength
	maxIter := essentials.MaxInt(1, int(maxIterations))

	for iter := 0; iter < maxIter; iter++ {
		joint, found, err := findFlexibleJoint(mesh, sp, containers)
		if err != nil {
			return stats, err
		}
		if !found {
			stats.Converged = true
			stats.Iterations = iter

			break
		}

		logJointFound(logger, iter, joint.vertex)

		flips, err := flipOutAt(mesh, sp, containers, joint)
		if err != nil {
			return stats, err
		}
		stats.FlipsPerformed += flips
		if flips == 0 {
			// Every wedge edge failed its flip precondition: nothing moved,
			// so continuing would spin on the same joint forever.
			stats.Iterations = iter + 1

			break
		}

		length := totalLength()
		stats.Iterations = iter + 1
		if math.Abs(length-lastLength) < threshold {
			break
		}
		lastLength = length
	}

	stats.FinalLength = totalLength()

	return stats, nil
}

// IterativeShorten runs the FlipOut outer loop over every path in the
// network until convergence, the configured iteration cap, or the
// configured length-change threshold, whichever comes first.
func (n *FlipNetwork) IterativeShorten() (Stats, error) {
	containers := make([]pathLike, len(n.paths))
	for i, p := range n.paths {
		containers[i] = p
	}

	return runFlipOut(n.mesh, n.sp, containers, n.opts.MaxIterations, n.opts.ConvergenceThreshold, n.opts.Logger, n.TotalLength)
}
