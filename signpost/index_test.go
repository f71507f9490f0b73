package signpost_test

import (
	"math"
	"testing"

	"github.com/meshgeo/flipout/geom"
	"github.com/meshgeo/flipout/meshcore"
	"github.com/meshgeo/flipout/signpost"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unitSquareFixture() ([]geom.Vec3, []int) {
	positions := []geom.Vec3{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 1, Y: 1, Z: 0},
		{X: 0, Y: 1, Z: 0},
	}
	indices := []int{0, 1, 2, 0, 2, 3}

	return positions, indices
}

func octahedronFixture() ([]geom.Vec3, []int) {
	positions := []geom.Vec3{
		{X: 1, Y: 0, Z: 0},
		{X: -1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: 0, Y: -1, Z: 0},
		{X: 0, Y: 0, Z: 1},
		{X: 0, Y: 0, Z: -1},
	}
	indices := []int{
		0, 2, 4,
		2, 1, 4,
		1, 3, 4,
		3, 0, 4,
		2, 0, 5,
		1, 2, 5,
		3, 1, 5,
		0, 3, 5,
	}

	return positions, indices
}

func TestIndex_InteriorVertexTotalAngle(t *testing.T) {
	positions, indices := octahedronFixture()
	m, err := meshcore.Build(positions, indices)
	require.NoError(t, err)

	ix := signpost.Build(m)
	for v := 0; v < m.NumVertices(); v++ {
		// Every octahedron face is equilateral (side sqrt(2)): each corner
		// contributes pi/3, and every vertex has degree 4.
		assert.InDelta(t, 4*math.Pi/3, ix.Total(meshcore.VertexHandle(v)), 1e-9)
	}
}

func TestIndex_BoundaryVertexTotalAngle(t *testing.T) {
	positions, indices := unitSquareFixture()
	m, err := meshcore.Build(positions, indices)
	require.NoError(t, err)

	ix := signpost.Build(m)
	// Vertex 0 is the unit square's bottom-left corner: its true interior
	// angle is exactly pi/2, split across the two triangles meeting there.
	assert.InDelta(t, math.Pi/2, ix.Total(meshcore.VertexHandle(0)), 1e-9)
}

func TestIndex_AngleBetweenWrapsAndFirstIsZero(t *testing.T) {
	positions, indices := octahedronFixture()
	m, err := meshcore.Build(positions, indices)
	require.NoError(t, err)

	ix := signpost.Build(m)
	v := meshcore.VertexHandle(0)
	outs := m.OutgoingHalfedges(v)
	require.Len(t, outs, 4)

	assert.Equal(t, 0.0, ix.Angle(outs[0]))
	// Angles must be strictly increasing around the fan.
	for i := 1; i < len(outs); i++ {
		assert.Greater(t, ix.Angle(outs[i]), ix.Angle(outs[i-1]))
	}
	// A halfedge's angle to itself is zero (no wrap); stepping from the last
	// halfedge back to the first wraps through the total and stays positive.
	full := ix.AngleBetween(outs[0], outs[0])
	assert.InDelta(t, 0.0, full, 1e-9)
	wrap := ix.AngleBetween(outs[len(outs)-1], outs[0])
	assert.Greater(t, wrap, 0.0)
}

func TestIsAngleBetween(t *testing.T) {
	assert.True(t, signpost.IsAngleBetween(1.0, 0.5, 1.5))
	assert.False(t, signpost.IsAngleBetween(2.0, 0.5, 1.5))
	// Wrap-around arc: start > end means the arc crosses the 0/total seam.
	assert.True(t, signpost.IsAngleBetween(0.1, 6.0, 0.5))
	assert.True(t, signpost.IsAngleBetween(6.2, 6.0, 0.5))
	assert.False(t, signpost.IsAngleBetween(3.0, 6.0, 0.5))
}

func TestIndex_UpdateAfterFlipRecomputes(t *testing.T) {
	positions, indices := unitSquareFixture()
	m, err := meshcore.Build(positions, indices)
	require.NoError(t, err)

	ix := signpost.Build(m)

	var diag meshcore.EdgeHandle = -1
	for e := 0; e < m.NumEdges(); e++ {
		eh := meshcore.EdgeHandle(e)
		if !m.EdgeIsBoundary(eh) {
			diag = eh

			break
		}
	}
	require.NotEqual(t, meshcore.EdgeHandle(-1), diag)

	a, b := m.EdgeEndpoints(diag)
	flipped, err := m.FlipEdge(diag)
	require.NoError(t, err)
	require.True(t, flipped)

	ix.UpdateAfterFlip([4]meshcore.VertexHandle{a, b, a, b})
	fresh := signpost.Build(m)
	// An incremental update of the touched vertices must agree with a full
	// rebuild from the post-flip mesh.
	assert.InDelta(t, fresh.Total(a), ix.Total(a), 1e-9)
	assert.InDelta(t, fresh.Total(b), ix.Total(b), 1e-9)
}
