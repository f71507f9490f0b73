package meshcore_test

import (
	"math"
	"testing"

	"github.com/meshgeo/flipout/meshcore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// findEdge returns the edge of m whose endpoints are exactly {a, b}.
func findEdge(t *testing.T, m *meshcore.Mesh, a, b meshcore.VertexHandle) meshcore.EdgeHandle {
	t.Helper()
	for e := 0; e < m.NumEdges(); e++ {
		eh := meshcore.EdgeHandle(e)
		s, d := m.EdgeEndpoints(eh)
		if (s == a && d == b) || (s == b && d == a) {
			return eh
		}
	}
	t.Fatalf("no edge between vertices %d and %d", a, b)

	return meshcore.EdgeHandle(meshcore.InvalidHandle)
}

func TestFlipEdge_UnitSquareLengthInvariant(t *testing.T) {
	positions, indices := unitSquareFixture()
	m, err := meshcore.Build(positions, indices)
	require.NoError(t, err)

	diagonal := findEdge(t, m, 0, 2)
	assert.InDelta(t, math.Sqrt2, m.EdgeLength(diagonal), 1e-9)

	flipped, err := m.FlipEdge(diagonal)
	require.NoError(t, err)
	require.True(t, flipped)

	// The unit square's two diagonals have equal length: flipping (0,2) for
	// (1,3) must leave the (now reinterpreted) edge's length unchanged.
	assert.InDelta(t, math.Sqrt2, m.EdgeLength(diagonal), 1e-9)
	s, d := m.EdgeEndpoints(diagonal)
	assert.ElementsMatch(t, []meshcore.VertexHandle{1, 3}, []meshcore.VertexHandle{s, d})
}

func TestFlipEdge_BoundaryEdgeRejected(t *testing.T) {
	positions, indices := unitSquareFixture()
	m, err := meshcore.Build(positions, indices)
	require.NoError(t, err)

	boundary := findEdge(t, m, 0, 1)
	flipped, err := m.FlipEdge(boundary)
	require.NoError(t, err)
	assert.False(t, flipped)
}

func TestFlipEdge_PreservesEulerCharacteristic(t *testing.T) {
	positions, indices := octahedronFixture()
	m, err := meshcore.Build(positions, indices)
	require.NoError(t, err)

	wantV, wantHE, wantE, wantF := m.NumVertices(), m.NumHalfedges(), m.NumEdges(), m.NumFaces()

	var interior meshcore.EdgeHandle = meshcore.EdgeHandle(meshcore.InvalidHandle)
	for e := 0; e < m.NumEdges(); e++ {
		eh := meshcore.EdgeHandle(e)
		if !m.EdgeIsBoundary(eh) {
			interior = eh

			break
		}
	}
	require.NotEqual(t, meshcore.EdgeHandle(meshcore.InvalidHandle), interior)

	flipped, err := m.FlipEdge(interior)
	require.NoError(t, err)
	require.True(t, flipped)

	assert.Equal(t, wantV, m.NumVertices())
	assert.Equal(t, wantHE, m.NumHalfedges())
	assert.Equal(t, wantE, m.NumEdges())
	assert.Equal(t, wantF, m.NumFaces())

	// Every halfedge must still form a closed 3-cycle within its face.
	for f := 0; f < m.NumFaces(); f++ {
		hs := m.FaceHalfedges(meshcore.FaceHandle(f))
		for _, h := range hs {
			assert.Equal(t, meshcore.FaceHandle(f), m.HalfedgeFace(h))
		}
		assert.Equal(t, hs[0], m.HalfedgeNext(m.HalfedgeNext(m.HalfedgeNext(hs[0]))))
	}
}

func TestMakeDelaunay_Idempotent(t *testing.T) {
	positions, indices := octahedronFixture()
	m, err := meshcore.Build(positions, indices)
	require.NoError(t, err)

	_, err = m.MakeDelaunay()
	require.NoError(t, err)

	secondPassFlips, err := m.MakeDelaunay()
	require.NoError(t, err)
	assert.Equal(t, 0, secondPassFlips, "a second MakeDelaunay pass must perform zero flips")

	for e := 0; e < m.NumEdges(); e++ {
		eh := meshcore.EdgeHandle(e)
		ok, err := m.IsDelaunay(eh)
		require.NoError(t, err)
		assert.True(t, ok, "edge %d must be Delaunay after MakeDelaunay", e)
	}
}

func TestIsDelaunay_BoundaryEdgeTrivial(t *testing.T) {
	positions, indices := singleTriangleFixture()
	m, err := meshcore.Build(positions, indices)
	require.NoError(t, err)

	for e := 0; e < m.NumEdges(); e++ {
		ok, err := m.IsDelaunay(meshcore.EdgeHandle(e))
		require.NoError(t, err)
		assert.True(t, ok)
	}
}
