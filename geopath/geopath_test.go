package geopath_test

import (
	"math"
	"testing"

	"github.com/meshgeo/flipout/geom"
	"github.com/meshgeo/flipout/geopath"
	"github.com/meshgeo/flipout/meshcore"
	"github.com/meshgeo/flipout/signpost"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

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

func edgeBetween(t *testing.T, m *meshcore.Mesh, a, b meshcore.VertexHandle) meshcore.EdgeHandle {
	t.Helper()
	for e := 0; e < m.NumEdges(); e++ {
		eh := meshcore.EdgeHandle(e)
		s, d := m.EdgeEndpoints(eh)
		if (s == a && d == b) || (s == b && d == a) {
			return eh
		}
	}
	t.Fatalf("no edge between %d and %d", a, b)

	return -1
}

func TestGeodesicPath_VerticesAndLength(t *testing.T) {
	positions, indices := octahedronFixture()
	m, err := meshcore.Build(positions, indices)
	require.NoError(t, err)

	// 0 -> 2 -> 1: two edges of the octahedron (both length sqrt(2)).
	e1 := edgeBetween(t, m, 0, 2)
	e2 := edgeBetween(t, m, 2, 1)
	p, err := geopath.NewGeodesicPath(m, []meshcore.EdgeHandle{e1, e2}, 0, 1)
	require.NoError(t, err)

	assert.Equal(t, []meshcore.VertexHandle{0, 2, 1}, p.Vertices())
	assert.Equal(t, []meshcore.VertexHandle{2}, p.InteriorVertices())
	assert.True(t, p.ContainsVertex(2))
	assert.False(t, p.ContainsVertex(3))
	assert.Equal(t, 1, p.GetVertexIndex(2))
	assert.InDelta(t, 2*math.Sqrt2, p.Length(), 1e-9)
}

func TestGeodesicPath_NotEdgeConnected(t *testing.T) {
	positions, indices := octahedronFixture()
	m, err := meshcore.Build(positions, indices)
	require.NoError(t, err)

	e1 := edgeBetween(t, m, 0, 2)
	e2 := edgeBetween(t, m, 1, 3) // does not touch vertex 2
	_, err = geopath.NewGeodesicPath(m, []meshcore.EdgeHandle{e1, e2}, 0, 3)
	assert.Error(t, err)
}

func TestGeodesicLoop_ValidationAndVertices(t *testing.T) {
	positions, indices := octahedronFixture()
	m, err := meshcore.Build(positions, indices)
	require.NoError(t, err)

	// A closed triangle loop 0 -> 2 -> 4 -> 0.
	e1 := edgeBetween(t, m, 0, 2)
	e2 := edgeBetween(t, m, 2, 4)
	e3 := edgeBetween(t, m, 4, 0)
	loop, err := geopath.NewGeodesicLoop(m, []meshcore.EdgeHandle{e1, e2, e3}, 0)
	require.NoError(t, err)

	assert.Equal(t, []meshcore.VertexHandle{0, 2, 4}, loop.Vertices())
	assert.Equal(t, loop.Vertices(), loop.InteriorVertices())
	assert.InDelta(t, 3*math.Sqrt2, loop.Length(), 1e-9)
}

func TestGeodesicLoop_TooFewEdges(t *testing.T) {
	positions, indices := octahedronFixture()
	m, err := meshcore.Build(positions, indices)
	require.NoError(t, err)

	e1 := edgeBetween(t, m, 0, 2)
	e2 := edgeBetween(t, m, 2, 0)
	_, err = geopath.NewGeodesicLoop(m, []meshcore.EdgeHandle{e1, e2}, 0)
	assert.ErrorIs(t, err, geopath.ErrTooFewEdges)
}

func TestGeodesicPath_AngleAtInteriorVertex(t *testing.T) {
	positions, indices := octahedronFixture()
	m, err := meshcore.Build(positions, indices)
	require.NoError(t, err)
	ix := signpost.Build(m)

	e1 := edgeBetween(t, m, 0, 2)
	e2 := edgeBetween(t, m, 2, 1)
	p, err := geopath.NewGeodesicPath(m, []meshcore.EdgeHandle{e1, e2}, 0, 1)
	require.NoError(t, err)

	angle, err := p.AngleAtInteriorVertex(2, ix)
	require.NoError(t, err)
	assert.Greater(t, angle, 0.0)

	_, err = p.AngleAtInteriorVertex(0, ix) // start vertex: not interior
	assert.ErrorIs(t, err, geopath.ErrNotInteriorVertex)
}

func TestPolylines(t *testing.T) {
	positions, indices := octahedronFixture()
	m, err := meshcore.Build(positions, indices)
	require.NoError(t, err)

	e1 := edgeBetween(t, m, 0, 2)
	e2 := edgeBetween(t, m, 2, 4)
	e3 := edgeBetween(t, m, 4, 0)
	loop, err := geopath.NewGeodesicLoop(m, []meshcore.EdgeHandle{e1, e2, e3}, 0)
	require.NoError(t, err)

	poly := geopath.LoopPolyline3D(m, loop)
	require.Len(t, poly, 4)
	assert.Equal(t, poly[0], poly[3])

	p, err := geopath.NewGeodesicPath(m, []meshcore.EdgeHandle{e1}, 0, 2)
	require.NoError(t, err)
	pp := geopath.PathPolyline3D(m, p)
	require.Len(t, pp, 2)
}
