package pathfind_test

import (
	"math"
	"testing"

	"github.com/meshgeo/flipout/geom"
	"github.com/meshgeo/flipout/meshcore"
	"github.com/meshgeo/flipout/pathfind"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gridFixture returns a 2x2 grid of unit-square triangles (3x3 vertices):
// a small mesh with a non-trivial shortest-path structure.
func gridFixture() ([]geom.Vec3, []int) {
	var positions []geom.Vec3
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			positions = append(positions, geom.Vec3{X: float64(x), Y: float64(y), Z: 0})
		}
	}
	idx := func(x, y int) int { return y*3 + x }
	var indices []int
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			a, b, c, d := idx(x, y), idx(x+1, y), idx(x+1, y+1), idx(x, y+1)
			indices = append(indices, a, b, c, a, c, d)
		}
	}

	return positions, indices
}

func TestShortestPathTree_GridDistances(t *testing.T) {
	positions, indices := gridFixture()
	m, err := meshcore.Build(positions, indices)
	require.NoError(t, err)

	dist, _, err := pathfind.ShortestPathTree(m, 0)
	require.NoError(t, err)

	// Vertex 0 is (0,0); vertex 8 is (2,2). The grid graph's shortest path
	// cost is bounded below by Euclidean distance and above by the
	// Manhattan distance along axis-aligned edges.
	assert.InDelta(t, 0.0, dist[0], 1e-9)
	assert.GreaterOrEqual(t, dist[8], math.Sqrt(8))
	assert.LessOrEqual(t, dist[8], 4.0)
}

func TestComputePath_EndpointsAndLength(t *testing.T) {
	positions, indices := gridFixture()
	m, err := meshcore.Build(positions, indices)
	require.NoError(t, err)

	path, length, err := pathfind.ComputePath(m, 0, 8)
	require.NoError(t, err)
	require.NotEmpty(t, path)
	assert.Equal(t, meshcore.VertexHandle(0), path[0])
	assert.Equal(t, meshcore.VertexHandle(8), path[len(path)-1])
	assert.Greater(t, length, 0.0)

	same, zeroLen, err := pathfind.ComputePath(m, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, []meshcore.VertexHandle{2}, same)
	assert.Equal(t, 0.0, zeroLen)
}

func TestComputePath_Unreachable(t *testing.T) {
	positions := []geom.Vec3{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0},
		{X: 10, Y: 0, Z: 0}, {X: 11, Y: 0, Z: 0}, {X: 10, Y: 1, Z: 0},
	}
	indices := []int{0, 1, 2, 3, 4, 5}
	m, err := meshcore.Build(positions, indices)
	require.NoError(t, err)

	_, _, err = pathfind.ComputePath(m, 0, 3)
	assert.ErrorIs(t, err, pathfind.ErrNoPath)
}

func TestComputePiecewisePath_ChainsSegmentsWithoutDuplication(t *testing.T) {
	positions, indices := gridFixture()
	m, err := meshcore.Build(positions, indices)
	require.NoError(t, err)

	waypoints := []meshcore.VertexHandle{0, 4, 8}
	path, length, err := pathfind.ComputePiecewisePath(m, waypoints)
	require.NoError(t, err)
	require.NotEmpty(t, path)
	assert.Equal(t, meshcore.VertexHandle(0), path[0])
	assert.Equal(t, meshcore.VertexHandle(8), path[len(path)-1])
	assert.Greater(t, length, 0.0)

	// Vertex 4 (the shared waypoint) must appear exactly once.
	count := 0
	for _, v := range path {
		if v == 4 {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestComputePiecewisePath_TooFewWaypoints(t *testing.T) {
	positions, indices := gridFixture()
	m, err := meshcore.Build(positions, indices)
	require.NoError(t, err)

	_, _, err = pathfind.ComputePiecewisePath(m, []meshcore.VertexHandle{0})
	assert.ErrorIs(t, err, pathfind.ErrEmptyWaypoints)
}
