package meshcore_test

import "github.com/meshgeo/flipout/geom"

// octahedronFixture returns the position/index buffers for a regular
// octahedron: 6 vertices, 8 faces, 12 edges, a small closed 2-manifold used
// across meshcore's tests to exercise flips, Delaunay, and Euler-invariant
// checks without the bulk of an icosphere.
func octahedronFixture() ([]geom.Vec3, []int) {
	positions := []geom.Vec3{
		{X: 1, Y: 0, Z: 0},  // 0
		{X: -1, Y: 0, Z: 0}, // 1
		{X: 0, Y: 1, Z: 0},  // 2
		{X: 0, Y: -1, Z: 0}, // 3
		{X: 0, Y: 0, Z: 1},  // 4
		{X: 0, Y: 0, Z: -1}, // 5
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

// unitSquareFixture returns two CCW triangles sharing the diagonal (0,0)-(1,1)
// of a unit square, used for the flat-quad-flip scenario.
func unitSquareFixture() ([]geom.Vec3, []int) {
	positions := []geom.Vec3{
		{X: 0, Y: 0, Z: 0}, // 0
		{X: 1, Y: 0, Z: 0}, // 1
		{X: 1, Y: 1, Z: 0}, // 2
		{X: 0, Y: 1, Z: 0}, // 3
	}
	indices := []int{
		0, 1, 2,
		0, 2, 3,
	}

	return positions, indices
}

// singleTriangleFixture returns one triangle: every edge is a boundary edge.
func singleTriangleFixture() ([]geom.Vec3, []int) {
	positions := []geom.Vec3{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
	}
	indices := []int{0, 1, 2}

	return positions, indices
}

// disconnectedFixture returns two disjoint triangles sharing no vertices.
func disconnectedFixture() ([]geom.Vec3, []int) {
	positions := []geom.Vec3{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: 10, Y: 0, Z: 0},
		{X: 11, Y: 0, Z: 0},
		{X: 10, Y: 1, Z: 0},
	}
	indices := []int{0, 1, 2, 3, 4, 5}

	return positions, indices
}
