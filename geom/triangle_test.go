package geom_test

import (
	"math"
	"testing"

	"github.com/meshgeo/flipout/geom"
	"github.com/stretchr/testify/require"
)

// TestTriangleAngles_Equilateral verifies the classic 60-60-60 case.
func TestTriangleAngles_Equilateral(t *testing.T) {
	a, b, c, err := geom.TriangleAngles(1, 1, 1)
	require.NoError(t, err)
	require.InDelta(t, math.Pi/3, a, 1e-9)
	require.InDelta(t, math.Pi/3, b, 1e-9)
	require.InDelta(t, math.Pi/3, c, 1e-9)
	require.InDelta(t, math.Pi, a+b+c, 1e-9)
}

// TestTriangleAngles_RightTriangle verifies a 3-4-5 right triangle has a
// right angle opposite the hypotenuse.
func TestTriangleAngles_RightTriangle(t *testing.T) {
	// sides 3,4,5: angle opposite 5 is the right angle.
	_, _, angleC, err := geom.TriangleAngles(3, 4, 5)
	require.NoError(t, err)
	require.InDelta(t, math.Pi/2, angleC, 1e-9)
}

// TestTriangleAngles_Degenerate covers non-positive sides and a broken
// triangle inequality.
func TestTriangleAngles_Degenerate(t *testing.T) {
	_, _, _, err := geom.TriangleAngles(0, 1, 1)
	require.ErrorIs(t, err, geom.ErrDegenerateTriangle)

	_, _, _, err = geom.TriangleAngles(1, 1, 5)
	require.ErrorIs(t, err, geom.ErrDegenerateTriangle)

	// Exactly flat (a == b+c) is still degenerate under the strict inequality.
	_, _, _, err = geom.TriangleAngles(2, 1, 1)
	require.ErrorIs(t, err, geom.ErrDegenerateTriangle)
}

// TestTriangleArea_Right345 checks Heron's formula against the known area
// of a 3-4-5 right triangle (area = 6).
func TestTriangleArea_Right345(t *testing.T) {
	area, err := geom.TriangleArea(3, 4, 5)
	require.NoError(t, err)
	require.InDelta(t, 6.0, area, 1e-9)
}

// TestLayout2D_PreservesDistances lays out a 3-4-5 triangle and confirms the
// produced 2-D points reproduce the original side lengths.
func TestLayout2D_PreservesDistances(t *testing.T) {
	a, b, c, err := geom.Layout2D(3, 4, 5)
	require.NoError(t, err)

	dist := func(p, q geom.Vec2) float64 {
		dx, dy := p.X-q.X, p.Y-q.Y
		return math.Sqrt(dx*dx + dy*dy)
	}
	require.InDelta(t, 3.0, dist(a, b), 1e-9)
	require.InDelta(t, 5.0, dist(c, a), 1e-9)
	require.InDelta(t, 4.0, dist(b, c), 1e-9)
	// C must have positive Y (CCW winding convention).
	require.Greater(t, c.Y, 0.0)
}

// TestIsConvexQuad_UnitSquare verifies a planar unit square (split along a
// diagonal and re-unfolded) reads back as convex.
func TestIsConvexQuad_UnitSquare(t *testing.T) {
	a := geom.Vec2{X: 0, Y: 0}
	b := geom.Vec2{X: 1, Y: 0}
	c := geom.Vec2{X: 1, Y: 1}
	d := geom.Vec2{X: 0, Y: 1}
	require.True(t, geom.IsConvexQuad(a, b, c, d))
}

// TestIsConvexQuad_Reflex builds a reflex (non-convex) quadrilateral by
// pulling one vertex into the interior of the others' hull.
func TestIsConvexQuad_Reflex(t *testing.T) {
	a := geom.Vec2{X: 0, Y: 0}
	b := geom.Vec2{X: 2, Y: 0}
	c := geom.Vec2{X: 1, Y: 0.25} // pulled inward: reflex at c
	d := geom.Vec2{X: 1, Y: 2}
	require.False(t, geom.IsConvexQuad(a, b, c, d))
}

// TestSegmentsIntersect_Cross verifies a simple X crossing is detected, and
// that non-crossing segments are not.
func TestSegmentsIntersect_Cross(t *testing.T) {
	p1 := geom.Vec2{X: 0, Y: 0}
	p2 := geom.Vec2{X: 2, Y: 2}
	p3 := geom.Vec2{X: 0, Y: 2}
	p4 := geom.Vec2{X: 2, Y: 0}
	require.True(t, geom.SegmentsIntersect(p1, p2, p3, p4))

	q3 := geom.Vec2{X: 3, Y: 0}
	q4 := geom.Vec2{X: 3, Y: 2}
	require.False(t, geom.SegmentsIntersect(p1, p2, q3, q4))
}
