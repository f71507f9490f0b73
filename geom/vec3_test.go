package geom_test

import (
	"math"
	"testing"

	"github.com/meshgeo/flipout/geom"
	"github.com/stretchr/testify/require"
)

func TestVec3_Basics(t *testing.T) {
	a := geom.Vec3{X: 1, Y: 0, Z: 0}
	b := geom.Vec3{X: 0, Y: 1, Z: 0}

	require.Equal(t, geom.Vec3{X: 1, Y: 1, Z: 0}, a.Add(b))
	require.Equal(t, geom.Vec3{X: 1, Y: -1, Z: 0}, a.Sub(b))
	require.Equal(t, 0.0, a.Dot(b))
	require.Equal(t, geom.Vec3{X: 0, Y: 0, Z: 1}, a.Cross(b))
	require.InDelta(t, math.Sqrt2, geom.Vec3{X: 1, Y: 1, Z: 0}.Norm(), 1e-12)
	require.InDelta(t, math.Sqrt2, a.Distance(geom.Vec3{X: 0, Y: -1, Z: 0}), 1e-12)
}

func TestVec3_Normalize(t *testing.T) {
	v := geom.Vec3{X: 3, Y: 4, Z: 0}
	n := v.Normalize()
	require.InDelta(t, 1.0, n.Norm(), 1e-12)

	zero := geom.Vec3{}
	require.Equal(t, zero, zero.Normalize())
}
