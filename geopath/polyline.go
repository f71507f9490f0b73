package geopath

import (
	"github.com/meshgeo/flipout/geom"
	"github.com/meshgeo/flipout/meshcore"
)

// PathPolyline3D returns the sequence of extrinsic positions of p's
// vertices, in path order.
func PathPolyline3D(m *meshcore.Mesh, p *GeodesicPath) []geom.Vec3 {
	vs := p.Vertices()
	out := make([]geom.Vec3, len(vs))
	for i, v := range vs {
		out[i] = m.Position(v)
	}

	return out
}

// LoopPolyline3D returns the sequence of extrinsic positions of l's
// vertices with the first point appended at the end, closing the polyline.
func LoopPolyline3D(m *meshcore.Mesh, l *GeodesicLoop) []geom.Vec3 {
	vs := l.Vertices()
	out := make([]geom.Vec3, len(vs)+1)
	for i, v := range vs {
		out[i] = m.Position(v)
	}
	out[len(vs)] = out[0]

	return out
}
