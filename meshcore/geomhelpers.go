package meshcore

import "github.com/meshgeo/flipout/geom"

// faceAnglesFromLengths and faceAreaFromLengths adapt geom's
// degenerate-triangle error into meshcore's own sentinel, since a face
// violating the triangle inequality after a flip is this package's concern
// (DegenerateTriangle), not geom's.
func faceAnglesFromLengths(lens [3]float64) (a, b, c float64, err error) {
	a, b, c, err = geom.TriangleAngles(lens[0], lens[1], lens[2])
	if err != nil {
		return 0, 0, 0, ErrDegenerateFace
	}

	return a, b, c, nil
}

func faceAreaFromLengths(lens [3]float64) (float64, error) {
	area, err := geom.TriangleArea(lens[0], lens[1], lens[2])
	if err != nil {
		return 0, ErrDegenerateFace
	}

	return area, nil
}
