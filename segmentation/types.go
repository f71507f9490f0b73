package segmentation

import "github.com/meshgeo/flipout/meshcore"

// Region classifies a face relative to a closed geodesic loop.
type Region int

const (
	// Unknown is the pre-classification sentinel; no Result ever returns it.
	Unknown Region = iota
	// Inside marks a face on the loop's left (CCW) side.
	Inside
	// Outside marks a face on the loop's right side.
	Outside
	// Boundary marks a face touching a loop edge that the flood fill from
	// neither seed reached directly.
	Boundary
)

// String implements fmt.Stringer for debugging/log output.
func (r Region) String() string {
	switch r {
	case Inside:
		return "Inside"
	case Outside:
		return "Outside"
	case Boundary:
		return "Boundary"
	default:
		return "Unknown"
	}
}

// Result is the outcome of Compute: every face of the mesh assigned to
// exactly one of Inside/Outside/Boundary, plus each region's total area.
type Result struct {
	faceRegion []Region // indexed by meshcore.FaceHandle
	Areas      map[Region]float64
}

// RegionOf returns f's classified region.
func (r *Result) RegionOf(f meshcore.FaceHandle) Region { return r.faceRegion[f] }

// FacesIn returns every face classified as region, in ascending handle order.
func (r *Result) FacesIn(region Region) []meshcore.FaceHandle {
	var out []meshcore.FaceHandle
	for f, reg := range r.faceRegion {
		if reg == region {
			out = append(out, meshcore.FaceHandle(f))
		}
	}

	return out
}

// FaceRegionMap returns a copy of the full face->region classification.
func (r *Result) FaceRegionMap() map[meshcore.FaceHandle]Region {
	out := make(map[meshcore.FaceHandle]Region, len(r.faceRegion))
	for f, reg := range r.faceRegion {
		out[meshcore.FaceHandle(f)] = reg
	}

	return out
}
