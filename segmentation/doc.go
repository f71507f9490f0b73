// Package segmentation classifies every face of a meshcore.Mesh as Inside,
// Outside, or Boundary relative to a closed geopath.GeodesicLoop: it seeds
// one face on each side of the loop's first edge, floods outward across
// every non-loop edge, resolves any face the flood fill never reached by a
// majority vote over its already-classified neighbours, and finally sums
// each region's face areas via meshcore's Heron's-formula FaceArea.
package segmentation
