// Package geopath holds the two path containers FlipOut refines:
// GeodesicPath (an open chain between two vertices) and GeodesicLoop (a
// closed chain through a distinguished base vertex, every one of whose
// vertices is interior). Both cache a total length that callers must
// refresh via UpdateLength after any mutation to the underlying edge
// lengths, and both derive the straightness test at an interior vertex
// from a signpost.Index rather than from 3-D coordinates.
package geopath
