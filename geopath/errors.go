package geopath

import "github.com/pkg/errors"

var (
	// ErrTooFewEdges indicates a GeodesicLoop was built from fewer than
	// three edges.
	ErrTooFewEdges = errors.New("geopath: loop requires at least 3 edges")

	// ErrNotEdgeConnected indicates two consecutive edges in a path or loop
	// do not share a vertex.
	ErrNotEdgeConnected = errors.New("geopath: consecutive edges do not share a vertex")

	// ErrBaseNotIncident indicates the loop's first or last edge is not
	// incident to its declared base vertex.
	ErrBaseNotIncident = errors.New("geopath: base vertex is not incident to the loop's first/last edge")

	// ErrVertexNotOnEdge indicates an edge was asked to resolve its "other
	// endpoint" relative to a vertex it does not touch.
	ErrVertexNotOnEdge = errors.New("geopath: vertex is not an endpoint of edge")

	// ErrNotInteriorVertex indicates AngleAtInteriorVertex or
	// IncomingOutgoingAt was queried for a vertex that is not strictly
	// between two edges of the path (the start or end vertex of an open
	// path, or a vertex not on the path or loop at all).
	ErrNotInteriorVertex = errors.New("geopath: vertex is not an interior vertex of this path")
)
