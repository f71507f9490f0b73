// Package flipout computes exact polyhedral geodesics on a triangulated
// 2-manifold.
//
// Given a starting edge path between two vertices, a piecewise path through
// an ordered list of waypoints, or a closed cyclic loop through a set of
// waypoint edges, the FlipOut procedure refines the path into one that is
// locally shortest in the intrinsic metric of the surface: it repeatedly
// flips non-path edges incident to a non-straight path vertex until the
// path unfolds flat at every interior vertex.
//
// The module is organized as a dependency chain, leaves first:
//
//	geom/          triangle law-of-cosines, area, 3-D vector primitives
//	meshcore/      intrinsic halfedge mesh, edge flip, Delaunay utilities
//	signpost/      per-vertex CCW angular index, updated incrementally on flip
//	pathfind/      Dijkstra shortest-path bootstrap over the vertex graph
//	geopath/       GeodesicPath / GeodesicLoop containers and polyline export
//	ordering/      TSP-style cyclic ordering of loop waypoint edges
//	flipnet/       FlipNetwork / LoopNetwork: the iterative shortening loop
//	segmentation/  flood-fill classification of faces by a closed loop
//
// matrix/ and tsp/ are thin, purpose-trimmed slices (a dense distance matrix
// and tour validation/cost/2-opt) kept only to back the ordering package's
// TSP-style waypoint ordering; they are not geodesic-specific.
//
// Mesh I/O, 3-D rendering, CLI glue, Bezier subdivision and Delaunay
// refinement with Steiner-point insertion are out of scope: this module
// exposes only the core geometric contract those collaborators consume.
package flipout
