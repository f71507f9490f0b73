// Package flipnet implements the FlipOut iterative shortening loop: given a
// meshcore.Mesh and one or more geopath containers seeded by pathfind's
// Dijkstra bootstrap, it repeatedly locates a flexible joint (an unmarked
// interior path vertex whose wedge angle is strictly less than pi),
// enumerates and flips the intrinsic edges inside that wedge, and updates
// the path and the signpost index consistently, until every path is locally
// straight or an iteration/convergence bound is hit.
//
// FlipNetwork drives one or more open GeodesicPaths sharing a mesh;
// LoopNetwork drives a single closed GeodesicLoop, optionally ordering its
// waypoint edges first via the ordering package.
package flipnet
