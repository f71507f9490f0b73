// Package ordering computes a short cyclic visiting order over the vertices
// of a set of waypoint edges, using the same TSP-style distance-matrix plus
// greedy-construction plus 2-opt pipeline as the tsp package, driven here by
// mesh-intrinsic (Dijkstra) distances instead of an arbitrary cost matrix.
//
// The output order seeds a closed geodesic loop: a good initial ordering
// keeps the FlipOut straightening stage, which can only shorten a path, from
// having to undo a badly-ordered tour.
package ordering
