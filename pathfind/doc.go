// Package pathfind computes shortest paths over a meshcore.Mesh's vertex
// graph using Dijkstra's algorithm, with non-negative edge weights taken
// directly from mesh.EdgeLength.
//
// Overview:
//
//   - ShortestPathTree computes the minimum-length distance (and, on
//     request, predecessor) from a single source vertex to every other
//     vertex reachable along mesh edges, in O((V+E) log V) time using a
//     binary min-heap with a lazy decrease-key strategy.
//   - ComputePath and ComputePiecewisePath build on ShortestPathTree to
//     reconstruct an explicit vertex sequence between two (or a chain of)
//     vertices, the combinatorial starting point FlipOut iteratively
//     shortens into a locally geodesic path.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) in the worst case, for the lazy-decrease-key heap.
package pathfind
