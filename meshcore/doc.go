// Package meshcore implements the intrinsic halfedge mesh: the triangulated
// 2-manifold whose connectivity can be mutated by edge flips while the
// extrinsic 3-D embedding of its vertices stays fixed.
//
// Design notes (re-architecture from the reference dynamic-map source):
//
//   - Dynamic maps keyed by opaque numeric identifiers become typed handles
//     (VertexHandle, HalfedgeHandle, EdgeHandle, FaceHandle) indexing into
//     four parallel arenas owned exclusively by *Mesh. Handles are plain
//     int32s: copyable, comparable, and stable for the lifetime of the mesh
//     because flips never delete entities (only faces/edges are re-wired).
//   - Cyclic references (halfedge→edge→face→vertex→halfedge...) are handles
//     resolved through the arena on demand, never pointers with shared
//     ownership.
//   - Every mutating operation returns a typed error from errors.go; there
//     is no panicking on malformed input (panics are reserved for handle
//     misuse, which is a programmer error — see Mesh.Position and the
//     Halfedge* accessors).
//
// Complexity: construction is O(N+M); a single flip is O(d) in the degrees
// of the touched vertices (fan walks for the degree check and
// representative repair); MakeDelaunay is
// bounded by 10*|E| flip attempts as a safety net (see flip.go).
package meshcore
