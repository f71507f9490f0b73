// Package signpost maintains, for every vertex of a meshcore.Mesh, a CCW
// angular coordinate over its outgoing halfedges: the "signpost" data
// structure that lets a wedge of faces around a vertex be treated as a flat
// angular interval even though the mesh itself may carry curvature there.
//
// An Index does not own the mesh; it caches per-halfedge cumulative angles
// that must be refreshed for any vertex whose fan changes shape, via
// UpdateAfterFlip.
package signpost
