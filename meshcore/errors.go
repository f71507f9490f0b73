// Sentinel errors for the meshcore package, grouped by error kind:
// MalformedInput, NonManifold, DegenerateFace (meshcore's own sentinel for
// geom's degenerate-triangle case), and Precondition.
//
// Every message is prefixed "meshcore: ..." for grep-ability across logs.
// Do not wrap these with %w unless context is essential at the call site;
// callers use errors.Is to match regardless of wrapping.
package meshcore

import "github.com/pkg/errors"

var (
	// ErrNoPositions indicates Build was called without any vertex positions.
	ErrNoPositions = errors.New("meshcore: positions buffer is empty")

	// ErrNoIndices indicates Build was called without a triangle index buffer.
	ErrNoIndices = errors.New("meshcore: index buffer is empty")

	// ErrIndexCount indicates the index buffer's length is not a multiple of three.
	ErrIndexCount = errors.New("meshcore: index count is not a multiple of 3")

	// ErrIndexOutOfRange indicates a triangle index references a vertex
	// outside [0, len(positions)).
	ErrIndexOutOfRange = errors.New("meshcore: triangle index out of range")

	// ErrNonManifold indicates an edge has more than two incident halfedges.
	ErrNonManifold = errors.New("meshcore: non-manifold edge (more than two halfedges)")

	// ErrInvalidHandle indicates a handle does not (or no longer) refers to
	// a live entity in this mesh's arenas. Surfaced only on programmer misuse
	// since the mesh never deletes entities.
	ErrInvalidHandle = errors.New("meshcore: invalid handle")

	// ErrFlipPrecondition names the case where an edge flip's preconditions
	// are not met: the edge is on the boundary, or one of its endpoints has
	// degree <= 1. FlipEdge does not return it; it reports that case as
	// (false, nil).
	ErrFlipPrecondition = errors.New("meshcore: edge flip precondition not satisfied")

	// ErrDegenerateFace indicates a face's current edge lengths violate the
	// strict triangle inequality (internally caught, per the error-handling
	// design's "Face.angles/Face.area are internally caught and surfaced as
	// an absence" policy: callers see this sentinel and may retry or skip).
	ErrDegenerateFace = errors.New("meshcore: degenerate face (triangle inequality violated)")
)
