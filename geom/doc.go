// Package geom provides the geometric primitives shared by the rest of this
// module: 3-D vectors, the law-of-cosines triangle solver, Heron's-formula
// area, a 2-D triangle layout and convex-quadrilateral test (helpers that
// meshcore's edge flip does not call), and a 2-D segment-intersection test.
//
// Everything here is a pure function of its arguments: no package-level
// state, no I/O, no allocation beyond the returned value. Degenerate input
// (zero-length sides, broken triangle inequality) is reported via
// ErrDegenerateTriangle rather than producing NaN silently, matching the
// "fail-fast, typed sentinel" convention used throughout this module.
package geom

import "github.com/pkg/errors"

// ErrDegenerateTriangle is returned by TriangleAngles/TriangleArea when the
// three given side lengths cannot form a triangle with positive area: a
// non-positive side, or one side length at least as long as the sum of the
// other two (triangle inequality violated, even in the limiting/flat case).
var ErrDegenerateTriangle = errors.New("geom: degenerate triangle")
