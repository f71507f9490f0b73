// Package tsp provides tour validation, cost accounting, and deterministic
// 2-opt local search over a distance matrix. It backs waypoint-ordering
// callers that already have a starting permutation (e.g. from a
// nearest-neighbor construction) and want it locally improved.
//
// # What & Why
//
// Given an n×n distance matrix dist and a closed tour (a permutation of
// [0..n-1] rotated to a fixed start and closed back to it), tsp validates
// the tour's shape, computes its total cost, and returns an improved copy
// from first-improvement 2-opt (symmetric) or 2-opt* (asymmetric, no
// segment reversal).
//
// # Algorithm & Complexity
//
//	TwoOpt — deterministic first-improvement local search, TSP and ATSP
//	  Symmetric:  segment reversal; Δ = (a→c)+(b→d)−(a→b)−(c→d).
//	  Asymmetric: 2-opt* tail swap without reversal.
//	  Time: O(iters·n²) typical, one pass is O(n²) candidate checks.
//
// # Determinism & Stability
//
//   - No randomness: candidates are scanned in a fixed index order.
//   - Costs are rounded to 1e-9 (round1e9) to avoid cross-platform FP drift.
//   - CanonicalizeOrientationInPlace fixes tour direction under a fixed start vertex.
//
// # Input Requirements
//
//	dist must be square (n×n), n≥2. No negative weights. NaN is invalid.
//	+Inf denotes a missing edge; TwoOpt simply rejects candidate moves that
//	would rely on one.
//
// # Options
//
//	type Options struct {
//	    StartVertex    int           // start/end vertex [0..n-1] (default 0)
//	    Symmetric      bool          // true: 2-opt, false: 2-opt* (symmetry not checked)
//	    TwoOptMaxIters int           // cap accepted moves (0=unlimited)
//	    Eps            float64       // minimal strict improvement (default 1e-12)
//	    TimeLimit      time.Duration // soft wall-clock budget (0=none)
//	}
//
//	func DefaultOptions() Options
//
// # Errors (strict sentinels)
//
//	ErrNonSquare, ErrNegativeWeight, ErrAsymmetry, ErrNonZeroDiagonal,
//	ErrIncompleteGraph, ErrDimensionMismatch, ErrStartOutOfRange, ErrTimeLimit.
//
// ErrAsymmetry and ErrNonZeroDiagonal are declared but not returned by any
// function of this package.
//
// Errors are never wrapped with fmt.Errorf where a sentinel suffices.
package tsp
