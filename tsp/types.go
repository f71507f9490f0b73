// Package tsp provides tour validation, cost accounting, and 2-opt local
// search over a distance matrix.
//
// Design goals:
//   - Mathematical rigor: precise, specialized errors; explicit invariants for tours.
//   - Determinism: no randomized search; 2-opt scans candidates in canonical order.
//   - Zero surprises: sensible defaults via DefaultOptions.
package tsp

import (
	"errors"
	"time"
)

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Sentinel errors (validation, feasibility)
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// Validation / input-shape errors. Do not wrap with fmt.Errorf where a sentinel suffices.
var (
	// ErrNonSquare indicates the distance matrix is not square.
	ErrNonSquare = errors.New("tsp: matrix is not square")

	// ErrNegativeWeight indicates a negative distance was encountered.
	ErrNegativeWeight = errors.New("tsp: negative distance encountered")

	// ErrNonZeroDiagonal indicates some dist[i][i] ≠ 0.
	ErrNonZeroDiagonal = errors.New("tsp: non-zero self-distance")

	// ErrAsymmetry indicates dist[i][j] != dist[j][i] for a symmetric-TSP solver.
	ErrAsymmetry = errors.New("tsp: asymmetric distance matrix")

	// ErrIncompleteGraph is returned when no Hamiltonian cycle exists
	// (one or more edges missing, represented by math.Inf(1)).
	ErrIncompleteGraph = errors.New("tsp: incomplete distance matrix (no Hamiltonian cycle possible)")

	// ErrDimensionMismatch indicates an unexpected matrix/tour shape.
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrStartOutOfRange indicates Options.StartVertex is outside [0..n-1].
	ErrStartOutOfRange = errors.New("tsp: start vertex out of range")
)

// ErrTimeLimit indicates a user-specified time budget was exhausted.
var ErrTimeLimit = errors.New("tsp: time limit exceeded")

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Options & defaults
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// Default knobs
const (
	// DefaultEps is the minimal strictly-better improvement for local search steps.
	DefaultEps = 1e-12

	// DefaultTwoOptMaxIters caps the number of accepted 2-opt moves.
	DefaultTwoOptMaxIters = 10_000
)

// Options defines configurable parameters for tour validation, cost
// accounting, and 2-opt local search.
// Zero value is not meaningful; use DefaultOptions() and override fields as needed.
type Options struct {
	// StartVertex selects the start/end vertex index [0..n-1]. Default: 0.
	StartVertex int

	// Symmetric selects the move type:
	//   true  → classic 2-opt with segment reversal (TSP),
	//   false → 2-opt* tail swap without reversal (ATSP).
	// TwoOpt does not check that dist[i][j] == dist[j][i]. Default: true.
	Symmetric bool

	// TwoOptMaxIters bounds the total number of accepted 2-opt moves.
	// Zero ⇒ unlimited. Default: 10_000.
	TwoOptMaxIters int

	// Eps is the minimal improvement considered significant in 2-opt comparisons.
	// Default: 1e-12.
	Eps float64

	// TimeLimit optionally bounds wall-clock time for the 2-opt search.
	// Zero means “no limit”.
	TimeLimit time.Duration
}

// DefaultOptions returns a fully populated Options struct with safe,
// production-ready defaults: start at vertex 0, symmetric 2-opt moves,
// 2-opt enabled with a conservative iteration cap, no time limit.
func DefaultOptions() Options {
	return Options{
		StartVertex:    0,
		Symmetric:      true,
		TwoOptMaxIters: DefaultTwoOptMaxIters,
		Eps:            DefaultEps,
		TimeLimit:      0,
	}
}
