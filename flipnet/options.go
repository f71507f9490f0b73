package flipnet

import "github.com/meshgeo/flipout/ordering"

// Options configures a FlipNetwork or LoopNetwork: a plain struct with
// defaulted fields, not positional arguments or functional options.
type Options struct {
	// MaxIterations caps the outer FlipOut loop. Default 10000.
	MaxIterations uint32

	// ConvergenceThreshold is the length-change break condition: the loop
	// stops once |L(k+1) - L(k)| falls below this. Default 1e-10.
	ConvergenceThreshold float64

	// Logger receives per-iteration progress lines when set; the default
	// NopLogger is silent.
	Logger Logger

	// OptimizeOrder runs the ordering package's TSP-style optimiser over a
	// LoopNetwork's waypoint edges before the initial piecewise Dijkstra
	// bootstrap. Ignored by FlipNetwork. Default true.
	OptimizeOrder bool

	// OrderingOptions configures the ordering pass when OptimizeOrder is set.
	OrderingOptions ordering.Options

	// RequireAllEdges fails LoopNetwork construction if the ordering stage
	// skips any waypoint edge under its self-crossing guard. Default false.
	RequireAllEdges bool

	// MaxSkippedEdges caps how many waypoint edges the ordering stage may
	// skip before construction fails. Negative means unlimited. Default -1.
	MaxSkippedEdges int
}

// DefaultOptions returns Options with every field set to its documented
// default.
func DefaultOptions() Options {
	return Options{
		MaxIterations:        10000,
		ConvergenceThreshold: 1e-10,
		Logger:               NopLogger{},
		OptimizeOrder:        true,
		OrderingOptions:      ordering.DefaultOptions(),
		RequireAllEdges:      false,
		MaxSkippedEdges:      -1,
	}
}

// withDefaults replaces a zero MaxIterations, ConvergenceThreshold or
// MaxSkippedEdges, and a nil Logger, with its default, so callers may build
// an Options literal supplying only the fields they care about. A zero
// MaxSkippedEdges therefore means unlimited. OptimizeOrder,
// OrderingOptions and RequireAllEdges are used as given.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.MaxIterations == 0 {
		o.MaxIterations = d.MaxIterations
	}
	if o.ConvergenceThreshold == 0 {
		o.ConvergenceThreshold = d.ConvergenceThreshold
	}
	if o.Logger == nil {
		o.Logger = d.Logger
	}
	if o.MaxSkippedEdges == 0 {
		o.MaxSkippedEdges = d.MaxSkippedEdges
	}

	return o
}
