package flipnet

// Stats bundles the outcome of an IterativeShorten call: iteration count,
// convergence flag, and length/flip totals, the same result-plus-cost
// bundling shape tsp.TourCost pairs with a tour.
type Stats struct {
	// Iterations is the number of outer FlipOut iterations performed.
	Iterations int

	// Converged is true iff the loop stopped because findFlexibleJoint
	// returned none (a genuine geodesic), as opposed to exhausting
	// MaxIterations, meeting the length-change threshold, or an iteration
	// in which no wedge edge could be flipped.
	Converged bool

	// InitialLength is the total path/loop length before shortening began.
	InitialLength float64

	// FinalLength is the total path/loop length after shortening stopped.
	FinalLength float64

	// FlipsPerformed is the total number of successful edge flips across
	// every outer iteration.
	FlipsPerformed int
}
