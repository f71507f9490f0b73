// Package matrix provides a minimal dense float64 matrix: the Matrix
// interface and its Dense implementation. It backs the ordering package's
// waypoint distance matrix and the tsp package's tour-cost and 2-opt
// routines; nothing in this module needs sparse, adjacency, incidence, or
// linear-algebra (eigen/inverse/LU/QR) matrix views, so only the dense
// storage and bounds-checked accessors are kept.
package matrix
