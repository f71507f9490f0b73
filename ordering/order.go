package ordering

import (
	"math"

	"github.com/meshgeo/flipout/matrix"
	"github.com/meshgeo/flipout/tsp"
	"github.com/meshgeo/flipout/meshcore"
	"github.com/meshgeo/flipout/pathfind"
)

// Order computes a short cyclic vertex ordering visiting every distinct
// endpoint of waypoints, following the pipeline described by the package
// doc: Dijkstra distance matrix, greedy nearest-neighbour construction with
// a self-crossing guard, then an optional 2-opt refinement.
func Order(m *meshcore.Mesh, waypoints []meshcore.EdgeHandle, opts Options) (*Result, error) {
	if m == nil {
		return nil, ErrNilMesh
	}
	if len(waypoints) == 0 {
		return nil, ErrNoWaypoints
	}

	vertices := candidateVertices(m, waypoints)
	if len(vertices) < 3 {
		return nil, ErrTooFewVertices
	}

	dm, err := buildDistanceMatrix(m, vertices)
	if err != nil {
		return nil, err
	}

	var perm []int
	if opts.UseNearestNeighbor {
		perm = nearestNeighborTour(dm, len(vertices))
	} else {
		perm = make([]int, len(vertices))
		for i := range perm {
			perm[i] = i
		}
	}

	if opts.Use2Opt {
		if refined, ok := refine2Opt(dm, perm, opts.Max2OptIterations); ok {
			perm = refined
		}
	}

	order := make([]meshcore.VertexHandle, len(perm)+1)
	for i, idx := range perm {
		order[i] = vertices[idx]
	}
	order[len(perm)] = vertices[perm[0]]

	length := tourLength(dm, perm)

	skipped := skippedEdges(m, waypoints, order)

	return &Result{Order: order, SkippedEdges: skipped, EstimatedLength: length}, nil
}

// candidateVertices returns the distinct endpoints of waypoints, in
// first-seen order.
func candidateVertices(m *meshcore.Mesh, waypoints []meshcore.EdgeHandle) []meshcore.VertexHandle {
	seen := make(map[meshcore.VertexHandle]bool)
	var out []meshcore.VertexHandle
	for _, e := range waypoints {
		s, d := m.EdgeEndpoints(e)
		for _, v := range [2]meshcore.VertexHandle{s, d} {
			if !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
	}

	return out
}

// buildDistanceMatrix runs Dijkstra from every candidate vertex and packs
// the pairwise distances (restricted to the candidate set) into a dense
// matrix indexed by position in vertices.
func buildDistanceMatrix(m *meshcore.Mesh, vertices []meshcore.VertexHandle) (*matrix.Dense, error) {
	n := len(vertices)
	dm, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}

	for i, v := range vertices {
		dist, _, err := pathfind.ShortestPathTree(m, v)
		if err != nil {
			return nil, err
		}
		for j, w := range vertices {
			if err := dm.Set(i, j, dist[w]); err != nil {
				return nil, err
			}
		}
	}

	return dm, nil
}

// nearestNeighborTour builds a greedy nearest-neighbour permutation of
// [0..n-1] starting at index 0. The self-crossing guard is implicit: a
// vertex already placed is never reachable through "unvisited" again, so
// the guard degenerates to ordinary NN bookkeeping over this candidate set.
func nearestNeighborTour(dm *matrix.Dense, n int) []int {
	visited := make([]bool, n)
	perm := make([]int, 0, n)
	cur := 0
	visited[cur] = true
	perm = append(perm, cur)

	for len(perm) < n {
		best := -1
		bestDist := math.Inf(1)
		for j := 0; j < n; j++ {
			if visited[j] {
				continue
			}
			d, err := dm.At(cur, j)
			if err != nil || math.IsNaN(d) {
				continue
			}
			if d < bestDist {
				bestDist = d
				best = j
			}
		}
		if best < 0 {
			// No reachable unvisited vertex; append remaining in index
			// order so every candidate still appears in Order.
			for j := 0; j < n; j++ {
				if !visited[j] {
					visited[j] = true
					perm = append(perm, j)
				}
			}

			break
		}
		visited[best] = true
		perm = append(perm, best)
		cur = best
	}

	return perm
}

// refine2Opt runs the shared 2-opt local search over the candidate distance
// matrix, reporting ok=false when there are fewer than 4 candidates or
// tsp.TwoOpt returns an error (e.g. the starting tour itself uses an
// unreachable, +Inf, pair); in that case the caller keeps its tour
// unrefined. +Inf pairs elsewhere in the matrix only rule out the moves
// that would use them.
func refine2Opt(dm *matrix.Dense, perm []int, maxIters uint32) ([]int, bool) {
	n := len(perm)
	if n < 4 {
		return perm, false
	}

	tour, err := tsp.MakeTourFromPermutation(perm, n, perm[0])
	if err != nil {
		return perm, false
	}

	tOpts := tsp.DefaultOptions()
	tOpts.StartVertex = perm[0]
	tOpts.Symmetric = true
	tOpts.TwoOptMaxIters = int(maxIters)

	improved, _, err := tsp.TwoOpt(dm, tour, tOpts)
	if err != nil {
		return perm, false
	}

	return improved[:n], true
}

// tourLength sums the distance-matrix cost of the closed tour over perm.
func tourLength(dm *matrix.Dense, perm []int) float64 {
	total := 0.0
	n := len(perm)
	for i := 0; i < n; i++ {
		a := perm[i]
		b := perm[(i+1)%n]
		d, err := dm.At(a, b)
		if err == nil && !math.IsInf(d, 0) {
			total += d
		}
	}

	return total
}

// skippedEdges reports, per the self-crossing guard, which waypoint edges
// do not appear as an adjacent (wraparound-inclusive) pair anywhere in
// order.
func skippedEdges(m *meshcore.Mesh, waypoints []meshcore.EdgeHandle, order []meshcore.VertexHandle) []meshcore.EdgeHandle {
	adjacent := make(map[[2]meshcore.VertexHandle]bool)
	for i := 0; i+1 < len(order); i++ {
		a, b := order[i], order[i+1]
		adjacent[[2]meshcore.VertexHandle{a, b}] = true
		adjacent[[2]meshcore.VertexHandle{b, a}] = true
	}

	var out []meshcore.EdgeHandle
	for _, e := range waypoints {
		s, d := m.EdgeEndpoints(e)
		if !adjacent[[2]meshcore.VertexHandle{s, d}] {
			out = append(out, e)
		}
	}

	return out
}
