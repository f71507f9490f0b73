package pathfind

import (
	"container/heap"
	"math"

	"github.com/meshgeo/flipout/meshcore"
)

// ShortestPathTree computes, from source, the minimum-length distance to
// every vertex of m reachable along mesh edges, and (with WithReturnPath)
// a predecessor array for path reconstruction.
//
// Neighbours are found by walking each vertex's outgoing halfedges, so a
// boundary edge (which has a single halfedge) is traversed only in that
// halfedge's direction; on a mesh with boundary, dist can therefore exceed
// the shortest distance over the undirected edge graph.
//
// dist[v] is math.Inf(1) for any vertex not reached within MaxDistance.
// prev is nil unless WithReturnPath is given; prev[v] == meshcore.InvalidHandle
// marks source itself and any unreached vertex.
func ShortestPathTree(m *meshcore.Mesh, source meshcore.VertexHandle, opts ...Option) (dist []float64, prev []meshcore.VertexHandle, err error) {
	if m == nil {
		return nil, nil, ErrNilMesh
	}
	if int(source) < 0 || int(source) >= m.NumVertices() {
		return nil, nil, ErrVertexOutOfRange
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	n := m.NumVertices()
	dist = make([]float64, n)
	visited := make([]bool, n)
	for v := range dist {
		dist[v] = math.Inf(1)
	}
	dist[source] = 0

	if cfg.ReturnPath {
		prev = make([]meshcore.VertexHandle, n)
		for v := range prev {
			prev[v] = meshcore.InvalidHandle
		}
	}

	pq := make(nodePQ, 0, n)
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{v: source, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		u, d := item.v, item.dist
		if visited[u] {
			continue
		}
		if d > cfg.MaxDistance {
			break
		}
		visited[u] = true

		for _, h := range m.OutgoingHalfedges(u) {
			e := m.HalfedgeEdge(h)
			w := m.EdgeLength(e)
			nb := m.HalfedgeTarget(h)
			newDist := d + w
			if newDist > cfg.MaxDistance || newDist >= dist[nb] {
				continue
			}
			dist[nb] = newDist
			if prev != nil {
				prev[nb] = u
			}
			heap.Push(&pq, &nodeItem{v: nb, dist: newDist})
		}
	}

	return dist, prev, nil
}

// ComputePath reconstructs the shortest vertex sequence from source to
// target, inclusive of both endpoints. Returns ErrNoPath if target is
// unreachable from source.
func ComputePath(m *meshcore.Mesh, source, target meshcore.VertexHandle) ([]meshcore.VertexHandle, float64, error) {
	dist, prev, err := ShortestPathTree(m, source, WithReturnPath())
	if err != nil {
		return nil, 0, err
	}
	if int(target) < 0 || int(target) >= m.NumVertices() {
		return nil, 0, ErrVertexOutOfRange
	}
	if math.IsInf(dist[target], 1) {
		return nil, 0, ErrNoPath
	}

	var path []meshcore.VertexHandle
	for v := target; ; {
		path = append(path, v)
		if v == source {
			break
		}
		v = prev[v]
		if v == meshcore.InvalidHandle {
			return nil, 0, ErrNoPath
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, dist[target], nil
}

// ComputePiecewisePath chains ComputePath across consecutive waypoints,
// concatenating the segments without repeating the shared endpoint between
// segment i and segment i+1. Used to build an initial combinatorial path
// through an ordered list of waypoint vertices before geodesic shortening.
func ComputePiecewisePath(m *meshcore.Mesh, waypoints []meshcore.VertexHandle) ([]meshcore.VertexHandle, float64, error) {
	if len(waypoints) < 2 {
		return nil, 0, ErrEmptyWaypoints
	}

	var full []meshcore.VertexHandle
	total := 0.0
	for i := 0; i+1 < len(waypoints); i++ {
		seg, length, err := ComputePath(m, waypoints[i], waypoints[i+1])
		if err != nil {
			return nil, 0, err
		}
		if i > 0 {
			seg = seg[1:]
		}
		full = append(full, seg...)
		total += length
	}

	return full, total, nil
}

// nodeItem is a (vertex, distance) pair stored in the priority queue.
type nodeItem struct {
	v    meshcore.VertexHandle
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by ascending dist, using the
// lazy decrease-key strategy: stale entries are skipped via visited[] when
// popped rather than removed eagerly.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
