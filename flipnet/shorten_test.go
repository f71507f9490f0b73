package flipnet_test

import (
	"testing"

	"github.com/meshgeo/flipout/flipnet"
	"github.com/meshgeo/flipout/meshcore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIterativeShorten_StraightPathConvergesWithoutFlips(t *testing.T) {
	positions, indices := gridFixture()
	m, err := meshcore.Build(positions, indices)
	require.NoError(t, err)

	// 0 -> 1 -> 2 runs along the flat bottom edge: already straight (pi).
	n, err := flipnet.FromPiecewiseDijkstraPath(m, []meshcore.VertexHandle{0, 1, 2}, false, flipnet.DefaultOptions())
	require.NoError(t, err)

	before := n.TotalLength()
	stats, err := n.IterativeShorten()
	require.NoError(t, err)

	assert.True(t, stats.Converged)
	assert.Equal(t, 0, stats.FlipsPerformed)
	assert.InDelta(t, before, stats.FinalLength, 1e-9)
	assert.InDelta(t, before, n.TotalLength(), 1e-9)
}

func TestIterativeShorten_NeverLengthensAPath(t *testing.T) {
	positions, indices := gridFixture()
	m, err := meshcore.Build(positions, indices)
	require.NoError(t, err)

	// Waypoints 0, 4, 2 through the grid's center vertex: segment 0 -> 4
	// runs along the diagonal and segment 4 -> 1 -> 2 bends at vertex 1.
	n, err := flipnet.FromPiecewiseDijkstraPath(m, []meshcore.VertexHandle{0, 4, 2}, false, flipnet.DefaultOptions())
	require.NoError(t, err)

	before := n.TotalLength()
	stats, err := n.IterativeShorten()
	require.NoError(t, err)

	assert.LessOrEqual(t, stats.FinalLength, before+1e-9)
	assert.LessOrEqual(t, n.TotalLength(), before+1e-9)
}

func TestIterativeShorten_MarkedJointIsNeverSelected(t *testing.T) {
	positions, indices := gridFixture()
	m, err := meshcore.Build(positions, indices)
	require.NoError(t, err)

	// The Dijkstra path 4 -> 1 -> 2 bends at its only interior vertex, 1;
	// marking every interior vertex pins that bend.
	n, err := flipnet.FromDijkstraPath(m, 4, 2, flipnet.DefaultOptions())
	require.NoError(t, err)
	for _, v := range n.Paths()[0].InteriorVertices() {
		m.SetMark(v, true)
	}
	require.True(t, m.Mark(1))

	before := n.TotalLength()
	stats, err := n.IterativeShorten()
	require.NoError(t, err)

	assert.True(t, stats.Converged) // vertex 1 is marked, so no flexible joint exists at all
	assert.Equal(t, 0, stats.FlipsPerformed)
	assert.InDelta(t, before, n.TotalLength(), 1e-9)
}
