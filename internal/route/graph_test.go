package route

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGraph_IsolatedVertices(t *testing.T) {
	g := NewGraph(4)

	assert.Equal(t, 4, g.VertexCount())
	for _, v := range g.Vertices() {
		assert.Empty(t, g.Neighbors(v))
	}
	assert.Empty(t, g.Edges())
}

func TestNewGraph_NegativeCount(t *testing.T) {
	g := NewGraph(-3)

	assert.Equal(t, 0, g.VertexCount())
	assert.False(t, g.Contains(1))
}

func TestAddEdge_IsSymmetric(t *testing.T) {
	g := NewGraph(3)
	require.NoError(t, g.AddEdge(1, 3, 7))

	assert.Equal(t, []Arc{{To: 3, Weight: 7}}, g.Neighbors(1))
	assert.Equal(t, []Arc{{To: 1, Weight: 7}}, g.Neighbors(3))
	assert.Empty(t, g.Neighbors(2))
}

func TestAddEdge_VertexOutOfRange(t *testing.T) {
	g := NewGraph(3)

	for _, tc := range []struct{ u, v int }{{0, 1}, {1, 4}, {-1, 2}, {4, 4}} {
		err := g.AddEdge(tc.u, tc.v, 1)
		assert.ErrorIs(t, err, ErrVertexOutOfRange, "edge (%d,%d)", tc.u, tc.v)
	}
	assert.Empty(t, g.Edges(), "rejected edges must not be inserted")
}

func TestAddEdge_NegativeWeight(t *testing.T) {
	g := NewGraph(2)

	err := g.AddEdge(1, 2, -0.5)

	assert.ErrorIs(t, err, ErrNegativeWeight)
	assert.Empty(t, g.Neighbors(1))
}

func TestAddEdge_ZeroWeightAllowed(t *testing.T) {
	g := NewGraph(2)

	require.NoError(t, g.AddEdge(1, 2, 0))
}

func TestAddEdge_DuplicateEdgesKept(t *testing.T) {
	g := NewGraph(2)
	require.NoError(t, g.AddEdge(1, 2, 9))
	require.NoError(t, g.AddEdge(2, 1, 4))

	assert.Len(t, g.Neighbors(1), 2)
	assert.Len(t, g.Edges(), 2)
}

func TestEdges_ReturnsCopy(t *testing.T) {
	g := NewGraph(2)
	require.NoError(t, g.AddEdge(1, 2, 1))

	edges := g.Edges()
	edges[0].Weight = 100

	assert.Equal(t, float64(1), g.Edges()[0].Weight)
}

func TestNeighbors_UnknownVertex(t *testing.T) {
	g := NewGraph(2)

	assert.Nil(t, g.Neighbors(0))
	assert.Nil(t, g.Neighbors(3))
}

func TestMustBuild_PanicsOnInvalidEdge(t *testing.T) {
	assert.Panics(t, func() {
		MustBuild(2, []Edge{{From: 1, To: 3, Weight: 1}})
	})
}

func TestMoviSimple_Topology(t *testing.T) {
	g := MoviSimple()

	assert.Equal(t, StationCount, g.VertexCount())
	assert.Len(t, g.Edges(), 9)

	// every edge is visible from both endpoints with the same weight
	for _, e := range g.Edges() {
		assert.Contains(t, g.Neighbors(e.From), Arc{To: e.To, Weight: e.Weight})
		assert.Contains(t, g.Neighbors(e.To), Arc{To: e.From, Weight: e.Weight})
	}
}

func TestMoviSimple_SharedInstance(t *testing.T) {
	assert.Same(t, MoviSimple(), MoviSimple())
}
